package stats

import (
	"github.com/pkg/errors"

	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/student"
)

type (
	// Overview is the aggregate counters block of the admin dashboard.
	//
	// PendingSubmissions sums enrolledCount - submissionCount over all
	// assignments without a floor: it can go negative when submissions
	// outnumber current enrollment. The arithmetic is deliberately left
	// unclamped.
	Overview struct {
		TotalStudents      int `json:"totalStudents"`
		TotalCourses       int `json:"totalCourses"`
		TotalAssignments   int `json:"totalAssignments"`
		TotalEnrollments   int `json:"totalEnrollments"`
		PendingSubmissions int `json:"pendingSubmissions"`
	}

	Service struct {
		courses     course.Repository
		students    student.Repository
		assignments assignment.Repository
	}
)

func NewService(courses course.Repository, students student.Repository, assignments assignment.Repository) *Service {
	return &Service{courses: courses, students: students, assignments: assignments}
}

func (svc *Service) Overview() (Overview, error) {
	students, err := svc.students.AllStudents()
	if err != nil {
		return Overview{}, errors.Wrap(err, "querying students")
	}
	courses, err := svc.courses.AllCourses()
	if err != nil {
		return Overview{}, errors.Wrap(err, "querying courses")
	}
	assignments, err := svc.assignments.AllAssignments()
	if err != nil {
		return Overview{}, errors.Wrap(err, "querying assignments")
	}

	ov := Overview{
		TotalStudents:    len(students),
		TotalCourses:     len(courses),
		TotalAssignments: len(assignments),
	}
	for _, stu := range students {
		ov.TotalEnrollments += len(stu.EnrolledCourses)
	}

	enrolledCounts := make(map[int]int, len(courses))
	for _, crs := range courses {
		enrolledCounts[crs.ID] = len(crs.EnrolledStudents)
	}
	for _, asg := range assignments {
		ov.PendingSubmissions += enrolledCounts[asg.CourseID] - len(asg.Submissions)
	}
	return ov, nil
}
