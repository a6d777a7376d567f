package student

import (
	"errors"
	"math"

	"github.com/educonnect/educonnect/core/course"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

type (
	Repository interface {
		CreateStudent(s Student) (Student, error)
		AllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		// GetStudentByCredentials does a linear exact-match search on
		// email + password.
		GetStudentByCredentials(email, password string) (Student, error)
		// AddEnrolledCourse appends courseID to the student's enrollment
		// list; membership is checked so the append is idempotent.
		AddEnrolledCourse(studentID, courseID int) error
		// AddCompletedLesson is an idempotent append to CompletedLessons.
		AddCompletedLesson(studentID, lessonID int) error
	}

	Service struct {
		repo    Repository
		courses course.Repository
	}
)

func NewService(repo Repository, courses course.Repository) *Service {
	return &Service{repo: repo, courses: courses}
}

func (svc *Service) All() ([]Student, error) {
	return svc.repo.AllStudents()
}

func (svc *Service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) GetByCredentials(email, password string) (Student, error) {
	return svc.repo.GetStudentByCredentials(email, password)
}

// Enroll links a student and a course on both sides of the relationship.
// Each side is guarded independently: a missing student still lets the
// course side go through and vice versa, mirroring the caller-maintained
// referential symmetry of the enrollment link.
func (svc *Service) Enroll(studentID, courseID int) error {
	if err := svc.repo.AddEnrolledCourse(studentID, courseID); err != nil && err != ErrNotFound {
		return err
	}
	if err := svc.courses.AddEnrolledStudent(courseID, studentID); err != nil && err != course.ErrNotFound {
		return err
	}
	return nil
}

func (svc *Service) MarkLessonComplete(studentID, lessonID int) error {
	if err := svc.repo.AddCompletedLesson(studentID, lessonID); err != nil && err != ErrNotFound {
		return err
	}
	return nil
}

// Progress returns the student's completion percentage for a course:
// round(100 * completed lessons in course / total lessons). Returns 0 when
// the student or course is missing, or when the course has no lessons.
func (svc *Service) Progress(studentID, courseID int) int {
	stu, err := svc.repo.GetStudentByID(studentID)
	if err != nil {
		return 0
	}
	crs, err := svc.courses.GetCourseByID(courseID)
	if err != nil {
		return 0
	}

	total := crs.TotalLessons()
	if total == 0 {
		return 0
	}

	var completed int
	for _, mod := range crs.Modules {
		for _, lsn := range mod.Lessons {
			if stu.HasCompleted(lsn.ID) {
				completed++
			}
		}
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
