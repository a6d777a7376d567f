package course

import (
	"errors"

	"github.com/educonnect/educonnect/core"
)

var (
	// errors
	ErrNotFound       = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrLessonNotFound = errors.New("lesson not found")
)

type (
	Repository interface {
		CreateCourse(c Course) (Course, error)
		AllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
		// UpdateCourse shallow-merges the patch into the matching Course.
		UpdateCourse(id int, uc UpdateCourse) (Course, error)
		DeleteCourse(id int) error
		// AddEnrolledStudent appends studentID to the course's enrollment
		// list; membership is checked so the append is idempotent.
		AddEnrolledStudent(courseID, studentID int) error

		AddModule(courseID int, m Module) (Module, error)
		UpdateModule(courseID int, m Module) (Module, error)
		// DeleteModule removes the module and renumbers the remaining
		// modules' Order to a dense 1..N sequence.
		DeleteModule(courseID, moduleID int) error
		// ReorderModules rearranges the course's modules to match moduleIDs
		// and recomputes Order as 1..N. Every current module must appear
		// exactly once in moduleIDs.
		ReorderModules(courseID int, moduleIDs []int) ([]Module, error)

		AddLesson(courseID, moduleID int, l Lesson) (Lesson, error)
		UpdateLesson(courseID, moduleID int, l Lesson) (Lesson, error)
		DeleteLesson(courseID, moduleID, lessonID int) error
	}

	// AssignmentCleaner removes the assignments attached to a deleted course.
	AssignmentCleaner interface {
		DeleteAssignmentsByCourse(courseID int) error
	}

	Service struct {
		repo        Repository
		assignments AssignmentCleaner
	}
)

func NewService(repo Repository, assignments AssignmentCleaner) *Service {
	return &Service{repo: repo, assignments: assignments}
}

func (svc *Service) Create(nc NewCourse) (Course, error) {
	crs := Course{
		Title:            nc.Title,
		Description:      nc.Description,
		Instructor:       nc.Instructor,
		Category:         nc.Category,
		Level:            nc.Level,
		Duration:         nc.Duration,
		Price:            nc.Price,
		Image:            nc.Image,
		EnrolledStudents: []int{},
		Modules:          []Module{},
		CreatedAt:        core.Today(),
	}
	return svc.repo.CreateCourse(crs)
}

func (svc *Service) All() ([]Course, error) {
	return svc.repo.AllCourses()
}

func (svc *Service) GetByID(id int) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) Update(id int, uc UpdateCourse) (Course, error) {
	return svc.repo.UpdateCourse(id, uc)
}

// Delete removes the course and cascades deletion to its assignments.
// Students' enrolledCourses lists keep referencing the deleted id; that
// soft-reference behavior is intentional and pinned by tests.
func (svc *Service) Delete(id int) error {
	if err := svc.repo.DeleteCourse(id); err != nil {
		return err
	}
	return svc.assignments.DeleteAssignmentsByCourse(id)
}

func (svc *Service) AddModule(courseID int, nm NewModule) (Module, error) {
	mod := Module{
		Title:       nm.Title,
		Description: nm.Description,
		Lessons:     []Lesson{},
	}
	return svc.repo.AddModule(courseID, mod)
}

func (svc *Service) UpdateModule(courseID, moduleID int, nm NewModule) (Module, error) {
	mod := Module{
		ID:          moduleID,
		Title:       nm.Title,
		Description: nm.Description,
	}
	return svc.repo.UpdateModule(courseID, mod)
}

func (svc *Service) DeleteModule(courseID, moduleID int) error {
	return svc.repo.DeleteModule(courseID, moduleID)
}

func (svc *Service) ReorderModules(courseID int, moduleIDs []int) ([]Module, error) {
	return svc.repo.ReorderModules(courseID, moduleIDs)
}

func (svc *Service) AddLesson(courseID, moduleID int, nl NewLesson) (Lesson, error) {
	lsn := Lesson{
		Title:    nl.Title,
		Duration: nl.Duration,
		Type:     nl.Type,
		Content:  nl.Content,
	}
	return svc.repo.AddLesson(courseID, moduleID, lsn)
}

func (svc *Service) UpdateLesson(courseID, moduleID, lessonID int, nl NewLesson) (Lesson, error) {
	lsn := Lesson{
		ID:       lessonID,
		Title:    nl.Title,
		Duration: nl.Duration,
		Type:     nl.Type,
		Content:  nl.Content,
	}
	return svc.repo.UpdateLesson(courseID, moduleID, lsn)
}

func (svc *Service) DeleteLesson(courseID, moduleID, lessonID int) error {
	return svc.repo.DeleteLesson(courseID, moduleID, lessonID)
}
