package assignment

import (
	"errors"

	"github.com/educonnect/educonnect/core"
)

var (
	// errors
	ErrNotFound           = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)

type (
	Repository interface {
		CreateAssignment(a Assignment) (Assignment, error)
		AllAssignments() ([]Assignment, error)
		GetAssignmentByID(id int) (Assignment, error)
		AssignmentsByCourse(courseID int) ([]Assignment, error)
		// UpdateAssignment shallow-merges the patch into the matching Assignment.
		UpdateAssignment(id int, ua UpdateAssignment) (Assignment, error)
		DeleteAssignment(id int) error
		DeleteAssignmentsByCourse(courseID int) error

		AddSubmission(assignmentID int, sub Submission) (Submission, error)
		// GradeSubmission sets score and feedback on the matching Submission.
		// Re-grading overwrites both; the score is never clamped to MaxScore.
		GradeSubmission(assignmentID, submissionID, score int, feedback string) (Submission, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(na NewAssignment) (Assignment, error) {
	asg := Assignment{
		CourseID:    na.CourseID,
		Title:       na.Title,
		Description: na.Description,
		DueDate:     na.DueDate,
		MaxScore:    na.MaxScore,
		Submissions: []Submission{},
	}
	return svc.repo.CreateAssignment(asg)
}

func (svc *Service) All() ([]Assignment, error) {
	return svc.repo.AllAssignments()
}

func (svc *Service) GetByID(id int) (Assignment, error) {
	return svc.repo.GetAssignmentByID(id)
}

func (svc *Service) ByCourse(courseID int) ([]Assignment, error) {
	return svc.repo.AssignmentsByCourse(courseID)
}

func (svc *Service) Update(id int, ua UpdateAssignment) (Assignment, error) {
	return svc.repo.UpdateAssignment(id, ua)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteAssignment(id)
}

// Submit appends a new ungraded Submission dated today. An existing
// submission by the same student is not checked for; duplicates are allowed.
func (svc *Service) Submit(assignmentID int, ns NewSubmission) (Submission, error) {
	sub := Submission{
		StudentID:   ns.StudentID,
		File:        ns.File,
		SubmittedAt: core.Today(),
	}
	return svc.repo.AddSubmission(assignmentID, sub)
}

func (svc *Service) Grade(assignmentID, submissionID int, g Grade) (Submission, error) {
	return svc.repo.GradeSubmission(assignmentID, submissionID, g.Score, g.Feedback)
}
