package assignment_test

import (
	"testing"
	"time"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/storage/database/inmem"
)

func setup(t *testing.T) *assignment.Service {
	t.Helper()

	db := inmemdb.NewDB()
	return assignment.NewService(inmemdb.NewAssignmentRepository(db))
}

func TestService_Create(t *testing.T) {
	svc := setup(t)

	asg, err := svc.Create(assignment.NewAssignment{
		CourseID:    2,
		Title:       "Pandas Drilldown",
		Description: "Clean and reshape the provided dataset",
		DueDate:     "2024-05-01",
		MaxScore:    100,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if asg.ID != 6 {
		t.Errorf("Create() ID = %d, want 6", asg.ID)
	}
	if asg.Submissions == nil {
		t.Error("Create() Submissions not initialized")
	}
}

func TestService_Submit(t *testing.T) {
	svc := setup(t)

	core.NowFunc = func() time.Time { return time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC) }
	defer func() { core.NowFunc = time.Now }()

	sub, err := svc.Submit(3, assignment.NewSubmission{StudentID: 1, File: "analysis_alex.ipynb"})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	// submission ids continue past the seeded maximum
	if sub.ID != 5 {
		t.Errorf("Submit() ID = %d, want 5", sub.ID)
	}
	if sub.SubmittedAt != "2024-04-02" {
		t.Errorf("SubmittedAt = %s, want 2024-04-02", sub.SubmittedAt)
	}
	if sub.Score.Valid {
		t.Error("Score should be null until graded")
	}

	asg, err := svc.GetByID(3)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if len(asg.Submissions) != 1 {
		t.Fatalf("Submissions = %d, want 1", len(asg.Submissions))
	}

	// a second submission by the same student is allowed
	if _, err = svc.Submit(3, assignment.NewSubmission{StudentID: 1, File: "analysis_alex_v2.ipynb"}); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	asg, _ = svc.GetByID(3)
	if got := len(asg.SubmissionsBy(1)); got != 2 {
		t.Errorf("SubmissionsBy(1) = %d, want 2", got)
	}

	// an absent assignment still yields a created submission, attached
	// nowhere
	orphan, err := svc.Submit(99, assignment.NewSubmission{StudentID: 1, File: "void.zip"})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if orphan.ID != 7 {
		t.Errorf("Submit() ID = %d, want 7", orphan.ID)
	}
}

func TestService_Grade(t *testing.T) {
	svc := setup(t)

	sub, err := svc.Grade(2, 3, assignment.Grade{Score: 88, Feedback: "Solid work"})
	if err != nil {
		t.Fatalf("Grade() failed: %v", err)
	}
	if !sub.Score.Valid || sub.Score.Int != 88 {
		t.Errorf("Score = %+v, want 88", sub.Score)
	}
	if sub.Feedback != "Solid work" {
		t.Errorf("Feedback = %s, want set", sub.Feedback)
	}

	// re-grading overwrites both fields; last write wins
	sub, err = svc.Grade(2, 3, assignment.Grade{Score: 55, Feedback: "Revised down"})
	if err != nil {
		t.Fatalf("Grade() failed: %v", err)
	}
	if sub.Score.Int != 55 || sub.Feedback != "Revised down" {
		t.Errorf("re-grade = %d %q, want 55 \"Revised down\"", sub.Score.Int, sub.Feedback)
	}

	// the score is not clamped to MaxScore
	sub, err = svc.Grade(1, 1, assignment.Grade{Score: 250})
	if err != nil {
		t.Fatalf("Grade() failed: %v", err)
	}
	if sub.Score.Int != 250 {
		t.Errorf("Score = %d, want 250", sub.Score.Int)
	}

	if _, err = svc.Grade(99, 1, assignment.Grade{Score: 10}); err != assignment.ErrNotFound {
		t.Errorf("Grade() error = %v, want ErrNotFound", err)
	}
	if _, err = svc.Grade(1, 99, assignment.Grade{Score: 10}); err != assignment.ErrSubmissionNotFound {
		t.Errorf("Grade() error = %v, want ErrSubmissionNotFound", err)
	}
}

func TestService_Update(t *testing.T) {
	svc := setup(t)

	asg, err := svc.Update(1, assignment.UpdateAssignment{DueDate: "2024-04-15"})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if asg.DueDate != "2024-04-15" {
		t.Errorf("DueDate = %s, want patched value", asg.DueDate)
	}
	if asg.Title == "" {
		t.Error("Title was wiped by the merge")
	}

	if _, err = svc.Update(99, assignment.UpdateAssignment{}); err != assignment.ErrNotFound {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc := setup(t)

	if err := svc.Delete(1); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := svc.GetByID(1); err != assignment.ErrNotFound {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
	// absent id is a silent no-op
	if err := svc.Delete(99); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}
}
