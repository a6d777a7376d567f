package inmemdb

import (
	"github.com/volatiletech/null/v8"

	"github.com/educonnect/educonnect/core/assignment"
)

type assignmentRepository struct {
	db *DB
}

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func copyAssignment(asg assignment.Assignment) assignment.Assignment {
	cp := asg
	cp.Submissions = make([]assignment.Submission, len(asg.Submissions))
	copy(cp.Submissions, asg.Submissions)
	return cp
}

// find returns a pointer into the live collection; callers hold db.mu.
func (repo *assignmentRepository) find(id int) *assignment.Assignment {
	for i := range repo.db.assignments {
		if repo.db.assignments[i].ID == id {
			return &repo.db.assignments[i]
		}
	}
	return nil
}

func (repo *assignmentRepository) CreateAssignment(asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.assignmentSeq++
	asg.ID = repo.db.assignmentSeq
	if asg.Submissions == nil {
		asg.Submissions = []assignment.Submission{}
	}
	repo.db.assignments = append(repo.db.assignments, copyAssignment(asg))
	return asg, nil
}

func (repo *assignmentRepository) AllAssignments() ([]assignment.Assignment, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	assignments := make([]assignment.Assignment, 0, len(repo.db.assignments))
	for _, asg := range repo.db.assignments {
		assignments = append(assignments, copyAssignment(asg))
	}
	return assignments, nil
}

func (repo *assignmentRepository) GetAssignmentByID(id int) (assignment.Assignment, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if asg := repo.find(id); asg != nil {
		return copyAssignment(*asg), nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) AssignmentsByCourse(courseID int) ([]assignment.Assignment, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var assignments []assignment.Assignment
	for _, asg := range repo.db.assignments {
		if asg.CourseID == courseID {
			assignments = append(assignments, copyAssignment(asg))
		}
	}
	return assignments, nil
}

func (repo *assignmentRepository) UpdateAssignment(id int, ua assignment.UpdateAssignment) (assignment.Assignment, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	asg := repo.find(id)
	if asg == nil {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	// only save set fields
	if ua.Title != "" {
		asg.Title = ua.Title
	}
	if ua.Description != "" {
		asg.Description = ua.Description
	}
	if ua.DueDate != "" {
		asg.DueDate = ua.DueDate
	}
	if ua.MaxScore != 0 {
		asg.MaxScore = ua.MaxScore
	}
	return copyAssignment(*asg), nil
}

// DeleteAssignment is a silent no-op when the id is absent.
func (repo *assignmentRepository) DeleteAssignment(id int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	kept := repo.db.assignments[:0]
	for _, asg := range repo.db.assignments {
		if asg.ID != id {
			kept = append(kept, asg)
		}
	}
	repo.db.assignments = kept
	return nil
}

func (repo *assignmentRepository) DeleteAssignmentsByCourse(courseID int) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	kept := repo.db.assignments[:0]
	for _, asg := range repo.db.assignments {
		if asg.CourseID != courseID {
			kept = append(kept, asg)
		}
	}
	repo.db.assignments = kept
	return nil
}

// AddSubmission returns the created submission even when the assignment id
// is absent, in which case nothing is attached (silent no-op).
func (repo *assignmentRepository) AddSubmission(assignmentID int, sub assignment.Submission) (assignment.Submission, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.submissionSeq++
	sub.ID = repo.db.submissionSeq
	sub.Score = null.Int{}
	if asg := repo.find(assignmentID); asg != nil {
		asg.Submissions = append(asg.Submissions, sub)
	}
	return sub, nil
}

func (repo *assignmentRepository) GradeSubmission(assignmentID, submissionID, score int, feedback string) (assignment.Submission, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	asg := repo.find(assignmentID)
	if asg == nil {
		return assignment.Submission{}, assignment.ErrNotFound
	}
	for i := range asg.Submissions {
		if asg.Submissions[i].ID == submissionID {
			asg.Submissions[i].Score = null.IntFrom(score)
			asg.Submissions[i].Feedback = feedback
			return asg.Submissions[i], nil
		}
	}
	return assignment.Submission{}, assignment.ErrSubmissionNotFound
}
