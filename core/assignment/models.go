package assignment

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/educonnect/educonnect/core"
)

type (
	// Submission is one student's answer to an assignment. Score is null
	// until the submission is graded; grading is a one-way transition.
	Submission struct {
		ID          int      `json:"id"`
		StudentID   int      `json:"studentId"`
		File        string   `json:"file"`
		SubmittedAt string   `json:"submittedAt"`
		Score       null.Int `json:"score"`
		Feedback    string   `json:"feedback"`
	}

	Assignment struct {
		ID          int          `json:"id"`
		CourseID    int          `json:"courseId"`
		Title       string       `json:"title"`
		Description string       `json:"description"`
		DueDate     string       `json:"dueDate"`
		MaxScore    int          `json:"maxScore"`
		Submissions []Submission `json:"submissions"`
	}
)

// SubmissionBy returns the submissions made by a student, most recent last.
// Duplicate submissions by the same student are allowed.
func (a Assignment) SubmissionsBy(studentID int) []Submission {
	var subs []Submission
	for _, sub := range a.Submissions {
		if sub.StudentID == studentID {
			subs = append(subs, sub)
		}
	}
	return subs
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	CourseID    int    `json:"courseId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
	MaxScore    int    `json:"maxScore" validate:"required,gt=0"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	return validate.Struct(na)
}

// UpdateAssignment is shallow-merged: zero-valued fields are left untouched.
type UpdateAssignment struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	MaxScore    int    `json:"maxScore" validate:"omitempty,gt=0"`
}

func (ua *UpdateAssignment) Validate(validate *validator.Validate) error {
	ua.Title = core.CleanString(ua.Title)
	ua.Description = core.CleanString(ua.Description)
	return validate.Struct(ua)
}

// NewSubmission contains information needed to submit an assignment.
type NewSubmission struct {
	StudentID int    `json:"studentId" validate:"required"`
	File      string `json:"file" validate:"required"`
}

func (ns *NewSubmission) Validate(validate *validator.Validate) error {
	ns.File = core.CleanString(ns.File)
	return validate.Struct(ns)
}

// Grade carries a grading decision. Score is deliberately not bounded by the
// assignment's MaxScore; the grader's value is taken as-is.
type Grade struct {
	Score    int    `json:"score" validate:"gte=0"`
	Feedback string `json:"feedback"`
}

func (g *Grade) Validate(validate *validator.Validate) error {
	g.Feedback = core.CleanString(g.Feedback)
	return validate.Struct(g)
}
