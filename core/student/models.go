package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/educonnect/educonnect/core"
)

// Student is a learner account. Password is stored and compared as plain
// text: the system has no real authentication security and the seed data
// carries plain credentials.
type Student struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"-"`
	Avatar           string `json:"avatar"`
	EnrolledCourses  []int  `json:"enrolledCourses"`
	CompletedLessons []int  `json:"completedLessons"`
	JoinDate         string `json:"joinDate"`
}

func (s Student) IsEnrolled(courseID int) bool {
	return core.ContainsInt(s.EnrolledCourses, courseID)
}

func (s Student) HasCompleted(lessonID int) bool {
	return core.ContainsInt(s.CompletedLessons, lessonID)
}

// NewStudent contains information needed to create a new Student account.
type NewStudent struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return validate.Struct(ns)
}
