package course

import (
	"github.com/go-playground/validator/v10"

	"github.com/educonnect/educonnect/core"
)

// Lesson content types
const (
	LessonVideo    = "video"
	LessonArticle  = "article"
	LessonResource = "resource"
)

type (
	// Lesson is one unit of course content.
	//
	// Completed is a modeling leftover: completion is actually tracked
	// per-student on Student.CompletedLessons. The flag is kept on the
	// entity because the seed data and the learning views still carry it.
	Lesson struct {
		ID        int    `json:"id"`
		Title     string `json:"title"`
		Duration  string `json:"duration"`
		Type      string `json:"type"`
		Content   string `json:"content,omitempty"` // URL or text, depending on Type
		Completed bool   `json:"completed"`
	}

	// Module groups an ordered list of lessons. Order is a dense 1..N
	// sequence owned and renumbered by the course's module list.
	Module struct {
		ID          int      `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description,omitempty"`
		Order       int      `json:"order"`
		Lessons     []Lesson `json:"lessons"`
	}

	Course struct {
		ID               int      `json:"id"`
		Title            string   `json:"title"`
		Description      string   `json:"description"`
		Instructor       string   `json:"instructor"`
		Category         string   `json:"category"`
		Level            string   `json:"level"`
		Duration         string   `json:"duration"`
		Price            float64  `json:"price"`
		Image            string   `json:"image"`
		EnrolledStudents []int    `json:"enrolledStudents"`
		Modules          []Module `json:"modules"`
		CreatedAt        string   `json:"createdAt"`
	}
)

// TotalLessons counts lessons across all modules.
func (c Course) TotalLessons() int {
	var n int
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}

func (c Course) IsEnrolled(studentID int) bool {
	return core.ContainsInt(c.EnrolledStudents, studentID)
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Instructor  string  `json:"instructor" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Level       string  `json:"level" validate:"required"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	nc.Instructor = core.CleanString(nc.Instructor)
	return validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing
// Course. It is shallow-merged: zero-valued fields are left untouched.
type UpdateCourse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Duration    string   `json:"duration"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Image       string   `json:"image" validate:"omitempty,url"`
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	uc.Title = core.CleanString(uc.Title)
	uc.Description = core.CleanString(uc.Description)
	uc.Instructor = core.CleanString(uc.Instructor)
	return validate.Struct(uc)
}

type NewModule struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (nm *NewModule) Validate(validate *validator.Validate) error {
	nm.Title = core.CleanString(nm.Title)
	return validate.Struct(nm)
}

type NewLesson struct {
	Title    string `json:"title" validate:"required"`
	Duration string `json:"duration"`
	Type     string `json:"type" validate:"required,oneof=video article resource"`
	Content  string `json:"content"`
}

func (nl *NewLesson) Validate(validate *validator.Validate) error {
	nl.Title = core.CleanString(nl.Title)
	return validate.Struct(nl)
}
