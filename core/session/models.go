package session

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/admin"
	"github.com/educonnect/educonnect/core/student"
)

// Roles
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// State of the session store.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

// Identity is the role-tagged authenticated identity. It is the exact shape
// persisted under the single session key: student identities carry
// enrollment/completion lists and a join date, admin identities carry
// department and bio.
type Identity struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Avatar           string `json:"avatar"`
	Role             string `json:"role"`
	EnrolledCourses  []int  `json:"enrolledCourses,omitempty"`
	CompletedLessons []int  `json:"completedLessons,omitempty"`
	JoinDate         string `json:"joinDate,omitempty"`
	Department       string `json:"department,omitempty"`
	Bio              string `json:"bio,omitempty"`
}

func (i Identity) IsAdmin() bool   { return i.Role == RoleAdmin }
func (i Identity) IsStudent() bool { return i.Role == RoleStudent }

// HomePath is the role's dashboard route, used by guards as redirect target.
func (i Identity) HomePath() string {
	if i.IsAdmin() {
		return "/admin/dashboard"
	}
	return "/student/dashboard"
}

func studentIdentity(stu student.Student) Identity {
	return Identity{
		ID:               stu.ID,
		Name:             stu.Name,
		Email:            stu.Email,
		Avatar:           stu.Avatar,
		Role:             RoleStudent,
		EnrolledCourses:  stu.EnrolledCourses,
		CompletedLessons: stu.CompletedLessons,
		JoinDate:         stu.JoinDate,
	}
}

func adminIdentity(adm admin.Admin) Identity {
	return Identity{
		ID:         adm.ID,
		Name:       adm.Name,
		Email:      adm.Email,
		Avatar:     adm.Avatar,
		Role:       RoleAdmin,
		Department: adm.Department,
		Bio:        adm.Bio,
	}
}

// Claims is the Identity as transmitted/persisted via a signed JWT.
// No expiry is set: a session survives until an explicit logout.
type Claims struct {
	jwt.StandardClaims
	Identity
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin student"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}

// ProfileUpdate is merged into the current identity; zero-valued fields are
// left untouched. The merge is not propagated back to the domain store.
type ProfileUpdate struct {
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Avatar     string `json:"avatar" validate:"omitempty,url"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
}

func (pu *ProfileUpdate) Validate(validate *validator.Validate) error {
	pu.Name = core.CleanString(pu.Name)
	pu.Email = core.CleanString(pu.Email, true /* lower */)
	return validate.Struct(pu)
}
