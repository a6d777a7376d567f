package admin

import "errors"

var (
	// errors
	ErrNotFound = errors.New("admin not found")
)

// Admin is the singleton educator identity and the credential source for the
// admin role. Like students, its password is plain text.
type Admin struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"-"`
	Avatar     string `json:"avatar"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
}

type Repository interface {
	GetAdmin() (Admin, error)
}
