package session

import (
	"errors"
	"sync"

	"github.com/dgrijalva/jwt-go"
	pkgerrors "github.com/pkg/errors"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/admin"
	"github.com/educonnect/educonnect/core/student"
)

var (
	// errors
	ErrAdminCredentials   = errors.New("invalid admin credentials")
	ErrStudentCredentials = errors.New("invalid student credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// registeredIDBase keeps ids minted for self-registered accounts clear of the
// seeded id space (students 1..N, admin 100).
const registeredIDBase = 1000

// Store tracks the current authenticated identity. It authenticates against
// the domain store's credential collections and persists the identity as a
// signed JWT through its Keeper, restoring it on startup.
type Store struct {
	mu       sync.RWMutex
	conf     *core.Config
	students student.Repository
	admins   admin.Repository
	keeper   Keeper

	state   State
	current Identity
	idSeq   int
}

func NewStore(conf *core.Config, students student.Repository, admins admin.Repository, keeper Keeper) *Store {
	return &Store{
		conf:     conf,
		students: students,
		admins:   admins,
		keeper:   keeper,
		state:    StateLoading,
		idSeq:    registeredIDBase,
	}
}

// Restore deserializes a previously persisted identity. Absence, parse or
// signature failures leave the session unauthenticated; no error surfaces.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateUnauthenticated
	value, err := s.keeper.Read()
	if err != nil {
		return
	}
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.conf.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return
	}
	s.current = claims.Identity
	s.state = StateAuthenticated
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns the authenticated identity, if any.
func (s *Store) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.state == StateAuthenticated
}

// Login authenticates against the singleton admin identity when role is
// "admin", and against the students collection otherwise. Failure does not
// distinguish an unknown user from a wrong password.
func (s *Store) Login(email, password, role string) (Identity, error) {
	email = core.CleanString(email, true /* lower */)

	var ident Identity
	if role == RoleAdmin {
		adm, err := s.admins.GetAdmin()
		if err != nil || adm.Email != email || adm.Password != password {
			return Identity{}, ErrAdminCredentials
		}
		ident = adminIdentity(adm)
	} else {
		stu, err := s.students.GetStudentByCredentials(email, password)
		if err != nil {
			return Identity{}, ErrStudentCredentials
		}
		ident = studentIdentity(stu)
	}

	if err := s.setCurrent(ident); err != nil {
		return Identity{}, err
	}
	return ident, nil
}

// Register builds a brand-new student identity and treats it as logged in
// right away. The identity is not inserted into the domain store's students
// collection: admin-side listings and by-id lookups will not see it. That
// mismatch is preserved behavior, pinned by tests.
func (s *Store) Register(ns student.NewStudent) (Identity, error) {
	s.mu.Lock()
	s.idSeq++
	id := s.idSeq
	s.mu.Unlock()

	ident := Identity{
		ID:               id,
		Name:             ns.Name,
		Email:            ns.Email,
		Avatar:           ns.Avatar,
		Role:             RoleStudent,
		EnrolledCourses:  []int{},
		CompletedLessons: []int{},
		JoinDate:         core.Today(),
	}
	if err := s.setCurrent(ident); err != nil {
		return Identity{}, err
	}
	return ident, nil
}

// Logout clears the identity and the persisted session value.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Identity{}
	s.state = StateUnauthenticated
	return pkgerrors.Wrap(s.keeper.Clear(), "clearing session")
}

// UpdateProfile merges the patch into the current identity and re-persists
// it. The change is not written back to the domain store.
func (s *Store) UpdateProfile(pu ProfileUpdate) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return Identity{}, ErrNotAuthenticated
	}
	if pu.Name != "" {
		s.current.Name = pu.Name
	}
	if pu.Email != "" {
		s.current.Email = pu.Email
	}
	if pu.Avatar != "" {
		s.current.Avatar = pu.Avatar
	}
	if pu.Department != "" {
		s.current.Department = pu.Department
	}
	if pu.Bio != "" {
		s.current.Bio = pu.Bio
	}
	if err := s.persist(s.current); err != nil {
		return Identity{}, err
	}
	return s.current, nil
}

func (s *Store) setCurrent(ident Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ident); err != nil {
		return err
	}
	s.current = ident
	s.state = StateAuthenticated
	return nil
}

func (s *Store) persist(ident Identity) error {
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{Issuer: s.conf.AppName},
		Identity:       ident,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	value, err := token.SignedString([]byte(s.conf.SecretKey))
	if err != nil {
		return pkgerrors.Wrap(err, "signing session token")
	}
	return pkgerrors.Wrap(s.keeper.Write(value), "persisting session")
}
