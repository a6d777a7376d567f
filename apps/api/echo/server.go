package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/assignment"
	"github.com/educonnect/educonnect/core/course"
	"github.com/educonnect/educonnect/core/notification"
	"github.com/educonnect/educonnect/core/session"
	"github.com/educonnect/educonnect/core/stats"
	"github.com/educonnect/educonnect/core/student"
)

type (
	ServerDeps struct {
		Conf            *core.Config
		Logger          core.Logger
		Session         *session.Store
		CourseSvc       *course.Service
		StudentSvc      *student.Service
		AssignmentSvc   *assignment.Service
		NotificationSvc *notification.Service
		StatsSvc        *stats.Service
		EmailSvc        core.EmailService
		Validate        *validator.Validate
		Translator      ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		addr   string
		deps   *ServerDeps
		app    *echo.Echo
		errCh  chan error
		shutCh chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(addr string, deps *ServerDeps) Server {
	s := &server{
		addr:   addr,
		deps:   deps,
		app:    echo.New(),
		errCh:  make(chan error, 1),
		shutCh: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutCh, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	registerSessionAPI(s.app, s.deps)
	registerCourseAPI(s.app, s.deps)
	registerAssignmentAPI(s.app, s.deps)
	registerDashboardAPI(s.app, s.deps)
	registerNotificationAPI(s.app, s.deps)
}

func (s *server) Start() {
	if err := s.app.Start(s.addr); err != nil && err != http.ErrServerClosed {
		s.errCh <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errCh
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutCh
}

// signalShutdown is used by the error handler to request a graceful stop.
func (s *server) signalShutdown() {
	s.shutCh <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to EduConnect API!")
}
