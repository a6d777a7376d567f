package echoapi

import (
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/educonnect/educonnect/core"
	"github.com/educonnect/educonnect/core/session"
	"github.com/educonnect/educonnect/core/student"
)

type sessionApi struct {
	deps *ServerDeps
}

func registerSessionAPI(app *echo.Echo, deps *ServerDeps) {
	api := sessionApi{deps: deps}

	pub := publicOnly(deps.Session)
	app.POST("/login", api.login, pub)
	app.POST("/register", api.register, pub)

	authed := requireAuth(deps.Session)
	app.POST("/logout", api.logout, authed)
	app.GET("/profile", api.profile, authed)
	app.PUT("/profile", api.updateProfile, authed)
}

type LoginResponse struct {
	Success bool             `json:"success"`
	User    session.Identity `json:"user"`
}

func (api *sessionApi) login(ctx echo.Context) error {
	var data session.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	ident, err := api.deps.Session.Login(data.Email, data.Password, data.Role)
	if err != nil {
		if err == session.ErrAdminCredentials || err == session.ErrStudentCredentials {
			return core.NewValidationError(err)
		}
		return errors.Wrap(err, "logging in")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Success: true, User: ident})
}

func (api *sessionApi) register(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	ident, err := api.deps.Session.Register(data)
	if err != nil {
		return errors.Wrap(err, "registering")
	}

	if _, err = api.deps.NotificationSvc.Add("New student registration: " + ident.Name); err != nil {
		return errors.Wrap(err, "adding notification")
	}
	api.deps.EmailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: ident.Name, Address: ident.Email}},
		Subject: "Welcome to EduConnect",
		Body: "Hi " + ident.Name + ",\n\n" +
			"Your student account is ready. Browse the course catalog and enroll to start learning.",
	})

	return ctx.JSON(http.StatusCreated, LoginResponse{Success: true, User: ident})
}

func (api *sessionApi) logout(ctx echo.Context) error {
	if err := api.deps.Session.Logout(); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionApi) profile(ctx echo.Context) error {
	ident, err := contextIdentity(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ident)
}

func (api *sessionApi) updateProfile(ctx echo.Context) error {
	var data session.ProfileUpdate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ProfileUpdate")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	ident, err := api.deps.Session.UpdateProfile(data)
	if err != nil {
		return errors.Wrap(err, "updating profile")
	}
	return ctx.JSON(http.StatusOK, ident)
}
