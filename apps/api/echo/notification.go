package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/educonnect/educonnect/core/session"
)

type notificationApi struct {
	deps *ServerDeps
}

func registerNotificationAPI(app *echo.Echo, deps *ServerDeps) {
	api := notificationApi{deps: deps}

	g := app.Group("/notifications", requireAuth(deps.Session, session.RoleAdmin))
	g.GET("", api.query)
	g.PUT("/:id/read", api.markRead)
}

func (api *notificationApi) query(ctx echo.Context) error {
	notifs, err := api.deps.NotificationSvc.All()
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}
	return ctx.JSON(http.StatusOK, notifs)
}

func (api *notificationApi) markRead(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.deps.NotificationSvc.MarkRead(id); err != nil {
		return errors.Wrap(err, "marking notification read")
	}
	return ctx.NoContent(http.StatusNoContent)
}
