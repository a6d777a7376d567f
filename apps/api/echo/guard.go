package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/educonnect/educonnect/core/session"
)

var (
	contextIdentityKey = "identity"

	errIdentNotFoundInCtx = errors.New("identity not found in echo.Context")

	loginPath = "/login"
)

// requireAuth gates a route subtree by authentication and, optionally, by an
// allowed-role set. While the session store is still loading it renders a
// neutral placeholder; an unauthenticated caller is redirected to the login
// entry point; an authenticated caller whose role is excluded is redirected
// to their role's home route.
func requireAuth(sess *session.Store, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			switch sess.State() {
			case session.StateLoading:
				return ctx.String(http.StatusOK, "Loading...")
			case session.StateUnauthenticated:
				return ctx.Redirect(http.StatusSeeOther, loginPath)
			}

			ident, _ := sess.Current()
			if len(roles) > 0 && !roleAllowed(ident.Role, roles) {
				return ctx.Redirect(http.StatusSeeOther, ident.HomePath())
			}
			ctx.Set(contextIdentityKey, ident)
			return next(ctx)
		}
	}
}

// publicOnly is the inverse guard for the login/register entry points: an
// already-authenticated caller is sent to their role's home route instead.
func publicOnly(sess *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if sess.State() == session.StateLoading {
				return ctx.String(http.StatusOK, "Loading...")
			}
			if ident, ok := sess.Current(); ok {
				return ctx.Redirect(http.StatusSeeOther, ident.HomePath())
			}
			return next(ctx)
		}
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func contextIdentity(ctx echo.Context) (session.Identity, error) {
	if ident, ok := ctx.Get(contextIdentityKey).(session.Identity); ok {
		return ident, nil
	}
	return session.Identity{}, errors.Wrap(errIdentNotFoundInCtx, "retrieving identity from context")
}
