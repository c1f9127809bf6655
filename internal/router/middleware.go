package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vespera/internal/auth"
	apperrors "vespera/internal/errors"
	"vespera/internal/handler"
	"vespera/internal/service"
)

// RequireSession guards protected routes. Anonymous callers are redirected
// to the login page instead of the operation executing.
func RequireSession(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/login")
			}

			identity, err := authService.Current(c.Request().Context(), cookie.Value)
			if err != nil {
				c.Logger().Errorf("session lookup: %v", err)
				httpErr := apperrors.MapErrorToHTTP(err)
				return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if identity == nil {
				return c.Redirect(http.StatusFound, "/login")
			}

			c.Set(handler.IdentityContextKey, identity)
			return next(c)
		}
	}
}
