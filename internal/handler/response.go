package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "vespera/internal/errors"
)

// respondError maps a domain error to its HTTP shape. Internal errors are
// logged with full detail but answered with an opaque notice.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("internal error on %s %s: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
