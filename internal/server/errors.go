package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/domain"
	"github.com/nfrund/cbt/internal/middleware"
)

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace and leaves echo.HTTPErrors to the default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
		case errors.Is(err, domain.ErrNotFound):
			err = echo.NewHTTPError(http.StatusNotFound, "Not Found")
		default:
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
