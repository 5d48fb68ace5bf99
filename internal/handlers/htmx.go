package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	HeaderHXRequest  = "HX-Request"
	HeaderHXRedirect = "HX-Redirect"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// Navigate sends the browser to target: through HX-Redirect for htmx
// requests, a 303 otherwise.
func Navigate(c echo.Context, target string) error {
	if IsHTMX(c) {
		c.Response().Header().Set(HeaderHXRedirect, target)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, target)
}
