package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/shell"
)

// ClientHints asks browsers to send the viewport width on later requests so
// the header can pick a layout server-side.
func ClientHints(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Accept-CH", shell.HeaderViewportWidth+", "+shell.HeaderLegacyViewportWidth)
		h.Add(echo.HeaderVary, shell.HeaderViewportWidth)
		return next(c)
	}
}
