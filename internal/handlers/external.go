package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/web/src/templates/pages"
)

// ExternalScreen describes a Router target owned by another service.
type ExternalScreen struct {
	Route       nav.Route
	Title       string
	Description string
}

// ExternalScreens lists the targets this portal only links to.
var ExternalScreens = []ExternalScreen{
	{Route: nav.Login, Title: "Login", Description: "Halaman masuk disediakan oleh layanan autentikasi."},
	{Route: nav.Register, Title: "Register", Description: "Pendaftaran peserta disediakan oleh layanan autentikasi."},
	{Route: nav.Profile, Title: "Profile", Description: "Profil peserta dikelola oleh layanan akun."},
	{Route: nav.ExamEntry, Title: "Token Ujian", Description: "Masukkan token ujian pada layanan ujian."},
	{Route: nav.Results, Title: "Riwayat Nilai", Description: "Riwayat nilai disediakan oleh layanan ujian."},
}

// ExternalHandler redirects to, or stands in for, screens owned elsewhere.
type ExternalHandler struct {
	chrome  *Chrome
	baseURL string
}

// NewExternalHandler creates an ExternalHandler. With an empty baseURL every
// screen renders a placeholder inside the shell.
func NewExternalHandler(chrome *Chrome, baseURL string) *ExternalHandler {
	return &ExternalHandler{chrome: chrome, baseURL: strings.TrimRight(baseURL, "/")}
}

// Handler returns the echo handler for one screen.
func (h *ExternalHandler) Handler(screen ExternalScreen) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.baseURL != "" {
			return c.Redirect(http.StatusFound, h.baseURL+string(screen.Route))
		}
		return h.chrome.Render(c, screen.Title, pages.External(screen.Title, screen.Description))
	}
}
