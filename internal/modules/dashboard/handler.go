package dashboard

import (
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/exam"
	"github.com/nfrund/cbt/internal/handlers"
	"github.com/nfrund/cbt/internal/middleware"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/rendering"
	"github.com/nfrund/cbt/internal/session"
	"github.com/nfrund/cbt/internal/storage"
	"github.com/nfrund/cbt/web/src/templates/components"
	"github.com/nfrund/cbt/web/src/templates/pages"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	confirmPath  = "/exam/confirm"
	decisionPath = "/exam/decision"

	// ConfirmQuery opens the dialog inline: /dashboard?confirm=exam.
	ConfirmQuery = "confirm"
	confirmValue = "exam"

	syllabusFile = "kisi-kisi.pdf"
)

// Handler serves the dashboard and its exam-start dialog.
type Handler struct {
	chrome   *handlers.Chrome
	gate     *exam.Gate
	renderer rendering.Renderer
	upper    cases.Caser
}

// NewHandler creates a new Handler.
func NewHandler(chrome *handlers.Chrome, gate *exam.Gate, renderer rendering.Renderer) *Handler {
	return &Handler{
		chrome:   chrome,
		gate:     gate,
		renderer: renderer,
		upper:    cases.Upper(language.Indonesian),
	}
}

// Get renders the dashboard for the authenticated session.
func (h *Handler) Get(c echo.Context) error {
	authed, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, string(nav.Login))
	}

	name := authed.DisplayName()
	data := pages.DashboardData{
		Initial:     h.initial(name),
		DisplayName: name,
		Cards:       Cards(),
		ConfirmURL:  string(nav.Dashboard) + confirmPath,
		FallbackURL: string(nav.Dashboard) + "?" + ConfirmQuery + "=" + confirmValue,
	}
	if c.QueryParam(ConfirmQuery) == confirmValue {
		data.Dialog = components.ConfirmDialog(h.gate.Prompt(), h.decisionURL())
	}
	return h.chrome.Render(c, "Dashboard", pages.Dashboard(data))
}

// Confirm returns the dialog fragment for the #modal mount point.
func (h *Handler) Confirm(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, components.ConfirmDialogComponent(h.gate.Prompt(), h.decisionURL()))
}

// Decision resolves the dialog. Only a confirm leads to the exam entry
// screen; cancel and dismissal leave the user on the dashboard.
func (h *Handler) Decision(c echo.Context) error {
	authed, _ := middleware.SessionFromContext(c)
	outcome := exam.ParseOutcome(c.FormValue(components.DecisionField))

	decision := h.gate.Resolve(c.Request().Context(), outcome, authed)
	middleware.FromContext(c.Request().Context()).Debug("Exam dialog resolved", "outcome", outcome.String())

	if decision.Navigate {
		return handlers.Navigate(c, string(decision.Target))
	}
	if handlers.IsHTMX(c) {
		// Empty swap closes the modal.
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, string(nav.Dashboard))
}

func (h *Handler) decisionURL() string {
	return string(nav.Dashboard) + decisionPath
}

func (h *Handler) initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return h.upper.String(string([]rune(session.DefaultDisplayName)[:1]))
	}
	return h.upper.String(string(r))
}

// Cards lists the dashboard menu: the syllabus download and the results screen.
func Cards() []pages.DashboardCard {
	return []pages.DashboardCard{
		{
			Icon:        "📘",
			Title:       "Mata Pelajaran",
			Description: "Pelajari kisi-kisi ujian",
			ActionLabel: "Unduh",
			Href:        storage.DownloadURL(syllabusFile),
			Download:    syllabusFile,
		},
		{
			Icon:        "📈",
			Title:       "Riwayat Nilai",
			Description: "Pantau perkembangan nilai",
			ActionLabel: "Lihat",
			Href:        string(nav.Results),
		},
	}
}
