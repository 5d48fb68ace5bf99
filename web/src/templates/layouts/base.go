package layouts

import (
	"github.com/nfrund/cbt/internal/view"
	"github.com/nfrund/cbt/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindScript = "https://cdn.tailwindcss.com"
	htmxScript     = "https://unpkg.com/htmx.org@2.0.4"
)

// Base wraps page content with the document shell, header, flash messages
// and the #modal mount point used by dialogs.
func Base(title string, header partials.HeaderData, flashes view.FlashData, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("id"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Script(h.Src(tailwindScript)),
				h.Script(h.Src(htmxScript), h.Defer()),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
			),
			h.Body(
				h.Class("min-h-screen bg-gray-100 text-gray-800"),
				partials.Header(header),
				partials.Flashes(flashes),
				h.Main(content),
				h.Div(h.ID("modal")),
			),
		),
	)
}
