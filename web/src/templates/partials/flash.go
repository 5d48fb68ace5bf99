package partials

import (
	"github.com/nfrund/cbt/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Flashes renders one-shot success and error messages.
func Flashes(data view.FlashData) g.Node {
	if data.Empty() {
		return h.Div(h.ID("flash"))
	}
	return h.Div(
		h.ID("flash"),
		h.Class("max-w-5xl mx-auto px-4 pt-4 space-y-2"),
		g.Map(data.Success, func(msg string) g.Node {
			return h.Div(h.Class("rounded-lg bg-green-50 border border-green-200 text-green-800 px-4 py-2"), h.Role("status"), g.Text(msg))
		}),
		g.Map(data.Error, func(msg string) g.Node {
			return h.Div(h.Class("rounded-lg bg-red-50 border border-red-200 text-red-800 px-4 py-2"), h.Role("alert"), g.Text(msg))
		}),
	)
}
