package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// External renders the stand-in for a screen owned by another service.
func External(title, description string) g.Node {
	return h.Section(
		h.Class("max-w-xl mx-auto px-4 py-16 text-center"),
		h.H1(h.Class("text-3xl font-bold mb-4"), g.Text(title)),
		h.P(h.Class("text-gray-500"), g.Text(description)),
	)
}
