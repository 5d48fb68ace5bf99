package components

import (
	"github.com/a-h/templ"
	"github.com/nfrund/cbt/internal/exam"
	"github.com/nfrund/cbt/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// DecisionField is the form field carrying the user's choice.
const DecisionField = "decision"

// ConfirmDialog renders the exam-start confirmation as a modal. Both buttons
// and the backdrop post to decisionURL; the backdrop sends no decision, which
// resolves as a cancel.
func ConfirmDialog(d exam.Dialog, decisionURL string) g.Node {
	return h.Div(
		h.ID("exam-dialog"),
		h.Class("fixed inset-0 z-50 flex items-center justify-center"),
		decisionForm(decisionURL, "nav-backdrop",
			h.Aria("hidden", "true"),
			h.Button(
				h.Type("submit"),
				h.Class("absolute inset-0 w-full h-full cursor-default"),
				g.Attr("tabindex", "-1"),
			),
		),
		h.Div(
			h.Role("dialog"),
			h.Aria("modal", "true"),
			h.Aria("labelledby", "exam-dialog-title"),
			h.Class("relative z-10 w-full max-w-md rounded-2xl bg-white p-6 shadow-xl text-center"),
			h.H2(h.ID("exam-dialog-title"), h.Class("text-2xl font-bold mb-4"), g.Text(d.Title)),
			h.Div(
				h.Class("text-gray-700 space-y-1"),
				g.Map(d.Lines, func(line string) g.Node { return h.P(g.Text(line)) }),
				g.If(d.Emphasis != "", h.P(h.Class("font-bold mt-2"), g.Text(d.Emphasis))),
			),
			decisionForm(decisionURL, "mt-6 flex justify-center gap-3",
				decisionButton(exam.ConfirmValue, d.ConfirmLabel, "bg-blue-600"),
				decisionButton(exam.CancelValue, d.CancelLabel, "bg-red-600"),
			),
		),
	)
}

// ConfirmDialogComponent is ConfirmDialog as a templ component, for callers
// that render through templ.
func ConfirmDialogComponent(d exam.Dialog, decisionURL string) templ.Component {
	return view.Component(ConfirmDialog(d, decisionURL))
}

// decisionForm posts to url as a plain form and, with htmx, swaps the answer into #modal.
func decisionForm(url, class string, children ...g.Node) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action(url),
		hx.Post(url),
		hx.Target("#modal"),
		hx.Swap("innerHTML"),
		h.Class(class),
		g.Group(children),
	)
}

func decisionButton(value, label, color string) g.Node {
	return h.Button(
		h.Type("submit"),
		h.Name(DecisionField),
		h.Value(value),
		h.Class("rounded-lg px-6 py-2 font-semibold text-white "+color),
		g.Text(label),
	)
}
