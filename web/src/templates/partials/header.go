package partials

import (
	"net/url"

	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/shell"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// PanelPath serves the narrow navigation fragment.
const PanelPath = "/nav/panel"

// HeaderData is everything the navigation header needs for one render.
type HeaderData struct {
	Brand       string
	CurrentPath string
	Actions     []nav.Action
	Mode        shell.Mode
	Panel       shell.State
}

// Header renders the top bar: brand link plus the menu in the layout the mode asks for.
func Header(data HeaderData) g.Node {
	return h.Header(
		h.Class("border-b border-black/10 bg-transparent"),
		h.Div(
			h.Class("max-w-5xl mx-auto flex items-center justify-between px-4 py-3"),
			h.A(
				h.Href(string(nav.Landing)),
				h.Class("text-lg font-semibold text-gray-800 hover:scale-105 transition-transform"),
				g.Text(data.Brand),
			),
			g.If(data.Mode.ShowsInline(), h.Nav(
				h.ID("nav-inline"),
				h.Aria("label", "Navigasi utama"),
				g.If(data.Mode == shell.Adaptive, h.Class("hidden md:block")),
				ActionList(data.Actions, false),
			)),
			g.If(data.Mode.ShowsToggle(), h.Div(
				g.If(data.Mode == shell.Adaptive, h.Class("md:hidden")),
				NarrowNav(NarrowNavData{
					Actions:     data.Actions,
					State:       data.Panel,
					CurrentPath: data.CurrentPath,
				}),
			)),
		),
	)
}

// NarrowNavData feeds the swappable narrow-viewport fragment.
type NarrowNavData struct {
	Actions     []nav.Action
	State       shell.State
	CurrentPath string
}

// NarrowNav renders the toggle control and, when open, the backdrop and the
// slide-in panel. The whole fragment is replaced on every panel event.
func NarrowNav(data NarrowNavData) g.Node {
	open := data.State.IsOpen()
	icon, label := "☰", "open drawer"
	if open {
		icon, label = "✕", "close drawer"
	}

	return h.Div(
		h.ID("nav-panel"),
		g.Attr("data-state", string(data.State)),
		h.A(
			h.Href(fallbackHref(data.CurrentPath, shell.Next(data.State, shell.Toggle))),
			hx.Get(panelURL(data.State, shell.Toggle, data.CurrentPath)),
			hx.Target("#nav-panel"),
			hx.Swap("outerHTML"),
			h.Class("inline-flex items-center justify-center w-10 h-10 rounded-lg text-gray-800 hover:bg-black/5"),
			h.Aria("label", label),
			h.Aria("expanded", boolString(open)),
			h.Role("button"),
			g.Text(icon),
		),
		g.If(open, g.Group{
			h.A(
				h.Class("nav-backdrop"),
				h.Href(fallbackHref(data.CurrentPath, shell.Next(data.State, shell.Dismiss))),
				hx.Get(panelURL(data.State, shell.Dismiss, data.CurrentPath)),
				hx.Target("#nav-panel"),
				hx.Swap("outerHTML"),
				h.Aria("label", "close drawer"),
			),
			h.Nav(
				h.Class("nav-drawer"),
				h.Aria("label", "Navigasi"),
				ActionList(data.Actions, true),
			),
		}),
	)
}

// ActionList renders the menu entries in a row or a column.
func ActionList(actions []nav.Action, column bool) g.Node {
	layout := "flex flex-row items-center justify-end gap-2"
	if column {
		layout = "flex flex-col items-center gap-2"
	}
	return h.Ul(
		h.Class(layout),
		g.Map(actions, func(a nav.Action) g.Node {
			return h.Li(ActionControl(a))
		}),
	)
}

// ActionControl renders a single action: a link, or a POST form for logout.
func ActionControl(a nav.Action) g.Node {
	classes := "inline-block rounded-lg px-4 py-2 font-medium transition-colors "
	switch a.Variant {
	case nav.VariantOutlined:
		classes += "border border-blue-600 text-blue-600 hover:bg-blue-50"
	case nav.VariantDanger:
		classes += "text-red-600 hover:bg-red-50"
	default:
		classes += "text-gray-800 hover:bg-black/5 hover:text-blue-600"
	}

	if a.Kind == nav.KindLogout {
		return h.Form(
			h.Method("post"),
			h.Action(a.Href()),
			h.Class("inline"),
			h.Button(h.Type("submit"), h.Class(classes), g.Attr("data-action", a.Label), g.Text(a.Label)),
		)
	}
	return h.A(h.Href(a.Href()), h.Class(classes), g.Attr("data-action", a.Label), g.Text(a.Label))
}

func panelURL(state shell.State, ev shell.Event, from string) string {
	q := url.Values{}
	q.Set("state", string(state))
	q.Set("event", string(ev))
	q.Set("from", from)
	return PanelPath + "?" + q.Encode()
}

// fallbackHref lets the toggle work without htmx by re-rendering the page with the next state.
func fallbackHref(current string, next shell.State) string {
	if current == "" {
		current = string(nav.Landing)
	}
	if next == shell.Closed {
		return current
	}
	return current + "?menu=" + string(next)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
