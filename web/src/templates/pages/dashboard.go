package pages

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// DashboardCard is one menu entry on the dashboard. Cards with a Download
// name hand the file to the browser instead of navigating.
type DashboardCard struct {
	Icon        string
	Title       string
	Description string
	ActionLabel string
	Href        string
	Download    string
}

// DashboardData is the view model for the authenticated dashboard.
type DashboardData struct {
	Initial     string
	DisplayName string
	Cards       []DashboardCard
	ConfirmURL  string
	// FallbackURL opens the dialog for browsers without htmx.
	FallbackURL string
	// Dialog is rendered inline when the page is requested with the dialog open.
	Dialog g.Node
}

// Dashboard renders the landing screen for logged-in users.
func Dashboard(data DashboardData) g.Node {
	return h.Section(
		h.Class("min-h-[calc(100vh-64px)] py-10"),
		h.Div(
			h.Class("max-w-5xl mx-auto px-4"),
			h.Div(
				h.Class("text-center mb-10"),
				h.Div(
					h.Class("mx-auto mb-4 flex h-20 w-20 items-center justify-center rounded-full bg-blue-600 text-3xl font-bold text-white"),
					g.Attr("data-avatar", ""),
					g.Text(data.Initial),
				),
				h.H1(h.Class("text-3xl font-bold"), g.Textf("Sugeng rawuh, %s!", data.DisplayName)),
				h.P(h.Class("mt-2 text-gray-500"), g.Text("Wes siap ujian tenan? Pilih menu ning ngisor untuk melanjutkan.")),
			),
			h.Div(
				h.Class("grid gap-6 md:grid-cols-2"),
				g.Map(data.Cards, dashboardCard),
			),
			h.Div(
				h.Class("mt-10 text-center"),
				h.A(
					h.Href(data.FallbackURL),
					hx.Get(data.ConfirmURL),
					hx.Target("#modal"),
					hx.Swap("innerHTML"),
					h.Class("inline-flex items-center gap-2 rounded-xl bg-blue-600 px-10 py-3 font-bold text-white hover:scale-110 transition-transform"),
					h.ID("start-exam"),
					g.Text("▶ Mulai Ujian"),
				),
			),
		),
		g.If(data.Dialog != nil, data.Dialog),
	)
}

func dashboardCard(card DashboardCard) g.Node {
	return h.Div(
		h.Class("feature-card flex items-center justify-between rounded-2xl border border-gray-200 bg-white p-6"),
		h.Div(
			h.Class("flex items-center gap-4"),
			h.Div(h.Class("text-4xl"), g.Text(card.Icon)),
			h.Div(
				h.H2(h.Class("text-lg font-bold"), g.Text(card.Title)),
				h.P(h.Class("text-sm text-gray-500"), g.Text(card.Description)),
			),
		),
		h.A(
			h.Href(card.Href),
			g.If(card.Download != "", g.Attr("download", card.Download)),
			h.Class("rounded-lg border border-blue-600 px-3 py-1 text-sm text-blue-600 hover:bg-blue-50"),
			g.Text(card.ActionLabel),
		),
	)
}
