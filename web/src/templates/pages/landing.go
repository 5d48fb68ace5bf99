package pages

import (
	"github.com/nfrund/cbt/internal/nav"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Feature is one highlight card on the landing page.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// LandingFeatures are the three highlights shown to visitors.
var LandingFeatures = []Feature{
	{Icon: "💻", Title: "Ujian Online", Description: "Fleksibel dan bebas lokasi"},
	{Icon: "🎓", Title: "Akses Mudah", Description: "Antarmuka modern dan intuitif"},
	{Icon: "📊", Title: "Hasil Instan", Description: "Dapatkan skor langsung"},
}

// Landing renders the public welcome page.
func Landing(brand string) g.Node {
	return h.Section(
		h.Class("min-h-[calc(100vh-64px)] bg-gradient-to-br from-indigo-500 to-purple-700 py-12"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4"),
			h.Div(
				h.Class("text-center mb-10"),
				h.H1(h.Class("text-5xl font-bold text-white tracking-tight mb-4"), g.Text(brand)),
				h.P(h.Class("text-xl text-white/80"), g.Text("Ujian online cerdas untuk generasi masa depan")),
			),
			h.Div(
				h.Class("grid gap-6 md:grid-cols-3"),
				g.Map(LandingFeatures, func(f Feature) g.Node {
					return h.Div(
						h.Class("feature-card rounded-2xl bg-white/10 backdrop-blur p-8 text-center text-white"),
						h.Div(h.Class("text-5xl mb-4"), g.Text(f.Icon)),
						h.H2(h.Class("text-xl font-bold mb-2"), g.Text(f.Title)),
						h.P(h.Class("text-white/70"), g.Text(f.Description)),
					)
				}),
			),
			h.Div(
				h.Class("mt-10 text-center"),
				h.A(
					h.Href(string(nav.Login)),
					h.Class("inline-block rounded-2xl bg-pink-600 px-12 py-3 font-bold text-white hover:scale-110 transition-transform"),
					g.Text("Mulai Sekarang"),
				),
			),
		),
	)
}
