package pages

import (
	"context"

	"devnsecure_site_go/models"
	"devnsecure_site_go/templates/components"
	"devnsecure_site_go/templates/layouts"

	"github.com/a-h/templ"
)

// Services renders the services page
func Services(seo *models.SEO) templ.Component {
	return layouts.Base(seo, components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<div class="page-with-sidebar">`)
		m.Raw(`<nav class="sidebar" aria-label="Sections"><ul>`)
		for _, area := range serviceAreas {
			m.Rawf(`<li><a href="#%s">%s</a></li>`, area.ID, area.Title)
		}
		m.Raw(`<li><a href="#why">Why DevNSecure</a></li><li><a href="#getstarted">Get Started</a></li>`)
		m.Raw(`</ul></nav><div class="page-content">`)

		m.Raw(`<section class="hero hero-compact"><h1>Our Services</h1>`)
		m.Raw(`<p class="lead">We build backend systems with strong foundations, so products scale without breaking.</p></section>`)

		for _, area := range serviceAreas {
			m.Rawf(`<section id="%s" class="section">`, area.ID)
			m.Rawf(`<span class="number">%s</span><h2>%s</h2><p class="section-lead">%s</p>`, area.Number, area.Title, area.Summary)
			m.Component(ctx, list("grid grid-2 capability-grid", area.Capabilities))
			if len(area.Technologies) > 0 {
				m.Raw(`<p class="label">Technologies</p>`).Component(ctx, tags(area.Technologies))
			}
			if area.Note != "" {
				m.Raw(`<p class="emphasis">`).Text(area.Note).Raw(`</p>`)
			}
			m.Raw(`</section>`)
		}

		m.Raw(`<section id="why" class="section"><h2>Why DevNSecure</h2>`)
		m.Raw(`<p class="section-lead">We are backend-first engineers. <span class="accent">Infrastructure before interfaces.</span></p>`)
		m.Component(ctx, list("checks", strengths))
		m.Raw(`</section>`)

		m.Raw(`<section id="getstarted" class="section final-cta"><h2>Ready to Build Something Unbreakable?</h2>`)
		m.Raw(`<p>Let's discuss your backend architecture, security needs, and scalability requirements.</p>`)
		m.Raw(`<button type="button" class="btn btn-primary"` + layouts.CTAAttrs() + `>→ Request a Free Consultation</button>`)
		m.Raw(`</section>`)

		m.Raw(`</div></div>`)
	}))
}
