package pages

import (
	"context"

	"devnsecure_site_go/models"
	"devnsecure_site_go/templates/components"
	"devnsecure_site_go/templates/layouts"

	"github.com/a-h/templ"
)

// Projects renders the portfolio page
func Projects(seo *models.SEO) templ.Component {
	return layouts.Base(seo, components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<section class="hero hero-compact"><div class="container"><h1>Projects</h1>`)
		m.Raw(`<p class="lead">Systems we have engineered, described by the problems they had to survive.</p></div></section>`)
		m.Raw(`<section class="section"><div class="container grid grid-2">`)
		for _, p := range projects {
			m.Raw(`<article class="card project">`)
			m.Rawf(`<p class="system-type">%s</p><h2>%s</h2><p>%s</p>`, p.SystemType, p.Name, p.Description)
			m.Raw(`<h3>Engineering Focus</h3>`).Component(ctx, list("bullets", p.EngineeringFocus))
			m.Raw(`<p><strong>Concepts:</strong> `).Text(p.Concepts).Raw(`</p>`)
			m.Raw(`<p class="challenge">`).Text(p.Challenge).Raw(`</p>`)
			m.Raw(`</article>`)
		}
		m.Raw(`</div></section>`)
		m.Raw(`<section class="section final-cta"><div class="container"><h2>Have a system that must not fail?</h2>`)
		m.Raw(`<button type="button" class="btn btn-primary"` + layouts.CTAAttrs() + `>Start a Secure Build</button>`)
		m.Raw(`</div></section>`)
	}))
}
