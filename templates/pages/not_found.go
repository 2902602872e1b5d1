package pages

import (
	"context"

	"devnsecure_site_go/models"
	"devnsecure_site_go/templates/components"
	"devnsecure_site_go/templates/layouts"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page for path
func NotFound(seo *models.SEO, path string) templ.Component {
	return layouts.Base(seo, components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<section class="not-found"><div class="container">`)
		m.Raw(`<h1>404</h1><p class="lead">Page not found</p>`)
		m.Raw(`<p>The path <code>`).Text(path).Raw(`</code> does not exist.</p>`)
		m.Raw(`<a href="/" class="btn btn-primary">Return to Home</a>`)
		m.Raw(`</div></section>`)
	}))
}
