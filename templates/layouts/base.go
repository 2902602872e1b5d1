package layouts

import (
	"context"
	"time"

	"devnsecure_site_go/middleware"
	"devnsecure_site_go/models"
	"devnsecure_site_go/templates/components"

	"github.com/a-h/templ"
)

// BrandName is shown in titles, the header and the footer
const BrandName = "DevNSecure"

// LogoURL is the brand logo served from the image CDN
const LogoURL = "https://cdn.builder.io/api/v1/image/assets%2Fdaf81e0a6f2c49548b7ed14d4b7cae10%2Fa08330a3516b467485251fab9ebea3fa?format=webp&width=800"

// ModalTarget is the element the consultation modal is swapped into
const ModalTarget = "#consultation-modal"

// now is replaced in tests
var now = time.Now

func currentYear() int {
	return now().Year()
}

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// modalScript closes the modal on Escape and on backdrop clicks, except while
// a submission is in flight. Editing a field drops that field's error and the
// form-level alert, leaving the other fields' errors in place.
const modalScript = `(function () {
  function root() { return document.getElementById('consultation-modal'); }
  function busy() { var r = root(); return !!(r && r.querySelector('.htmx-request')); }
  function close() {
    var r = root();
    if (!r || !r.firstElementChild || busy()) { return; }
    htmx.ajax('GET', '/consultation/closed', { target: '#consultation-modal', swap: 'innerHTML' });
  }
  document.addEventListener('keydown', function (e) { if (e.key === 'Escape') { close(); } });
  document.addEventListener('click', function (e) {
    if (e.target && e.target.hasAttribute && e.target.hasAttribute('data-modal-backdrop')) { close(); }
  });
  document.addEventListener('input', function (e) {
    var r = root();
    if (!r || !e.target || !r.contains(e.target)) { return; }
    var status = document.getElementById('consultation-status');
    if (status) { status.innerHTML = ''; }
    var f = e.target.closest('[data-field]');
    if (!f) { return; }
    f.classList.remove('field-invalid');
    var msg = document.getElementById(e.target.id + '-error');
    if (msg) { msg.remove(); }
    e.target.removeAttribute('aria-invalid');
    e.target.removeAttribute('aria-describedby');
  });
})();`

// organization is the JSON-LD block describing the business
type organization struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

// CTAAttrs are the htmx attributes shared by every "start a build" control
func CTAAttrs() string {
	return ` hx-get="/consultation/modal" hx-target="` + ModalTarget + `" hx-swap="innerHTML"`
}

// Base wraps page content with the document shell, header, footer and the
// empty modal root.
func Base(seo *models.SEO, content templ.Component) templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		nonce := middleware.GetNonce(ctx)
		canonical := ""
		if seo != nil {
			canonical = seo.Canonical
		}

		m.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		m.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Component(ctx, seoHead(seo))
		m.Rawf(`<link rel="icon" type="image/png" href="%s">`, middleware.AssetURL(ctx, middleware.FaviconPath))
		m.Rawf(`<link rel="stylesheet" href="%s">`, middleware.AssetURL(ctx, middleware.SiteCSS))
		m.Rawf(`<script src="%s" nonce="%s" defer></script>`, htmxSrc, nonce)
		m.Rawf(`<script src="%s" nonce="%s" defer></script>`, middleware.AssetURL(ctx, middleware.SiteJS), nonce)
		m.Raw(`<script type="application/ld+json">`).Raw(components.JSON(organization{
			Context:     "https://schema.org",
			Type:        "Organization",
			Name:        BrandName,
			URL:         canonical,
			Logo:        LogoURL,
			Description: "Secure backend engineering for systems that must not fail.",
		})).Raw(`</script>`)
		m.Raw(`</head><body class="site">`)

		m.Component(ctx, header())
		m.Raw(`<main id="main">`).Component(ctx, content).Raw(`</main>`)
		m.Component(ctx, footer())

		m.Raw(`<div id="consultation-modal" aria-live="polite"></div>`)
		m.Rawf(`<script nonce="%s">`, nonce).Raw(modalScript).Raw(`</script>`)
		m.Raw(`</body></html>`)
	})
}

func seoHead(seo *models.SEO) templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		if seo == nil {
			m.Raw(`<title>`).Text(BrandName).Raw(`</title>`)
			return
		}
		m.Raw(`<title>`).Text(seo.Title).Raw(`</title>`)
		m.Rawf(`<meta name="description" content="%s">`, seo.Description)
		if seo.Keywords != "" {
			m.Rawf(`<meta name="keywords" content="%s">`, seo.Keywords)
		}
		if seo.NoIndex {
			m.Raw(`<meta name="robots" content="noindex, nofollow">`)
		}
		if seo.Canonical != "" {
			m.Rawf(`<link rel="canonical" href="%s">`, seo.Canonical)
			m.Rawf(`<meta property="og:url" content="%s">`, seo.Canonical)
		}
		m.Rawf(`<meta property="og:title" content="%s">`, seo.Title)
		m.Rawf(`<meta property="og:description" content="%s">`, seo.Description)
		m.Rawf(`<meta property="og:type" content="%s">`, seo.OGType)
		m.Rawf(`<meta property="og:site_name" content="%s">`, BrandName)
		if seo.OGImage != "" {
			m.Rawf(`<meta property="og:image" content="%s">`, seo.OGImage)
			m.Rawf(`<meta name="twitter:image" content="%s">`, seo.OGImage)
		}
		m.Rawf(`<meta name="twitter:card" content="%s">`, seo.TwitterCard)
		m.Rawf(`<meta name="twitter:title" content="%s">`, seo.Title)
		m.Rawf(`<meta name="twitter:description" content="%s">`, seo.Description)
	})
}

func header() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<header class="site-header"><nav class="nav">`)
		m.Rawf(`<a href="/" class="nav-logo"><img src="%s" alt="%s" width="160" height="40"></a>`, LogoURL, BrandName)
		m.Raw(`<button type="button" class="nav-toggle" data-menu-toggle aria-label="Open menu" aria-expanded="false"><span></span><span></span><span></span></button>`)
		m.Raw(`<ul class="nav-links" data-menu>`)
		for _, link := range navLinks {
			m.Rawf(`<li><a href="%s">%s</a></li>`, link[0], link[1])
		}
		m.Raw(`</ul>`)
		m.Raw(`<button type="button" class="btn btn-primary nav-cta"` + CTAAttrs() + `>Start Build</button>`)
		m.Raw(`</nav></header>`)
	})
}

var navLinks = [][2]string{
	{"/", "Home"},
	{"/#security", "Security"},
	{"/#process", "Process"},
	{"/services", "Services"},
	{"/projects", "Projects"},
}

func footer() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<footer class="site-footer"><div class="footer-brand">`)
		m.Rawf(`<img src="%s" alt="%s" width="140" height="35">`, LogoURL, BrandName)
		m.Raw(`<p>Elite Engineering Boutique</p></div>`)
		m.Raw(`<div class="footer-meta">`)
		m.Rawf(`<p>© %d %s. All rights reserved.</p>`, currentYear(), BrandName)
		m.Raw(`<p>Building secure backends for systems that cannot fail.</p>`)
		m.Raw(`</div></footer>`)
	})
}
