package pages

import (
	"context"

	"devnsecure_site_go/models"
	"devnsecure_site_go/templates/components"
	"devnsecure_site_go/templates/layouts"

	"github.com/a-h/templ"
)

// Home renders the landing page
func Home(seo *models.SEO) templ.Component {
	return layouts.Base(seo, components.Build(func(ctx context.Context, m *components.Markup) {
		m.Component(ctx, hero())
		m.Component(ctx, capabilitiesSection())
		m.Component(ctx, architectureSection())
		m.Component(ctx, securitySection())
		m.Component(ctx, techStackSection())
		m.Component(ctx, processSection())
		m.Component(ctx, finalCTA())
	}))
}

func hero() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<section class="hero"><div class="container">`)
		m.Raw(`<h1>Secure Backend Engineering for Systems That Must Not Fail</h1>`)
		m.Raw(`<p class="lead">We design, build, and harden backend systems for startups, SaaS platforms, and security-critical products.</p>`)
		m.Raw(`<div class="hero-actions">`)
		m.Raw(`<button type="button" class="btn btn-primary"` + layouts.CTAAttrs() + `>Start a Secure Build</button>`)
		m.Raw(`<a href="#architecture" class="btn btn-secondary">View Our Architecture</a>`)
		m.Raw(`</div></div></section>`)
	})
}

func capabilitiesSection() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<section id="what-we-engineer" class="section"><div class="container">`)
		m.Raw(`<h2>Engineered Capabilities</h2>`)
		m.Raw(`<p class="section-lead">Production-grade backend systems designed for security, scale, and failure resistance.</p>`)
		m.Raw(`<div class="grid grid-2">`)
		for _, c := range capabilities {
			m.Raw(`<article class="card capability">`)
			m.Rawf(`<header><span class="number">%s</span><h3>%s</h3></header>`, c.Number, c.Name)
			m.Raw(`<h4>The Problem</h4><p>`).Text(c.Problem).Raw(`</p>`)
			m.Raw(`<h4>How We Engineer It</h4>`).Component(ctx, list("bullets", c.Approach))
			m.Raw(`<h4>What Makes This Different</h4>`).Component(ctx, list("checks", c.Difference))
			m.Component(ctx, tags(c.Technologies))
			m.Raw(`</article>`)
		}
		m.Raw(`</div></div></section>`)
	})
}

func architectureSection() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<section id="architecture" class="section section-alt"><div class="container">`)
		m.Raw(`<h2>System Architecture, Before Code</h2>`)
		m.Raw(`<p class="section-lead">We design structure first. Code follows architecture, not the other way around.</p>`)
		m.Raw(`<ol class="layers">`)
		for _, layer := range architectureLayers {
			m.Rawf(`<li class="layer"><p class="layer-name">%s</p><p>%s</p></li>`, layer.Name, layer.Description)
		}
		m.Raw(`</ol>`)
		m.Raw(`<p class="emphasis">Architecture decisions are finalized before implementation begins.</p>`)
		m.Raw(`</div></section>`)
	})
}

func securitySection() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<section id="security" class="section"><div class="container">`)
		m.Raw(`<div class="intro"><p>This is not a badge.</p><p>This is not a checklist.</p><p>This is how DevNSecure thinks about security.</p></div>`)
		m.Raw(`<h2>Security Is Not A Feature.<br><span class="accent">It Is A Design Constraint.</span></h2>`)
		m.Raw(`<p class="section-lead">Every system we build assumes hostile environments, untrusted networks, and inevitable failure.</p>`)
		m.Raw(`<ol class="timeline">`)
		for i, p := range securityPrinciples {
			side := "left"
			if i%2 == 1 {
				side = "right"
			}
			m.Rawf(`<li class="timeline-item %s"><span class="number">%s</span><div class="card">`, side, p.Number)
			m.Rawf(`<h3>%s</h3><p class="reality">%s</p>`, p.Title, p.Reality)
			m.Component(ctx, list("bullets", p.Approach))
			m.Raw(`<p class="misconception"><strong>Most teams fail because:</strong> `).Text(p.Misconception).Raw(`</p>`)
			m.Raw(`</div></li>`)
		}
		m.Raw(`</ol>`)
		m.Raw(`<h3>Applied Practices</h3>`).Component(ctx, tags(securityPractices))
		m.Raw(`</div></section>`)
	})
}

func techStackSection() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<section id="tech-stack" class="section section-alt"><div class="container">`)
		m.Raw(`<h2>Tech Stack</h2><p class="section-lead">Battle-tested technologies powering production systems at scale</p>`)
		m.Raw(`<div class="grid grid-4">`)
		for _, tech := range technologies {
			m.Rawf(`<div class="card tech"><p class="tech-name">%s</p><p class="tech-category">%s</p></div>`, tech.Name, tech.Category)
		}
		m.Raw(`</div></div></section>`)
	})
}

func processSection() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<section id="process" class="section"><div class="container">`)
		m.Raw(`<h2>Engineering Is A Sequence<br>Of Irreversible Decisions</h2>`)
		m.Raw(`<ul class="process-nodes"><li>Problem Identified</li><li>Decision Locked</li><li>Risk Eliminated</li></ul>`)
		for _, phase := range processPhases {
			m.Raw(`<article class="phase card">`)
			m.Rawf(`<header><span class="number">%s</span><h3>%s</h3><p class="subtitle">%s</p></header>`, phase.Number, phase.Title, phase.Subtitle)
			m.Raw(`<p class="focus"><strong>Focus:</strong> `).Text(phase.Focus).Raw(`</p>`)
			m.Raw(`<h4>What We Do</h4>`).Component(ctx, list("bullets", phase.Activities))
			m.Raw(`<h4>Decisions Locked</h4>`).Component(ctx, list("checks", phase.Gates))
			m.Raw(`<p class="risk"><strong>Risk removed:</strong> `).Text(phase.RiskRemoved).Raw(`</p>`)
			m.Raw(`</article>`)
		}
		m.Raw(`</div></section>`)
	})
}

func finalCTA() templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Raw(`<section class="section final-cta"><div class="container">`)
		m.Raw(`<h2>Your backend is your business.</h2><p class="accent">We make it unbreakable.</p>`)
		m.Raw(`<button type="button" class="btn btn-primary"` + layouts.CTAAttrs() + `>Talk to Engineers</button>`)
		m.Raw(`<p>Let's discuss your next secure backend project and how DevNSecure can help you build with confidence.</p>`)
		m.Raw(`</div></section>`)
	})
}

// list renders items as a <ul> with the given class
func list(class string, items []string) templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		m.Rawf(`<ul class="%s">`, class)
		for _, item := range items {
			m.Raw(`<li>`).Text(item).Raw(`</li>`)
		}
		m.Raw(`</ul>`)
	})
}

func tags(items []string) templ.Component {
	return components.Build(func(ctx context.Context, m *components.Markup) {
		if len(items) == 0 {
			return
		}
		m.Raw(`<div class="tags">`)
		for _, item := range items {
			m.Raw(`<span class="tag">`).Text(item).Raw(`</span>`)
		}
		m.Raw(`</div>`)
	})
}
