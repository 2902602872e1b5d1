package handlers

import (
	"devnsecure_site_go/config"
	"devnsecure_site_go/models"

	"github.com/labstack/echo/v4"
)

// SEO configurations for public pages, resolved per request against APP_URL
var pageSEO = map[string]*models.SEO{
	"landing": models.PageSEO(
		"DevNSecure - Secure Backend Engineering for Systems That Must Not Fail",
		"We design, build, and harden backend systems for startups, SaaS platforms, and security-critical products. Architecture first, security by design.",
		"/",
	).WithKeywords("secure backend engineering", "backend architecture", "API security", "database engineering", "backend hardening"),
	"services": models.PageSEO(
		"Services | DevNSecure",
		"Backend systems engineering, database and data flow engineering, and backend security hardening for products that must scale without breaking.",
		"/services",
	).WithKeywords("backend development services", "database design", "API hardening", "secure authentication", "backend consulting"),
	"projects": models.PageSEO(
		"Projects | DevNSecure",
		"Event-driven systems, billing engines, payment infrastructure and data platforms engineered by DevNSecure.",
		"/projects",
	).WithKeywords("backend projects", "payment gateway", "subscription billing", "event-driven architecture"),
	"notfound": models.PageSEO(
		"Page Not Found | DevNSecure",
		"The page you are looking for does not exist.",
		"",
	).WithNoIndex(),
}

// GetSEO returns the SEO configuration for a page with absolute URLs
// under baseURL, or nil for an unknown page.
func GetSEO(baseURL, page string) *models.SEO {
	seo, ok := pageSEO[page]
	if !ok {
		return nil
	}
	return seo.Absolute(baseURL)
}

// appURL returns the configured public URL, or "" when config is not in the context
func appURL(c echo.Context) string {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg.AppURL
	}
	return ""
}
