package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHandlers(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		handler   echo.HandlerFunc
		canonical string
		contains  string
	}{
		{"Landing", "/", LandingHandler, "https://devnsecure.test/", "Engineered Capabilities"},
		{"Services", "/services", WebsiteServicesHandler, "https://devnsecure.test/services", "Our Services"},
		{"Projects", "/projects", WebsiteProjectsHandler, "https://devnsecure.test/projects", "Payment Gateway Engine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho(http.MethodGet, tt.path, nil)

			require.NoError(t, tt.handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
			body := rec.Body.String()
			assert.Contains(t, body, `<link rel="canonical" href="`+tt.canonical+`">`)
			assert.Contains(t, body, tt.contains)
			assert.Contains(t, body, `hx-get="/consultation/modal"`)
		})
	}
}

func TestGetSEO(t *testing.T) {
	seo := GetSEO("https://devnsecure.test", "services")
	require.NotNil(t, seo)
	assert.Equal(t, "https://devnsecure.test/services", seo.Canonical)
	assert.Equal(t, "https://devnsecure.test/static/images/og-image.png", seo.OGImage)

	// the shared map is not mutated
	again := GetSEO("https://other.test", "services")
	assert.Equal(t, "https://other.test/services", again.Canonical)

	notFound := GetSEO("https://devnsecure.test", "notfound")
	assert.True(t, notFound.NoIndex)
	assert.Empty(t, notFound.Canonical)

	assert.Nil(t, GetSEO("https://devnsecure.test", "missing"))
}

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	require.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMEApplicationXML, rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, body, "<loc>https://devnsecure.test/</loc>")
	assert.Contains(t, body, "<loc>https://devnsecure.test/services</loc>")
	assert.Contains(t, body, "<loc>https://devnsecure.test/projects</loc>")
}
