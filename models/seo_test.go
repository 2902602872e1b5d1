package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageSEO(t *testing.T) {
	seo := PageSEO("Services | DevNSecure", "What we build", "/services").
		WithKeywords("backend development", "API hardening")

	assert.Equal(t, "backend development, API hardening", seo.Keywords)
	assert.Equal(t, DefaultOGImagePath, seo.OGImage)
	assert.Equal(t, "summary_large_image", seo.TwitterCard)
	assert.Empty(t, seo.Canonical)
	assert.False(t, seo.NoIndex)
}

func TestSEOAbsolute(t *testing.T) {
	seo := PageSEO("Home", "desc", "/")

	abs := seo.Absolute("https://devnsecure.test/")
	assert.Equal(t, "https://devnsecure.test/", abs.Canonical)
	assert.Equal(t, "https://devnsecure.test/static/images/og-image.png", abs.OGImage)

	// the source is not mutated
	assert.Empty(t, seo.Canonical)
	assert.Equal(t, DefaultOGImagePath, seo.OGImage)

	seo.OGImage = "https://cdn.test/share.png"
	assert.Equal(t, "https://cdn.test/share.png", seo.Absolute("https://devnsecure.test").OGImage)
}

func TestSEOWithNoIndex(t *testing.T) {
	seo := PageSEO("Page Not Found", "missing", "/404").WithNoIndex().Absolute("https://devnsecure.test")

	assert.True(t, seo.NoIndex)
	assert.Empty(t, seo.Canonical)
	assert.Empty(t, seo.OGImage)
	assert.Equal(t, "summary", seo.TwitterCard)
}
