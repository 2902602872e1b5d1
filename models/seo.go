package models

import "strings"

// DefaultOGImagePath is the share image of every indexable page
const DefaultOGImagePath = "/static/images/og-image.png"

// SEO is the head metadata of one page. Path and OGImage are site-relative
// until Absolute resolves them against the public URL.
type SEO struct {
	Title       string
	Description string
	Keywords    string // comma-separated
	Path        string // site-relative location, empty when the page is not indexed
	Canonical   string // absolute URL, set by Absolute
	OGImage     string
	OGType      string
	TwitterCard string
	NoIndex     bool
}

// PageSEO starts the metadata of an indexable page served at path
func PageSEO(title, description, path string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		Path:        path,
		OGImage:     DefaultOGImagePath,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	}
}

// WithKeywords sets the keywords meta
func (s *SEO) WithKeywords(keywords ...string) *SEO {
	s.Keywords = strings.Join(keywords, ", ")
	return s
}

// WithNoIndex keeps the page out of search results. It also drops the
// canonical location and the large share card.
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	s.Path = ""
	s.OGImage = ""
	s.TwitterCard = "summary"
	return s
}

// Absolute returns a copy whose canonical URL and share image live under
// baseURL. The receiver is left untouched so shared page tables stay reusable.
func (s *SEO) Absolute(baseURL string) *SEO {
	out := *s
	baseURL = strings.TrimRight(baseURL, "/")
	if out.Path != "" {
		out.Canonical = baseURL + out.Path
	}
	if strings.HasPrefix(out.OGImage, "/") {
		out.OGImage = baseURL + out.OGImage
	}
	return &out
}
