package handlers

import (
	"errors"
	"net/http"
	"strings"

	"devnsecure_site_go/models"
	"devnsecure_site_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler renders the 404 page for missing HTML pages and answers
// API routes in the submission result shape. Everything else falls back to
// Echo's default handler.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		path := c.Request().URL.Path
		switch {
		case strings.HasPrefix(path, "/api/"):
			if code >= http.StatusInternalServerError {
				c.Logger().Errorf("API error on %s: %v", path, err)
				message = http.StatusText(code)
			}
			writeErr := c.JSON(code, models.SubmissionResult{Success: false, Message: message})
			if writeErr != nil {
				c.Logger().Errorf("Failed to write error response: %v", writeErr)
			}
		case code == http.StatusNotFound && !isHTMXRequest(c):
			seo := GetSEO(appURL(c), "notfound")
			if renderErr := render(c, http.StatusNotFound, pages.NotFound(seo, path)); renderErr != nil {
				c.Logger().Errorf("Failed to render 404 page: %v", renderErr)
			}
		default:
			e.DefaultHTTPErrorHandler(err, c)
		}
	}
}
