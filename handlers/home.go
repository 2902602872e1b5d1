package handlers

import (
	"net/http"

	"devnsecure_site_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler handles the landing page request
func LandingHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.Home(GetSEO(appURL(c), "landing")))
}
