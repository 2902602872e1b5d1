package handlers

import (
	"net/http"

	"devnsecure_site_go/templates/pages"

	"github.com/labstack/echo/v4"
)

func WebsiteServicesHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.Services(GetSEO(appURL(c), "services")))
}

func WebsiteProjectsHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.Projects(GetSEO(appURL(c), "projects")))
}
