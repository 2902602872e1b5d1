package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// CORS answers browser preflights for the allowed origins. A bare OPTIONS
// request without Access-Control-Request-Method is not a preflight and is
// passed on to the route, so method checks such as the consultation 405 still apply.
func CORS(allowOrigins []string) echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		Skipper:      skipNonPreflight,
		AllowOrigins: allowOrigins,
	})
}

func skipNonPreflight(c echo.Context) bool {
	req := c.Request()
	return req.Method == http.MethodOptions && req.Header.Get(echo.HeaderAccessControlRequestMethod) == ""
}
