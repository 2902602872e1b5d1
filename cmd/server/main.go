package main

import (
	"log"

	"devnsecure_site_go/config"
	"devnsecure_site_go/handlers"
	"devnsecure_site_go/middleware"
	"devnsecure_site_go/services"
	"devnsecure_site_go/templates/partials"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	sender, err := services.NewEmailSender(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize email sender: %v", err)
	}
	consultations := services.NewConsultationService(sender, cfg)

	middleware.InitAssetVersions("static")

	// Create Echo instance
	e := echo.New()
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(e)

	// Middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORS(cfg.AllowedOrigins))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg.IsProduction()))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	// Public pages
	e.GET("/", handlers.LandingHandler)
	e.GET("/services", handlers.WebsiteServicesHandler)
	e.GET("/projects", handlers.WebsiteProjectsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	limit := middleware.ConsultationRateLimiter(cfg.ConsultationRateLimit, "#"+partials.ConsultationStatusID)

	// Consultation modal (htmx)
	modal := handlers.NewConsultationModalHandler(consultations)
	e.GET(partials.ConsultationModalPath, modal.Open)
	e.POST(partials.ConsultationModalPath, modal.Submit, limit)
	e.GET(partials.ConsultationClosedPath, modal.Close)

	// Consultation API, every method reaches the handler so it can answer 405
	e.Any(handlers.ConsultationPath, handlers.NewConsultationHandler(consultations).Submit, limit)

	// Start server
	log.Printf("Server starting on port %s (environment: %s, email test mode: %v)", cfg.ServerPort, cfg.Environment, cfg.EmailTestMode)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
