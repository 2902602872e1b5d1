// Package handler is the serverless entry point for the consultation endpoint.
package handler

import (
	"log"
	"net/http"
	"sync"

	"devnsecure_site_go/config"
	"devnsecure_site_go/handlers"
	"devnsecure_site_go/services"
)

var (
	once     sync.Once
	function http.Handler
)

func setup() {
	cfg := config.Load()
	sender, err := services.NewEmailSender(cfg)
	if err != nil {
		log.Printf("[ERROR] Consultation emails cannot be sent: %v", err)
		sender = services.UnconfiguredSender{Err: err}
	}
	function = handlers.NewConsultationFunction(services.NewConsultationService(sender, cfg))
}

// Handler serves /api/consultation. Configuration is read once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	function.ServeHTTP(w, r)
}
