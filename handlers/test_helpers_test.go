package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"devnsecure_site_go/config"
	"devnsecure_site_go/services"

	"github.com/labstack/echo/v4"
)

// fakeSender records outbound emails instead of calling Resend
type fakeSender struct {
	mu   sync.Mutex
	sent []*services.Email
	err  error
}

func (s *fakeSender) Send(ctx context.Context, email *services.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, email)
	return s.err
}

func (s *fakeSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:       "test",
		AppURL:            "https://devnsecure.test",
		EmailFrom:         config.DefaultEmailFrom,
		ConsultationEmail: "owner@example.com",
		EmailTimeout:      time.Second,
	}
}

func newTestService(t *testing.T, sender *fakeSender) *services.ConsultationService {
	t.Helper()
	return services.NewConsultationService(sender, testConfig())
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}
