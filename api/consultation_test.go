package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("EMAIL_TEST_MODE", "true")

	t.Run("POST", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/consultation", strings.NewReader(`{"email":"a@b.com","whatsapp":"+1 (555) 123-4567"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		Handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Consultation request submitted successfully"}`, rec.Body.String())
	})

	t.Run("GET", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Handler(rec, httptest.NewRequest(http.MethodGet, "/api/consultation", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Method not allowed"}`, rec.Body.String())
	})

	t.Run("Invalid phone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/consultation", strings.NewReader(`{"email":"a@b.com","whatsapp":"12345"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		Handler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid WhatsApp number"}`, rec.Body.String())
	})
}
