package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devnsecure_site_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postConsultation(t *testing.T, h *ConsultationHandler, body string) (*httptest.ResponseRecorder, models.SubmissionResult) {
	t.Helper()
	_, c, rec := setupEcho(http.MethodPost, ConsultationPath, strings.NewReader(body))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	require.NoError(t, h.Submit(c))

	var result models.SubmissionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return rec, result
}

func TestConsultationHandler_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantSuccess bool
		wantMessage string
		wantSent    int
	}{
		{"Valid", `{"email":"a@b.com","whatsapp":"+1 234 567 8901"}`, http.StatusOK, true, "Consultation request submitted successfully", 1},
		{"Invalid email", `{"email":"bad","whatsapp":"1234567"}`, http.StatusBadRequest, false, "Invalid email format", 0},
		{"Invalid phone", `{"email":"a@b.com","whatsapp":"123"}`, http.StatusBadRequest, false, "Invalid WhatsApp number", 0},
		{"Empty object", `{}`, http.StatusBadRequest, false, "Email and WhatsApp number are required", 0},
		{"Missing whatsapp", `{"email":"a@b.com"}`, http.StatusBadRequest, false, "Email and WhatsApp number are required", 0},
		{"Blank fields", `{"email":"  ","whatsapp":" "}`, http.StatusBadRequest, false, "Email and WhatsApp number are required", 0},
		{"Malformed JSON", `{"email":`, http.StatusBadRequest, false, "Email and WhatsApp number are required", 0},
		{"Wrong field type", `{"email":42,"whatsapp":"1234567"}`, http.StatusBadRequest, false, "Email and WhatsApp number are required", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			h := NewConsultationHandler(newTestService(t, sender))

			rec, result := postConsultation(t, h, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, tt.wantSent, sender.count())
		})
	}
}

func TestConsultationHandler_EmailContents(t *testing.T) {
	sender := &fakeSender{}
	h := NewConsultationHandler(newTestService(t, sender))

	postConsultation(t, h, `{"email":"a@b.com","whatsapp":"+1 234 567 8901","projectContext":"New API","source":"Hero CTA"}`)

	require.Equal(t, 1, sender.count())
	email := sender.sent[0]
	assert.Equal(t, "a@b.com", email.ReplyTo)
	assert.Equal(t, []string{"owner@example.com"}, email.To)
	assert.Equal(t, "onboarding@resend.dev", email.From)
	assert.Contains(t, email.TextBody, "12345678901")
	assert.Contains(t, email.TextBody, "Hero CTA")
	assert.Contains(t, email.TextBody, "New API")
}

func TestConsultationHandler_MethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions, http.MethodHead, http.MethodPatch} {
		sender := &fakeSender{}
		h := NewConsultationHandler(newTestService(t, sender))
		_, c, rec := setupEcho(method, ConsultationPath, nil)

		require.NoError(t, h.Submit(c))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, http.MethodPost, rec.Header().Get(echo.HeaderAllow))
		assert.JSONEq(t, `{"success":false,"message":"Method not allowed"}`, rec.Body.String())
		assert.Equal(t, 0, sender.count())
	}
}

func TestConsultationHandler_DeliveryFailureIsGeneric(t *testing.T) {
	sender := &fakeSender{err: errors.New("resend: API key is invalid (re_secret123)")}
	h := NewConsultationHandler(newTestService(t, sender))

	rec, result := postConsultation(t, h, `{"email":"a@b.com","whatsapp":"1234567"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to submit consultation request. Please try again later.", result.Message)
	assert.NotContains(t, rec.Body.String(), "re_secret123")
	assert.NotContains(t, rec.Body.String(), "API key")
	assert.Equal(t, 1, sender.count())
}

func TestConsultationHandler_DuplicatesSendTwice(t *testing.T) {
	sender := &fakeSender{}
	h := NewConsultationHandler(newTestService(t, sender))
	body := `{"email":"a@b.com","whatsapp":"1234567"}`

	postConsultation(t, h, body)
	postConsultation(t, h, body)
	assert.Equal(t, 2, sender.count())
}

func TestNewConsultationFunction(t *testing.T) {
	sender := &fakeSender{}
	fn := NewConsultationFunction(newTestService(t, sender))

	t.Run("POST", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, ConsultationPath, strings.NewReader(`{"email":"a@b.com","whatsapp":"1234567"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		fn.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Consultation request submitted successfully"}`, rec.Body.String())
	})

	t.Run("GET", func(t *testing.T) {
		rec := httptest.NewRecorder()
		fn.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, ConsultationPath, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Method not allowed"}`, rec.Body.String())
	})

	t.Run("OPTIONS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, ConsultationPath, nil)
		req.Header.Set(echo.HeaderOrigin, "https://example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		rec := httptest.NewRecorder()
		fn.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodPost, rec.Header().Get(echo.HeaderAllow))
		assert.JSONEq(t, `{"success":false,"message":"Method not allowed"}`, rec.Body.String())
	})

	t.Run("HEAD", func(t *testing.T) {
		rec := httptest.NewRecorder()
		fn.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, ConsultationPath, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodPost, rec.Header().Get(echo.HeaderAllow))
	})

	t.Run("Other path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		fn.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/other", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	assert.Equal(t, 1, sender.count())
}
