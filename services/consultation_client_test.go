package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"devnsecure_site_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsultationClient(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var received models.ConsultationRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			json.NewDecoder(r.Body).Decode(&received)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.SubmissionResult{Success: true, Message: SubmissionSucceeded})
		}))
		defer server.Close()

		client := NewConsultationClient(server.URL, nil)
		result, err := client.SubmitConsultation(context.Background(), models.ConsultationRequest{
			Email:    "a@b.com",
			WhatsApp: "1234567",
			Source:   models.ModalConsultationSource,
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "a@b.com", received.Email)
		assert.Equal(t, models.ModalConsultationSource, received.Source)
	})

	t.Run("Endpoint message surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.SubmissionResult{Message: "Invalid email format"})
		}))
		defer server.Close()

		_, err := NewConsultationClient(server.URL, nil).SubmitConsultation(context.Background(), models.ConsultationRequest{})
		var ce *ConsultationError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "Invalid email format", ce.Message)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("Non JSON error falls back", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		_, err := NewConsultationClient(server.URL, nil).SubmitConsultation(context.Background(), models.ConsultationRequest{})
		var ce *ConsultationError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "Failed to submit form", ce.Message)
	})

	t.Run("Unreachable endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewConsultationClient(url, nil).SubmitConsultation(context.Background(), models.ConsultationRequest{})
		assert.Error(t, err)
		var ce *ConsultationError
		assert.False(t, errors.As(err, &ce))
	})
}
