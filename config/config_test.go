package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("CONSULTATION_EMAIL", "")
	t.Setenv("EMAIL_FROM", "")
	t.Setenv("EMAIL_TEST_MODE", "")
	t.Setenv("EMAIL_TIMEOUT_SECONDS", "")
	t.Setenv("CONSULTATION_RATE_LIMIT", "")
	t.Setenv("APP_URL", "")
	t.Setenv("RESEND_API_KEY", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, DefaultConsultationEmail, cfg.ConsultationEmail)
	assert.Equal(t, DefaultEmailFrom, cfg.EmailFrom)
	assert.True(t, cfg.EmailTestMode)
	assert.Equal(t, 10*time.Second, cfg.EmailTimeout)
	assert.Equal(t, 0, cfg.ConsultationRateLimit)
	assert.Equal(t, "http://localhost:8080", cfg.AppURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CONSULTATION_EMAIL", "leads@devnsecure.dev")
	t.Setenv("EMAIL_TEST_MODE", "")
	t.Setenv("CONSULTATION_RATE_LIMIT", "5")
	t.Setenv("APP_URL", "https://devnsecure.dev/")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "leads@devnsecure.dev", cfg.ConsultationEmail)
	assert.False(t, cfg.EmailTestMode, "production sends real emails unless told otherwise")
	assert.Equal(t, 5, cfg.ConsultationRateLimit)
	assert.Equal(t, "https://devnsecure.dev", cfg.AppURL)
}

func TestLoadEmailTestMode(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		apiKey      string
		testMode    string
		want        bool
	}{
		{"Key only sends real emails", "", "re_live_key", "", false},
		{"Development without key logs", "development", "", "", true},
		{"Production without key still sends", "production", "", "", false},
		{"Explicit test mode wins over key", "", "re_live_key", "true", true},
		{"Explicit off without key", "", "", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.environment)
			t.Setenv("RESEND_API_KEY", tt.apiKey)
			t.Setenv("EMAIL_TEST_MODE", tt.testMode)

			cfg := Load()

			assert.Equal(t, tt.want, cfg.EmailTestMode)
			assert.Equal(t, tt.apiKey, cfg.ResendAPIKey)
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG", "yes")
	assert.True(t, getEnvBool("FLAG", false))

	t.Setenv("FLAG", "off")
	assert.False(t, getEnvBool("FLAG", true))

	t.Setenv("FLAG", "maybe")
	assert.True(t, getEnvBool("FLAG", true))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("N", "12")
	assert.Equal(t, 12, getEnvInt("N", 3))

	t.Setenv("N", "-1")
	assert.Equal(t, 3, getEnvInt("N", 3))

	t.Setenv("N", "abc")
	assert.Equal(t, 3, getEnvInt("N", 3))
}
