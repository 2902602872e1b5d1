package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultConsultationEmail receives consultation requests when CONSULTATION_EMAIL is unset
	DefaultConsultationEmail = "devnsecure.dev@gmail.com"
	// DefaultEmailFrom is the sender identity used for consultation notifications
	DefaultEmailFrom = "onboarding@resend.dev"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Email (Resend)
	ResendAPIKey      string
	EmailFrom         string
	EmailFromName     string
	EmailTestMode     bool // When true, emails are logged to console instead of sent
	EmailTimeout      time.Duration
	ConsultationEmail string
	// Other
	AllowedOrigins []string
	// ConsultationRateLimit is the number of submissions allowed per IP per minute (0 disables limiting)
	ConsultationRateLimit int
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	resendAPIKey := getEnv("RESEND_API_KEY", "")

	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		Environment:           environment,
		AppURL:                strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		ResendAPIKey:          resendAPIKey,
		EmailFrom:             getEnv("EMAIL_FROM", DefaultEmailFrom),
		EmailFromName:         os.Getenv("EMAIL_FROM_NAME"),
		EmailTestMode:         getEnvBool("EMAIL_TEST_MODE", defaultEmailTestMode(environment, resendAPIKey)),
		EmailTimeout:          time.Duration(getEnvInt("EMAIL_TIMEOUT_SECONDS", 10)) * time.Second,
		ConsultationEmail:     getEnv("CONSULTATION_EMAIL", DefaultConsultationEmail),
		AllowedOrigins:        strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		ConsultationRateLimit: getEnvInt("CONSULTATION_RATE_LIMIT", 0),
	}
}

// defaultEmailTestMode applies when EMAIL_TEST_MODE is unset: a configured
// Resend key always means real delivery, otherwise only production sends.
func defaultEmailTestMode(environment, resendAPIKey string) bool {
	if resendAPIKey != "" {
		return false
	}
	return environment != "production"
}

// IsProduction reports whether the app runs with ENVIRONMENT=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		// Never echo secrets back into the logs
		if strings.Contains(key, "KEY") {
			log.Printf("Using default value for %s", key)
		} else {
			log.Printf("Using default value for %s: %s", key, defaultValue)
		}
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		log.Printf("[WARNING] Invalid value for %s (%q), using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
