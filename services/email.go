package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"devnsecure_site_go/config"

	"github.com/resend/resend-go/v2"
)

var (
	// ErrNoRecipient is returned when an email has no To address
	ErrNoRecipient = errors.New("email must have at least one recipient")
	// ErrNoBody is returned when an email has neither HTML nor text content
	ErrNoBody = errors.New("email must have either HTMLBody or TextBody")
)

// Email represents an email message
type Email struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Validate checks the fields every provider requires
func (e *Email) Validate() error {
	if len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.HTMLBody == "" && e.TextBody == "" {
		return ErrNoBody
	}
	return nil
}

// EmailSender delivers a fully built email
type EmailSender interface {
	Send(ctx context.Context, email *Email) error
}

// NewEmailSender returns the sender matching the configuration:
// console logging in test mode, Resend otherwise.
func NewEmailSender(cfg *config.Config) (EmailSender, error) {
	if cfg.EmailTestMode {
		return ConsoleSender{}, nil
	}
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY not configured")
	}
	return NewResendSender(cfg.ResendAPIKey), nil
}

// ResendSender sends emails through the Resend API
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a sender with its own Resend client
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// Send sends an email using Resend API
func (s *ResendSender) Send(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		ReplyTo: email.ReplyTo,
	}

	// Set body (prefer HTML if available)
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// ConsoleSender logs emails instead of sending them (EMAIL_TEST_MODE)
type ConsoleSender struct{}

// Send logs the email and reports success
func (ConsoleSender) Send(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	logEmailToConsole(email)
	log.Printf("✅ Email logged successfully (development mode - not actually sent)")
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("From: %s", email.From)
	log.Printf("To: %v", email.To)
	log.Printf("Reply-To: %s", email.ReplyTo)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	if email.HTMLBody != "" {
		log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	}
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// UnconfiguredSender fails every send with the configuration error that
// prevented a real sender from being built. Requests are still validated.
type UnconfiguredSender struct {
	Err error
}

// Send reports the configuration error
func (s UnconfiguredSender) Send(ctx context.Context, email *Email) error {
	return fmt.Errorf("email sender not configured: %w", s.Err)
}
