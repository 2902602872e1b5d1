package services

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"devnsecure_site_go/config"
	"devnsecure_site_go/models"

	"github.com/go-playground/validator/v10"
)

const (
	// ConsultationSubject is the subject line of every consultation notification
	ConsultationSubject = "New Consultation Request from DevNSecure"
	// MinWhatsAppDigits is the minimum number of digits a WhatsApp number must carry
	MinWhatsAppDigits = 7
	// NotProvided replaces an empty project context in the notification
	NotProvided = "(Not provided)"
)

// Client-side field messages
const (
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Please enter a valid email address"
	msgWhatsAppRequired = "WhatsApp number is required"
	msgWhatsAppInvalid  = "Please enter a valid WhatsApp number (at least 7 digits)"
)

// emailShape excludes the same blanks as a browser's \s: ASCII whitespace,
// vertical tab, every Unicode separator and the byte order mark.
var emailShape = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)

// consultationFields carries the two validated fields through the validator
type consultationFields struct {
	Email    string `validate:"required,consultation_email"`
	WhatsApp string `validate:"required,whatsapp"`
}

var consultationValidator = newConsultationValidator()

func newConsultationValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("consultation_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	v.RegisterValidation("whatsapp", func(fl validator.FieldLevel) bool {
		return IsValidWhatsApp(fl.Field().String())
	})
	return v
}

// IsValidEmail checks the local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailShape.MatchString(email)
}

// WhatsAppDigits strips every non-digit character
func WhatsAppDigits(whatsapp string) string {
	var b strings.Builder
	for i := 0; i < len(whatsapp); i++ {
		if c := whatsapp[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// IsValidWhatsApp requires at least MinWhatsAppDigits digits
func IsValidWhatsApp(whatsapp string) bool {
	return len(WhatsAppDigits(whatsapp)) >= MinWhatsAppDigits
}

// ValidateConsultationMethod only accepts POST
func ValidateConsultationMethod(method string) error {
	if method != http.MethodPost {
		return ErrMethodNotAllowed
	}
	return nil
}

// isBlank matches the runes a browser strips with String.prototype.trim
func isBlank(r rune) bool {
	return r == '\uFEFF' || (r != '\u0085' && unicode.IsSpace(r))
}

// trimField removes leading and trailing blanks from a submitted value
func trimField(s string) string {
	return strings.TrimFunc(s, isBlank)
}

// NormalizeConsultation trims every text field
func NormalizeConsultation(req models.ConsultationRequest) models.ConsultationRequest {
	return models.ConsultationRequest{
		Email:          trimField(req.Email),
		WhatsApp:       trimField(req.WhatsApp),
		ProjectContext: trimField(req.ProjectContext),
		Source:         trimField(req.Source),
	}
}

// fieldTags returns the failing validation tag per field name
func fieldTags(email, whatsapp string) map[string]string {
	err := consultationValidator.Struct(consultationFields{Email: email, WhatsApp: whatsapp})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on a programming error in consultationFields
		panic(fmt.Sprintf("consultation validator: %v", err))
	}
	tags := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		tags[fe.Field()] = fe.Tag()
	}
	return tags
}

// ValidateConsultation applies the endpoint rules to a normalized request.
// The first failure wins: missing field, then email shape, then phone digits.
func ValidateConsultation(req models.ConsultationRequest) error {
	tags := fieldTags(req.Email, req.WhatsApp)
	if len(tags) == 0 {
		return nil
	}
	if tags["Email"] == "required" || tags["WhatsApp"] == "required" {
		return ErrMissingField
	}
	if tags["Email"] != "" {
		return ErrInvalidEmail
	}
	return ErrInvalidPhone
}

// ValidateConsultationFields applies the same rules as ValidateConsultation
// but reports a message for every failing field, for display in the form.
func ValidateConsultationFields(email, whatsapp string) models.FormErrors {
	var errs models.FormErrors
	tags := fieldTags(trimField(email), trimField(whatsapp))

	switch tags["Email"] {
	case "":
	case "required":
		errs.Email = msgEmailRequired
	default:
		errs.Email = msgEmailInvalid
	}

	switch tags["WhatsApp"] {
	case "":
	case "required":
		errs.WhatsApp = msgWhatsAppRequired
	default:
		errs.WhatsApp = msgWhatsAppInvalid
	}
	return errs
}

// FormatConsultationMessage renders the plain-text notification body
func FormatConsultationMessage(req models.ConsultationRequest) string {
	source := req.Source
	if source == "" {
		source = models.DefaultConsultationSource
	}
	projectContext := req.ProjectContext
	if projectContext == "" {
		projectContext = NotProvided
	}

	heavy := strings.Repeat("═", 63)
	light := strings.Repeat("─", 63)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nNEW CONSULTATION REQUEST\n%s\n\n", heavy, heavy)
	fmt.Fprintf(&b, "SUBMISSION SOURCE:\n%s\n\n%s\n\n", source, light)
	b.WriteString("CONTACT INFORMATION:\n\n")
	fmt.Fprintf(&b, "Email Address:\n%s\n\n", req.Email)
	fmt.Fprintf(&b, "WhatsApp Number:\n%s\n", req.WhatsApp)
	fmt.Fprintf(&b, "https://wa.me/%s\n\n", WhatsAppDigits(req.WhatsApp))
	fmt.Fprintf(&b, "Project Context / Message:\n%s\n\n%s\n\n", projectContext, light)
	b.WriteString("This is an automated message from the DevNSecure website consultation form.\n")
	b.WriteString("Please reply directly to this email to connect with the sender.\n\n")
	b.WriteString(heavy)
	return b.String()
}

// ConsultationMailOptions addresses the consultation notification
type ConsultationMailOptions struct {
	From      string
	Recipient string
}

// MailOptionsFromConfig resolves sender and recipient, applying the fixed fallbacks
func MailOptionsFromConfig(cfg *config.Config) ConsultationMailOptions {
	opts := ConsultationMailOptions{
		From:      cfg.EmailFrom,
		Recipient: cfg.ConsultationEmail,
	}
	if opts.From == "" {
		opts.From = config.DefaultEmailFrom
	}
	if cfg.EmailFromName != "" {
		opts.From = fmt.Sprintf("%s <%s>", cfg.EmailFromName, opts.From)
	}
	if opts.Recipient == "" {
		opts.Recipient = config.DefaultConsultationEmail
	}
	return opts
}

// PrepareConsultation normalizes and validates a request and builds the
// notification email. No I/O happens here.
func PrepareConsultation(req models.ConsultationRequest, opts ConsultationMailOptions) (*Email, error) {
	req = NormalizeConsultation(req)
	if err := ValidateConsultation(req); err != nil {
		return nil, err
	}

	return &Email{
		From:     opts.From,
		To:       []string{opts.Recipient},
		ReplyTo:  req.Email,
		Subject:  ConsultationSubject,
		TextBody: FormatConsultationMessage(req),
	}, nil
}
