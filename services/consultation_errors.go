package services

import "net/http"

// ConsultationErrorKind classifies a failed consultation submission
type ConsultationErrorKind string

const (
	KindMethodNotAllowed    ConsultationErrorKind = "method_not_allowed"
	KindMissingField        ConsultationErrorKind = "missing_field"
	KindInvalidEmail        ConsultationErrorKind = "invalid_email"
	KindInvalidPhone        ConsultationErrorKind = "invalid_phone"
	KindEmailDeliveryFailed ConsultationErrorKind = "email_delivery_failed"
)

// ConsultationError is returned by every consultation operation.
// Message is safe to show to the submitter; Err is the internal cause and
// must never reach a response body.
type ConsultationError struct {
	Kind    ConsultationErrorKind
	Message string
	Err     error
}

var (
	ErrMethodNotAllowed = &ConsultationError{Kind: KindMethodNotAllowed, Message: "Method not allowed"}
	ErrMissingField     = &ConsultationError{Kind: KindMissingField, Message: "Email and WhatsApp number are required"}
	ErrInvalidEmail     = &ConsultationError{Kind: KindInvalidEmail, Message: "Invalid email format"}
	ErrInvalidPhone     = &ConsultationError{Kind: KindInvalidPhone, Message: "Invalid WhatsApp number"}
	// ErrEmailDeliveryFailed matches any delivery failure via errors.Is
	ErrEmailDeliveryFailed = &ConsultationError{Kind: KindEmailDeliveryFailed, Message: "Failed to submit consultation request. Please try again later."}
)

func (e *ConsultationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ConsultationError) Unwrap() error {
	return e.Err
}

// Is matches on Kind so wrapped delivery failures compare equal to ErrEmailDeliveryFailed
func (e *ConsultationError) Is(target error) bool {
	t, ok := target.(*ConsultationError)
	return ok && t.Kind == e.Kind
}

// StatusCode maps the error kind to its HTTP status
func (e *ConsultationError) StatusCode() int {
	switch e.Kind {
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindMissingField, KindInvalidEmail, KindInvalidPhone:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func deliveryFailed(cause error) *ConsultationError {
	return &ConsultationError{
		Kind:    KindEmailDeliveryFailed,
		Message: ErrEmailDeliveryFailed.Message,
		Err:     cause,
	}
}

// consultationErrorForStatus rebuilds a ConsultationError from an endpoint response
func consultationErrorForStatus(status int, message string) *ConsultationError {
	kind := KindEmailDeliveryFailed
	switch status {
	case http.StatusMethodNotAllowed:
		kind = KindMethodNotAllowed
	case http.StatusBadRequest:
		switch message {
		case ErrInvalidEmail.Message:
			kind = KindInvalidEmail
		case ErrInvalidPhone.Message:
			kind = KindInvalidPhone
		default:
			kind = KindMissingField
		}
	}
	return &ConsultationError{Kind: kind, Message: message}
}
