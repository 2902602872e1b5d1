package services

import (
	"context"
	"errors"
	"sync"

	"devnsecure_site_go/models"
)

// FormState is the lifecycle state of a consultation form
type FormState int

const (
	FormClosed FormState = iota
	FormIdle
	FormSubmitting
	FormSubmitted
)

func (s FormState) String() string {
	switch s {
	case FormClosed:
		return "closed"
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Form field names, matching the input names of the modal
const (
	FieldEmail          = "email"
	FieldWhatsApp       = "whatsapp"
	FieldProjectContext = "projectContext"
)

const genericFormError = "An error occurred. Please try again."

var (
	ErrFormNotOpen        = errors.New("consultation form is not open")
	ErrFormInvalid        = errors.New("consultation form has invalid fields")
	ErrSubmissionInFlight = errors.New("consultation request is still being sent")
	ErrAlreadySubmitted   = errors.New("consultation request was already sent")
	ErrUnknownField       = errors.New("unknown consultation form field")
)

// ConsultationForm tracks one modal session:
// closed → idle → submitting → submitted, or back to idle with an error.
type ConsultationForm struct {
	mu        sync.Mutex
	submitter ConsultationSubmitter
	source    string

	state          FormState
	email          string
	whatsapp       string
	projectContext string
	fieldErrors    models.FormErrors
	pageError      string
}

// NewConsultationForm creates a closed form that submits through submitter
// and labels requests with source.
func NewConsultationForm(submitter ConsultationSubmitter, source string) *ConsultationForm {
	return &ConsultationForm{submitter: submitter, source: source}
}

// FormSnapshot is a consistent copy of the form for rendering
type FormSnapshot struct {
	State          FormState
	Email          string
	WhatsApp       string
	ProjectContext string
	FieldErrors    models.FormErrors
	Error          string
}

// Snapshot returns the current state
func (f *ConsultationForm) Snapshot() FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FormSnapshot{
		State:          f.state,
		Email:          f.email,
		WhatsApp:       f.whatsapp,
		ProjectContext: f.projectContext,
		FieldErrors:    f.fieldErrors,
		Error:          f.pageError,
	}
}

// State returns the lifecycle state
func (f *ConsultationForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Open shows an empty form, discarding any previous success or error.
// Reopening while a request is in flight is refused.
func (f *ConsultationForm) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FormSubmitting {
		return ErrSubmissionInFlight
	}
	f.state = FormIdle
	f.email, f.whatsapp, f.projectContext = "", "", ""
	f.fieldErrors = models.FormErrors{}
	f.pageError = ""
	return nil
}

// Close hides the form. It is refused while a request is in flight so the
// outcome of that request is never silently dropped.
func (f *ConsultationForm) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FormSubmitting {
		return ErrSubmissionInFlight
	}
	f.state = FormClosed
	return nil
}

// SetField updates one input. It clears that field's error and the page error.
func (f *ConsultationForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case FormClosed:
		return ErrFormNotOpen
	case FormSubmitting:
		return ErrSubmissionInFlight
	case FormSubmitted:
		return ErrAlreadySubmitted
	}

	switch name {
	case FieldEmail:
		f.email = value
		f.fieldErrors.Email = ""
	case FieldWhatsApp:
		f.whatsapp = value
		f.fieldErrors.WhatsApp = ""
	case FieldProjectContext:
		f.projectContext = value
	default:
		return ErrUnknownField
	}
	f.pageError = ""
	return nil
}

// Submit validates locally and, if the fields pass, sends the request.
// Invalid fields return ErrFormInvalid without any call to the submitter.
// A submitter failure returns to idle with a page error and returns the
// submitter's error.
func (f *ConsultationForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case FormClosed:
		f.mu.Unlock()
		return ErrFormNotOpen
	case FormSubmitting:
		f.mu.Unlock()
		return ErrSubmissionInFlight
	case FormSubmitted:
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}

	f.pageError = ""
	f.fieldErrors = ValidateConsultationFields(f.email, f.whatsapp)
	if !f.fieldErrors.Empty() {
		f.mu.Unlock()
		return ErrFormInvalid
	}

	req := models.ConsultationRequest{
		Email:          trimField(f.email),
		WhatsApp:       trimField(f.whatsapp),
		ProjectContext: trimField(f.projectContext),
		Source:         f.source,
	}
	f.state = FormSubmitting
	f.mu.Unlock()

	_, err := f.submitter.SubmitConsultation(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = FormIdle
		f.pageError = formErrorMessage(err)
		return err
	}
	f.state = FormSubmitted
	return nil
}

// formErrorMessage picks the message shown above the form
func formErrorMessage(err error) string {
	var ce *ConsultationError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return genericFormError
}
