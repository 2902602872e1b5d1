package models

// Source labels identifying which surface submitted a consultation request
const (
	DefaultConsultationSource = "Website – Start Build Form"
	ModalConsultationSource   = "Website Consultation Form"
)

// ConsultationRequest is a lead-capture submission. It is never persisted.
type ConsultationRequest struct {
	Email          string `json:"email" form:"email"`
	WhatsApp       string `json:"whatsapp" form:"whatsapp"`
	ProjectContext string `json:"projectContext,omitempty" form:"projectContext"`
	Source         string `json:"source,omitempty" form:"source"`
}

// SubmissionResult is the response body of the consultation endpoint
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FormErrors holds per-field validation messages shown next to form inputs
type FormErrors struct {
	Email    string
	WhatsApp string
}

// Empty reports whether no field has an error
func (e FormErrors) Empty() bool {
	return e.Email == "" && e.WhatsApp == ""
}
