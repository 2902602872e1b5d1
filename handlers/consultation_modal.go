package handlers

import (
	"errors"
	"net/http"

	"devnsecure_site_go/middleware"
	"devnsecure_site_go/models"
	"devnsecure_site_go/services"
	"devnsecure_site_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// ConsultationModalHandler serves the server-rendered consultation modal.
// Every request builds its own form, so no state is kept between requests.
// Responses are always 200 so htmx swaps the result into the modal root.
type ConsultationModalHandler struct {
	submitter services.ConsultationSubmitter
}

func NewConsultationModalHandler(submitter services.ConsultationSubmitter) *ConsultationModalHandler {
	return &ConsultationModalHandler{submitter: submitter}
}

func (h *ConsultationModalHandler) newForm() *services.ConsultationForm {
	return services.NewConsultationForm(h.submitter, models.ModalConsultationSource)
}

// Open renders an empty form
func (h *ConsultationModalHandler) Open(c echo.Context) error {
	form := h.newForm()
	if err := form.Open(); err != nil {
		return err
	}
	return h.renderForm(c, form)
}

// Submit validates the posted fields and relays the request
func (h *ConsultationModalHandler) Submit(c echo.Context) error {
	var req models.ConsultationRequest
	if err := c.Bind(&req); err != nil {
		c.Logger().Warnf("Unreadable consultation form: %v", err)
		req = models.ConsultationRequest{}
	}

	form := h.newForm()
	if err := form.Open(); err != nil {
		return err
	}
	fields := map[string]string{
		services.FieldEmail:          req.Email,
		services.FieldWhatsApp:       req.WhatsApp,
		services.FieldProjectContext: req.ProjectContext,
	}
	for name, value := range fields {
		if err := form.SetField(name, value); err != nil {
			return err
		}
	}

	err := form.Submit(c.Request().Context())
	switch {
	case err == nil:
	case errors.Is(err, services.ErrFormInvalid):
		// field errors are part of the snapshot
	default:
		var ce *services.ConsultationError
		if !errors.As(err, &ce) {
			c.Logger().Errorf("Consultation modal submission failed: %v", err)
		}
	}
	return h.renderForm(c, form)
}

// Close empties the modal root
func (h *ConsultationModalHandler) Close(c echo.Context) error {
	form := h.newForm()
	return h.renderForm(c, form)
}

func (h *ConsultationModalHandler) renderForm(c echo.Context, form *services.ConsultationForm) error {
	return render(c, http.StatusOK, partials.ConsultationModal(form.Snapshot(), middleware.GetCSRFToken(c)))
}
