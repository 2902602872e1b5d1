package handlers

import (
	"errors"
	"net/http"

	"devnsecure_site_go/models"
	"devnsecure_site_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// ConsultationPath is where the JSON endpoint is mounted
const ConsultationPath = services.ConsultationPath

// ConsultationHandler exposes a ConsultationSubmitter as the JSON endpoint
type ConsultationHandler struct {
	submitter services.ConsultationSubmitter
}

func NewConsultationHandler(submitter services.ConsultationSubmitter) *ConsultationHandler {
	return &ConsultationHandler{submitter: submitter}
}

// Submit handles any method on ConsultationPath; only POST is accepted
func (h *ConsultationHandler) Submit(c echo.Context) error {
	if err := services.ValidateConsultationMethod(c.Request().Method); err != nil {
		c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
		return consultationErrorJSON(c, err)
	}

	var req models.ConsultationRequest
	if err := c.Bind(&req); err != nil {
		// An unreadable body is treated like an empty one
		c.Logger().Warnf("Unreadable consultation payload: %v", err)
		req = models.ConsultationRequest{}
	}

	result, err := h.submitter.SubmitConsultation(c.Request().Context(), req)
	if err != nil {
		return consultationErrorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// consultationErrorJSON writes the public part of err; the cause stays in the logs
func consultationErrorJSON(c echo.Context, err error) error {
	var ce *services.ConsultationError
	if !errors.As(err, &ce) {
		c.Logger().Errorf("Unexpected consultation error: %v", err)
		ce = services.ErrEmailDeliveryFailed
	}
	return c.JSON(ce.StatusCode(), models.SubmissionResult{
		Success: false,
		Message: ce.Message,
	})
}

// NewConsultationFunction builds the standalone handler used by the
// serverless deployment. It serves only ConsultationPath and has no CORS
// layer, so OPTIONS gets the same 405 as any other non-POST method.
func NewConsultationFunction(submitter services.ConsultationSubmitter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())

	e.Any(ConsultationPath, NewConsultationHandler(submitter).Submit)
	return e
}
