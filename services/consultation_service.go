package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"devnsecure_site_go/config"
	"devnsecure_site_go/models"
)

// SubmissionSucceeded is the message returned for an accepted consultation request
const SubmissionSucceeded = "Consultation request submitted successfully"

// ConsultationSubmitter accepts a consultation request and reports the outcome.
// Failures are always *ConsultationError.
type ConsultationSubmitter interface {
	SubmitConsultation(ctx context.Context, req models.ConsultationRequest) (*models.SubmissionResult, error)
}

// ConsultationService validates consultation requests and relays them by email
type ConsultationService struct {
	sender  EmailSender
	mail    ConsultationMailOptions
	timeout time.Duration
}

// NewConsultationService wires a sender with the addressing from cfg
func NewConsultationService(sender EmailSender, cfg *config.Config) *ConsultationService {
	return &ConsultationService{
		sender:  sender,
		mail:    MailOptionsFromConfig(cfg),
		timeout: cfg.EmailTimeout,
	}
}

// SubmitConsultation validates req and sends exactly one notification email.
// Provider failures and panics become ErrEmailDeliveryFailed; the underlying
// cause is logged and kept in Err only.
func (s *ConsultationService) SubmitConsultation(ctx context.Context, req models.ConsultationRequest) (result *models.SubmissionResult, err error) {
	email, err := PrepareConsultation(req, s.mail)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] Consultation email sender panicked: %v", r)
			result, err = nil, deliveryFailed(fmt.Errorf("sender panic: %v", r))
		}
	}()

	if sendErr := s.sender.Send(ctx, email); sendErr != nil {
		log.Printf("[ERROR] Failed to send consultation email: %v", sendErr)
		return nil, deliveryFailed(sendErr)
	}

	log.Printf("[INFO] Consultation request relayed (source: %q)", sourceLabel(req.Source))
	return &models.SubmissionResult{Success: true, Message: SubmissionSucceeded}, nil
}

func sourceLabel(source string) string {
	if source = trimField(source); source == "" {
		return models.DefaultConsultationSource
	}
	return source
}
