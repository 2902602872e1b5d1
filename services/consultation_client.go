package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"devnsecure_site_go/models"
)

// ConsultationPath is the lead-capture endpoint in every deployment shape
const ConsultationPath = "/api/consultation"

const fallbackSubmitMessage = "Failed to submit form"

// ConsultationClient submits consultation requests to a remote endpoint
type ConsultationClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewConsultationClient targets the given endpoint URL (e.g. https://devnsecure.dev/api/consultation)
func NewConsultationClient(endpoint string, httpClient *http.Client) *ConsultationClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ConsultationClient{endpoint: endpoint, httpClient: httpClient}
}

// SubmitConsultation POSTs req as JSON. A non-2xx response becomes a
// *ConsultationError carrying the endpoint's message.
func (c *ConsultationClient) SubmitConsultation(ctx context.Context, req models.ConsultationRequest) (*models.SubmissionResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode consultation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build consultation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach consultation endpoint: %w", err)
	}
	defer resp.Body.Close()

	var result models.SubmissionResult
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := strings.TrimSpace(result.Message)
		if decodeErr != nil || message == "" {
			message = fallbackSubmitMessage
		}
		return nil, consultationErrorForStatus(resp.StatusCode, message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode consultation response: %w", decodeErr)
	}
	return &result, nil
}
