// Package email implements the transactional-email provider gateway used for
// review dispatch.
package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"coyne_ecology/internal/usecase/interfaces"
)

const defaultEndpoint = "https://api.resend.com/emails"

// The provider call is the only outbound request a submission makes; it must
// never hang the request, so the client carries a hard timeout.
const defaultTimeout = 15 * time.Second

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

// ResendMailer submits messages to the Resend send endpoint with bearer-token
// authentication.
type ResendMailer struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

var _ interfaces.IReviewMailer = (*ResendMailer)(nil)

// NewResendMailer builds a mailer for the given API key. The key may be empty;
// the dispatcher checks configuration before calling Send, and Send itself
// refuses to place an unauthenticated call.
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

type sendAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type sendRequest struct {
	From        string           `json:"from"`
	To          []string         `json:"to"`
	Subject     string           `json:"subject"`
	HTML        string           `json:"html"`
	Attachments []sendAttachment `json:"attachments,omitempty"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send posts one email to the provider and returns its message id.
func (m *ResendMailer) Send(ctx context.Context, email interfaces.ReviewEmail) (string, error) {
	if m.apiKey == "" {
		return "", ErrMissingResendAPIKey
	}

	payload := sendRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
	}
	for _, att := range email.Attachments {
		payload.Attachments = append(payload.Attachments, sendAttachment{
			Filename: att.Filename,
			Content:  base64.StdEncoding.EncodeToString(att.Content),
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	log.Printf("[quote][mailer] send start recipients=%d payload_len=%d", len(email.To), len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		log.Printf("[quote][mailer] send failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[quote][mailer] provider rejected status=%d", resp.StatusCode)
		return "", fmt.Errorf("email provider error (%d): %s", resp.StatusCode, string(raw))
	}

	var parsed sendResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("email provider returned unparseable body: %w", err)
	}
	log.Printf("[quote][mailer] send success provider_id=%s", parsed.ID)
	return parsed.ID, nil
}
