// Package mail delivers transactional email through an external HTTP
// mail-API provider. It is a narrow collaborator: callers hand it a
// recipient, a subject and a body, and it either delivers or reports
// ErrSendFailed. Message composition and retry policy belong to callers.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/majorsigma/greenbasket-backend/internal/config"
	"github.com/majorsigma/greenbasket-backend/internal/logger"
)

// ErrSendFailed indicates the mail provider rejected the message or was
// unreachable. The wrapped cause carries the transport or provider detail.
var ErrSendFailed = errors.New("mail delivery failed")

// Sender delivers a single email message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// message is the JSON payload posted to the provider's send endpoint.
type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type apiSender struct {
	client *resty.Client
	sender string
	logger *logger.Logger
}

// NewAPISender constructs a Sender that posts messages to the HTTP mail API
// configured in cfg. The API key is sent as a bearer token on every request.
//
// Returns an error if the endpoint is empty or cannot be parsed as a URL.
func NewAPISender(cfg config.Mail, logger *logger.Logger) (Sender, error) {
	baseURL, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid mail endpoint: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetAuthToken(cfg.APIKey)

	return &apiSender{client: client, sender: cfg.Sender, logger: logger}, nil
}

// Send implements [Sender]. It posts the message to the provider and treats
// any non-2xx response or transport failure as ErrSendFailed.
func (s *apiSender) Send(ctx context.Context, to, subject, body string) error {
	log := s.logger.With().Str("func", "apiSender.Send").Logger()

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message{From: s.sender, To: to, Subject: subject, Text: body}).
		Post("/messages")
	if err != nil {
		log.Error().Err(err).Msg("error sending message to mail provider")
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("mail provider rejected message")
		return fmt.Errorf("%w: provider returned status %d", ErrSendFailed, resp.StatusCode())
	}

	log.Debug().Str("subject", subject).Msg("message accepted by mail provider")
	return nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// NopSender discards every message. Useful in tests and local development
// where no mail provider is configured.
type NopSender struct{}

// Send implements [Sender] by doing nothing.
func (NopSender) Send(ctx context.Context, to, subject, body string) error {
	return nil
}
