// Package mailjet implements mailer.Sender on top of the Mailjet v3.1 send API.
package mailjet

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/osa911/cateringform/internal/mailer"
)

const providerName = "mailjet"

// Sender sends mail through Mailjet.
type Sender struct {
	config Config
	client *http.Client
}

// Option customises a Sender.
type Option func(*Sender)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) {
		s.client = c
	}
}

// New creates a Mailjet sender.
func New(cfg Config, opts ...Option) *Sender {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	s := &Sender{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements mailer.Sender.
func (s *Sender) Name() string {
	return providerName
}

// Configured implements mailer.Sender. Both API keys are required.
func (s *Sender) Configured() bool {
	return s.config.PublicKey != "" && s.config.PrivateKey != ""
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Result, error) {
	if !s.Configured() {
		return nil, mailer.ErrNotConfigured
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(sendRequest{Messages: []message{toWire(msg)}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mailjet message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.URL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create mailjet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+basicAuth(s.config.PublicKey, s.config.PrivateKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send mailjet request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read mailjet response: %w", err)
	}

	var result sendResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse mailjet response (status %d): %w", resp.StatusCode, err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok || len(result.Messages) == 0 || hasFailedMessage(result.Messages) {
		return nil, &mailer.ProviderError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    diagnostic(&result),
		}
	}

	return toResult(result.Messages), nil
}

// basicAuth encodes "<public>:<private>" for the Authorization header.
func basicAuth(publicKey, privateKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(publicKey + ":" + privateKey))
}

func toWire(msg *mailer.Message) message {
	m := message{
		From:     address(msg.From),
		To:       toAddresses(msg.To),
		Bcc:      toAddresses(msg.Bcc),
		Subject:  msg.Subject,
		TextPart: msg.TextPart,
		HTMLPart: msg.HTMLPart,
	}
	if msg.ReplyTo != nil {
		r := address(*msg.ReplyTo)
		m.ReplyTo = &r
	}
	return m
}

func toAddresses(in []mailer.Address) []address {
	if len(in) == 0 {
		return nil
	}
	out := make([]address, len(in))
	for i, a := range in {
		out[i] = address(a)
	}
	return out
}

func hasFailedMessage(messages []messageResult) bool {
	for _, m := range messages {
		if m.Status == "error" {
			return true
		}
	}
	return false
}

// diagnostic picks the top-level error message, then the first per-message
// error, then the generic fallback.
func diagnostic(r *sendResponse) string {
	if r.ErrorMessage != "" {
		return r.ErrorMessage
	}
	for _, m := range r.Messages {
		for _, e := range m.Errors {
			if e.ErrorMessage != "" {
				return e.ErrorMessage
			}
		}
	}
	return mailer.FallbackProviderMessage
}

func toResult(messages []messageResult) *mailer.Result {
	res := &mailer.Result{Messages: make([]mailer.SentMessage, 0, len(messages))}
	for _, m := range messages {
		sent := mailer.SentMessage{Status: m.Status}
		if len(m.To) > 0 {
			if m.To[0].MessageUUID != "" {
				sent.ID = m.To[0].MessageUUID
			} else {
				sent.ID = strconv.FormatInt(m.To[0].MessageID, 10)
			}
		}
		res.Messages = append(res.Messages, sent)
	}
	return res
}
