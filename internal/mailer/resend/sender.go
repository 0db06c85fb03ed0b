// Package resend implements mailer.Sender using the Resend API.
package resend

import (
	"context"

	"github.com/resend/resend-go/v3"

	"github.com/osa911/cateringform/internal/mailer"
)

const providerName = "resend"

// Config holds Resend email provider configuration.
type Config struct {
	APIKey string
}

// emailsAPI is the part of the Resend client used here.
type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	emails emailsAPI
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		emails: resend.NewClient(cfg.APIKey).Emails,
		config: cfg,
	}
}

// Name implements mailer.Sender.
func (s *Sender) Name() string {
	return providerName
}

// Configured implements mailer.Sender.
func (s *Sender) Configured() bool {
	return s.config.APIKey != ""
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Result, error) {
	if !s.Configured() {
		return nil, mailer.ErrNotConfigured
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.emails.SendWithContext(ctx, buildRequest(msg))
	if err != nil {
		return nil, &mailer.ProviderError{Provider: providerName, Message: err.Error(), Err: err}
	}
	if resp == nil || resp.Id == "" {
		return nil, &mailer.ProviderError{Provider: providerName, Message: mailer.FallbackProviderMessage}
	}

	return &mailer.Result{
		Messages: []mailer.SentMessage{{ID: resp.Id, Status: "success"}},
	}, nil
}

func buildRequest(msg *mailer.Message) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:    msg.From.String(),
		To:      addressList(msg.To),
		Bcc:     addressList(msg.Bcc),
		Subject: msg.Subject,
		Html:    msg.HTMLPart,
		Text:    msg.TextPart,
	}
	if msg.ReplyTo != nil {
		req.ReplyTo = msg.ReplyTo.String()
	}
	return req
}

func addressList(in []mailer.Address) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, a := range in {
		out[i] = a.String()
	}
	return out
}
