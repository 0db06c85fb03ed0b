package service

import (
	"fmt"

	"github.com/osa911/cateringform/internal/config"
	"github.com/osa911/cateringform/internal/mailer"
	"github.com/osa911/cateringform/internal/mailer/mailjet"
	"github.com/osa911/cateringform/internal/mailer/resend"
)

// NewMailSender builds the sender for the configured provider. Missing
// credentials are not an error here, the sender reports them through
// Configured so that each request can answer with a configuration error.
func NewMailSender(cfg config.MailConfig) (mailer.Sender, error) {
	switch cfg.Provider {
	case config.ProviderMailjet, "":
		return mailjet.New(mailjet.Config{
			PublicKey:  cfg.MailjetPublicKey,
			PrivateKey: cfg.MailjetPrivateKey,
			URL:        cfg.MailjetURL,
			Timeout:    cfg.Timeout,
		}), nil
	case config.ProviderResend:
		return resend.New(resend.Config{
			APIKey: cfg.ResendAPIKey,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported mail provider %q", cfg.Provider)
	}
}
