package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/cateringform/internal/config"
)

func TestNewMailSender(t *testing.T) {
	tests := []struct {
		name           string
		cfg            config.MailConfig
		wantName       string
		wantConfigured bool
	}{
		{"mailjet configured", config.MailConfig{Provider: "mailjet", MailjetPublicKey: "pub", MailjetPrivateKey: "priv"}, "mailjet", true},
		{"mailjet missing private key", config.MailConfig{Provider: "mailjet", MailjetPublicKey: "pub"}, "mailjet", false},
		{"default provider", config.MailConfig{}, "mailjet", false},
		{"resend configured", config.MailConfig{Provider: "resend", ResendAPIKey: "re_123"}, "resend", true},
		{"resend missing key", config.MailConfig{Provider: "resend"}, "resend", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewMailSender(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, sender.Name())
			assert.Equal(t, tt.wantConfigured, sender.Configured())
		})
	}
}

func TestNewMailSenderUnknownProvider(t *testing.T) {
	_, err := NewMailSender(config.MailConfig{Provider: "smtp"})
	assert.ErrorContains(t, err, "unsupported mail provider")
}
