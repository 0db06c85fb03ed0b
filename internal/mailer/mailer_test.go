package mailer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressString(t *testing.T) {
	assert.Equal(t, "a@example.com", Address{Email: "a@example.com"}.String())
	assert.Equal(t, `"Ann" <a@example.com>`, Address{Email: "a@example.com", Name: "Ann"}.String())
	assert.Equal(t, `"Doe, Jane" <jane@example.com>`, Address{Email: "jane@example.com", Name: "Doe, Jane"}.String())
	assert.Equal(t, `"Jane \"JD\" Doe" <jane@example.com>`, Address{Email: "jane@example.com", Name: `Jane "JD" Doe`}.String())
	assert.Equal(t, "=?utf-8?q?Zo=C3=AB?= <zoe@example.com>", Address{Email: "zoe@example.com", Name: "Zoë"}.String())
}

func TestMessageValidate(t *testing.T) {
	valid := func() *Message {
		return &Message{
			To:       []Address{{Email: "to@example.com"}},
			Subject:  "Hi",
			TextPart: "body",
		}
	}

	assert.NoError(t, valid().Validate())

	m := valid()
	m.To = nil
	assert.ErrorIs(t, m.Validate(), ErrNoRecipient)

	m = valid()
	m.Subject = ""
	assert.ErrorIs(t, m.Validate(), ErrNoSubject)

	m = valid()
	m.TextPart = ""
	assert.ErrorIs(t, m.Validate(), ErrNoContent)

	m.HTMLPart = "<p>body</p>"
	assert.NoError(t, m.Validate())
}

func TestProviderError(t *testing.T) {
	err := &ProviderError{Provider: "mailjet", StatusCode: 401, Message: "API key authentication/authorization failure"}
	assert.Equal(t, "API key authentication/authorization failure", err.Error())

	assert.Equal(t, FallbackProviderMessage, (&ProviderError{}).Error())

	wrapped := fmt.Errorf("send: %w", err)
	assert.True(t, IsProviderError(wrapped))
	assert.False(t, IsProviderError(ErrNoSubject))

	cause := fmt.Errorf("429 too many requests")
	withCause := &ProviderError{Provider: "resend", Message: cause.Error(), Err: cause}
	assert.Equal(t, "429 too many requests", withCause.Error())
	assert.ErrorIs(t, withCause, cause)
}
