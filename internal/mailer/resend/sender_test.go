package resend

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osa911/cateringform/internal/mailer"
)

type mockEmails struct {
	mock.Mock
}

func (m *mockEmails) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	resp, _ := args.Get(0).(*resend.SendEmailResponse)
	return resp, args.Error(1)
}

func testMessage() *mailer.Message {
	return &mailer.Message{
		From:     mailer.Address{Email: "noreply@example.com", Name: "Website"},
		To:       []mailer.Address{{Email: "events@example.com"}},
		Bcc:      []mailer.Address{{Email: "bookings@example.com"}},
		ReplyTo:  &mailer.Address{Email: "jane@example.com", Name: "Jane"},
		Subject:  "New Catering Inquiry: Wedding",
		TextPart: "text",
		HTMLPart: "<p>html</p>",
	}
}

func TestBuildRequest(t *testing.T) {
	req := buildRequest(testMessage())

	assert.Equal(t, `"Website" <noreply@example.com>`, req.From)
	assert.Equal(t, []string{"events@example.com"}, req.To)
	assert.Equal(t, []string{"bookings@example.com"}, req.Bcc)
	assert.Equal(t, `"Jane" <jane@example.com>`, req.ReplyTo)
	assert.Equal(t, "New Catering Inquiry: Wedding", req.Subject)
	assert.Equal(t, "<p>html</p>", req.Html)
	assert.Equal(t, "text", req.Text)
}

func TestSend(t *testing.T) {
	emails := &mockEmails{}
	s := &Sender{emails: emails, config: Config{APIKey: "re_test"}}

	emails.On("SendWithContext", mock.Anything, mock.MatchedBy(func(r *resend.SendEmailRequest) bool {
		return r.Subject == "New Catering Inquiry: Wedding"
	})).Return(&resend.SendEmailResponse{Id: "email-1"}, nil)

	res, err := s.Send(context.Background(), testMessage())
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "email-1", res.Messages[0].ID)
	emails.AssertExpectations(t)
}

func TestSendFailures(t *testing.T) {
	t.Run("client error", func(t *testing.T) {
		emails := &mockEmails{}
		s := &Sender{emails: emails, config: Config{APIKey: "re_test"}}
		cause := errors.New("rate limited")
		emails.On("SendWithContext", mock.Anything, mock.Anything).Return(nil, cause)

		_, err := s.Send(context.Background(), testMessage())
		require.Error(t, err)
		assert.Equal(t, "rate limited", err.Error())
		assert.True(t, mailer.IsProviderError(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("empty id", func(t *testing.T) {
		emails := &mockEmails{}
		s := &Sender{emails: emails, config: Config{APIKey: "re_test"}}
		emails.On("SendWithContext", mock.Anything, mock.Anything).Return(&resend.SendEmailResponse{}, nil)

		_, err := s.Send(context.Background(), testMessage())
		require.Error(t, err)
		assert.True(t, mailer.IsProviderError(err))
		assert.Equal(t, mailer.FallbackProviderMessage, err.Error())
	})

	t.Run("not configured", func(t *testing.T) {
		emails := &mockEmails{}
		s := &Sender{emails: emails}

		_, err := s.Send(context.Background(), testMessage())
		assert.ErrorIs(t, err, mailer.ErrNotConfigured)
		emails.AssertNotCalled(t, "SendWithContext")
	})
}
