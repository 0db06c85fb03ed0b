package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osa911/cateringform/internal/api/dto/common"
	"github.com/osa911/cateringform/internal/logging"
	"github.com/osa911/cateringform/internal/mailer"
)

// MockSender is a mock implementation of mailer.Sender.
type MockSender struct {
	mock.Mock
	configured bool
}

func (m *MockSender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Result, error) {
	args := m.Called(ctx, msg)
	res, _ := args.Get(0).(*mailer.Result)
	return res, args.Error(1)
}

func (m *MockSender) Configured() bool { return m.configured }

func (m *MockSender) Name() string { return "mock" }

func newTestHandler(sender *MockSender, addrs Addresses) *Handler {
	return NewHandler(sender, addrs, WithLogger(logging.NewWriterLogger(io.Discard, logging.LevelError)))
}

func sentResult() *mailer.Result {
	return &mailer.Result{Messages: []mailer.SentMessage{{ID: "1", Status: "success"}}}
}

const validBody = `{"name":"Jane Doe","email":"jane@example.com","service":"Wedding Reception"}`

func TestHandleMissingCredentials(t *testing.T) {
	sender := &MockSender{configured: false}
	h := newTestHandler(sender, Addresses{})

	for _, body := range []string{validBody, "", "not json"} {
		resp := h.Handle(context.Background(), Request{Body: body})

		assert.Equal(t, http.StatusInternalServerError, resp.Status)
		assert.Equal(t, common.NewErrorResponse(MsgConfigError, MsgCredentials), resp.Body)
	}
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandleEmptyBody(t *testing.T) {
	sender := &MockSender{configured: true}
	h := newTestHandler(sender, Addresses{})

	for _, body := range []string{"", "   \n\t"} {
		resp := h.Handle(context.Background(), Request{Body: body})
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.Equal(t, common.NewErrorResponse(MsgEmptyBody, ""), resp.Body)
	}
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandleInvalidJSON(t *testing.T) {
	sender := &MockSender{configured: true}
	h := newTestHandler(sender, Addresses{})

	for _, body := range []string{"{not json", `"just a string"`, `{"name": 42}`} {
		t.Run(body, func(t *testing.T) {
			resp := h.Handle(context.Background(), Request{Body: body})

			assert.Equal(t, http.StatusBadRequest, resp.Status)
			errResp, ok := resp.Body.(common.ErrorResponse)
			require.True(t, ok)
			assert.Equal(t, MsgInvalidJSON, errResp.Error)
			assert.NotEmpty(t, errResp.Details)
		})
	}
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandleMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMissing string
	}{
		{"missing name", `{"email":"jane@example.com","service":"Wedding"}`, "name"},
		{"missing email", `{"name":"Jane","service":"Wedding"}`, "email"},
		{"missing service", `{"name":"Jane","email":"jane@example.com"}`, "service"},
		{"empty name", `{"name":"","email":"jane@example.com","service":"Wedding"}`, "name"},
		{"empty service", `{"name":"Jane","email":"jane@example.com","service":""}`, "service"},
		{"all missing", `{}`, "name, email, service"},
		{"null body", `null`, "name, email, service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &MockSender{configured: true}
			h := newTestHandler(sender, Addresses{})

			resp := h.Handle(context.Background(), Request{Body: tt.body})

			assert.Equal(t, http.StatusBadRequest, resp.Status)
			errResp, ok := resp.Body.(common.ErrorResponse)
			require.True(t, ok)
			assert.Equal(t, MsgMissingRequired, errResp.Error)
			assert.Equal(t, "Required fields missing: "+tt.wantMissing, errResp.Details)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleSuccess(t *testing.T) {
	sender := &MockSender{configured: true}
	h := newTestHandler(sender, Addresses{})

	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg *mailer.Message) bool {
		return msg.From == mailer.Address{Email: DefaultSenderEmail, Name: DefaultSenderName} &&
			len(msg.To) == 1 && msg.To[0].Email == DefaultRecipientEmail &&
			len(msg.Bcc) == 1 && msg.Bcc[0].Email == DefaultBCCEmail &&
			msg.ReplyTo != nil && *msg.ReplyTo == mailer.Address{Email: "jane@example.com", Name: "Jane Doe"} &&
			msg.Subject == "New Catering Inquiry: Wedding Reception"
	})).Return(sentResult(), nil).Once()

	resp := h.Handle(context.Background(), Request{Body: validBody})

	assert.Equal(t, http.StatusOK, resp.Status)
	raw, err := json.Marshal(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Email sent successfully"}`, string(raw))
	sender.AssertExpectations(t)
}

func TestHandleUsesConfiguredAddresses(t *testing.T) {
	sender := &MockSender{configured: true}
	h := newTestHandler(sender, Addresses{
		Recipient:  "owner@example.com",
		BCC:        "archive@example.com",
		Sender:     "forms@example.com",
		SenderName: "Forms",
	})

	var got *mailer.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*mailer.Message) }).
		Return(sentResult(), nil)

	resp := h.Handle(context.Background(), Request{Body: validBody})
	require.Equal(t, http.StatusOK, resp.Status)

	require.NotNil(t, got)
	assert.Equal(t, mailer.Address{Email: "forms@example.com", Name: "Forms"}, got.From)
	assert.Equal(t, []mailer.Address{{Email: "owner@example.com"}}, got.To)
	assert.Equal(t, []mailer.Address{{Email: "archive@example.com"}}, got.Bcc)
}

func TestHandleProviderFailure(t *testing.T) {
	tests := []struct {
		name        string
		result      *mailer.Result
		err         error
		wantDetails string
	}{
		{
			name:        "provider diagnostic",
			err:         &mailer.ProviderError{Provider: "mock", StatusCode: 401, Message: "API key authentication/authorization failure"},
			wantDetails: "API key authentication/authorization failure",
		},
		{
			name:        "provider without diagnostic",
			err:         &mailer.ProviderError{Provider: "mock", StatusCode: 500},
			wantDetails: mailer.FallbackProviderMessage,
		},
		{
			name:        "empty message list",
			result:      &mailer.Result{},
			wantDetails: mailer.FallbackProviderMessage,
		},
		{
			name:        "network error",
			err:         errors.New("failed to send mailjet request: connection refused"),
			wantDetails: "failed to send mailjet request: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &MockSender{configured: true}
			h := newTestHandler(sender, Addresses{})
			sender.On("Send", mock.Anything, mock.Anything).Return(tt.result, tt.err).Once()

			resp := h.Handle(context.Background(), Request{Body: validBody})

			assert.Equal(t, http.StatusInternalServerError, resp.Status)
			assert.Equal(t, common.NewErrorResponse(MsgSendFailed, tt.wantDetails), resp.Body)
			sender.AssertExpectations(t)
		})
	}
}

func TestHandleRecoversFromPanic(t *testing.T) {
	sender := &MockSender{configured: true}
	h := newTestHandler(sender, Addresses{})
	sender.On("Send", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("provider exploded")
	})

	resp := h.Handle(context.Background(), Request{Body: validBody})

	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, common.NewErrorResponse(MsgSendFailed, "provider exploded"), resp.Body)
}
