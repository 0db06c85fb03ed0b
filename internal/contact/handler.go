// Package contact turns a catering contact form submission into a
// notification email and relays it through a mailer.Sender.
//
// Handler is framework independent: it takes the raw request body and returns
// a status code with a JSON-serialisable body. The gin adapter lives in
// internal/api/handlers.
package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/osa911/cateringform/internal/api/dto/common"
	dto "github.com/osa911/cateringform/internal/api/dto/v1/contact"
	"github.com/osa911/cateringform/internal/api/validation"
	"github.com/osa911/cateringform/internal/logging"
	"github.com/osa911/cateringform/internal/mailer"
)

// Submission is the parsed contact form input.
type Submission = dto.ContactRequest

// Response messages
const (
	MsgSent            = "Email sent successfully"
	MsgConfigError     = "Server configuration error"
	MsgCredentials     = "Email service credentials are not configured"
	MsgEmptyBody       = "Request body is empty"
	MsgInvalidJSON     = "Invalid JSON in request body"
	MsgMissingRequired = "Missing required fields"
	MsgSendFailed      = "Failed to send email"
)

const tracerName = "github.com/osa911/cateringform/internal/contact"

// Request is what the handler needs from an inbound HTTP request.
// Only Body affects the outcome; the other fields are for logs.
type Request struct {
	Body      string
	ClientIP  string
	UserAgent string
	RequestID string
}

// Response is a status code plus a body to be encoded as JSON.
type Response struct {
	Status int
	Body   interface{}
}

// Handler validates submissions and relays them by email.
type Handler struct {
	sender    mailer.Sender
	addresses Addresses
	validate  *validator.Validate
	logger    *logging.Logger
}

// Option customises a Handler.
type Option func(*Handler)

// WithLogger sets the logger, the global one is used otherwise.
func WithLogger(l *logging.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

// NewHandler creates a Handler sending through sender. Empty addresses are
// replaced by the package defaults.
func NewHandler(sender mailer.Sender, addresses Addresses, opts ...Option) *Handler {
	h := &Handler{
		sender:    sender,
		addresses: addresses.withDefaults(),
		validate:  validation.New(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logging.GetLogger()
	}
	return h
}

// Handle processes one submission and always returns exactly one response.
func (h *Handler) Handle(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("contact: panic while handling submission [%s]: %v", req.RequestID, r)
			resp = failure(http.StatusInternalServerError, MsgSendFailed, fmt.Sprint(r))
		}
	}()

	if !h.sender.Configured() {
		h.logger.Error("contact: %s credentials are not configured", h.sender.Name())
		return failure(http.StatusInternalServerError, MsgConfigError, MsgCredentials)
	}

	sub, fail := h.parse(req.Body)
	if fail != nil {
		h.logger.Warn("contact: rejected submission [%s] from %s: %v", req.RequestID, req.ClientIP, fail.Body)
		return *fail
	}

	msg := h.BuildMessage(sub)
	if err := h.send(ctx, msg); err != nil {
		h.logger.Error("contact: failed to send submission [%s] via %s: %v", req.RequestID, h.sender.Name(), err)
		return failure(http.StatusInternalServerError, MsgSendFailed, err.Error())
	}

	h.logger.Info("contact: sent %q inquiry [%s] via %s", sub.Service, req.RequestID, h.sender.Name())
	return Response{
		Status: http.StatusOK,
		Body:   common.NewMessageResponse(MsgSent),
	}
}

// parse decodes and validates the body. A non-nil Response is the 400 to return.
func (h *Handler) parse(body string) (*Submission, *Response) {
	if strings.TrimSpace(body) == "" {
		r := failure(http.StatusBadRequest, MsgEmptyBody, "")
		return nil, &r
	}

	var sub Submission
	if err := json.Unmarshal([]byte(body), &sub); err != nil {
		r := failure(http.StatusBadRequest, MsgInvalidJSON, err.Error())
		return nil, &r
	}

	// Empty strings count as missing
	if err := h.validate.Struct(&sub); err != nil {
		details := err.Error()
		if fields := validation.MissingFields(err); len(fields) > 0 {
			details = "Required fields missing: " + strings.Join(fields, ", ")
		}
		r := failure(http.StatusBadRequest, MsgMissingRequired, details)
		return nil, &r
	}

	return &sub, nil
}

// BuildMessage renders the notification email for sub.
func (h *Handler) BuildMessage(sub *Submission) *mailer.Message {
	return &mailer.Message{
		From:     h.addresses.from(),
		To:       []mailer.Address{{Email: h.addresses.Recipient}},
		Bcc:      []mailer.Address{{Email: h.addresses.BCC}},
		ReplyTo:  &mailer.Address{Email: sub.Email, Name: sub.Name},
		Subject:  Subject(sub),
		TextPart: RenderText(sub),
		HTMLPart: RenderHTML(sub),
	}
}

func (h *Handler) send(ctx context.Context, msg *mailer.Message) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "contact.send")
	defer span.End()
	span.SetAttributes(attribute.String("mail.provider", h.sender.Name()))

	result, err := h.sender.Send(ctx, msg)
	if err == nil && (result == nil || len(result.Messages) == 0) {
		err = &mailer.ProviderError{Provider: h.sender.Name(), Message: mailer.FallbackProviderMessage}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("mail.messages", len(result.Messages)))
	return nil
}

func failure(status int, message, details string) Response {
	return Response{
		Status: status,
		Body:   common.NewErrorResponse(message, details),
	}
}
