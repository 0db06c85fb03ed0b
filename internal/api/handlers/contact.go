package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/osa911/cateringform/internal/api/constants"
	"github.com/osa911/cateringform/internal/contact"
	"github.com/osa911/cateringform/internal/utils"
)

// ContactHandler exposes the contact form over HTTP
type ContactHandler struct {
	contact *contact.Handler
}

func NewContactHandler(h *contact.Handler) *ContactHandler {
	return &ContactHandler{contact: h}
}

// Submit relays a contact form submission. The response is always JSON.
func (h *ContactHandler) Submit(c *gin.Context) {
	resp := h.contact.Handle(c.Request.Context(), contact.Request{
		Body:      rawBody(c),
		ClientIP:  utils.GetRealIP(c),
		UserAgent: c.Request.UserAgent(),
		RequestID: c.GetString(constants.ContextKeyRequestID),
	})

	c.JSON(resp.Status, resp.Body)
}

// rawBody returns the body stored by PreserveRequestBody, or reads it directly
func rawBody(c *gin.Context) string {
	if v, ok := c.Get(constants.ContextKeyRawBody); ok {
		if b, ok := v.([]byte); ok {
			return string(b)
		}
	}
	if c.Request.Body == nil {
		return ""
	}
	b, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	return string(b)
}
