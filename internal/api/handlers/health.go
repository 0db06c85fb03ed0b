package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/cateringform/internal/utils"
	"github.com/osa911/cateringform/internal/version"
)

type HealthHandler struct {
	mailProvider string
	mailReady    func() bool
}

// NewHealthHandler reports the mail provider name and whether its
// credentials are present. It never contacts the provider.
func NewHealthHandler(mailProvider string, mailReady func() bool) *HealthHandler {
	return &HealthHandler{mailProvider: mailProvider, mailReady: mailReady}
}

type healthStatus struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	MailProvider   string `json:"mail_provider"`
	MailConfigured bool   `json:"mail_configured"`
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, healthStatus{
		Status:         "ok",
		Version:        version.Version,
		MailProvider:   h.mailProvider,
		MailConfigured: h.mailReady(),
	})
}
