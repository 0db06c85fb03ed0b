package routes

import (
	"github.com/osa911/cateringform/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes. The form is public and
// gets its own, stricter rate limit on top of the global one.
func SetupContactRoutes(router gin.IRoutes, contact *handlers.ContactHandler, m *Middleware) {
	if m != nil && m.ContactRateLimit != nil {
		router.POST("/contact", m.ContactRateLimit, contact.Submit)
		return
	}
	router.POST("/contact", contact.Submit)
}
