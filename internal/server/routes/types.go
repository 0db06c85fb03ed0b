package routes

import (
	"github.com/osa911/cateringform/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Contact *handlers.ContactHandler
}

// Middleware contains per-route middleware
type Middleware struct {
	ContactRateLimit gin.HandlerFunc
}
