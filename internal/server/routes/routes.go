package routes

import (
	"net/http"
	"strings"

	"github.com/osa911/cateringform/internal/api/middleware"
	"github.com/osa911/cateringform/internal/logging"

	"github.com/gin-gonic/gin"
)

// GlobalConfig holds the settings of the middleware applied to every route
type GlobalConfig struct {
	CORS        middleware.CORSConfig
	RateLimit   middleware.RateLimitConfig
	MaxBodySize int64
	// Extra middleware run first, e.g. tracing
	Extra []gin.HandlerFunc
}

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetLogger()

	SetupHealthRoutes(router, h.Health)

	// The website posts to /api/contact, API clients use /api/v1/contact.
	// Both paths share one contact limiter.
	SetupContactRoutes(router.Group("/api/v1"), h.Contact, m)
	SetupContactRoutes(router.Group("/api"), h.Contact, m)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, cfg GlobalConfig) {
	router.Use(cfg.Extra...)
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.PreserveRequestBody(cfg.MaxBodySize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit))
}

// TrimTrailingSlash removes the need for strict trailing slash matching.
// It wraps the engine because gin matches routes before running middleware.
func TrimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path := r.URL.Path; path != "/" && strings.HasSuffix(path, "/") {
			r.URL.Path = strings.TrimSuffix(path, "/")
		}
		next.ServeHTTP(w, r)
	})
}
