package middleware

import (
	"time"

	"github.com/osa911/cateringform/internal/api/constants"
	"github.com/osa911/cateringform/internal/logging"
	"github.com/osa911/cateringform/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request through the application logger.
// Nothing is written unless request logging is enabled in the logger config.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
