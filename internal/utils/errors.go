package utils

import (
	"github.com/osa911/cateringform/internal/api/dto/common"
	"github.com/osa911/cateringform/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs the error and sends a JSON error response.
// Error details are only exposed outside release mode.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logging.GetLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	details := ""
	if err != nil && gin.Mode() != gin.ReleaseMode {
		details = err.Error()
	}

	c.AbortWithStatusJSON(status, common.NewErrorResponse(message, details))
}
