package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/osa911/cateringform/internal/api/constants"
	"github.com/osa911/cateringform/internal/api/dto/common"
	"github.com/osa911/cateringform/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a JSON 500 and logs the stack trace
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("[PANIC] %s | %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					c.GetString(constants.ContextKeyRequestID),
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse("Internal server error", fmt.Sprint(err)))
			}
		}()

		c.Next()
	}
}
