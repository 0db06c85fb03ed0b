package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/osa911/cateringform/internal/api/constants"
	"github.com/osa911/cateringform/internal/utils"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodySize caps request bodies when no limit is configured
const DefaultMaxBodySize int64 = 64 * 1024

var errBodyTooLarge = errors.New("request body too large")

// PreserveRequestBody reads the request body once, enforces maxBodySize and
// restores it, so that both middleware and handlers can read it
func PreserveRequestBody(maxBodySize int64) gin.HandlerFunc {
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}

	return func(c *gin.Context) {
		// Only process methods that carry a body
		if c.Request.Body == nil || (c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch) {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBodySize {
			utils.HandleAPIError(c, errBodyTooLarge, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}

		// Read one byte past the limit to detect oversize chunked bodies
		bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize+1))
		if err != nil {
			utils.HandleAPIError(c, err, http.StatusBadRequest, "Error reading request body")
			return
		}

		if int64(len(bodyBytes)) > maxBodySize {
			utils.HandleAPIError(c, errBodyTooLarge, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}

		// Restore the body for subsequent middleware
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		c.Set(constants.ContextKeyRawBody, bodyBytes)

		c.Next()
	}
}
