package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP returns the client address used in logs and per-client rate limits.
// X-Forwarded-For and X-Real-IP are set by whoever sends the request, so they
// are only believed when the TCP peer is one of the engine's trusted proxies
// (TRUSTED_PROXIES). Otherwise the peer address itself is returned.
func GetRealIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	// ClientIP gives up on addresses without a port
	remote := strings.TrimSpace(c.Request.RemoteAddr)
	if host, _, err := net.SplitHostPort(remote); err == nil {
		return host
	}
	return remote
}
