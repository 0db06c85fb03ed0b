package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/osa911/cateringform/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS float64
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware creates a new rate limiting middleware with the given configuration.
// The limiter is shared by every request passing through the middleware.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		limit(c, limiter, config)
	}
}

// clientIdleTTL is how long an unused per-client bucket is kept
const clientIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters hands out one token bucket per client key
type clientLimiters struct {
	config RateLimitConfig
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

// newClientLimiters creates an empty per-client limiter set
func newClientLimiters(config RateLimitConfig) *clientLimiters {
	return &clientLimiters{
		config:  config,
		ttl:     clientIdleTTL,
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}
}

// get returns the bucket for key, creating it on first use
func (l *clientLimiters) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.ttl {
		for k, cl := range l.clients {
			if now.Sub(cl.lastSeen) > l.ttl {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(l.config.RPS), l.config.Burst)}
		l.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// size reports how many clients are tracked
func (l *clientLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// ClientRateLimitMiddleware limits each client IP separately, so one client
// exhausting its burst does not block the others. See utils.GetRealIP for
// which forwarding headers are believed.
func ClientRateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiters := newClientLimiters(config)

	return func(c *gin.Context) {
		limit(c, limiters.get(utils.GetRealIP(c)), config)
	}
}

func limit(c *gin.Context, limiter *rate.Limiter, config RateLimitConfig) {
	if !limiter.Allow() {
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded. Please try again later.",
		})
		return
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(config.Burst))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

	c.Next()
}
