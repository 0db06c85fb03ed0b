package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/osa911/cateringform/internal/api/handlers"
	"github.com/osa911/cateringform/internal/api/middleware"
	"github.com/osa911/cateringform/internal/config"
	"github.com/osa911/cateringform/internal/contact"
	"github.com/osa911/cateringform/internal/logging"
	"github.com/osa911/cateringform/internal/mailer"
	"github.com/osa911/cateringform/internal/server/routes"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	logger     *logging.Logger
	httpServer *http.Server
}

// NewServer wires the contact handler, middleware and routes around sender
func NewServer(cfg *config.Config, sender mailer.Sender, logger *logging.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Our own request logger replaces gin's
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.HandleMethodNotAllowed = true
	// Validated by config.Parse
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("Invalid trusted proxies, forwarding headers ignored: %v", err)
		_ = router.SetTrustedProxies(nil)
	}

	var extra []gin.HandlerFunc
	if cfg.OTLPEndpoint != "" {
		extra = append(extra, otelgin.Middleware(cfg.ServiceName))
	}

	routes.SetupGlobalMiddleware(router, logger, routes.GlobalConfig{
		CORS: middleware.CORSConfig{
			Development:    !cfg.IsProduction(),
			AllowedOrigins: cfg.AllowedOrigins,
		},
		RateLimit: middleware.RateLimitConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		},
		MaxBodySize: cfg.MaxBodyBytes,
		Extra:       extra,
	})

	contactHandler := contact.NewHandler(sender, contact.AddressesFromConfig(cfg.Mail), contact.WithLogger(logger))

	routes.Setup(router, &routes.Handlers{
		Health:  handlers.NewHealthHandler(sender.Name(), sender.Configured),
		Contact: handlers.NewContactHandler(contactHandler),
	}, &routes.Middleware{
		ContactRateLimit: middleware.ClientRateLimitMiddleware(middleware.RateLimitConfig{
			RPS:   cfg.ContactRateRPS,
			Burst: cfg.ContactRateBurst,
		}),
	})

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           routes.TrimTrailingSlash(router),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens on the configured port and blocks until Shutdown
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln and blocks until Shutdown
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("HTTP server listening on %s", ln.Addr())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
