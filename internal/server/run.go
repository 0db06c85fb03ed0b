package server

import (
	"context"
	"time"

	"github.com/osa911/cateringform/internal/config"
	"github.com/osa911/cateringform/internal/logging"
	"github.com/osa911/cateringform/internal/service"
	"github.com/osa911/cateringform/internal/telemetry"
	"github.com/osa911/cateringform/internal/version"
)

const shutdownTimeout = 15 * time.Second

// Run starts tracing, builds the mail sender and serves HTTP until ctx is
// cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config, logger *logging.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:       cfg.OTLPEndpoint,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: version.Version,
		Environment:    cfg.Environment,
		Insecure:       cfg.OTLPInsecure,
	})
	if err != nil {
		return logging.WrapError(err, "failed to set up tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	sender, err := service.NewMailSender(cfg.Mail)
	if err != nil {
		return logging.WrapError(err, "failed to create mail sender")
	}
	if !sender.Configured() {
		logger.Warn("%s credentials are not set, contact submissions will fail", sender.Name())
	}

	srv := NewServer(cfg, sender, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return logging.WrapError(err, "server shutdown failed")
	}
	return <-errCh
}
