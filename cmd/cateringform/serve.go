package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osa911/cateringform/internal/config"
	"github.com/osa911/cateringform/internal/logging"
	"github.com/osa911/cateringform/internal/server"
	"github.com/osa911/cateringform/internal/version"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server exposing POST /api/contact, POST /api/v1/contact and GET /health.

Example:
  cateringform serve
  cateringform serve --port 9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}

			if err := logging.InitLogger(cfg.Logging()); err != nil {
				return err
			}
			logger := logging.GetLogger()
			defer logger.Close()

			logger.Info("Starting cateringform %s in %s mode", version.Info(), cfg.Environment)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, cfg, logger)
		},
	}

	cmd.Flags().String("port", "", "Port to listen on (overrides API_PORT)")
	return cmd
}
