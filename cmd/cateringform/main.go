package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osa911/cateringform/internal/config"
	"github.com/osa911/cateringform/internal/logging"
	"github.com/osa911/cateringform/internal/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cateringform",
		Short: "Catering contact form relay",
		Long: `cateringform accepts catering inquiries from the website contact form
and relays them to the events team through a transactional email provider.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cateringform version: %s\n", version.Info())
		},
	}
}

// loadConfig reads the environment and sets up the global logger.
// Commands other than serve keep the log on stderr so stdout stays parseable.
func loadConfig(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	logging.SetLogger(logger)
	return cfg, logger, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
