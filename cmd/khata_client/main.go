package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/digital_khata_client/internal/handlers"
	"github.com/SscSPs/digital_khata_client/pkg/config"
	"github.com/spf13/cobra"
)

const appName = "khata_client"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions are shared by every subcommand.
type rootOptions struct {
	logLevel string
	cfg      *config.Config
	logger   *slog.Logger
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Digital Khata client",
		Long: `khata_client keeps a Digital Khata session on this machine.

It can serve the session to a browser UI over HTTP (serve) or drive it
from the terminal (login, whoami, theme, offline ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.cfg = cfg
			opts.logger = newLogger(cfg.IsProduction, opts.logLevel)
			slog.SetDefault(opts.logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		serveCmd(opts),
		loginCmd(opts),
		logoutCmd(opts),
		whoamiCmd(opts),
		themeCmd(opts),
		offlineCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, handlers.Version)
			},
		},
	)

	return cmd
}

// newLogger logs JSON in production and text otherwise, always to stderr.
func newLogger(production bool, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	handlerOpts := &slog.HandlerOptions{Level: lvl}
	if production {
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}
