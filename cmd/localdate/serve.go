package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clarityflowers/localdate/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calendar query HTTP API",
		Long:  "Serve calendar queries over HTTP until interrupted by SIGINT or SIGTERM",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// Setup signal handling
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				sig := <-sigChan
				logger.Info("Received signal, shutting down",
					zap.String("signal", sig.String()))
				cancel()
			}()

			logger.Info("Starting query API",
				zap.String("addr", cfg.Server.Addr),
				zap.Bool("metrics", cfg.Server.Metrics))

			return server.NewServer(cfg, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
