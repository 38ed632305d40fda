package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sqlforge/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// shutdownGrace is how long in-flight requests get to finish on SIGINT or
// SIGTERM before the listener is torn down.
const shutdownGrace = 10 * time.Second

var (
	serveAddr      string
	serveLogLevel  string
	serveLogFormat string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP conversion API",
	Long: `Starts the JSON API that backs the web UI: CSV upload and analysis,
type detection, normalization, null handling, SQL generation and
script splitting, all under /api.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server.SetupLogging(viper.GetString("server.log_level"), viper.GetString("server.log_format"))

		addr := viper.GetString("server.addr")
		srv := server.New()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start(addr)
		}()

		slog.Info("server starting", "addr", addr)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		slog.Info("server stopped")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn or error")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "", "Log format: text or json")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.log_level", serveCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("server.log_format", serveCmd.Flags().Lookup("log-format"))
	viper.SetDefault("server.addr", ":5000")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("server.log_format", "text")
}
