// Package main provides the entry point for the hyply CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/monkslc/hyperpolyglot/cmd/hyply/commands"
	"github.com/monkslc/hyperpolyglot/pkg/config"
	"github.com/monkslc/hyperpolyglot/pkg/observability"
	"github.com/monkslc/hyperpolyglot/pkg/version"
)

// shutdownTimeout bounds how long the root command waits for the metrics
// server and OTel providers to drain on the way out.
const shutdownTimeout = 5 * time.Second

func main() {
	var (
		configPath  string
		metricsAddr string
	)

	var (
		providers     observability.Providers
		logger        *slog.Logger
		metricsServer *http.Server
	)

	rootCmd := &cobra.Command{
		Use:   "hyply [path]",
		Short: "hyply detects the programming language of a file or a directory tree",
		Long: `hyply is a programming language detector. It supports detecting the
programming language of a single file or the language makeup of an entire
directory tree, the same cascade GitHub's Linguist uses: filename, then
extension, then shebang, then content heuristics, then a trained classifier.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          commands.RunBreakdown,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a hyply config file (default: ./hyply.yaml)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "",
		"Address to serve Prometheus metrics on for the duration of this run (e.g. :9090); empty disables the server")

	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger = observability.NewLogger(observability.ParseLevel(cfg.Logging.Level), cfg.Logging.Format, observability.ModeBreakdown)

		providers, err = observability.Init(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
		if err != nil {
			return fmt.Errorf("init observability: %w", err)
		}

		metrics, err := observability.NewBreakdownMetrics(providers.MeterProvider.Meter("hyply"))
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}

		if metricsAddr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.MetricsHandler())
			metricsServer = &http.Server{Addr: metricsAddr, Handler: mux}
			go func() {
				if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("metrics server failed", "error", err)
				}
			}()
		}

		commands.Configure(cfg, metrics, logger)
		return nil
	}

	commands.RegisterBreakdownFlags(rootCmd)
	rootCmd.AddCommand(versionCmd())

	runErr := rootCmd.Execute()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if metricsServer != nil {
		_ = metricsServer.Shutdown(shutdownCtx)
	}
	if providers.Shutdown != nil {
		_ = providers.Shutdown(shutdownCtx)
	}

	if runErr != nil {
		if logger != nil {
			logger.Error("run failed", "error", runErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		}
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, "hyply "+version.String())
		},
	}
}
