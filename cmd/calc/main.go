package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mohamedkhairy/termcalc/internal/config"
	"github.com/mohamedkhairy/termcalc/internal/repl"
	"github.com/mohamedkhairy/termcalc/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting calculator",
		logger.String("environment", cfg.Environment),
		logger.Int("telemetry_port", cfg.Telemetry.Port),
	)

	// Interrupt stops the REPL gracefully, same as end-of-input
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional telemetry endpoint
	var telemetryServer *http.Server
	if cfg.Telemetry.Port > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		telemetryServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Telemetry.Port),
			Handler: mux,
		}
		go func() {
			logger.Info("Telemetry server listening", logger.Int("port", cfg.Telemetry.Port))
			if err := telemetryServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Telemetry server failed", logger.ErrorField(err))
			}
		}()
	}

	calculator := repl.New(cfg.REPL.Prompt, os.Stdin, os.Stdout)
	if err := calculator.Run(ctx); err != nil {
		logger.Error("Calculator loop failed", logger.ErrorField(err))
	}

	if telemetryServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetryServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Telemetry server shutdown failed", logger.ErrorField(err))
		}
	}

	logger.Info("Calculator stopped")
}
