package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/resumetailor/internal/api"
	"github.com/dgallion1/resumetailor/internal/config"
	"github.com/dgallion1/resumetailor/internal/tailor"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ts, closeTailor, err := newTailorService(ctx, cfg, log)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(ts, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.TailorTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		closeTailor()
	}()

	log.Info("starting resumetailor", "port", cfg.Port, "provider", cfg.TailorProvider, "tailoring", ts != nil)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// newTailorService builds the tailoring service for cfg. A missing API key
// is not fatal: it returns a nil service so parsing, preview and download
// keep working while the tailoring endpoints answer 503.
func newTailorService(ctx context.Context, cfg config.Config, log *slog.Logger) (api.TailorService, func(), error) {
	noop := func() {}

	err := cfg.Validate()
	if errors.Is(err, config.ErrMissingAPIKey) {
		log.Warn("tailoring disabled", "reason", err.Error())
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	backend, err := tailor.NewBackend(ctx, cfg)
	if err != nil {
		return nil, noop, err
	}
	svc := tailor.NewService(backend, tailor.NewLLMStats(cfg.LLMStatsWindow), tailor.Options{
		Timeout:         cfg.TailorTimeout,
		MaxRetries:      cfg.TailorMaxRetries,
		MaxPromptTokens: cfg.MaxPromptTokens,
	}, log)
	log.Info("tailoring enabled", "model", svc.Model())
	return svc, func() { svc.Close() }, nil
}
