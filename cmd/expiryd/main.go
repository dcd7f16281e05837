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

	"github.com/finnroth/expiryd/internal/adapter/driven/directory"
	"github.com/finnroth/expiryd/internal/adapter/driven/kerberos"
	"github.com/finnroth/expiryd/internal/adapter/driven/prefstore"
	"github.com/finnroth/expiryd/internal/adapter/driven/shell"
	httphandler "github.com/finnroth/expiryd/internal/adapter/driving/http"
	"github.com/finnroth/expiryd/internal/adapter/driving/ws"
	"github.com/finnroth/expiryd/internal/application"
	"github.com/finnroth/expiryd/internal/bus"
	"github.com/finnroth/expiryd/internal/config"
	"github.com/finnroth/expiryd/internal/domain/model"
	"github.com/finnroth/expiryd/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"source", cfg.Source,
		"alert_threshold_days", cfg.AlertThresholdDays,
		"poll_interval", cfg.PollInterval,
		"listen_addr", cfg.ListenAddr,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wire driven adapters. All backends share one command runner; the
	// settings store serves both preference-domain backends.
	runner := shell.Runner{}
	store := prefstore.NewDefaultsStore(runner)

	localSource, err := directory.NewSource(runner, slog.Default())
	if err != nil {
		return err
	}

	sources := map[model.PasswordSource]driven.ExpirySource{
		model.SourceLocalDirectory: localSource,
		model.SourceJamfConnect:    prefstore.NewJamfConnectSource(store),
		model.SourceNomad:          prefstore.NewNomadSource(store),
		model.SourceKerberosSSO:    kerberos.NewSource(runner, cfg.KerberosRealm, cfg.HelperTimeout, slog.Default()),
	}

	// 4. Create the status bus and the aggregation service.
	statusBus := bus.New(slog.Default())
	svc := application.NewStatusService(
		sources,
		statusBus,
		cfg.Source,
		cfg.AlertThresholdDays,
		cfg.PollInterval,
		slog.Default(),
	)
	go svc.Start(ctx)

	// 5. Register driving adapters: REST API and WebSocket stream.
	mux := http.NewServeMux()
	apiHandler := httphandler.NewHandler(svc, slog.Default())
	apiHandler.RegisterRoutes(mux)
	wsHandler := ws.NewHandler(statusBus, svc, slog.Default())
	wsHandler.RegisterRoutes(mux)

	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("expiryd started", "source", cfg.Source, "poll_interval", cfg.PollInterval)

	// 6. Wait for shutdown signal, then drain the HTTP server.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
