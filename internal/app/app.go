package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/covenantops-backend/internal/config"
	"github.com/heartmarshall/covenantops-backend/internal/engine"
	"github.com/heartmarshall/covenantops-backend/internal/metrics"
	"github.com/heartmarshall/covenantops-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration from configPath (empty
// means CONFIG_PATH or ./config.yaml), opens the store, seeds it on first run
// and serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
	)

	return Serve(ctx, logger, *cfg)
}

// Serve runs the HTTP server with cfg until ctx is cancelled, then shuts it
// down within cfg.Server.ShutdownTimeout.
func Serve(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	m := metrics.New()

	e, err := engine.Open(ctx, logger, cfg, engine.WithMetrics(m))
	if err != nil {
		return fmt.Errorf("open engine: %w", err)
	}
	defer e.Close()

	seeded, err := e.Bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if seeded {
		logger.Info("store was empty, demo data generated")
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(logger, e, m, cfg, Version),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// LoadConfig reads configuration from path, falling back to CONFIG_PATH.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}
