package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/adapters/out/sqlstore"
)

// Run loads the configuration, wires every component and serves the API
// until ctx is cancelled or the process receives SIGINT or SIGTERM.
func Run(ctx context.Context, configPath, version string) error {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = zerowrap.WithCtx(ctx, log)

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str("version", version).
		Str("database", cfg.Database.Driver).
		Str("storage", cfg.Storage.Backend).
		Str("lock", cfg.Lock.Backend).
		Msg("starting pkgvault")

	svc, err := createServices(ctx, cfg, version, log)
	if err != nil {
		return err
	}
	defer svc.close()

	server := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.Server.Port)),
		Handler:           createHTTPHandler(svc, cfg, version, log),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, server, cfg.Server.ShutdownTimeout, log)
}

// serve runs server until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, log zerowrap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Str("addr", server.Addr).
			Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Str(zerowrap.FieldLayer, "app").Msg("shutting down HTTP server")
	}

	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	return nil
}

// Migrate applies the tree store schema and exits.
func Migrate(ctx context.Context, configPath string) error {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return err
	}
	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	if err := cfg.ensureDataDir(); err != nil {
		return err
	}
	// Open applies the schema.
	store, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.databaseDSN(), log)
	if err != nil {
		return fmt.Errorf("failed to migrate tree store: %w", err)
	}
	return store.Close()
}
