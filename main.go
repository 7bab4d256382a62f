package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/roster/internal/config"
	"github.com/msomdec/roster/internal/domain"
	"github.com/msomdec/roster/internal/handler"
	"github.com/msomdec/roster/internal/repository/postgres"
	"github.com/msomdec/roster/internal/repository/sqlite"
	"github.com/msomdec/roster/internal/service"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	prepareSchema(store, cfg.QueryTimeout)

	recordService := service.NewRecordService(store, cfg.QueryTimeout, cfg.ListMaxRows)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, recordService)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.SecurityHeaders(handler.RequestID(handler.RequestLogger(mux))),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore opens the configured backend. Postgres connects lazily, so an
// unreachable server does not fail startup; a bad sqlite path fails fast.
func openStore(cfg *config.Config) (domain.Database, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return sqlite.New(cfg.DBPath)
	default:
		return postgres.New(cfg.PostgresDSN(), postgres.Pool{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
		})
	}
}

// prepareSchema pings the database and ensures the records table exists.
// Failures are logged and tolerated: the server starts anyway and reports
// the database as unavailable until it comes back.
func prepareSchema(store domain.Database, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		slog.Warn("database unreachable, starting degraded", "error", err)
		return
	}

	created, err := store.EnsureSchema(ctx)
	if err != nil {
		slog.Warn("failed to ensure schema", "error", err)
		return
	}
	if created {
		slog.Info("table created")
	} else {
		slog.Info("table already exists")
	}
}
