package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/documenta/docuflow/internal/companies"
	"github.com/documenta/docuflow/internal/config"
	"github.com/documenta/docuflow/internal/documents"
	"github.com/documenta/docuflow/internal/entities"
	"github.com/documenta/docuflow/internal/gateway"
	"github.com/documenta/docuflow/internal/routes"
	"github.com/documenta/docuflow/internal/validation"
	"github.com/documenta/docuflow/pkg/logging"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Logging)

	db, err := openDB(cfg.Database)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gw, err := gateway.New(context.Background(), &cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize storage gateway", "error", err)
		os.Exit(1)
	}

	companySys := companies.New(db, logger)
	entitySys := entities.New(db, logger)
	validationSys := validation.New(db, logger)
	documentSys := documents.New(
		db, gw, companySys, entitySys, validationSys,
		logger, cfg.Storage.MaxFileSizeBytes(),
	)

	rts := routes.New(logger)
	rts.RegisterRoute(healthz())
	rts.RegisterGroup(companySys.Handler().Routes())
	rts.RegisterGroup(entitySys.Handler().Routes())
	rts.RegisterGroup(entitySys.Handler().CompanyRoutes())
	rts.RegisterGroup(documentSys.Handler().Routes())

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      enableCORS(rts.Build(), &cfg.CORS),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	err = <-shutdownError
	if err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func openDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
