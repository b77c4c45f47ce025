package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/documenta/docuflow/internal/config"
	"github.com/documenta/docuflow/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		logger.Error("failed to load migrations", "error", err)
		os.Exit(1)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.Database.URL("pgx5"))
	if err != nil {
		logger.Error("failed to initialize migrator", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		logger.Error("unknown direction", "direction", direction)
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("schema up to date")
			return
		}
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("migration complete", "direction", direction)
}
