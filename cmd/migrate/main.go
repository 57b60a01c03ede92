// Command migrate applies or rolls back the embedded PostgreSQL schema migrations.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"addresssync/config"
	"addresssync/internal/domain/lifecycle"
	logs "addresssync/internal/infra/log"
	"addresssync/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of migrating up")
	flag.Parse()

	os.Exit(migrateMain(*down))
}

func migrateMain(down int) int {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.Open,
		),
		fx.Populate(&db, &logger),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("Failed to start migrate", slog.Any("error", err))

		return 1
	}

	code := 0
	if err := run(db, logger, down); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		code = 1
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("Failed to stop migrate", slog.Any("error", err))
	}

	return code
}

func run(db *gorm.DB, logger *slog.Logger, down int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if down > 0 {
		return postgres.MigrateDown(sqlDB, down, logger)
	}

	return postgres.MigrateUp(sqlDB, logger)
}
