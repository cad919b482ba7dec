package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/taskflowhq/taskflow-api/internal/platform/postgres"
)

// runMigrations executes the given goose command (up, down, status)
// against the application database using the embedded migration files.
func (app *application) runMigrations(ctx context.Context, command string) error {
	migrationLogger := app.logger.With(
		"component", "migrations",
		"command", command,
	)
	startTime := time.Now()
	migrationLogger.Info("starting migration operation")

	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})

	migrations, err := fs.Sub(postgres.MigrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.UpContext(ctx, app.db, ".")
	case "down":
		err = goose.DownContext(ctx, app.db, ".")
	case "status":
		err = goose.StatusContext(ctx, app.db, ".")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration command %q failed: %w", command, err)
	}

	migrationLogger.Info("migration operation completed",
		"duration_ms", time.Since(startTime).Milliseconds())
	return nil
}

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}
