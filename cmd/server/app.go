package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskflowhq/taskflow-api/internal/api"
	"github.com/taskflowhq/taskflow-api/internal/config"
	"github.com/taskflowhq/taskflow-api/internal/platform/logger"
	"github.com/taskflowhq/taskflow-api/internal/platform/postgres"
	"github.com/taskflowhq/taskflow-api/internal/service"
	"github.com/taskflowhq/taskflow-api/internal/service/auth"
)

// application holds the shared dependencies of the server: configuration,
// the logger, the database handle and the wired services and handlers.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	authHandler         *api.AuthHandler
	userHandler         *api.UserHandler
	taskHandler         *api.TaskHandler
	notificationHandler *api.NotificationHandler
}

// initializeApp loads configuration, sets up logging, connects to the
// database and wires every service and handler. Returns the assembled
// application or an error if any step fails.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	userStore := postgres.NewUserStore(db)
	taskStore := postgres.NewTaskStore(db)
	notificationStore := postgres.NewNotificationStore(db)

	tokenService, err := auth.NewTokenService(cfg.Auth.TokenSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	registrationService := service.NewRegistrationService(userStore, db, log)
	taskService := service.NewTaskService(taskStore, notificationStore, db, log)

	app := &application{
		config:              cfg,
		logger:              log,
		db:                  db,
		authHandler:         api.NewAuthHandler(tokenService, log),
		userHandler:         api.NewUserHandler(registrationService, userStore, log),
		taskHandler:         api.NewTaskHandler(taskStore, log),
		notificationHandler: api.NewNotificationHandler(taskService, log),
	}
	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
}
