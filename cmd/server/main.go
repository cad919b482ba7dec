// Package main implements the entry point for the TaskFlow API server,
// which handles task management, assignment notifications, user
// registration and session credentials.
package main

import (
	"context"
	"flag"
	"log"
	"os"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if *migrateCmd != "" {
		if err := app.runMigrations(context.Background(), *migrateCmd); err != nil {
			app.logger.Error("migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := app.startHTTPServer(context.Background()); err != nil {
		app.logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
