package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/orgball2608/x-relay-telegram-bot/internal/app"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	// A missing .env is fine, the environment may already be set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("Failed to load .env", "error", err)
	}

	app := fx.New(
		fx.Logger(log),
		app.Module,
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// Wait for SIGINT/SIGTERM or a shutdown requested by the app
	sig := <-app.Wait()

	// Gracefully shutdown the application
	if err := app.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
	os.Exit(sig.ExitCode)
}
