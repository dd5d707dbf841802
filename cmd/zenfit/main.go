package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zenfit/zenfit/internal/client/api"
	"github.com/zenfit/zenfit/internal/client/cli"
	"github.com/zenfit/zenfit/internal/client/config"
	"github.com/zenfit/zenfit/internal/client/repositories/credentials"
	"github.com/zenfit/zenfit/internal/client/session"
	"github.com/zenfit/zenfit/internal/client/store"
	"github.com/zenfit/zenfit/internal/logging"
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Warnings and errors only, so log lines don't fight the prompt.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("opening local database: %v", err)
	}
	defer db.Close()

	creds := credentials.NewSQLiteRepository(db)
	client := api.NewHTTPClient(cfg.APIBaseURL, creds, cfg.RequestTimeout)

	sess, err := session.NewStore(ctx, client, creds)
	if err != nil {
		log.Fatalf("restoring session: %v", err)
	}

	app := cli.NewApp(cfg, sess, client, logger)
	app.Run(ctx)
}
