package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cobusiness02/forgefyt/internal/app/pushdispatcher"
	"github.com/cobusiness02/forgefyt/internal/config"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting push dispatcher", slog.String("env", cfg.Env))
	if cfg.RabbitMQ.URL == "" {
		logger.Error("RABBITMQ_URL is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := pushdispatcher.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize push dispatcher", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("push dispatcher stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("push dispatcher stopped gracefully")
}
