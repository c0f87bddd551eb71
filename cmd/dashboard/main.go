package main

import (
	"context"
	"os/signal"
	"syscall"

	"coindash/config"
	"coindash/internal/app"
	"coindash/logger"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, log)
	if err := a.Initialize(); err != nil {
		log.Fatal("failed to initialize", zap.Error(err))
	}

	if err := a.Run(ctx); err != nil {
		log.Fatal("dashboard failed", zap.Error(err))
	}
}
