package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/yanqian/ai-summarizer/internal/infra/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if errors.Is(err, config.ErrMissingAPIKey) {
		log.Fatalf("cannot start: %v", err)
	}
	if err != nil {
		log.Fatalf("failed to wire application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}
