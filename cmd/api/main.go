package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"newsfeed/internal/di"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	srv, err := di.InitializeServer()
	if err != nil {
		log.Fatalf("error initializing server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("error running server: %v", err)
	}
}
