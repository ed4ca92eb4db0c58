package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rajatgupta431/artbd/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		os.Exit(1)
	}
}
