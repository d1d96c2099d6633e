// Package main is the entry point for the todoapp shell.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todoapp/internal/backend/memory"
	"todoapp/internal/handlers"
	"todoapp/internal/shell"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	store := memory.New()
	sh := shell.New(handlers.DefaultRegistry, store)

	os.Exit(sh.Run(ctx, os.Stdin, os.Stdout))
}
