package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/notepid/baseball/internal/app"
	"github.com/notepid/baseball/internal/display"
	"github.com/notepid/baseball/internal/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults if empty)")
	username := flag.String("user", "", "log in as this user instead of asking")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.New(ctx, *configPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer cleanup()

	color := terminal.ColorEnabled(a.Config.Display.Color, os.Stdin, os.Stdout)
	term := terminal.New(os.Stdin, os.Stdout, color)
	defer term.Close()

	done := make(chan error, 1)
	go func() {
		done <- a.Lobby(term, display.New(term)).Run(ctx, *username)
	}()

	// The lobby may be blocked reading stdin, so a signal ends the program
	// from here instead of waiting for it.
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			term.Close()
			cleanup()
			log.Fatalf("Game ended with an error: %v", err)
		}
	case <-ctx.Done():
		stop()
		_ = term.SendLn("")
		log.Printf("Received signal, shutting down...")
	}
}
