package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notepid/baseball/internal/app"
	"github.com/notepid/baseball/internal/display"
	"github.com/notepid/baseball/internal/terminal"
	"github.com/notepid/baseball/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults if empty)")
	username := flag.String("user", "", "log in as this user instead of asking")
	flag.Parse()

	ctx := context.Background()
	a, cleanup, err := app.New(ctx, *configPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer cleanup()

	start := func(ctx context.Context, term *terminal.Terminal, name string) error {
		return a.Lobby(term, display.New(term)).Run(ctx, name)
	}

	m := tui.NewModel(ctx, start, *username, a.Config.Display.Color != "never")
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := m.Err(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
