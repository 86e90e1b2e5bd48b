package app

import (
	"context"
	"fmt"

	"github.com/notepid/baseball/internal/config"
	"github.com/notepid/baseball/internal/db"
	"github.com/notepid/baseball/internal/difficulty"
	"github.com/notepid/baseball/internal/game"
	"github.com/notepid/baseball/internal/logging"
	"github.com/notepid/baseball/internal/user"
)

var _ game.Registry = (*user.Repo)(nil)

// App is the wired game backend shared by the console and TUI front ends.
type App struct {
	ConfigPath string
	Config     *config.Config
	DB         *db.DB
	Log        logging.Logger

	Users *user.Repo
	Modes *difficulty.Table
}

// New loads the config at configPath (defaults if empty) and opens the
// registry. The returned func releases the database and the log output.
func New(ctx context.Context, configPath string) (*App, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	modes, err := difficulty.NewTable(cfg.Game.Difficulties)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("difficulties: %w", err)
	}

	database, err := db.Open(ctx, cfg.Registry.DSN, log)
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	if cfg.Registry.DSN != db.MemoryDSN {
		// Best-effort: a shared registry file may be busy.
		if _, err := database.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			log.Warn(ctx, "could not set busy timeout", "dsn", cfg.Registry.DSN, "error", err)
		}
	}

	a := &App{
		ConfigPath: configPath,
		Config:     cfg,
		DB:         database,
		Log:        log,
		Users:      user.NewRepo(database.DB),
		Modes:      modes,
	}

	log.Info(ctx, "app ready", "config", a.configName(), "dsn", cfg.Registry.DSN, "difficulties", len(modes.Modes()))

	cleanup := func() {
		_ = database.Close()
		closeLog()
	}
	return a, cleanup, nil
}

func (a *App) configName() string {
	if a.ConfigPath == "" {
		return "defaults"
	}
	return a.ConfigPath
}

// Lobby builds a lobby reading from in and rendering to out.
func (a *App) Lobby(in game.LineReader, out game.Display) *game.Lobby {
	return game.NewLobby(game.Deps{
		In:           in,
		Out:          out,
		Modes:        a.Modes,
		Registry:     a.Users,
		Log:          a.Log,
		RankingLimit: a.Config.Ranking.Limit,
	})
}
