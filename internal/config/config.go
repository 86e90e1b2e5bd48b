package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/notepid/baseball/internal/db"
	"github.com/notepid/baseball/internal/difficulty"
	"github.com/notepid/baseball/internal/logging"
)

// ErrInvalid is wrapped by every validation error returned from Load.
var ErrInvalid = errors.New("invalid config")

// Config holds the game configuration.
type Config struct {
	Game     GameConfig      `yaml:"game"`
	Ranking  RankingConfig   `yaml:"ranking"`
	Display  DisplayConfig   `yaml:"display"`
	Logging  logging.Options `yaml:"logging"`
	Registry RegistryConfig  `yaml:"registry"`
}

// GameConfig holds the selectable difficulties.
type GameConfig struct {
	Difficulties []difficulty.Mode `yaml:"difficulties"`
}

// RankingConfig limits how many ranking rows are shown per difficulty.
type RankingConfig struct {
	Limit int `yaml:"limit"`
}

// DisplayConfig controls console styling.
type DisplayConfig struct {
	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// RegistryConfig points at the user registry database.
type RegistryConfig struct {
	DSN string `yaml:"dsn"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Game:    GameConfig{Difficulties: difficulty.Defaults()},
		Ranking: RankingConfig{Limit: 10},
		Display: DisplayConfig{Color: "auto"},
		Logging: logging.Options{
			Level:  "warn",
			Output: "stderr",
		},
		Registry: RegistryConfig{DSN: db.MemoryDSN},
	}
}

// Load reads and parses a YAML config file over the defaults.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values Load cannot fill in.
func (c *Config) Validate() error {
	if _, err := difficulty.NewTable(c.Game.Difficulties); err != nil {
		return fmt.Errorf("%w: game.difficulties: %v", ErrInvalid, err)
	}
	if c.Ranking.Limit < 1 {
		return fmt.Errorf("%w: ranking.limit must be at least 1, got %d", ErrInvalid, c.Ranking.Limit)
	}
	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: display.color must be auto, always or never, got %q", ErrInvalid, c.Display.Color)
	}
	if c.Registry.DSN == "" {
		return fmt.Errorf("%w: registry.dsn is empty", ErrInvalid)
	}
	return nil
}
