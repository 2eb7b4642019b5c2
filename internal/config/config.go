// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the binaries need to start an arena.
type Config struct {
	// Seed drives every random draw of a run; 0 picks one from the clock.
	Seed      int64 `env:"DUNGEON_SEED" envDefault:"0"`
	Depth     int   `env:"DUNGEON_DEPTH" envDefault:"1"`
	HeroLevel int   `env:"DUNGEON_HERO_LEVEL" envDefault:"1"`

	BestiaryPath string `env:"DUNGEON_BESTIARY"`
	CatalogPath  string `env:"DUNGEON_CATALOG"`
	DataDir      string `env:"DUNGEON_DATA_DIR"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	SSHPort int    `env:"DUNGEON_SSH_PORT" envDefault:"2222"`
	HostKey string `env:"DUNGEON_HOST_KEY" envDefault:"server_host_key"`
}

// Load parses the environment into a Config and fills derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Depth < 1 {
		return Config{}, fmt.Errorf("DUNGEON_DEPTH must be at least 1, got %d", cfg.Depth)
	}
	if cfg.HeroLevel < 1 {
		return Config{}, fmt.Errorf("DUNGEON_HERO_LEVEL must be at least 1, got %d", cfg.HeroLevel)
	}
	if cfg.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}

// RunSeed returns the configured seed, or a clock-derived one.
func (c Config) RunSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// defaultDataDir follows the XDG Base Directory layout:
// $XDG_DATA_HOME/dungeon-crawl, defaulting to ~/.local/share/dungeon-crawl.
func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate data dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dungeon-crawl"), nil
}
