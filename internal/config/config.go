package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultVolume  *float64 `koanf:"default_volume"`   // initial volume 0.0-1.0 (default 1.0)
	RestoreVolume  *bool    `koanf:"restore_volume"`   // restore last session volume on start (default true)
	TickIntervalMS int      `koanf:"tick_interval_ms"` // player bar refresh period (default 250)
}

func Load() (*Config, error) {
	return loadPaths(getConfigPaths())
}

func loadPaths(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/chime/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "chime", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// Volume returns the configured default volume with the default applied.
func (c *Config) Volume() float64 {
	if c.DefaultVolume == nil || *c.DefaultVolume < 0 || *c.DefaultVolume > 1 {
		return 1.0
	}
	return *c.DefaultVolume
}

// ShouldRestoreVolume returns whether the last session volume should be
// restored from the state store.
func (c *Config) ShouldRestoreVolume() bool {
	return c.RestoreVolume == nil || *c.RestoreVolume
}

// TickInterval returns the player bar refresh period with the default
// applied.
func (c *Config) TickInterval() time.Duration {
	if c.TickIntervalMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}
