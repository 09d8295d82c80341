package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ArchiveRoot string `toml:"archive_root"`
	UsersFile   string `toml:"users_file"`
	TopN        int    `toml:"top_n"`
	LogLevel    string `toml:"log_level"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ArchiveRoot: filepath.Join(home, "slack-export"),
		TopN:        20,
		LogLevel:    "info",
	}

	cfgPath := filepath.Join(home, ".config", "slackstats", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.ArchiveRoot = expandHome(cfg.ArchiveRoot, home)
	cfg.UsersFile = expandHome(cfg.UsersFile, home)

	// users.json lives at the export root unless overridden
	if cfg.UsersFile == "" {
		cfg.UsersFile = filepath.Join(cfg.ArchiveRoot, "users.json")
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
