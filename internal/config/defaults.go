package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: Storage{
			Driver:       DriverSQLite,
			Path:         "~/.t2048/scores.db",
			RedisURL:     "redis://localhost:6379/0",
			BestKey:      "default",
			HistoryLimit: 10,
		},
		Log: Log{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
		UI: UI{
			ShowHelp: true,
			Color:    true,
		},
	}
}
