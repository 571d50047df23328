// Package config provides YAML-based configuration loading for term2048.
package config

import (
	"fmt"
	"strings"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config contains all term2048 configuration.
type Config struct {
	Storage Storage `yaml:"storage"`
	Log     Log     `yaml:"log"`
	UI      UI      `yaml:"ui"`
}

// Storage selects and configures the score backend.
type Storage struct {
	Driver       string `yaml:"driver"`
	Path         string `yaml:"path"`
	RedisURL     string `yaml:"redis_url"`
	BestKey      string `yaml:"best_key"`
	HistoryLimit int    `yaml:"history_limit"`
}

// Log configures the file logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// UI holds presentation toggles.
type UI struct {
	ShowHelp bool `yaml:"show_help"`
	Color    bool `yaml:"color"`
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("config: storage.path is required for the sqlite driver")
		}
	case DriverRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("config: storage.redis_url is required for the redis driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if c.Storage.HistoryLimit < 0 {
		return fmt.Errorf("config: storage.history_limit must not be negative")
	}

	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}
