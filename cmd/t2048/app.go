package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/logging"
	"github.com/vovakirdan/term2048/internal/storage"
	"github.com/vovakirdan/term2048/internal/storage/redisstore"
)

// overrides are the command-line values that win over the config file.
type overrides struct {
	driver   string
	dbPath   string
	redisURL string
	logLevel string
}

func flagOverrides() overrides {
	return overrides{
		driver:   flagDriver,
		dbPath:   flagDBPath,
		redisURL: flagRedisURL,
		logLevel: flagLogLevel,
	}
}

// resolveConfig loads the config file, applies flag overrides and validates.
func resolveConfig(path string, o overrides) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if o.driver != "" {
		cfg.Storage.Driver = o.driver
	}
	if o.dbPath != "" {
		cfg.Storage.Path = o.dbPath
	}
	if o.redisURL != "" {
		cfg.Storage.RedisURL = o.redisURL
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openBackend opens the score storage selected by cfg.Driver.
func openBackend(cfg config.Storage) (storage.Backend, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := storage.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverRedis:
		rcfg := redisstore.DefaultConfig()
		rcfg.URL = cfg.RedisURL
		store, err := redisstore.New(rcfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverMemory:
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// app bundles what every command needs.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	backend storage.Backend
	closers []io.Closer
}

// setup loads config, opens the log file and the score backend.
// When the backend cannot be opened the game falls back to memory storage.
func setup() (*app, error) {
	cfg, err := resolveConfig(flagConfig, flagOverrides())
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	backend, err := openBackend(cfg.Storage)
	if err != nil {
		logger.Warn("score storage unavailable, scores will not be kept", "driver", cfg.Storage.Driver, "error", err)
		backend = storage.NewMemory()
	}
	a.backend = backend
	a.closers = append([]io.Closer{backend}, a.closers...)

	logger.Debug("storage ready", "driver", cfg.Storage.Driver)
	return a, nil
}

// Close releases the backend and the log file.
func (a *app) Close() {
	for _, c := range a.closers {
		//nolint:errcheck // Best-effort cleanup on exit
		c.Close()
	}
}
