// Package factory wires the application's components together.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ugordi/gladialore-admin/internal/dependencies/clock"
	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/session"
	"github.com/ugordi/gladialore-admin/internal/storage"
	"github.com/ugordi/gladialore-admin/internal/storage/memory"
	redisstorage "github.com/ugordi/gladialore-admin/internal/storage/redis"
	"github.com/ugordi/gladialore-admin/internal/web"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage  storage.Storage
	Clock    clock.Clock
	Sessions *session.Service
	API      *glapi.Client
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the session storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SessionConfig holds session lifetime settings (optional)
	SessionConfig session.Config
	// APIConfig holds backend API client settings (optional)
	APIConfig glapi.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	apiCfg := cfg.APIConfig
	if apiCfg.Logger == nil {
		apiCfg.Logger = logger
	}

	return newWithDependencies(store, clk, cfg.SessionConfig, apiCfg), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, sessionCfg session.Config, apiCfg glapi.Config) *App {
	sessions := session.New(store, clk, sessionCfg)

	// One API client serves every admin; each request binds its own session
	// through the context-backed token source
	api := glapi.New(apiCfg, web.NewSessionTokens(sessions))

	return &App{
		Storage:  store,
		Clock:    clk,
		Sessions: sessions,
		API:      api,
	}
}
