// Package storage implements the client-local key/value store and the
// repositories persisted in it.
package storage

import (
	"context"
	"log/slog"

	"blinkbuy/config"
	"blinkbuy/internal/domain/constants"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrKeyNotFound is returned by Get when nothing is stored under a key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal byte-oriented key/value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// StoreParams holds dependencies for Store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates the Store selected by storage.provider
func NewStore(params StoreParams) (Store, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil {
		cfg = &config.StorageConfig{Provider: constants.StorageProviderMem}
	}

	var (
		store Store
		err   error
	)

	switch cfg.Provider {
	case constants.StorageProviderMem, "":
		logger.Info("Using in-memory storage, data is lost on restart")

		store, err = NewMemStore(cfg.KeyPrefix)

	case constants.StorageProviderFile:
		if cfg.Dir == "" {
			return nil, errors.New("storage dir is required for file provider")
		}
		logger.Info("Using file storage", slog.String("dir", cfg.Dir))

		store, err = NewFileStore(cfg.Dir, cfg.KeyPrefix)

	case constants.StorageProviderRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("redis url is required for redis provider")
		}
		logger.Info("Using Redis storage")

		store, err = NewRedisStore(params.Ctx, cfg.RedisURL, cfg.KeyPrefix)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing storage")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewCartRepository,
		NewRecentSearchRepository,
		NewOrderRepository,
	),
)
