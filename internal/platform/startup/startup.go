package startup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kedai-ramen/site-backend/internal/platform/config"
	"github.com/kedai-ramen/site-backend/internal/platform/database"
	"github.com/kedai-ramen/site-backend/internal/settings"
)

// StoreHandle is the opened settings backend and how to release it.
type StoreHandle struct {
	Store  settings.Store
	Driver string
	Close  func() error
}

// OpenStore connects the backend selected by cfg.Driver. SQL backends are
// migrated before use.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (*StoreHandle, error) {
	switch cfg.Driver {
	case config.DriverSqlite, config.DriverPostgres:
		db, err := database.OpenDB(cfg, log)
		if err != nil {
			return nil, err
		}
		store := settings.NewGormStore(db)
		if err := store.Migrate(); err != nil {
			database.CloseDB(db)
			return nil, err
		}
		log.Info("settings table ready")
		return &StoreHandle{
			Store:  store,
			Driver: cfg.Driver,
			Close:  func() error { return database.CloseDB(db) },
		}, nil

	case config.DriverRedis:
		client, err := database.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		return &StoreHandle{
			Store:  settings.NewRedisStore(client, cfg.Redis.HashKey),
			Driver: cfg.Driver,
			Close:  client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
