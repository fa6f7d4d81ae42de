package repository

import (
	"context"
	"fmt"

	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/repository/redis"
	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/config"
	pg "github.com/ogurasousui/codex-hr-dashboard/internal/platform/db/postgres"
	sqlitedb "github.com/ogurasousui/codex-hr-dashboard/internal/platform/db/sqlite"
	goredis "github.com/redis/go-redis/v9"
)

// CloseFunc は保存先の接続を解放します。
type CloseFunc func() error

// OpenStorage は設定されたドライバーに対応するブックマーク保存先を開きます。
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (bookmark.Storage, CloseFunc, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		return memory.NewKVRepository(), func() error { return nil }, nil

	case config.StorageSQLite:
		db, err := sqlitedb.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return sqlite.NewKVRepository(db), db.Close, nil

	case config.StoragePostgres:
		pool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres storage: %w", err)
		}
		return postgres.NewKVRepository(pool), func() error { pool.Close(); return nil }, nil

	case config.StorageRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("open redis storage: %w", err)
		}
		return redis.NewKVRepository(client, cfg.Redis.KeyPrefix), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("storage driver %q is not supported", cfg.Driver)
	}
}
