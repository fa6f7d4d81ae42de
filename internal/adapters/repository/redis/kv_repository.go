package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Client は KVRepository が利用する Redis コマンドの部分集合です。*goredis.Client が満たします。
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}

// KVRepository は Redis を利用したキーバリュー永続化の実装です。キーには prefix が付与されます。
type KVRepository struct {
	client Client
	prefix string
}

// NewKVRepository は KVRepository を生成します。
func NewKVRepository(client Client, prefix string) *KVRepository {
	return &KVRepository{client: client, prefix: prefix}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set はキーの値を有効期限なしで保存します。
func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}
