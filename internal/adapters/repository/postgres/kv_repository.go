package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	pgdb "github.com/ogurasousui/codex-hr-dashboard/internal/platform/db/postgres"
)

// KVRepository は PostgreSQL の kv_store テーブルを利用したキーバリュー永続化の実装です。
type KVRepository struct {
	pool pgdb.Queryer
}

// NewKVRepository は KVRepository を生成します。
func NewKVRepository(pool pgdb.Queryer) *KVRepository {
	return &KVRepository{pool: pool}
}

// Get はキーに対応する値を取得します。
func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("postgres: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set はキーの値を上書き保存します。
func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO kv_store (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE
           SET value = EXCLUDED.value,
               updated_at = EXCLUDED.updated_at
    `, key, value)
	if err != nil {
		return fmt.Errorf("postgres: set %s: %w", key, err)
	}
	return nil
}
