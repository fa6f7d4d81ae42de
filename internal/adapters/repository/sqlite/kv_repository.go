package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX は *sql.DB と *sql.Tx に共通するクエリ実行インターフェースです。
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// KVRepository は SQLite の kv_store テーブルを利用したクライアントローカルな永続化の実装です。
type KVRepository struct {
	db DBTX
}

// NewKVRepository は KVRepository を生成します。
func NewKVRepository(db DBTX) *KVRepository {
	return &KVRepository{db: db}
}

// Get はキーに対応する値を取得します。
func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("sqlite: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set はキーの値を上書き保存します。
func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("sqlite: set %s: %w", key, err)
	}
	return nil
}
