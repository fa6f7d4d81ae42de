package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/config"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/migrations"
	_ "modernc.org/sqlite"
)

// Open はクライアントローカルな SQLite データベースを開き、埋め込みマイグレーションを適用します。
func Open(ctx context.Context, cfg config.SQLiteConfig) (*sql.DB, error) {
	path := cfg.FilePath()
	if path == "" {
		return nil, fmt.Errorf("sqlite: path must be set")
	}

	if _, err := migrations.Run(migrations.ActionUp, migrations.DialectSQLite, cfg.SQLiteURL()); err != nil {
		return nil, fmt.Errorf("sqlite: migrate %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// 単一プロセス内の書き込みを直列化し SQLITE_BUSY を避ける
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", path, err)
	}
	return db, nil
}
