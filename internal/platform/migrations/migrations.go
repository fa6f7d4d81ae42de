// Package migrations はバイナリに埋め込まれたスキーマ定義を提供します。
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect はマイグレーションの対象データベースです。
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// FS は dialect に対応するマイグレーションファイル群を返します。
func FS(dialect Dialect) (fs.FS, error) {
	switch dialect {
	case DialectPostgres, DialectSQLite:
		sub, err := fs.Sub(files, string(dialect))
		if err != nil {
			return nil, fmt.Errorf("migrations: %s: %w", dialect, err)
		}
		return sub, nil
	default:
		return nil, fmt.Errorf("migrations: unsupported dialect %q", dialect)
	}
}
