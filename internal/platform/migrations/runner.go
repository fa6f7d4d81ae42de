package migrations

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Action はマイグレーションの操作種別です。
type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionDrop    Action = "drop"
	ActionVersion Action = "version"
)

// Version はマイグレーションの適用状況です。
type Version struct {
	Version uint
	Dirty   bool
	Applied bool
}

// Run は埋め込みマイグレーションを databaseURL に対して実行します。
//
// databaseURL は golang-migrate 形式 (postgres://..., sqlite://path) で指定します。
func Run(action Action, dialect Dialect, databaseURL string) (Version, error) {
	src, err := FS(dialect)
	if err != nil {
		return Version{}, err
	}

	driver, err := iofs.New(src, ".")
	if err != nil {
		return Version{}, fmt.Errorf("migrations: open source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", driver, databaseURL)
	if err != nil {
		return Version{}, fmt.Errorf("migrations: create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case ActionUp:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return Version{}, err
		}
	case ActionDown:
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return Version{}, err
		}
	case ActionDrop:
		if err := m.Drop(); err != nil {
			return Version{}, err
		}
		return Version{}, nil
	case ActionVersion:
	default:
		return Version{}, fmt.Errorf("migrations: unsupported action %q", action)
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Version{}, nil
	}
	if err != nil {
		return Version{}, err
	}
	return Version{Version: version, Dirty: dirty, Applied: true}, nil
}
