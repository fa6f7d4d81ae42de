package migrations

import (
	"io/fs"
	"testing"
)

func TestFS_ListsMigrationsPerDialect(t *testing.T) {
	t.Parallel()

	for _, dialect := range []Dialect{DialectPostgres, DialectSQLite} {
		sub, err := FS(dialect)
		if err != nil {
			t.Fatalf("FS(%s) returned error: %v", dialect, err)
		}
		matches, err := fs.Glob(sub, "*.up.sql")
		if err != nil {
			t.Fatalf("glob failed: %v", err)
		}
		if len(matches) == 0 {
			t.Fatalf("expected up migrations for %s", dialect)
		}
	}
}

func TestFS_UnsupportedDialect(t *testing.T) {
	t.Parallel()

	if _, err := FS("mysql"); err == nil {
		t.Fatal("expected error for unsupported dialect")
	}
}
