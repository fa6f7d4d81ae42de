package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/config"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/migrations"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	flag.Parse()

	action := migrations.ActionUp
	if flag.NArg() > 0 {
		action = migrations.Action(flag.Arg(0))
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dialect, databaseURL, err := target(cfg.Storage)
	if err != nil {
		log.Fatalf("migration %s failed: %v", action, err)
	}

	version, err := migrations.Run(action, dialect, databaseURL)
	if err != nil {
		log.Fatalf("migration %s failed: %v", action, err)
	}

	if !version.Applied {
		log.Printf("migration %s completed: no migration applied", action)
		return
	}
	log.Printf("migration %s completed: version=%d dirty=%t", action, version.Version, version.Dirty)
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func target(cfg config.StorageConfig) (migrations.Dialect, string, error) {
	switch cfg.Driver {
	case config.StoragePostgres:
		return migrations.DialectPostgres, cfg.Database.DSN(), nil
	case config.StorageSQLite:
		return migrations.DialectSQLite, cfg.SQLite.SQLiteURL(), nil
	default:
		return "", "", fmt.Errorf("storage driver %q has no schema to migrate", cfg.Driver)
	}
}
