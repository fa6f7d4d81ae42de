package postgres

import (
	"testing"
	"time"

	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/config"
)

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	dbCfg := config.DatabaseConfig{
		Host:            "localhost",
		Port:            15432,
		User:            "hrdash",
		Password:        "pass",
		Name:            "hrdash_test",
		SSLMode:         "disable",
		MaxOpenConns:    8,
		MaxIdleConns:    2,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}

	poolCfg, err := BuildPoolConfig(dbCfg)
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != 8 {
		t.Errorf("expected MaxConns 8, got %d", poolCfg.MaxConns)
	}

	if poolCfg.MinConns != 2 {
		t.Errorf("expected MinConns 2, got %d", poolCfg.MinConns)
	}

	if poolCfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime: %v", poolCfg.MaxConnLifetime)
	}

	if poolCfg.MaxConnIdleTime != 10*time.Minute {
		t.Errorf("unexpected MaxConnIdleTime: %v", poolCfg.MaxConnIdleTime)
	}

	if poolCfg.ConnConfig.Database != "hrdash_test" {
		t.Errorf("expected database hrdash_test, got %s", poolCfg.ConnConfig.Database)
	}

	if got := poolCfg.ConnConfig.RuntimeParams["application_name"]; got != ApplicationName {
		t.Errorf("expected application_name %s, got %q", ApplicationName, got)
	}
}

func TestBuildPoolConfig_DefaultsForBookmarkWorkload(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(config.DatabaseConfig{
		Host:         "localhost",
		Port:         5432,
		User:         "hrdash",
		Password:     "pass",
		Name:         "hrdash",
		SSLMode:      "disable",
		MaxIdleConns: 10,
	})
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != defaultMaxConns {
		t.Errorf("expected default MaxConns %d, got %d", defaultMaxConns, poolCfg.MaxConns)
	}
	if poolCfg.MinConns != defaultMaxConns {
		t.Errorf("expected MinConns clamped to %d, got %d", defaultMaxConns, poolCfg.MinConns)
	}
	if poolCfg.HealthCheckPeriod != time.Minute {
		t.Errorf("unexpected HealthCheckPeriod: %v", poolCfg.HealthCheckPeriod)
	}
}
