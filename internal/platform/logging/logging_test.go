package logging

import (
	"testing"

	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/config"
	"go.uber.org/zap"
)

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()

	logger, err := New(config.LoggingConfig{Level: "warn"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if logger.Core().Enabled(zap.InfoLevel) {
		t.Fatal("info must be disabled at warn level")
	}
	if !logger.Core().Enabled(zap.WarnLevel) {
		t.Fatal("warn must be enabled at warn level")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	if _, err := New(config.LoggingConfig{Level: "chatty"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
