package service

import (
	"path/filepath"
	"testing"

	"github.com/xolan/pausa/internal/config"
)

func newTestConfigService(t *testing.T) *ConfigService {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	return NewConfigService(configPath, config.DefaultConfig())
}

func TestConfigService_Get(t *testing.T) {
	svc := newTestConfigService(t)
	if svc.Get() != config.DefaultConfig() {
		t.Error("expected default config")
	}
}

func TestConfigService_Exists(t *testing.T) {
	svc := newTestConfigService(t)
	if svc.Exists() {
		t.Error("expected config file to not exist yet")
	}

	if err := svc.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !svc.Exists() {
		t.Error("expected config file to exist after init")
	}
}

func TestConfigService_Update(t *testing.T) {
	svc := newTestConfigService(t)

	cfg := svc.Get()
	cfg.Theme = "nord"
	cfg.Interval = "30m"
	if err := svc.Update(cfg); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if svc.Get().Theme != "nord" {
		t.Errorf("in-memory config not updated: %q", svc.Get().Theme)
	}

	// The file round-trips.
	loaded, err := config.LoadOrDefault(svc.GetPath())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Interval != "30m" {
		t.Errorf("persisted interval = %q, expected 30m", loaded.Interval)
	}
}

func TestConfigService_Update_Invalid(t *testing.T) {
	svc := newTestConfigService(t)

	cfg := svc.Get()
	cfg.Interval = "not a duration"
	if err := svc.Update(cfg); err == nil {
		t.Fatal("expected error for invalid config")
	}

	// The bad config must not stick.
	if svc.Get().Interval != config.DefaultConfig().Interval {
		t.Error("invalid config leaked into memory")
	}
	if svc.Exists() {
		t.Error("invalid config should not have been written")
	}
}

func TestConfigService_Init_RefusesOverwrite(t *testing.T) {
	svc := newTestConfigService(t)

	if err := svc.Init(); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := svc.Init(); err == nil {
		t.Error("expected error on second init")
	}
}
