package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/xolan/pausa/internal/config"
	"github.com/xolan/pausa/internal/notify"
)

func TestNewServicesWithConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()

	services, err := NewServicesWithConfig(configPath, cfg, notify.Multi{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if services.Timer == nil {
		t.Error("expected timer service")
	}
	if services.Config == nil {
		t.Error("expected config service")
	}

	status := services.Timer.Status()
	if status.Snapshot.Interval != 50*time.Minute {
		t.Errorf("interval = %v, expected 50m from defaults", status.Snapshot.Interval)
	}
}

func TestNewServicesWithConfig_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()
	cfg.Step = "bogus"

	if _, err := NewServicesWithConfig(configPath, cfg, notify.Multi{}, zerolog.Nop()); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestBuildNotifier_RespectsToggles(t *testing.T) {
	log := zerolog.Nop()

	cfg := config.DefaultConfig()
	cfg.Bell = false
	cfg.DesktopNotifications = false
	n := BuildNotifier(cfg, log)
	if multi, ok := n.(notify.Multi); !ok || len(multi) != 0 {
		t.Errorf("expected empty notifier stack, got %#v", n)
	}

	cfg.Bell = true
	n = BuildNotifier(cfg, log)
	multi, ok := n.(notify.Multi)
	if !ok || len(multi) != 1 {
		t.Fatalf("expected one notifier, got %#v", n)
	}
	if _, ok := multi[0].(notify.Bell); !ok {
		t.Errorf("expected bell notifier, got %T", multi[0])
	}
}
