package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/pausa/internal/osutil"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"empty interval", func(c *Config) { c.Interval = "" }, "interval must be set"},
		{"garbage duration", func(c *Config) { c.Step = "five minutes" }, "invalid duration"},
		{"zero min", func(c *Config) { c.MinInterval = "0s" }, "min_interval must be positive"},
		{"negative min", func(c *Config) { c.MinInterval = "-5m" }, "min_interval must be positive"},
		{"min above max", func(c *Config) { c.MinInterval = "5h" }, "exceeds max_interval"},
		{"interval below min", func(c *Config) { c.Interval = "1m" }, "outside"},
		{"interval above max", func(c *Config) { c.Interval = "10h" }, "outside"},
		{"zero step", func(c *Config) { c.Step = "0s" }, "step must be positive"},
		{"zero reminder cadence", func(c *Config) { c.ReminderEvery = "0s" }, "reminder_every must be positive"},
		{"negative reminders", func(c *Config) { c.MaxReminders = -1 }, "max_reminders must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		Interval: " 50m ",
		Step:     "5m\n",
		Theme:    " Dracula ",
	}
	cfg.Normalize()

	if cfg.Interval != "50m" {
		t.Errorf("interval = %q", cfg.Interval)
	}
	if cfg.Step != "5m" {
		t.Errorf("step = %q", cfg.Step)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("theme = %q", cfg.Theme)
	}
}

func TestTimerOptions(t *testing.T) {
	opts, err := DefaultConfig().TimerOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Interval != 50*time.Minute {
		t.Errorf("interval = %v", opts.Interval)
	}
	if opts.Min != 5*time.Minute {
		t.Errorf("min = %v", opts.Min)
	}
	if opts.Max != 4*time.Hour {
		t.Errorf("max = %v", opts.Max)
	}
	if opts.Step != 5*time.Minute {
		t.Errorf("step = %v", opts.Step)
	}
	if opts.MaxReminders != 8 {
		t.Errorf("max reminders = %d", opts.MaxReminders)
	}
	if opts.ReminderEvery != 5*time.Minute {
		t.Errorf("reminder cadence = %v", opts.ReminderEvery)
	}
}

func TestTimerOptions_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = "bogus"
	if _, err := cfg.TimerOptions(); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOrDefault_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "interval = \"30m\"\nmax_reminders = 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Interval != "30m" {
		t.Errorf("interval = %q, expected 30m", cfg.Interval)
	}
	if cfg.MaxReminders != 2 {
		t.Errorf("max_reminders = %d, expected 2", cfg.MaxReminders)
	}
	// Untouched keys keep their defaults.
	if cfg.Step != "5m" {
		t.Errorf("step = %q, expected default 5m", cfg.Step)
	}
	if !cfg.Bell {
		t.Error("expected bell default true")
	}
}

func TestLoadOrDefault_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("interval = [broken"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadOrDefault(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoadOrDefault_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("interval = \"1s\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadOrDefault(path)
	if err == nil {
		t.Fatal("expected error for out-of-bounds interval")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Interval = "25m"
	cfg.Theme = "nord"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round-trip mismatch:\nsaved:  %+v\nloaded: %+v", cfg, loaded)
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := WriteSample(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The sample must parse and validate.
	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("sample should match defaults, got %+v", cfg)
	}

	// Refuses to overwrite.
	if err := WriteSample(path); err == nil {
		t.Error("expected error when file exists")
	}
}

type failingProvider struct {
	osutil.DefaultPathProvider
	configErr error
	mkdirErr  error
}

func (p failingProvider) UserConfigDir() (string, error) {
	if p.configErr != nil {
		return "", p.configErr
	}
	return p.DefaultPathProvider.UserConfigDir()
}

func (p failingProvider) MkdirAll(path string, perm os.FileMode) error {
	if p.mkdirErr != nil {
		return p.mkdirErr
	}
	return p.DefaultPathProvider.MkdirAll(path, perm)
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != ConfigFile {
		t.Errorf("expected path ending in %s, got %s", ConfigFile, path)
	}
	if !strings.Contains(path, AppName) {
		t.Errorf("expected path to contain %s, got %s", AppName, path)
	}
}

func TestGetConfigPath_ProviderErrors(t *testing.T) {
	defer osutil.ResetProvider()

	osutil.SetProvider(failingProvider{configErr: errors.New("no home")})
	if _, err := GetConfigPath(); err == nil {
		t.Error("expected error when config dir is unavailable")
	}

	osutil.SetProvider(failingProvider{mkdirErr: errors.New("read-only fs")})
	if _, err := GetConfigPath(); err == nil {
		t.Error("expected error when mkdir fails")
	}
}
