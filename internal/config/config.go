// Package config loads and validates the pausa configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/pausa/internal/osutil"
	"github.com/xolan/pausa/internal/timer"
)

const (
	// AppName is the application name used for the config directory
	AppName = "pausa"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration. Durations are stored
// as strings in Go duration syntax ("50m", "1h30m") so the TOML file
// stays readable.
type Config struct {
	// Interval is the break frequency at startup
	Interval string `toml:"interval"`
	// MinInterval is the floor that decrease adjustments never go below
	MinInterval string `toml:"min_interval"`
	// MaxInterval is the cap that increase adjustments never exceed
	MaxInterval string `toml:"max_interval"`
	// Step is the amount each increase/decrease keypress applies
	Step string `toml:"step"`
	// MaxReminders is how many notifications a single break produces,
	// counting the first; 0 means notify once and restart immediately
	MaxReminders int `toml:"max_reminders"`
	// ReminderEvery is the pause between repeated notifications for an
	// unacknowledged break
	ReminderEvery string `toml:"reminder_every"`
	// Bell rings the terminal bell on each notification
	Bell bool `toml:"bell"`
	// DesktopNotifications spawns the system notifier (notify-send or
	// osascript) on each notification when available
	DesktopNotifications bool `toml:"desktop_notifications"`
	// Theme is the TUI color theme (bubbletint theme id)
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with the defaults the original tool
// shipped with: a 50-minute work interval, adjustable in 5-minute steps
// down to 5 minutes, re-reminding every 5 minutes up to 8 times.
func DefaultConfig() Config {
	return Config{
		Interval:             "50m",
		MinInterval:          "5m",
		MaxInterval:          "4h",
		Step:                 "5m",
		MaxReminders:         8,
		ReminderEvery:        "5m",
		Bell:                 true,
		DesktopNotifications: true,
		Theme:                "dracula",
	}
}

// Normalize trims whitespace and lowercases fields that are compared
// case-insensitively.
func (c *Config) Normalize() {
	c.Interval = strings.TrimSpace(c.Interval)
	c.MinInterval = strings.TrimSpace(c.MinInterval)
	c.MaxInterval = strings.TrimSpace(c.MaxInterval)
	c.Step = strings.TrimSpace(c.Step)
	c.ReminderEvery = strings.TrimSpace(c.ReminderEvery)
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
}

// Validate checks that every duration parses and that the interval
// bounds are coherent. A config that validates can always be turned into
// timer.Options.
func (c Config) Validate() error {
	interval, err := parseDurationField("interval", c.Interval)
	if err != nil {
		return err
	}
	minInterval, err := parseDurationField("min_interval", c.MinInterval)
	if err != nil {
		return err
	}
	maxInterval, err := parseDurationField("max_interval", c.MaxInterval)
	if err != nil {
		return err
	}
	step, err := parseDurationField("step", c.Step)
	if err != nil {
		return err
	}
	reminderEvery, err := parseDurationField("reminder_every", c.ReminderEvery)
	if err != nil {
		return err
	}

	if minInterval <= 0 {
		return fmt.Errorf("min_interval must be positive, got %s", minInterval)
	}
	if minInterval > maxInterval {
		return fmt.Errorf("min_interval %s exceeds max_interval %s", minInterval, maxInterval)
	}
	if interval < minInterval || interval > maxInterval {
		return fmt.Errorf("interval %s outside [%s, %s]", interval, minInterval, maxInterval)
	}
	if step <= 0 {
		return fmt.Errorf("step must be positive, got %s", step)
	}
	if reminderEvery <= 0 {
		return fmt.Errorf("reminder_every must be positive, got %s", reminderEvery)
	}
	if c.MaxReminders < 0 {
		return fmt.Errorf("max_reminders must not be negative, got %d", c.MaxReminders)
	}

	return nil
}

// TimerOptions converts the validated config into engine options.
func (c Config) TimerOptions() (timer.Options, error) {
	if err := c.Validate(); err != nil {
		return timer.Options{}, err
	}

	// Validate already proved these parse.
	interval, _ := time.ParseDuration(c.Interval)
	minInterval, _ := time.ParseDuration(c.MinInterval)
	maxInterval, _ := time.ParseDuration(c.MaxInterval)
	step, _ := time.ParseDuration(c.Step)
	reminderEvery, _ := time.ParseDuration(c.ReminderEvery)

	return timer.Options{
		Interval:      interval,
		Min:           minInterval,
		Max:           maxInterval,
		Step:          step,
		MaxReminders:  c.MaxReminders,
		ReminderEvery: reminderEvery,
	}, nil
}

func parseDurationField(name, value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("%s must be set", name)
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q (use forms like \"50m\" or \"1h30m\")", name, value)
	}
	return d, nil
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at path, layered over the defaults
// so absent keys keep their default values. A missing file yields the
// defaults without error; a malformed or invalid file is an error.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to path as TOML using an atomic
// write-then-rename so a crash never leaves a truncated file.
func Save(path string, cfg Config) error {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, []byte(b.String()), 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}

// SampleFile is the commented config written by `pausa config init`.
const SampleFile = `# pausa configuration
#
# Durations use Go syntax: "50m", "1h30m", "90s".

# Break frequency at startup.
interval = "50m"

# Bounds for runtime +/- adjustments.
min_interval = "5m"
max_interval = "4h"

# Amount each +/- keypress adds or removes.
step = "5m"

# How many times a single break notifies before the countdown restarts
# on its own (counting the first notification). 0 = notify once and
# restart immediately.
max_reminders = 8
reminder_every = "5m"

# Notification channels.
bell = true
desktop_notifications = true

# TUI color theme. Run the TUI and open Settings to browse themes.
theme = "dracula"
`

// WriteSample writes the commented sample config to path. Fails if the
// file already exists.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	return os.WriteFile(path, []byte(SampleFile), 0644)
}
