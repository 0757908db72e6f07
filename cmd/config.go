package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/pausa/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for pausa.

Shows the configuration file location, whether it exists, and all current
settings. Configuration values are merged from the config file with
sensible defaults.

By default, pausa works without any configuration file. All settings have
defaults:
  - interval: 50m
  - min_interval: 5m
  - max_interval: 4h
  - step: 5m
  - max_reminders: 8
  - reminder_every: 5m
  - bell: true
  - desktop_notifications: true
  - theme: dracula

Examples:

  Display current configuration:
    pausa config                     Show all current settings

  Create a starter config file:
    pausa config init                Write a commented sample file

Configuration file location:
  ~/.config/pausa/config.toml        Linux/macOS
  %APPDATA%\pausa\config.toml        Windows`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented sample config file",
	Long: `Write a commented sample configuration file with all available
settings at the default location. Fails if a config file already exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	// Load config (will use defaults if file doesn't exist)
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "Durations use the Go format, like 50m or 1h30m")
		deps.Exit(1)
		return
	}

	// Display header
	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for pausa")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display config file location and status
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display current settings
	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Interval:              %s\n", cfg.Interval)
	_, _ = fmt.Fprintf(deps.Stdout, "Minimum Interval:      %s\n", cfg.MinInterval)
	_, _ = fmt.Fprintf(deps.Stdout, "Maximum Interval:      %s\n", cfg.MaxInterval)
	_, _ = fmt.Fprintf(deps.Stdout, "Step:                  %s\n", cfg.Step)
	_, _ = fmt.Fprintf(deps.Stdout, "Max Reminders:         %d\n", cfg.MaxReminders)
	_, _ = fmt.Fprintf(deps.Stdout, "Reminder Every:        %s\n", cfg.ReminderEvery)
	_, _ = fmt.Fprintf(deps.Stdout, "Bell:                  %t\n", cfg.Bell)
	_, _ = fmt.Fprintf(deps.Stdout, "Desktop Notifications: %t\n", cfg.DesktopNotifications)
	_, _ = fmt.Fprintf(deps.Stdout, "Theme:                 %s\n", cfg.Theme)
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display helpful information if using defaults
	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'pausa config init' to create a commented sample file.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes a commented sample config file
func initConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := config.WriteSample(configPath); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write sample config")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Remove or back up the existing file first: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Wrote sample config to %s\n", configPath)
}
