package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/xolan/pausa/internal/config"
	"github.com/xolan/pausa/internal/logging"
	"github.com/xolan/pausa/internal/service"
	"github.com/xolan/pausa/internal/tui"
)

// runProgram launches the TUI. Tests replace it to avoid taking over
// the terminal.
var runProgram = tui.Run

var rootCmd = &cobra.Command{
	Use:   "pausa",
	Short: "A terminal break timer",
	Long: `pausa is a terminal-resident break timer. It counts down a work
interval and reminds you to step away when it reaches zero.

Usage:
  pausa                       Start the timer with the configured interval
  pausa --interval 25m        Start with a 25 minute interval
  pausa config                Show the current configuration
  pausa config init           Write a commented sample config file

Keyboard shortcuts while running:
  +/=        Lengthen the interval
  -/_        Shorten the interval (never below the minimum)
  b/Enter    Acknowledge a break and restart the countdown
  Tab, 1-2   Switch between the Timer and Settings views
  q          Quit

Duration format: Go durations like 50m, 1h30m, or 90s.`,
	Args: cobra.NoArgs,
}

func init() {
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		runTimer()
	}
	rootCmd.Flags().String("interval", "", "Work interval before a break (e.g., 50m, 1h)")
	rootCmd.Flags().String("step", "", "Adjustment step for the +/- keys (e.g., 5m)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path (defaults to the user cache directory)")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"pausa version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runTimer loads configuration, applies flag overrides, and starts the
// timer TUI.
func runTimer() {
	log, closeLog := openLogger()
	defer closeLog()

	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return
	}

	// Flag overrides apply for this run only; they are not written back
	// to the config file.
	if v, _ := rootCmd.Flags().GetString("interval"); v != "" {
		cfg.Interval = v
	}
	if v, _ := rootCmd.Flags().GetString("step"); v != "" {
		cfg.Step = v
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Durations use the Go format, like 50m or 1h30m")
		deps.Exit(1)
		return
	}

	services, err := service.NewServicesWithConfig(configPath, cfg, service.BuildNotifier(cfg, log), log)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to initialize services")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	log.Info().
		Str("interval", cfg.Interval).
		Str("step", cfg.Step).
		Msg("starting break timer")

	if err := runProgram(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
		return
	}
}

// openLogger builds the file-backed logger from the persistent logging
// flags. Logging is best-effort: any failure falls back to a no-op
// logger so the timer still runs.
func openLogger() (zerolog.Logger, func()) {
	level, _ := rootCmd.PersistentFlags().GetString("log-level")
	file, _ := rootCmd.PersistentFlags().GetString("log-file")

	if file == "" {
		p, err := logging.DefaultLogPath()
		if err != nil {
			return zerolog.Nop(), func() {}
		}
		file = p
	}

	log, closeLog, err := logging.New(level, file)
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	return log, closeLog
}
