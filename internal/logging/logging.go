// Package logging configures the process-wide zerolog logger.
//
// The TUI owns the terminal, so logs always go to a file rather than
// stdout. Setup failure is non-fatal; callers fall back to a no-op logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/xolan/pausa/internal/osutil"
)

// AppName is the application name used for the log directory.
const AppName = "pausa"

// LogFile is the name of the log file.
const LogFile = "pausa.log"

// New returns a logger that writes JSON to the specified file.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
// The returned closer releases the underlying file and is safe to call
// even when New fails.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}

	logsDir := filepath.Dir(file)
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
	}

	osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}
	closer = func() { _ = osFile.Close() }

	l := zerolog.New(osFile).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}

// Component creates a child logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("cmp", name).Logger()
}

// DefaultLogPath returns the default log file location under the user
// cache directory.
func DefaultLogPath() (string, error) {
	cacheDir, err := osutil.Provider.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName, LogFile), nil
}
