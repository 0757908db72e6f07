package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/pausa/internal/osutil"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "logs", "pausa.log")

	logger, closer, err := New("debug", logPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer()

	logger.Info().Str("key", "value").Msg("hello")
	closer()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	var record map[string]any
	line := strings.TrimSpace(string(data))
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if record["message"] != "hello" {
		t.Errorf("expected message 'hello', got %v", record["message"])
	}
	if record["key"] != "value" {
		t.Errorf("expected key 'value', got %v", record["key"])
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("nosuchlevel", filepath.Join(t.TempDir(), "p.log"))
	closer()
	if err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "p.log")

	for i := 0; i < 2; i++ {
		logger, closer, err := New("info", logPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		logger.Info().Msg("run")
		closer()
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 log lines, got %d", len(lines))
	}
}

func TestComponent(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "p.log")

	logger, closer, err := New("debug", logPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmp := Component(logger, "engine")
	cmp.Info().Msg("tick")
	closer()

	data, _ := os.ReadFile(logPath)
	if !strings.Contains(string(data), `"cmp":"engine"`) {
		t.Errorf("expected component field in log output, got %s", data)
	}
}

type failingCacheProvider struct {
	osutil.DefaultPathProvider
}

func (failingCacheProvider) UserCacheDir() (string, error) {
	return "", errors.New("no cache dir")
}

func TestDefaultLogPath(t *testing.T) {
	path, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(path, AppName) {
		t.Errorf("expected path to contain app name, got %q", path)
	}
	if filepath.Base(path) != LogFile {
		t.Errorf("expected path to end in %q, got %q", LogFile, path)
	}
}

func TestDefaultLogPath_ProviderError(t *testing.T) {
	defer osutil.ResetProvider()
	osutil.SetProvider(failingCacheProvider{})

	if _, err := DefaultLogPath(); err == nil {
		t.Error("expected error when cache dir is unavailable")
	}
}
