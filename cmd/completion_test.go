package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateCompletion_Bash(t *testing.T) {
	stdout, stderr, exitCode := testDeps(t, filepath.Join(t.TempDir(), "config.toml"))

	generateCompletion("bash")

	if *exitCode != -1 {
		t.Fatalf("unexpected exit with code %d", *exitCode)
	}
	if stdout.Len() == 0 {
		t.Error("expected bash completion output, got empty string")
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no errors, got: %s", stderr.String())
	}
}

func TestGenerateCompletion_Zsh(t *testing.T) {
	stdout, _, exitCode := testDeps(t, filepath.Join(t.TempDir(), "config.toml"))

	generateCompletion("zsh")

	if *exitCode != -1 {
		t.Fatalf("unexpected exit with code %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "#compdef") {
		t.Error("expected zsh completion script to contain #compdef directive")
	}
}

func TestGenerateCompletion_Fish(t *testing.T) {
	stdout, _, exitCode := testDeps(t, filepath.Join(t.TempDir(), "config.toml"))

	generateCompletion("fish")

	if *exitCode != -1 {
		t.Fatalf("unexpected exit with code %d", *exitCode)
	}
	if stdout.Len() == 0 {
		t.Error("expected fish completion output, got empty string")
	}
}

func TestGenerateCompletion_Powershell(t *testing.T) {
	stdout, _, exitCode := testDeps(t, filepath.Join(t.TempDir(), "config.toml"))

	generateCompletion("powershell")

	if *exitCode != -1 {
		t.Fatalf("unexpected exit with code %d", *exitCode)
	}
	if stdout.Len() == 0 {
		t.Error("expected powershell completion output, got empty string")
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	_, stderr, exitCode := testDeps(t, filepath.Join(t.TempDir(), "config.toml"))

	generateCompletion("tcsh")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1 for unsupported shell, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Unsupported shell") {
		t.Errorf("expected unsupported shell error, got: %s", stderr.String())
	}
}
