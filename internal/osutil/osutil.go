// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import (
	"os"
	"os/exec"
)

// PathProvider abstracts OS-level operations for path resolution.
// Used to enable testing of error paths in GetConfigPath and DefaultLogPath.
type PathProvider interface {
	UserConfigDir() (string, error)
	UserCacheDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// UserCacheDir returns the default root directory for user-specific cached data.
func (DefaultPathProvider) UserCacheDir() (string, error) {
	return os.UserCacheDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// CommandRunner abstracts launching external programs, such as desktop
// notification helpers. Used to keep notifier code testable.
type CommandRunner interface {
	LookPath(name string) (string, error)
	Run(name string, args ...string) error
}

// DefaultCommandRunner executes real processes via os/exec.
type DefaultCommandRunner struct{}

// LookPath searches for an executable in the directories named by PATH.
func (DefaultCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run starts the named program with the given arguments and waits for it
// to complete.
func (DefaultCommandRunner) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}
