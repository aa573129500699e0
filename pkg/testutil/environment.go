package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// envVars are cleared for every test environment.
var envVars = []string{
	"PKGLS_MANAGER",
	"PKGLS_COLOR",
	"PKGLS_OUTPUT_FORMAT",
	"PKGLS_STYLES",
	"PKGLS_LOG",
	"NO_COLOR",
}

// TestEnvironment points pkgls at a temp directory: an empty config file, a
// private log file and no PKGLS_* overrides from the developer's shell.
type TestEnvironment struct {
	Root       string
	ConfigFile string
	LogFile    string

	t *testing.T
}

// NewTestEnvironment creates an isolated environment. Variables are restored
// when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		ConfigFile: filepath.Join(root, "config.toml"),
		LogFile:    filepath.Join(root, "state", "pkgls.log"),
		t:          t,
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}
	env.WriteConfig("")
	t.Setenv("PKGLS_CONFIG", env.ConfigFile)
	t.Setenv("PKGLS_LOG_FILE", env.LogFile)

	return env
}

// WriteConfig replaces the contents of the config file.
func (e *TestEnvironment) WriteConfig(content string) {
	e.t.Helper()
	if err := os.WriteFile(e.ConfigFile, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write config: %v", err)
	}
}

// WriteFile creates a file under the environment root and returns its path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.Root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// Path returns a path under the environment root without creating it.
func (e *TestEnvironment) Path(name string) string {
	return filepath.Join(e.Root, name)
}
