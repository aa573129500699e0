// Package paths resolves the directories pkgls reads and writes.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppDirName is the directory name used under each XDG base directory.
const AppDirName = "pkgls"

// EnvHome is consulted when the user home directory cannot be determined.
const EnvHome = "HOME"

// ConfigDir returns $XDG_CONFIG_HOME/pkgls.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFiles returns the candidate user config files in lookup order.
func ConfigFiles() []string {
	dir := ConfigDir()
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
	}
}

// StateDir returns $XDG_STATE_HOME/pkgls.
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the default log file location.
func LogFile() string {
	return filepath.Join(StateDir(), "pkgls.log")
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}
