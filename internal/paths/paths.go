// Package paths decides where the agenda CLI keeps its configuration and
// its data. Both directories resolve through a fixed precedence chain; the
// first non-empty candidate wins and is made absolute.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory name used under platform config roots.
const appDirName = "agenda"

// DefaultDataDirName is the data directory created under the current working
// directory when nothing else selects one.
const DefaultDataDirName = ".agenda-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "AGENDA_CONFIG_DIR"
	EnvDataDir   = "AGENDA_DATA_DIR"
)

// ResolveConfigDir picks the configuration directory: the flag wins, then
// AGENDA_CONFIG_DIR, then the platform default.
func ResolveConfigDir(flag string) (string, error) {
	if dir := firstNonEmpty(flag, os.Getenv(EnvConfigDir)); dir != "" {
		return filepath.Abs(dir)
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the data directory: the flag wins, then the
// config.yaml value, then AGENDA_DATA_DIR, then DefaultDataDirName under the
// current working directory.
func ResolveDataDir(flag, fromConfig string) (string, error) {
	if dir := firstNonEmpty(flag, fromConfig, os.Getenv(EnvDataDir)); dir != "" {
		return filepath.Abs(dir)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// DefaultConfigDir returns the platform configuration directory for agenda.
// Linux follows XDG ($XDG_CONFIG_HOME, falling back to ~/.config); macOS and
// Windows go through os.UserConfigDir (~/Library/Application Support and
// %APPDATA% respectively).
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// firstNonEmpty returns the first non-empty value, or "".
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
