package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDir returns the OS-appropriate default data directory for
// daybook.
//
//   - macOS:   ~/Library/Application Support/daybook
//   - Linux:   $XDG_DATA_HOME/daybook (fallback ~/.local/share/daybook)
//   - Windows: %LOCALAPPDATA%\daybook (fallback %APPDATA%\daybook)
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "daybook")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "daybook")
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, "daybook")
		}
		return filepath.Join(home, "daybook")
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, "daybook")
		}
		return filepath.Join(home, ".local", "share", "daybook")
	}
}
