// Package config provides directory resolution for lanyard state.
//
// Lanyard keeps two tiers of state: a per-project workspace directory
// (.lanyard/ at the project root) holding workspace buttons and the
// activity log, and a global configuration directory holding buttons
// shared across all projects.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// WorkspaceDirName is the per-project state directory.
const WorkspaceDirName = ".lanyard"

// Dir returns the lanyard global configuration directory.
//
// Resolution:
//   - $LANYARD_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/lanyard if set (respects XDG on any platform)
//   - %AppData%/lanyard on Windows
//   - ~/.config/lanyard on macOS and Linux
func Dir() string {
	if dir := os.Getenv("LANYARD_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lanyard")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "lanyard")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lanyard")
}

// FindWorkspaceDir walks up from start looking for a .lanyard directory.
// Returns the directory path, or "" when no project is open (no .lanyard
// found up to the filesystem root).
func FindWorkspaceDir(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, WorkspaceDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// WorkspaceDir resolves the workspace directory from the current working
// directory. Returns "" when not inside a lanyard project.
func WorkspaceDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return FindWorkspaceDir(cwd)
}
