package config

import (
	"os"
	"path/filepath"
)

// appName names the per-user directories of the tools.
const appName = "derin-layout"

// layoutFile is the document name looked up in config directories.
const layoutFile = "layout.yaml"

// ConfigDir returns the per-user configuration directory.
func ConfigDir() string {
	return ConfigDirWithPlatform(DefaultPlatform)
}

// ConfigDirWithPlatform allows injecting a custom platform provider for testing
func ConfigDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %APPDATA%\derin-layout\
		appData := platform.GetEnv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, appName)
	case "darwin":
		// ~/Library/Application Support/derin-layout/
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default:
		// $XDG_CONFIG_HOME/derin-layout/ or ~/.config/derin-layout/
		if xdg := platform.GetEnv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", appName)
	}
}

// UserCacheDir returns the directory holding the snapshot database.
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform allows injecting a custom platform provider for testing
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %LOCALAPPDATA%\derin-layout\
		localAppData := platform.GetEnv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.UserHomeDir()
			return filepath.Join(home, "."+appName)
		}
		return filepath.Join(localAppData, appName)
	case "darwin":
		// ~/Library/Caches/derin-layout/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "Library", "Caches", appName)
	default:
		// ~/.cache/derin-layout/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, ".cache", appName)
	}
}

// GlobalLayoutPath returns the per-user layout document path, or "" when the
// platform has no config directory.
func GlobalLayoutPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, layoutFile)
}

// ProjectLayoutPath returns the layout document path inside a project.
func ProjectLayoutPath(projectDir string) string {
	return filepath.Join(projectDir, ".derin", layoutFile)
}

// SnapshotDBPath returns the path to the SQLite snapshot database, creating
// its directory if needed.
func SnapshotDBPath() string {
	cacheDir := UserCacheDir()
	_ = os.MkdirAll(cacheDir, 0755)
	return filepath.Join(cacheDir, "snapshots.db")
}
