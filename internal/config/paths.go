// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global timetrack directory.
	GlobalDirName = ".timetrack"

	// EntriesDirName is the name of the entries directory.
	EntriesDirName = "entries"
)

// File names
const (
	DaemonFileName     = "daemon.yaml"
	SettingsFileName   = "settings.yaml"
	CategoriesFileName = "categories.yaml"
)

// GlobalDir returns the path to the global timetrack directory (~/.timetrack/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonFileName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// CategoriesFile returns the path to the categories.yaml file under dataDir.
func CategoriesFile(dataDir string) string {
	return filepath.Join(dataDir, CategoriesFileName)
}

// EntriesDir returns the path to the entries directory under dataDir.
func EntriesDir(dataDir string) string {
	return filepath.Join(dataDir, EntriesDirName)
}

// EntryFile returns the path to a specific entry file under dataDir.
func EntryFile(dataDir, entryID string) string {
	return filepath.Join(EntriesDir(dataDir), entryID+".yaml")
}

// EnsureGlobalDir creates the global timetrack directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureDataDir creates the data directory structure (entries subdirectory
// included) if it doesn't exist.
func EnsureDataDir(dataDir string) error {
	return os.MkdirAll(EntriesDir(dataDir), 0755)
}
