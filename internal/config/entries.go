package config

import (
	"os"
	"sort"
	"strings"

	"github.com/timetrack-io/timetrack/internal/models"
)

// LoadEntry loads an entry from its YAML file under dataDir.
// Returns nil if the entry does not exist.
func LoadEntry(dataDir, entryID string) (*models.Entry, error) {
	path := EntryFile(dataDir, entryID)

	if !FileExists(path) {
		return nil, nil
	}

	var entry models.Entry
	if err := LoadYAML(path, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// SaveEntry saves an entry to its YAML file under dataDir.
func SaveEntry(dataDir string, entry *models.Entry) error {
	if err := os.MkdirAll(EntriesDir(dataDir), 0o755); err != nil {
		return err
	}
	return SaveYAML(EntryFile(dataDir, entry.ID), entry)
}

// DeleteEntryFile permanently deletes an entry file.
func DeleteEntryFile(dataDir, entryID string) error {
	path := EntryFile(dataDir, entryID)
	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// LoadAllEntries loads all entries from the entries directory, oldest first
// by creation date.
func LoadAllEntries(dataDir string) ([]*models.Entry, error) {
	entriesDir := EntriesDir(dataDir)

	if !FileExists(entriesDir) {
		return []*models.Entry{}, nil
	}

	files, err := os.ReadDir(entriesDir)
	if err != nil {
		return nil, err
	}

	var entries []*models.Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}

		name := f.Name()
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}

		entry, err := LoadEntry(dataDir, strings.TrimSuffix(name, ".yaml"))
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedDate.Equal(entries[j].CreatedDate) {
			return entries[i].CreatedDate.Before(entries[j].CreatedDate)
		}
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}
