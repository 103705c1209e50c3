// Package entry handles time entry management for the daemon.
package entry

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/timetrack-io/timetrack/internal/config"
	"github.com/timetrack-io/timetrack/internal/models"
)

// Manager handles entry operations against the YAML store under dataDir.
type Manager struct {
	dataDir string
}

// NewManager creates a new entry manager.
func NewManager(dataDir string) *Manager {
	return &Manager{dataDir: dataDir}
}

// SaveOptions contains options for creating or updating an entry.
type SaveOptions struct {
	EntryID    string // empty creates a new entry
	Name       string
	CategoryID string
	EntryDate  time.Time // zero defaults to now on create
}

// GetInfo returns the category list and all entries, oldest first.
func (m *Manager) GetInfo() (*models.CategoryList, []*models.Entry, error) {
	categories, err := config.LoadCategories(m.dataDir)
	if err != nil {
		return nil, nil, err
	}
	entries, err := config.LoadAllEntries(m.dataDir)
	if err != nil {
		return nil, nil, err
	}
	return categories, entries, nil
}

// CategoryName resolves a category id to its display name.
func (m *Manager) CategoryName(categoryID string) (string, error) {
	categories, err := config.LoadCategories(m.dataDir)
	if err != nil {
		return "", err
	}
	for _, c := range categories.Categories {
		if c.ID == categoryID {
			return c.Name, nil
		}
	}
	return "", nil
}

// SaveEntry creates a new entry or updates the name and category of an
// existing one.
func (m *Manager) SaveEntry(opts SaveOptions) (*models.Entry, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("entry name is required")
	}

	if opts.EntryID == "" {
		entryDate := opts.EntryDate
		if entryDate.IsZero() {
			entryDate = time.Now()
		}
		e := models.NewEntry(uuid.NewString(), opts.Name, opts.CategoryID, entryDate)
		if err := config.SaveEntry(m.dataDir, e); err != nil {
			return nil, err
		}
		return e, nil
	}

	e, err := m.load(opts.EntryID)
	if err != nil {
		return nil, err
	}
	e.Name = opts.Name
	if opts.CategoryID != "" {
		e.CategoryID = opts.CategoryID
	}
	e.UpdatedAt = time.Now().UTC()
	if err := config.SaveEntry(m.dataDir, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEntry permanently deletes an entry.
func (m *Manager) DeleteEntry(entryID string) error {
	if _, err := m.load(entryID); err != nil {
		return err
	}
	return config.DeleteEntryFile(m.dataDir, entryID)
}

// StartEntry starts an entry's stopwatch at the given instant.
func (m *Manager) StartEntry(entryID string, at time.Time) (*models.Entry, error) {
	e, err := m.load(entryID)
	if err != nil {
		return nil, err
	}
	e.StartStopwatch(at)
	if err := config.SaveEntry(m.dataDir, e); err != nil {
		return nil, err
	}
	return e, nil
}

// StopEntry stops an entry's stopwatch at the given instant.
func (m *Manager) StopEntry(entryID string, at time.Time) (*models.Entry, error) {
	e, err := m.load(entryID)
	if err != nil {
		return nil, err
	}
	e.StopStopwatch(at)
	if err := config.SaveEntry(m.dataDir, e); err != nil {
		return nil, err
	}
	return e, nil
}

// CompleteEntry marks an entry completed, stopping its stopwatch first.
func (m *Manager) CompleteEntry(entryID string) (*models.Entry, error) {
	e, err := m.load(entryID)
	if err != nil {
		return nil, err
	}
	e.Complete(time.Now())
	if err := config.SaveEntry(m.dataDir, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UncompleteEntry reopens a completed entry.
func (m *Manager) UncompleteEntry(entryID string) (*models.Entry, error) {
	e, err := m.load(entryID)
	if err != nil {
		return nil, err
	}
	e.Uncomplete()
	if err := config.SaveEntry(m.dataDir, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ResetEntry zeroes an entry's duration, stopwatch and dates.
func (m *Manager) ResetEntry(entryID string) (*models.Entry, error) {
	e, err := m.load(entryID)
	if err != nil {
		return nil, err
	}
	e.Reset()
	if err := config.SaveEntry(m.dataDir, e); err != nil {
		return nil, err
	}
	return e, nil
}

// AddMilliseconds adjusts an entry's duration by a signed delta, clamping
// at zero.
func (m *Manager) AddMilliseconds(entryID string, delta int64) (*models.Entry, error) {
	e, err := m.load(entryID)
	if err != nil {
		return nil, err
	}
	e.AddMilliseconds(delta)
	if err := config.SaveEntry(m.dataDir, e); err != nil {
		return nil, err
	}
	return e, nil
}

// SetNote replaces an entry's note.
func (m *Manager) SetNote(entryID, description string) (*models.Entry, error) {
	e, err := m.load(entryID)
	if err != nil {
		return nil, err
	}
	e.Description = description
	e.UpdatedAt = time.Now().UTC()
	if err := config.SaveEntry(m.dataDir, e); err != nil {
		return nil, err
	}
	return e, nil
}

// LinkRecord links an entry to an external record. An empty recordID unlinks.
func (m *Manager) LinkRecord(entryID, recordID string) (*models.Entry, error) {
	e, err := m.load(entryID)
	if err != nil {
		return nil, err
	}
	e.LinkedRecordID = recordID
	e.UpdatedAt = time.Now().UTC()
	if err := config.SaveEntry(m.dataDir, e); err != nil {
		return nil, err
	}
	return e, nil
}

// RunningEntry returns the running entry, or nil when nothing runs.
func (m *Manager) RunningEntry() (*models.Entry, error) {
	entries, err := config.LoadAllEntries(m.dataDir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsRunning() {
			return e, nil
		}
	}
	return nil, nil
}

func (m *Manager) load(entryID string) (*models.Entry, error) {
	e, err := config.LoadEntry(m.dataDir, entryID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("entry not found: %s", entryID)
	}
	return e, nil
}
