package models

import "time"

// Entry represents a persisted time entry.
// This corresponds to entry YAML files in ~/.timetrack/entries/.
type Entry struct {
	Version        int        `yaml:"version"`
	ID             string     `yaml:"id"`
	Name           string     `yaml:"name"`
	CategoryID     string     `yaml:"category_id"`
	Completed      bool       `yaml:"completed"`
	DurationMillis int64      `yaml:"duration_ms"`
	StopwatchStart *time.Time `yaml:"stopwatch_start,omitempty"` // non-nil while the timer runs
	StartDate      *time.Time `yaml:"start_date,omitempty"`      // first time the timer was started
	EndDate        *time.Time `yaml:"end_date,omitempty"`        // set on complete
	CreatedDate    time.Time  `yaml:"created_date"`
	EntryDate      *time.Time `yaml:"entry_date,omitempty"` // logical date the entry belongs to
	Description    string     `yaml:"description,omitempty"`
	LinkedRecordID string     `yaml:"linked_record_id,omitempty"`
	UpdatedAt      time.Time  `yaml:"updated_at"`
}

// NewEntry creates a new entry with default values.
func NewEntry(id, name, categoryID string, entryDate time.Time) *Entry {
	now := time.Now().UTC()
	day := entryDate.UTC()
	return &Entry{
		Version:     1,
		ID:          id,
		Name:        name,
		CategoryID:  categoryID,
		CreatedDate: now,
		EntryDate:   &day,
		UpdatedAt:   now,
	}
}

// IsRunning returns true if the entry's stopwatch is active.
func (e *Entry) IsRunning() bool {
	return e.StopwatchStart != nil
}

// StartStopwatch starts the stopwatch at the given instant.
// The first start also stamps StartDate.
func (e *Entry) StartStopwatch(at time.Time) {
	at = at.UTC()
	e.StopwatchStart = &at
	if e.StartDate == nil {
		e.StartDate = &at
	}
	e.UpdatedAt = time.Now().UTC()
}

// StopStopwatch stops the stopwatch at the given instant and folds the
// elapsed time into the accumulated duration. No-op when not running.
func (e *Entry) StopStopwatch(at time.Time) {
	if e.StopwatchStart == nil {
		return
	}
	elapsed := at.Sub(*e.StopwatchStart).Milliseconds()
	if elapsed > 0 {
		e.DurationMillis += elapsed
	}
	e.StopwatchStart = nil
	e.UpdatedAt = time.Now().UTC()
}

// Complete marks the entry completed, stopping the stopwatch first if needed.
func (e *Entry) Complete(at time.Time) {
	e.StopStopwatch(at)
	at = at.UTC()
	e.Completed = true
	e.EndDate = &at
	e.UpdatedAt = time.Now().UTC()
}

// Uncomplete reopens a completed entry.
func (e *Entry) Uncomplete() {
	e.Completed = false
	e.EndDate = nil
	e.UpdatedAt = time.Now().UTC()
}

// Reset clears the accumulated duration, the stopwatch and both dates.
func (e *Entry) Reset() {
	e.DurationMillis = 0
	e.StopwatchStart = nil
	e.StartDate = nil
	e.EndDate = nil
	e.UpdatedAt = time.Now().UTC()
}

// AddMilliseconds adjusts the accumulated duration by a signed delta,
// clamping at zero.
func (e *Entry) AddMilliseconds(delta int64) {
	e.DurationMillis += delta
	if e.DurationMillis < 0 {
		e.DurationMillis = 0
	}
	e.UpdatedAt = time.Now().UTC()
}
