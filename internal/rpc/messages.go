// Package rpc defines the wire contract between the timetrack client and the
// daemon: message types, the service descriptor, and a thin client.
//
// The service is declared by hand with a JSON codec instead of generated
// proto code; the message structs below are the authoritative schema.
// Timestamps travel as Unix epoch milliseconds, zero meaning absent.
package rpc

// Category describes one entry category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Entry is a time entry as returned by the daemon.
type Entry struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	CategoryID        string `json:"category_id"`
	CategoryName      string `json:"category_name,omitempty"`
	Completed         bool   `json:"completed"`
	DurationMillis    int64  `json:"duration_ms"`
	StopwatchStart    int64  `json:"stopwatch_start,omitempty"` // non-zero while running
	StartDate         int64  `json:"start_date,omitempty"`
	EndDate           int64  `json:"end_date,omitempty"`
	CreatedDate       int64  `json:"created_date,omitempty"`
	EntryDate         int64  `json:"entry_date,omitempty"`
	Description       string `json:"description,omitempty"`
	LinkedRecordID    string `json:"linked_record_id,omitempty"`
	LinkedRecordLabel string `json:"linked_record_label,omitempty"`
}

// TimetrackInfo is the full dataset returned by GetInfo.
type TimetrackInfo struct {
	Categories []*Category `json:"categories"`
	Entries    []*Entry    `json:"entries"`
}

// EntryID identifies an entry.
type EntryID struct {
	EntryID string `json:"entry_id"`
}

// SaveEntryRequest creates (empty EntryID) or updates an entry.
type SaveEntryRequest struct {
	EntryID    string `json:"entry_id,omitempty"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	EntryDate  int64  `json:"entry_date,omitempty"`
}

// StartEntryRequest starts an entry's stopwatch at the client's clock.
type StartEntryRequest struct {
	EntryID     string `json:"entry_id"`
	EpochMillis int64  `json:"epoch_ms"`
}

// StopEntryRequest stops an entry's stopwatch at the client's clock.
type StopEntryRequest struct {
	EntryID     string `json:"entry_id"`
	EpochMillis int64  `json:"epoch_ms"`
}

// AddMillisecondsRequest adjusts an entry's duration by a signed delta.
type AddMillisecondsRequest struct {
	EntryID     string `json:"entry_id"`
	DeltaMillis int64  `json:"delta_ms"`
}

// SetNoteRequest replaces an entry's note.
type SetNoteRequest struct {
	EntryID     string `json:"entry_id"`
	Description string `json:"description"`
}

// LinkRecordRequest links an entry to an external record.
// An empty RecordID unlinks.
type LinkRecordRequest struct {
	EntryID  string `json:"entry_id"`
	RecordID string `json:"record_id,omitempty"`
}
