package track

import (
	"time"

	"github.com/google/uuid"

	"github.com/timetrack-io/timetrack/internal/rpc"
)

// Entry is one row of the tracked view state. The daemon-owned fields mirror
// rpc.Entry; everything below them is client-side only and never leaves the
// process.
type Entry struct {
	ID                string
	Name              string
	CategoryID        string
	CategoryName      string
	Completed         bool
	DurationMillis    int64
	StopwatchStart    int64
	StartDate         int64
	EndDate           int64
	CreatedDate       int64
	EntryDate         int64
	Description       string
	LinkedRecordID    string
	LinkedRecordLabel string

	// Transient view state.
	IsNew           bool
	IsEditing       bool
	IsPendingDelete bool
	IsModified      bool
	IsRunning       bool
	Busy            bool
	LocalStartEpoch int64
	DraftName       string
	DraftCategoryID string
	Elapsed         string

	// Bucket flags, recomputed via Classify.
	IsToday     bool
	IsYesterday bool
	IsThisWeek  bool
	IsThisMonth bool
}

// BuildEntry converts a daemon entry into view state. A nil raw entry yields
// a draft: client-generated id, editing mode on, default category applied,
// nothing persisted yet.
func BuildEntry(raw *rpc.Entry, defaultCategory *rpc.Category, now time.Time) *Entry {
	if raw == nil {
		e := &Entry{
			ID:        uuid.NewString(),
			IsNew:     true,
			IsEditing: true,
		}
		if defaultCategory != nil {
			e.CategoryID = defaultCategory.ID
			e.CategoryName = defaultCategory.Name
			e.DraftCategoryID = defaultCategory.ID
		}
		e.EntryDate = now.UnixMilli()
		e.refresh(now)
		return e
	}

	e := &Entry{
		ID:                raw.ID,
		Name:              raw.Name,
		CategoryID:        raw.CategoryID,
		CategoryName:      raw.CategoryName,
		Completed:         raw.Completed,
		DurationMillis:    raw.DurationMillis,
		StopwatchStart:    raw.StopwatchStart,
		StartDate:         raw.StartDate,
		EndDate:           raw.EndDate,
		CreatedDate:       raw.CreatedDate,
		EntryDate:         raw.EntryDate,
		Description:       raw.Description,
		LinkedRecordID:    raw.LinkedRecordID,
		LinkedRecordLabel: raw.LinkedRecordLabel,
	}
	if raw.StopwatchStart != 0 {
		e.IsRunning = true
		e.LocalStartEpoch = now.UnixMilli()
	}
	e.refresh(now)
	return e
}

// BucketEpoch is the timestamp an entry is classified by: the entry date when
// present, otherwise the last stop date.
func (e *Entry) BucketEpoch() int64 {
	if e.EntryDate != 0 {
		return e.EntryDate
	}
	return e.EndDate
}

// Classify recomputes the window bucket flags against now.
func (e *Entry) Classify(now time.Time) {
	epoch := e.BucketEpoch()
	e.IsToday = IsToday(epoch, now)
	e.IsYesterday = IsYesterday(epoch, now)
	e.IsThisWeek = IsThisWeek(epoch, now)
	e.IsThisMonth = IsThisMonth(epoch, now)
}

// refresh recomputes everything derived from daemon-owned fields.
func (e *Entry) refresh(now time.Time) {
	e.Elapsed = FormatMilliseconds(e.DurationMillis)
	e.Classify(now)
}

// apply overwrites the daemon-owned fields from a response and refreshes
// derived state. Transient view state is preserved except the running flag,
// which follows the stopwatch.
func (e *Entry) apply(raw *rpc.Entry, now time.Time) {
	if raw == nil {
		return
	}
	if raw.ID != "" {
		e.ID = raw.ID
	}
	e.Name = raw.Name
	e.CategoryID = raw.CategoryID
	e.CategoryName = raw.CategoryName
	e.Completed = raw.Completed
	e.DurationMillis = raw.DurationMillis
	e.StopwatchStart = raw.StopwatchStart
	e.StartDate = raw.StartDate
	e.EndDate = raw.EndDate
	e.CreatedDate = raw.CreatedDate
	e.EntryDate = raw.EntryDate
	e.Description = raw.Description
	e.LinkedRecordID = raw.LinkedRecordID
	e.LinkedRecordLabel = raw.LinkedRecordLabel

	running := raw.StopwatchStart != 0
	if running && !e.IsRunning {
		e.LocalStartEpoch = now.UnixMilli()
	}
	if !running {
		e.LocalStartEpoch = 0
	}
	e.IsRunning = running
	e.refresh(now)
}
