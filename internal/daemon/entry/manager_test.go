package entry

import (
	"testing"
	"time"
)

func TestSaveEntryCreateAndUpdate(t *testing.T) {
	m := NewManager(t.TempDir())

	created, err := m.SaveEntry(SaveOptions{Name: "standup", CategoryID: "cat-meetings"})
	if err != nil {
		t.Fatalf("SaveEntry() create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("created entry should get an id")
	}
	if created.EntryDate == nil {
		t.Error("created entry should get a default entry date")
	}

	updated, err := m.SaveEntry(SaveOptions{
		EntryID:    created.ID,
		Name:       "daily standup",
		CategoryID: "cat-general",
	})
	if err != nil {
		t.Fatalf("SaveEntry() update failed: %v", err)
	}
	if updated.Name != "daily standup" || updated.CategoryID != "cat-general" {
		t.Errorf("updated entry = %q/%q, want new name and category", updated.Name, updated.CategoryID)
	}

	if _, err := m.SaveEntry(SaveOptions{CategoryID: "cat-general"}); err == nil {
		t.Error("SaveEntry() without a name should fail")
	}
}

func TestGetInfoSeedsCategories(t *testing.T) {
	m := NewManager(t.TempDir())

	categories, entries, err := m.GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() failed: %v", err)
	}
	if len(categories.Categories) == 0 {
		t.Error("first GetInfo should seed default categories")
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want empty store", len(entries))
	}
}

func TestGetInfoOrdersByCreation(t *testing.T) {
	m := NewManager(t.TempDir())

	first, err := m.SaveEntry(SaveOptions{Name: "first"})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}
	second, err := m.SaveEntry(SaveOptions{Name: "second"})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}

	_, entries, err := m.GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// Same-millisecond creation falls back to id order; accept either
	// ordering key but require both entries present with first not after
	// second when timestamps differ.
	if entries[0].CreatedDate.After(entries[1].CreatedDate) {
		t.Errorf("entries out of order: %v before %v", entries[0].CreatedDate, entries[1].CreatedDate)
	}
	ids := map[string]bool{entries[0].ID: true, entries[1].ID: true}
	if !ids[first.ID] || !ids[second.ID] {
		t.Error("GetInfo should return every saved entry")
	}
}

func TestStopwatchLifecycle(t *testing.T) {
	m := NewManager(t.TempDir())

	e, err := m.SaveEntry(SaveOptions{Name: "deep work"})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}

	startAt := time.Now().Add(-2 * time.Minute)
	started, err := m.StartEntry(e.ID, startAt)
	if err != nil {
		t.Fatalf("StartEntry() failed: %v", err)
	}
	if !started.IsRunning() {
		t.Fatal("entry should be running after start")
	}
	if started.StartDate == nil {
		t.Error("first start should stamp the start date")
	}

	stopped, err := m.StopEntry(e.ID, startAt.Add(90*time.Second))
	if err != nil {
		t.Fatalf("StopEntry() failed: %v", err)
	}
	if stopped.IsRunning() {
		t.Error("entry should not be running after stop")
	}
	if stopped.DurationMillis != 90000 {
		t.Errorf("duration = %d, want 90000", stopped.DurationMillis)
	}

	// Stopping again is a no-op.
	again, err := m.StopEntry(e.ID, time.Now())
	if err != nil {
		t.Fatalf("StopEntry() failed: %v", err)
	}
	if again.DurationMillis != 90000 {
		t.Errorf("duration after double stop = %d, want 90000", again.DurationMillis)
	}
}

func TestCompleteStopsStopwatch(t *testing.T) {
	m := NewManager(t.TempDir())

	e, err := m.SaveEntry(SaveOptions{Name: "review"})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}
	if _, err := m.StartEntry(e.ID, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("StartEntry() failed: %v", err)
	}

	done, err := m.CompleteEntry(e.ID)
	if err != nil {
		t.Fatalf("CompleteEntry() failed: %v", err)
	}
	if !done.Completed || done.IsRunning() {
		t.Errorf("entry = completed %v running %v, want completed and stopped", done.Completed, done.IsRunning())
	}
	if done.DurationMillis <= 0 {
		t.Error("completing a running entry should fold in the elapsed time")
	}
	if done.EndDate == nil {
		t.Error("complete should stamp the end date")
	}

	reopened, err := m.UncompleteEntry(e.ID)
	if err != nil {
		t.Fatalf("UncompleteEntry() failed: %v", err)
	}
	if reopened.Completed || reopened.EndDate != nil {
		t.Error("uncomplete should clear completion state")
	}
}

func TestResetAndAdjust(t *testing.T) {
	m := NewManager(t.TempDir())

	e, err := m.SaveEntry(SaveOptions{Name: "support"})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}

	adjusted, err := m.AddMilliseconds(e.ID, 15*60000)
	if err != nil {
		t.Fatalf("AddMilliseconds() failed: %v", err)
	}
	if adjusted.DurationMillis != 15*60000 {
		t.Errorf("duration = %d, want fifteen minutes", adjusted.DurationMillis)
	}

	clamped, err := m.AddMilliseconds(e.ID, -60*60000)
	if err != nil {
		t.Fatalf("AddMilliseconds() failed: %v", err)
	}
	if clamped.DurationMillis != 0 {
		t.Errorf("duration = %d, want clamp at zero", clamped.DurationMillis)
	}

	if _, err := m.StartEntry(e.ID, time.Now()); err != nil {
		t.Fatalf("StartEntry() failed: %v", err)
	}
	reset, err := m.ResetEntry(e.ID)
	if err != nil {
		t.Fatalf("ResetEntry() failed: %v", err)
	}
	if reset.DurationMillis != 0 || reset.IsRunning() || reset.StartDate != nil {
		t.Error("reset should clear duration, stopwatch and dates")
	}
}

func TestNoteAndLink(t *testing.T) {
	m := NewManager(t.TempDir())

	e, err := m.SaveEntry(SaveOptions{Name: "site visit"})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}

	noted, err := m.SetNote(e.ID, "customer asked for a quote")
	if err != nil {
		t.Fatalf("SetNote() failed: %v", err)
	}
	if noted.Description != "customer asked for a quote" {
		t.Errorf("description = %q", noted.Description)
	}

	linked, err := m.LinkRecord(e.ID, "job-1042")
	if err != nil {
		t.Fatalf("LinkRecord() failed: %v", err)
	}
	if linked.LinkedRecordID != "job-1042" {
		t.Errorf("linked record = %q, want job-1042", linked.LinkedRecordID)
	}

	unlinked, err := m.LinkRecord(e.ID, "")
	if err != nil {
		t.Fatalf("LinkRecord() unlink failed: %v", err)
	}
	if unlinked.LinkedRecordID != "" {
		t.Error("empty record id should unlink")
	}
}

func TestDeleteEntry(t *testing.T) {
	m := NewManager(t.TempDir())

	e, err := m.SaveEntry(SaveOptions{Name: "temp"})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}
	if err := m.DeleteEntry(e.ID); err != nil {
		t.Fatalf("DeleteEntry() failed: %v", err)
	}
	if err := m.DeleteEntry(e.ID); err == nil {
		t.Error("deleting a missing entry should fail")
	}

	_, entries, err := m.GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want empty after delete", len(entries))
	}
}

func TestRunningEntry(t *testing.T) {
	m := NewManager(t.TempDir())

	none, err := m.RunningEntry()
	if err != nil {
		t.Fatalf("RunningEntry() failed: %v", err)
	}
	if none != nil {
		t.Error("empty store should have no running entry")
	}

	e, err := m.SaveEntry(SaveOptions{Name: "focus"})
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}
	if _, err := m.StartEntry(e.ID, time.Now()); err != nil {
		t.Fatalf("StartEntry() failed: %v", err)
	}

	running, err := m.RunningEntry()
	if err != nil {
		t.Fatalf("RunningEntry() failed: %v", err)
	}
	if running == nil || running.ID != e.ID {
		t.Error("RunningEntry should return the started entry")
	}
}
