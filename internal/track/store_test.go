package track

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/timetrack-io/timetrack/internal/rpc"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// fakeBackend keeps an in-memory entry table and records every call with its
// entry id so tests can assert call order.
type fakeBackend struct {
	calls      []string
	fail       map[string]error
	categories []*rpc.Category
	entries    []*rpc.Entry
	nextID     int
}

func newFakeBackend(entries ...*rpc.Entry) *fakeBackend {
	b := &fakeBackend{
		fail: map[string]error{},
		categories: []*rpc.Category{
			{ID: "cat-general", Name: "General"},
			{ID: "cat-meetings", Name: "Meetings"},
		},
	}
	for _, e := range entries {
		c := *e
		b.entries = append(b.entries, &c)
	}
	return b
}

func (b *fakeBackend) record(method, id string) error {
	if id == "" {
		b.calls = append(b.calls, method)
	} else {
		b.calls = append(b.calls, method+":"+id)
	}
	return b.fail[method]
}

func (b *fakeBackend) find(id string) *rpc.Entry {
	for _, e := range b.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func copyOf(e *rpc.Entry) *rpc.Entry {
	c := *e
	return &c
}

func (b *fakeBackend) GetInfo(ctx context.Context) (*rpc.TimetrackInfo, error) {
	if err := b.record("GetInfo", ""); err != nil {
		return nil, err
	}
	info := &rpc.TimetrackInfo{Categories: b.categories}
	for _, e := range b.entries {
		info.Entries = append(info.Entries, copyOf(e))
	}
	return info, nil
}

func (b *fakeBackend) SaveEntry(ctx context.Context, in *rpc.SaveEntryRequest) (*rpc.Entry, error) {
	if err := b.record("SaveEntry", in.EntryID); err != nil {
		return nil, err
	}
	var catName string
	for _, c := range b.categories {
		if c.ID == in.CategoryID {
			catName = c.Name
		}
	}
	if in.EntryID == "" {
		b.nextID++
		e := &rpc.Entry{
			ID:           fmt.Sprintf("srv-%d", b.nextID),
			Name:         in.Name,
			CategoryID:   in.CategoryID,
			CategoryName: catName,
			EntryDate:    in.EntryDate,
			CreatedDate:  in.EntryDate,
		}
		b.entries = append(b.entries, e)
		return copyOf(e), nil
	}
	e := b.find(in.EntryID)
	if e == nil {
		return nil, errors.New("entry not found")
	}
	e.Name = in.Name
	e.CategoryID = in.CategoryID
	e.CategoryName = catName
	return copyOf(e), nil
}

func (b *fakeBackend) DeleteEntry(ctx context.Context, entryID string) error {
	if err := b.record("DeleteEntry", entryID); err != nil {
		return err
	}
	for i, e := range b.entries {
		if e.ID == entryID {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return errors.New("entry not found")
}

func (b *fakeBackend) CompleteEntry(ctx context.Context, entryID string) (*rpc.Entry, error) {
	if err := b.record("CompleteEntry", entryID); err != nil {
		return nil, err
	}
	e := b.find(entryID)
	if e == nil {
		return nil, errors.New("entry not found")
	}
	e.Completed = true
	return copyOf(e), nil
}

func (b *fakeBackend) UncompleteEntry(ctx context.Context, entryID string) (*rpc.Entry, error) {
	if err := b.record("UncompleteEntry", entryID); err != nil {
		return nil, err
	}
	e := b.find(entryID)
	if e == nil {
		return nil, errors.New("entry not found")
	}
	e.Completed = false
	return copyOf(e), nil
}

func (b *fakeBackend) StartEntry(ctx context.Context, entryID string, epochMillis int64) (*rpc.Entry, error) {
	if err := b.record("StartEntry", entryID); err != nil {
		return nil, err
	}
	e := b.find(entryID)
	if e == nil {
		return nil, errors.New("entry not found")
	}
	e.StopwatchStart = epochMillis
	if e.StartDate == 0 {
		e.StartDate = epochMillis
	}
	return copyOf(e), nil
}

func (b *fakeBackend) StopEntry(ctx context.Context, entryID string, epochMillis int64) (*rpc.Entry, error) {
	if err := b.record("StopEntry", entryID); err != nil {
		return nil, err
	}
	e := b.find(entryID)
	if e == nil {
		return nil, errors.New("entry not found")
	}
	if e.StopwatchStart != 0 {
		if delta := epochMillis - e.StopwatchStart; delta > 0 {
			e.DurationMillis += delta
		}
		e.StopwatchStart = 0
	}
	e.EndDate = epochMillis
	return copyOf(e), nil
}

func (b *fakeBackend) ResetEntry(ctx context.Context, entryID string) (*rpc.Entry, error) {
	if err := b.record("ResetEntry", entryID); err != nil {
		return nil, err
	}
	e := b.find(entryID)
	if e == nil {
		return nil, errors.New("entry not found")
	}
	e.DurationMillis = 0
	e.StopwatchStart = 0
	e.StartDate = 0
	e.EndDate = 0
	return copyOf(e), nil
}

func (b *fakeBackend) AddMilliseconds(ctx context.Context, entryID string, deltaMillis int64) (*rpc.Entry, error) {
	if err := b.record("AddMilliseconds", entryID); err != nil {
		return nil, err
	}
	e := b.find(entryID)
	if e == nil {
		return nil, errors.New("entry not found")
	}
	e.DurationMillis += deltaMillis
	if e.DurationMillis < 0 {
		e.DurationMillis = 0
	}
	return copyOf(e), nil
}

func (b *fakeBackend) SetNote(ctx context.Context, entryID, description string) (*rpc.Entry, error) {
	if err := b.record("SetNote", entryID); err != nil {
		return nil, err
	}
	e := b.find(entryID)
	if e == nil {
		return nil, errors.New("entry not found")
	}
	e.Description = description
	return copyOf(e), nil
}

func (b *fakeBackend) LinkRecord(ctx context.Context, entryID, recordID string) (*rpc.Entry, error) {
	if err := b.record("LinkRecord", entryID); err != nil {
		return nil, err
	}
	e := b.find(entryID)
	if e == nil {
		return nil, errors.New("entry not found")
	}
	e.LinkedRecordID = recordID
	if recordID == "" {
		e.LinkedRecordLabel = ""
	} else {
		e.LinkedRecordLabel = "Record " + recordID
	}
	return copyOf(e), nil
}

func newTestStore(t *testing.T, backend *fakeBackend) (*Store, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: fixedNow()}
	s := NewStore(backend, Config{
		SingleTaskOnlyRunning: true,
		LinkablePrefixes:      []string{"job-", "case-"},
		Policy:                PolicyExtended,
		DefaultWindow:         WindowDay,
		Now:                   clk.Now,
	})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return s, clk
}

func entryByID(t *testing.T, s *Store, id string) *Entry {
	t.Helper()
	for _, e := range s.Entries() {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("entry %s not in store", id)
	return nil
}

func todayEntry(clk *fakeClock, id, name string, durationMs int64) *rpc.Entry {
	return &rpc.Entry{
		ID:             id,
		Name:           name,
		CategoryID:     "cat-general",
		CategoryName:   "General",
		DurationMillis: durationMs,
		EntryDate:      clk.Now().UnixMilli(),
	}
}

func TestLoadFailureClearsDataset(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	backend := newFakeBackend(todayEntry(clk, "e1", "standup", 0))
	s, _ := newTestStore(t, backend)

	if len(s.Entries()) != 1 {
		t.Fatalf("entries after load = %d, want 1", len(s.Entries()))
	}

	backend.fail["GetInfo"] = errors.New("daemon unreachable")
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("Load() should fail when the backend fails")
	}
	if len(s.Entries()) != 0 || s.Loaded() {
		t.Error("failed load should clear the dataset")
	}
}

func TestRefreshBlockedByPendingChanges(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend)

	s.Add()
	if err := s.Refresh(context.Background()); !errors.Is(err, ErrPendingChanges) {
		t.Errorf("Refresh() with draft = %v, want ErrPendingChanges", err)
	}
}

func TestAddPrependsDraftWithDefaultCategory(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	backend := newFakeBackend(todayEntry(clk, "e1", "standup", 0))
	s, _ := newTestStore(t, backend)

	id := s.Add()
	entries := s.Entries()
	if entries[0].ID != id {
		t.Error("draft should be prepended")
	}
	if entries[0].CategoryID != "cat-general" {
		t.Errorf("draft category = %q, want first category", entries[0].CategoryID)
	}
	if !s.HasPendingChanges() {
		t.Error("draft should count as a pending change")
	}
}

func TestSaveEmptyNameNeverCallsBackend(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend)

	id := s.Add()
	s.SetDraftName(id, "   ")

	if _, err := s.Save(context.Background(), id); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("Save() = %v, want ErrNameRequired", err)
	}
	for _, call := range backend.calls {
		if strings.HasPrefix(call, "SaveEntry") {
			t.Error("empty-name save must not reach the backend")
		}
	}
	if e := entryByID(t, s, id); !e.IsEditing || !e.IsNew {
		t.Error("entry should stay an editing draft after validation failure")
	}
}

func TestSaveCreateAdoptsServerID(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend)

	id := s.Add()
	s.SetDraftName(id, "write report")
	s.SetDraftCategory(id, "cat-meetings")

	if _, err := s.Save(context.Background(), id); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.ID != "srv-1" {
		t.Errorf("entry id = %q, want server id srv-1", e.ID)
	}
	if e.IsNew || e.IsEditing || e.IsModified {
		t.Error("saved entry should leave draft state")
	}
	if e.Name != "write report" || e.CategoryName != "Meetings" {
		t.Errorf("saved entry = %q/%q, want committed draft fields", e.Name, e.CategoryName)
	}
}

// The draft id dies with the save, so the caller must clear the busy flag
// against the id Save returns or the created entry stays busy forever.
func TestSaveReturnsAdoptedIDForBusyClear(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend)

	tempID := s.Add()
	s.SetDraftName(tempID, "site visit")

	s.SetBusy(tempID, true)
	savedID, err := s.Save(context.Background(), tempID)
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	s.SetBusy(savedID, false)

	if savedID == tempID {
		t.Fatalf("saved id = %q, want the daemon-assigned id, not the draft id", savedID)
	}
	e := entryByID(t, s, savedID)
	if e.Busy {
		t.Error("created entry should not stay busy after the save completes")
	}
}

func TestSaveFailureKeepsCommittedFieldsAndEditing(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	backend := newFakeBackend(todayEntry(clk, "e1", "old name", 0))
	s, _ := newTestStore(t, backend)

	backend.fail["SaveEntry"] = errors.New("disk full")
	s.Edit("e1")
	s.SetDraftName("e1", "new name")

	if _, err := s.Save(context.Background(), "e1"); err == nil {
		t.Fatal("Save() should surface the backend error")
	}
	e := entryByID(t, s, "e1")
	if e.Name != "new name" {
		t.Errorf("name = %q, optimistic commit should stay applied", e.Name)
	}
	if !e.IsEditing {
		t.Error("entry should stay in editing mode after a failed save")
	}
}

func TestSaveNewEntryAutoLinks(t *testing.T) {
	backend := newFakeBackend()
	clk := &fakeClock{t: fixedNow()}
	s := NewStore(backend, Config{
		AssociatedRecordID: "job-1042",
		LinkablePrefixes:   []string{"job-", "case-"},
		Policy:             PolicyExtended,
		Now:                clk.Now,
	})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	id := s.Add()
	s.SetDraftName(id, "site visit")
	if _, err := s.Save(context.Background(), id); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	e := s.Entries()[0]
	if e.LinkedRecordID != "job-1042" {
		t.Errorf("linked record = %q, want job-1042", e.LinkedRecordID)
	}
	want := []string{"GetInfo", "SaveEntry", "LinkRecord:srv-1"}
	if len(backend.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", backend.calls, want)
	}
	for i := range want {
		if backend.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", backend.calls, want)
		}
	}
}

func TestSaveNewEntrySkipsLinkForUnknownPrefix(t *testing.T) {
	backend := newFakeBackend()
	clk := &fakeClock{t: fixedNow()}
	s := NewStore(backend, Config{
		AssociatedRecordID: "acct-99",
		LinkablePrefixes:   []string{"job-", "case-"},
		Policy:             PolicyExtended,
		Now:                clk.Now,
	})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	id := s.Add()
	s.SetDraftName(id, "misc")
	if _, err := s.Save(context.Background(), id); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	for _, call := range backend.calls {
		if strings.HasPrefix(call, "LinkRecord") {
			t.Error("non-linkable record id must not trigger a link")
		}
	}
}

func TestCancelDraftRemovesIt(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend)

	id := s.Add()
	s.Cancel(id)
	if len(s.Entries()) != 0 {
		t.Error("cancelled draft should be removed")
	}
}

func TestDeleteProtocol(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	backend := newFakeBackend(todayEntry(clk, "e1", "standup", 0))
	s, _ := newTestStore(t, backend)

	s.MarkDelete("e1")
	if e := entryByID(t, s, "e1"); !e.IsPendingDelete {
		t.Error("MarkDelete should arm the entry")
	}
	s.CancelDelete("e1")
	if e := entryByID(t, s, "e1"); e.IsPendingDelete {
		t.Error("CancelDelete should disarm the entry")
	}

	s.MarkDelete("e1")
	if err := s.ConfirmDelete(context.Background(), "e1"); err != nil {
		t.Fatalf("ConfirmDelete() failed: %v", err)
	}
	if len(s.Entries()) != 0 {
		t.Error("confirmed delete should remove the entry")
	}
	if backend.calls[len(backend.calls)-1] != "DeleteEntry:e1" {
		t.Errorf("calls = %v, want DeleteEntry:e1 last", backend.calls)
	}
}

func TestDeleteDraftSkipsBackend(t *testing.T) {
	backend := newFakeBackend()
	s, _ := newTestStore(t, backend)

	id := s.Add()
	if err := s.ConfirmDelete(context.Background(), id); err != nil {
		t.Fatalf("ConfirmDelete() failed: %v", err)
	}
	for _, call := range backend.calls {
		if strings.HasPrefix(call, "DeleteEntry") {
			t.Error("deleting a draft must not reach the backend")
		}
	}
	if len(s.Entries()) != 0 {
		t.Error("draft should be removed")
	}
}

func TestDeleteFailureKeepsEntry(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	backend := newFakeBackend(todayEntry(clk, "e1", "standup", 0))
	s, _ := newTestStore(t, backend)

	backend.fail["DeleteEntry"] = errors.New("locked")
	if err := s.ConfirmDelete(context.Background(), "e1"); err == nil {
		t.Fatal("ConfirmDelete() should surface the backend error")
	}
	if len(s.Entries()) != 1 {
		t.Error("failed delete should keep the entry in the list")
	}
}

func TestStartStopsOtherRunningEntryFirst(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	running := todayEntry(clk, "e1", "standup", 0)
	running.StopwatchStart = clk.Now().Add(-time.Minute).UnixMilli()
	backend := newFakeBackend(running, todayEntry(clk, "e2", "review", 0))
	s, _ := newTestStore(t, backend)

	if err := s.Start(context.Background(), "e2"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	var stopIdx, startIdx int
	for i, call := range backend.calls {
		switch call {
		case "StopEntry:e1":
			stopIdx = i
		case "StartEntry:e2":
			startIdx = i
		}
	}
	if stopIdx == 0 || startIdx == 0 || stopIdx > startIdx {
		t.Errorf("calls = %v, want stop of e1 before start of e2", backend.calls)
	}
	if entryByID(t, s, "e1").IsRunning {
		t.Error("previous entry should be stopped")
	}
	if !entryByID(t, s, "e2").IsRunning {
		t.Error("started entry should be running")
	}
}

func TestStartProceedsWhenStopOtherFails(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	running := todayEntry(clk, "e1", "standup", 0)
	running.StopwatchStart = clk.Now().Add(-time.Minute).UnixMilli()
	backend := newFakeBackend(running, todayEntry(clk, "e2", "review", 0))
	s, _ := newTestStore(t, backend)

	backend.fail["StopEntry"] = errors.New("stop refused")
	err := s.Start(context.Background(), "e2")
	if err == nil {
		t.Fatal("Start() should surface the stop failure")
	}
	if !entryByID(t, s, "e2").IsRunning {
		t.Error("start should proceed despite the failed stop")
	}
	found := false
	for _, call := range backend.calls {
		if call == "StartEntry:e2" {
			found = true
		}
	}
	if !found {
		t.Errorf("calls = %v, want StartEntry:e2 present", backend.calls)
	}
}

func TestStartSkipsStopWhenSingleTaskDisabled(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	running := todayEntry(clk, "e1", "standup", 0)
	running.StopwatchStart = clk.Now().Add(-time.Minute).UnixMilli()
	backend := newFakeBackend(running, todayEntry(clk, "e2", "review", 0))

	s := NewStore(backend, Config{Policy: PolicyExtended, Now: clk.Now})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := s.Start(context.Background(), "e2"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	for _, call := range backend.calls {
		if strings.HasPrefix(call, "StopEntry") {
			t.Error("concurrent mode must not stop other entries")
		}
	}
	if !entryByID(t, s, "e1").IsRunning || !entryByID(t, s, "e2").IsRunning {
		t.Error("both entries should be running in concurrent mode")
	}
}

func TestStopFoldsElapsedIntoDuration(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	backend := newFakeBackend(todayEntry(clk, "e1", "standup", 30000))
	s, clk := newTestStore(t, backend)

	if err := s.Start(context.Background(), "e1"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if !s.TickActive() {
		t.Error("tick should be active while an entry runs")
	}

	clk.advance(90 * time.Second)
	if err := s.Stop(context.Background(), "e1"); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}

	e := entryByID(t, s, "e1")
	if e.IsRunning {
		t.Error("stopped entry should not be running")
	}
	if e.DurationMillis != 120000 {
		t.Errorf("duration = %d, want 120000", e.DurationMillis)
	}
	if e.Elapsed != "00:02:00" {
		t.Errorf("elapsed = %q, want 00:02:00", e.Elapsed)
	}
	if s.TickActive() {
		t.Error("tick should stop when nothing runs")
	}
}

func TestCompleteStopsRunningEntryFirst(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	running := todayEntry(clk, "e1", "standup", 0)
	running.StopwatchStart = clk.Now().Add(-time.Minute).UnixMilli()
	backend := newFakeBackend(running)
	s, _ := newTestStore(t, backend)

	if err := s.Complete(context.Background(), "e1"); err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}

	var stopIdx, completeIdx int
	for i, call := range backend.calls {
		switch call {
		case "StopEntry:e1":
			stopIdx = i
		case "CompleteEntry:e1":
			completeIdx = i
		}
	}
	if stopIdx == 0 || completeIdx == 0 || stopIdx > completeIdx {
		t.Errorf("calls = %v, want stop before complete", backend.calls)
	}
	e := entryByID(t, s, "e1")
	if !e.Completed || e.IsRunning {
		t.Errorf("entry = completed %v running %v, want completed and stopped", e.Completed, e.IsRunning)
	}
}

func TestCompleteAbortsWhenStopFails(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	running := todayEntry(clk, "e1", "standup", 0)
	running.StopwatchStart = clk.Now().Add(-time.Minute).UnixMilli()
	backend := newFakeBackend(running)
	s, _ := newTestStore(t, backend)

	backend.fail["StopEntry"] = errors.New("stop refused")
	if err := s.Complete(context.Background(), "e1"); err == nil {
		t.Fatal("Complete() should surface the stop failure")
	}
	for _, call := range backend.calls {
		if strings.HasPrefix(call, "CompleteEntry") {
			t.Error("complete must not run after a failed stop")
		}
	}
	if entryByID(t, s, "e1").Completed {
		t.Error("entry should stay open after an aborted complete")
	}
}

func TestUncompleteReopensEntry(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	done := todayEntry(clk, "e1", "standup", 60000)
	done.Completed = true
	backend := newFakeBackend(done)
	s, _ := newTestStore(t, backend)

	if err := s.Uncomplete(context.Background(), "e1"); err != nil {
		t.Fatalf("Uncomplete() failed: %v", err)
	}
	if entryByID(t, s, "e1").Completed {
		t.Error("entry should be open again")
	}
}

func TestTickAccumulatesAndMovesAnchor(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	backend := newFakeBackend(todayEntry(clk, "e1", "standup", 0), todayEntry(clk, "e2", "idle", 5000))
	s, clk := newTestStore(t, backend)

	if err := s.Start(context.Background(), "e1"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	clk.advance(time.Second)
	s.Tick()
	if got := entryByID(t, s, "e1").DurationMillis; got != 1000 {
		t.Errorf("duration after first tick = %d, want 1000", got)
	}

	// A delayed tick catches up by the real elapsed wall time.
	clk.advance(3 * time.Second)
	s.Tick()
	e := entryByID(t, s, "e1")
	if e.DurationMillis != 4000 {
		t.Errorf("duration after delayed tick = %d, want 4000", e.DurationMillis)
	}
	if e.Elapsed != "00:00:04" {
		t.Errorf("elapsed = %q, want 00:00:04", e.Elapsed)
	}
	if got := entryByID(t, s, "e2").DurationMillis; got != 5000 {
		t.Errorf("stopped entry duration = %d, tick must not touch it", got)
	}
}

func TestSchedulerActiveAfterLoadWithRunningEntry(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	running := todayEntry(clk, "e1", "standup", 0)
	running.StopwatchStart = clk.Now().Add(-time.Minute).UnixMilli()
	backend := newFakeBackend(running)
	s, _ := newTestStore(t, backend)

	if !s.TickActive() {
		t.Error("loading a running entry should activate the tick")
	}
}

func TestTotalTimeSumsVisibleOnly(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	yesterday := todayEntry(clk, "e2", "old", 60000)
	yesterday.EntryDate = clk.Now().Add(-24 * time.Hour).UnixMilli()
	completed := todayEntry(clk, "e3", "done", 30000)
	completed.Completed = true
	backend := newFakeBackend(todayEntry(clk, "e1", "standup", 90000), yesterday, completed)
	s, _ := newTestStore(t, backend)

	if got := s.TotalTime(); got != "00:01:30" {
		t.Errorf("TotalTime() in day view = %q, want 00:01:30", got)
	}

	s.ToggleShowCompleted()
	if got := s.TotalTime(); got != "00:02:00" {
		t.Errorf("TotalTime() with completed shown = %q, want 00:02:00", got)
	}

	s.SetWindow(WindowYesterday)
	s.ToggleShowCompleted()
	if got := s.TotalTime(); got != "00:01:00" {
		t.Errorf("TotalTime() in yesterday view = %q, want 00:01:00", got)
	}
}

func TestAdjustClampsAtZero(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	backend := newFakeBackend(todayEntry(clk, "e1", "standup", 30000))
	s, _ := newTestStore(t, backend)

	if err := s.Adjust(context.Background(), "e1", -60000); err != nil {
		t.Fatalf("Adjust() failed: %v", err)
	}
	if got := entryByID(t, s, "e1").DurationMillis; got != 0 {
		t.Errorf("duration = %d, want clamp at 0", got)
	}

	if err := s.Adjust(context.Background(), "e1", 15*60000); err != nil {
		t.Fatalf("Adjust() failed: %v", err)
	}
	if got := entryByID(t, s, "e1").Elapsed; got != "00:15:00" {
		t.Errorf("elapsed = %q, want 00:15:00", got)
	}
}

func TestSetNoteAndLink(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	backend := newFakeBackend(todayEntry(clk, "e1", "standup", 0))
	s, _ := newTestStore(t, backend)

	if err := s.SetNote(context.Background(), "e1", "talked about release"); err != nil {
		t.Fatalf("SetNote() failed: %v", err)
	}
	if got := entryByID(t, s, "e1").Description; got != "talked about release" {
		t.Errorf("description = %q", got)
	}

	if err := s.Link(context.Background(), "e1", "case-7"); err != nil {
		t.Fatalf("Link() failed: %v", err)
	}
	if got := entryByID(t, s, "e1").LinkedRecordID; got != "case-7" {
		t.Errorf("linked record = %q, want case-7", got)
	}

	if err := s.Link(context.Background(), "e1", ""); err != nil {
		t.Fatalf("Link() unlink failed: %v", err)
	}
	e := entryByID(t, s, "e1")
	if e.LinkedRecordID != "" || e.LinkedRecordLabel != "" {
		t.Error("unlink should clear the record fields")
	}
}

func TestResetZeroesEntry(t *testing.T) {
	clk := &fakeClock{t: fixedNow()}
	e := todayEntry(clk, "e1", "standup", 90000)
	e.StartDate = clk.Now().Add(-time.Hour).UnixMilli()
	e.EndDate = clk.Now().UnixMilli()
	backend := newFakeBackend(e)
	s, _ := newTestStore(t, backend)

	if err := s.Reset(context.Background(), "e1"); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	got := entryByID(t, s, "e1")
	if got.DurationMillis != 0 || got.StartDate != 0 || got.EndDate != 0 {
		t.Errorf("reset entry = duration %d start %d end %d, want all zero", got.DurationMillis, got.StartDate, got.EndDate)
	}
	if got.Elapsed != "00:00:00" {
		t.Errorf("elapsed = %q, want 00:00:00", got.Elapsed)
	}
}
