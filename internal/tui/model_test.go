package tui

import (
	"context"
	"testing"

	"github.com/timetrack-io/timetrack/internal/models"
	"github.com/timetrack-io/timetrack/internal/rpc"
	"github.com/timetrack-io/timetrack/internal/track"
)

// stubBackend answers the store with a fixed entry table. Creates are
// assigned the id srv-1.
type stubBackend struct {
	entries []*rpc.Entry
}

func (b *stubBackend) GetInfo(ctx context.Context) (*rpc.TimetrackInfo, error) {
	return &rpc.TimetrackInfo{
		Categories: []*rpc.Category{{ID: "cat-general", Name: "General"}},
		Entries:    b.entries,
	}, nil
}

func (b *stubBackend) SaveEntry(ctx context.Context, in *rpc.SaveEntryRequest) (*rpc.Entry, error) {
	id := in.EntryID
	if id == "" {
		id = "srv-1"
	}
	e := &rpc.Entry{ID: id, Name: in.Name, CategoryID: in.CategoryID, EntryDate: in.EntryDate}
	b.entries = append(b.entries, e)
	return e, nil
}

func (b *stubBackend) DeleteEntry(ctx context.Context, entryID string) error { return nil }
func (b *stubBackend) CompleteEntry(ctx context.Context, entryID string) (*rpc.Entry, error) {
	return &rpc.Entry{ID: entryID}, nil
}
func (b *stubBackend) UncompleteEntry(ctx context.Context, entryID string) (*rpc.Entry, error) {
	return &rpc.Entry{ID: entryID}, nil
}
func (b *stubBackend) StartEntry(ctx context.Context, entryID string, epochMillis int64) (*rpc.Entry, error) {
	return &rpc.Entry{ID: entryID, StopwatchStart: epochMillis}, nil
}
func (b *stubBackend) StopEntry(ctx context.Context, entryID string, epochMillis int64) (*rpc.Entry, error) {
	return &rpc.Entry{ID: entryID}, nil
}
func (b *stubBackend) ResetEntry(ctx context.Context, entryID string) (*rpc.Entry, error) {
	return &rpc.Entry{ID: entryID}, nil
}
func (b *stubBackend) AddMilliseconds(ctx context.Context, entryID string, deltaMillis int64) (*rpc.Entry, error) {
	return &rpc.Entry{ID: entryID}, nil
}
func (b *stubBackend) SetNote(ctx context.Context, entryID, description string) (*rpc.Entry, error) {
	return &rpc.Entry{ID: entryID}, nil
}
func (b *stubBackend) LinkRecord(ctx context.Context, entryID, recordID string) (*rpc.Entry, error) {
	return &rpc.Entry{ID: entryID, LinkedRecordID: recordID}, nil
}

func loadedStore(t *testing.T) *track.Store {
	t.Helper()
	s := track.NewStore(&stubBackend{}, track.Config{})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return s
}

func TestSaveEntryCmdReportsAdoptedID(t *testing.T) {
	s := loadedStore(t)

	tempID := s.Add()
	s.SetDraftName(tempID, "site visit")

	msg := saveEntryCmd(s, tempID)()
	saved, ok := msg.(EntrySavedMsg)
	if !ok {
		t.Fatalf("msg = %T, want EntrySavedMsg", msg)
	}
	if saved.Err != nil {
		t.Fatalf("save failed: %v", saved.Err)
	}
	if saved.EntryID != "srv-1" {
		t.Errorf("EntryID = %q, want the daemon-assigned srv-1", saved.EntryID)
	}

	// The created entry must come out of the save usable, not stuck busy
	// behind its dead draft id.
	for _, e := range s.Entries() {
		if e.ID == "srv-1" && e.Busy {
			t.Error("created entry is still busy after the save completed")
		}
	}
}

func TestExternalChangeRefreshesUnlessEditing(t *testing.T) {
	m := NewModel(models.NewSettings())
	m.store = loadedStore(t)
	m.connected = true

	_, cmd := m.Update(EntriesChangedMsg{})
	if cmd == nil {
		t.Error("idle model should refresh on an external data change")
	}

	m.store.Add()
	_, cmd = m.Update(EntriesChangedMsg{})
	if cmd != nil {
		t.Error("a pending draft must not be thrown away by an external refresh")
	}
}

func TestExternalChangeBeforeConnectIsIgnored(t *testing.T) {
	m := NewModel(models.NewSettings())
	if _, cmd := m.Update(EntriesChangedMsg{}); cmd != nil {
		t.Error("external change before the store exists should be a no-op")
	}
}
