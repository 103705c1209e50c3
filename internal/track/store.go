package track

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/timetrack-io/timetrack/internal/rpc"
)

// ErrNameRequired is returned by Save when the draft name is empty. The entry
// stays in editing mode; nothing is sent to the daemon.
var ErrNameRequired = errors.New("entry name is required")

// ErrPendingChanges is returned by Refresh when an unsaved draft or edit
// would be thrown away by reloading.
var ErrPendingChanges = errors.New("unsaved changes, save or cancel first")

// Backend is the remote boundary the store mutates through. *rpc.Client
// satisfies it; tests substitute a fake.
type Backend interface {
	GetInfo(ctx context.Context) (*rpc.TimetrackInfo, error)
	SaveEntry(ctx context.Context, in *rpc.SaveEntryRequest) (*rpc.Entry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	CompleteEntry(ctx context.Context, entryID string) (*rpc.Entry, error)
	UncompleteEntry(ctx context.Context, entryID string) (*rpc.Entry, error)
	StartEntry(ctx context.Context, entryID string, epochMillis int64) (*rpc.Entry, error)
	StopEntry(ctx context.Context, entryID string, epochMillis int64) (*rpc.Entry, error)
	ResetEntry(ctx context.Context, entryID string) (*rpc.Entry, error)
	AddMilliseconds(ctx context.Context, entryID string, deltaMillis int64) (*rpc.Entry, error)
	SetNote(ctx context.Context, entryID, description string) (*rpc.Entry, error)
	LinkRecord(ctx context.Context, entryID, recordID string) (*rpc.Entry, error)
}

// Config carries the store's mount-time parameters.
type Config struct {
	// SingleTaskOnlyRunning stops any other running entry before a start.
	SingleTaskOnlyRunning bool

	// AssociatedRecordID, when it carries a linkable prefix, is linked to
	// every newly created entry right after the create succeeds.
	AssociatedRecordID string
	LinkablePrefixes   []string

	Policy        Policy
	DefaultWindow Window
	ShowCompleted bool

	// Now overrides the clock in tests. Nil means time.Now.
	Now func() time.Time
}

// Store owns the entry collection and applies the mutation protocol:
// optimistic local updates, a single awaited daemon call per operation, then
// reconciliation from the response. There is no rollback path; a failed call
// leaves the optimistic state in place and surfaces the error to the caller.
//
// All methods are safe for concurrent use. Mutating methods hold the lock
// across the daemon call, so operations are serialized in call order.
type Store struct {
	mu      sync.Mutex
	backend Backend
	cfg     Config
	now     func() time.Time

	filters    ViewFilters
	categories []*rpc.Category
	entries    []*Entry
	sched      Scheduler
	loaded     bool
}

// NewStore builds an empty store; call Load to populate it.
func NewStore(backend Backend, cfg Config) *Store {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		backend: backend,
		cfg:     cfg,
		now:     now,
		filters: ViewFilters{
			Window:        cfg.DefaultWindow,
			ShowCompleted: cfg.ShowCompleted,
			Policy:        cfg.Policy,
		},
	}
}

// Load replaces the dataset with the daemon's. On failure the dataset is
// cleared rather than left stale.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := s.backend.GetInfo(ctx)
	if err != nil {
		s.categories = nil
		s.entries = nil
		s.loaded = false
		s.sched.Reconcile(false)
		return fmt.Errorf("failed to load entries: %w", err)
	}

	now := s.now()
	s.categories = info.Categories
	s.entries = make([]*Entry, 0, len(info.Entries))
	for _, raw := range info.Entries {
		s.entries = append(s.entries, BuildEntry(raw, nil, now))
	}
	s.loaded = true
	s.reconcileLocked()
	return nil
}

// Refresh reloads from the daemon unless unsaved changes would be lost.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	for _, e := range s.entries {
		if e.IsNew || e.IsEditing || e.IsModified {
			s.mu.Unlock()
			return ErrPendingChanges
		}
	}
	s.mu.Unlock()
	return s.Load(ctx)
}

// Loaded reports whether the last load succeeded.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Categories returns the category list from the last load.
func (s *Store) Categories() []*rpc.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*rpc.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Entries returns a snapshot of the collection in display order.
func (s *Store) Entries() []*Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		c := *e
		out = append(out, &c)
	}
	return out
}

// Filters returns the current visibility configuration.
func (s *Store) Filters() ViewFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetWindow switches the active time window.
func (s *Store) SetWindow(w Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Window = w
}

// ToggleShowCompleted flips completed-entry visibility under the extended
// policy.
func (s *Store) ToggleShowCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.ShowCompleted = !s.filters.ShowCompleted
}

// HasData reports whether any entry survives the current filters.
func (s *Store) HasData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if !Hidden(e, s.filters) {
			return true
		}
	}
	return false
}

// TotalTime is the formatted sum of durations over the visible entries.
func (s *Store) TotalTime() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, e := range s.entries {
		if !Hidden(e, s.filters) {
			total += e.DurationMillis
		}
	}
	return FormatMilliseconds(total)
}

// HasPendingChanges reports whether any entry has unsaved local state.
func (s *Store) HasPendingChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.IsNew || e.IsEditing || e.IsModified {
			return true
		}
	}
	return false
}

// TickActive reports whether the one-second tick should be scheduled.
func (s *Store) TickActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.Active()
}

// Tick advances every running entry's elapsed time and moves its local
// anchor to now, so missed or delayed ticks never lose time.
func (s *Store) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sched.Active() {
		return
	}
	nowMs := s.now().UnixMilli()
	for _, e := range s.entries {
		if !e.IsRunning || e.LocalStartEpoch == 0 {
			continue
		}
		e.DurationMillis += nowMs - e.LocalStartEpoch
		e.LocalStartEpoch = nowMs
		e.Elapsed = FormatMilliseconds(e.DurationMillis)
	}
}

// Add prepends a fresh draft and returns its client-generated id.
func (s *Store) Add() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var def *rpc.Category
	if len(s.categories) > 0 {
		def = s.categories[0]
	}
	draft := BuildEntry(nil, def, s.now())
	s.entries = append([]*Entry{draft}, s.entries...)
	return draft.ID
}

// Edit puts an entry into editing mode, seeding the draft fields from its
// saved state.
func (s *Store) Edit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return
	}
	e.IsEditing = true
	e.DraftName = e.Name
	e.DraftCategoryID = e.CategoryID
}

// SetDraftName updates the draft name of an entry in editing mode.
func (s *Store) SetDraftName(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.find(id); e != nil && e.IsEditing {
		e.DraftName = name
		e.IsModified = true
	}
}

// SetDraftCategory updates the draft category of an entry in editing mode.
func (s *Store) SetDraftCategory(id, categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.find(id); e != nil && e.IsEditing {
		e.DraftCategoryID = categoryID
		e.IsModified = true
	}
}

// Cancel leaves editing mode without saving. A draft that was never
// persisted is removed entirely.
func (s *Store) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return
	}
	if e.IsNew {
		s.remove(id)
		return
	}
	e.IsEditing = false
	e.IsModified = false
	e.DraftName = ""
	e.DraftCategoryID = ""
}

// Save commits the draft fields. An empty name aborts before any daemon call
// and the entry stays in editing mode. The committed name and category stay
// applied locally even when the daemon call fails. The returned id is the
// entry's id after the save: a draft adopts the daemon-assigned id, so the
// caller must address it by the returned id from then on.
func (s *Store) Save(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return id, nil
	}
	if strings.TrimSpace(e.DraftName) == "" {
		return id, ErrNameRequired
	}

	e.Name = e.DraftName
	if e.DraftCategoryID != "" {
		e.CategoryID = e.DraftCategoryID
		e.CategoryName = s.categoryName(e.DraftCategoryID)
	}

	req := &rpc.SaveEntryRequest{
		Name:       e.Name,
		CategoryID: e.CategoryID,
		EntryDate:  e.EntryDate,
	}
	wasNew := e.IsNew
	if !wasNew {
		req.EntryID = e.ID
	}

	resp, err := s.backend.SaveEntry(ctx, req)
	if err != nil {
		return id, fmt.Errorf("failed to save entry: %w", err)
	}

	e.apply(resp, s.now())
	e.IsNew = false
	e.IsEditing = false
	e.IsModified = false
	e.DraftName = ""
	e.DraftCategoryID = ""

	if wasNew && s.autoLinkID() != "" {
		linked, err := s.backend.LinkRecord(ctx, e.ID, s.cfg.AssociatedRecordID)
		if err != nil {
			return e.ID, fmt.Errorf("entry saved but failed to link record: %w", err)
		}
		e.apply(linked, s.now())
	}
	return e.ID, nil
}

// MarkDelete arms the two-step delete confirmation on an entry.
func (s *Store) MarkDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.find(id); e != nil {
		e.IsPendingDelete = true
	}
}

// CancelDelete disarms a pending delete.
func (s *Store) CancelDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.find(id); e != nil {
		e.IsPendingDelete = false
	}
}

// ConfirmDelete removes the entry. Drafts are dropped locally without a
// daemon call; a failed daemon delete keeps the entry in the list.
func (s *Store) ConfirmDelete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return nil
	}
	if !e.IsNew {
		if err := s.backend.DeleteEntry(ctx, id); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
	}
	s.remove(id)
	s.reconcileLocked()
	return nil
}

// Start starts an entry's stopwatch. Under single-task mode any other
// running entry is stopped first; a failure there is reported but does not
// block the start. The local anchor is set before the daemon call so the
// first tick never under-counts.
func (s *Store) Start(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil || e.IsRunning {
		return nil
	}

	var stopErr error
	if s.cfg.SingleTaskOnlyRunning {
		for _, other := range s.entries {
			if other.ID != id && other.IsRunning {
				stopErr = s.stopLocked(ctx, other)
				break
			}
		}
	}

	e.LocalStartEpoch = s.now().UnixMilli()
	resp, err := s.backend.StartEntry(ctx, id, e.LocalStartEpoch)
	if err != nil {
		return errors.Join(stopErr, fmt.Errorf("failed to start entry: %w", err))
	}
	e.apply(resp, s.now())
	s.reconcileLocked()
	if stopErr != nil {
		return fmt.Errorf("started, but failed to stop previous entry: %w", stopErr)
	}
	return nil
}

// Stop stops an entry's stopwatch.
func (s *Store) Stop(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil || !e.IsRunning {
		return nil
	}
	if err := s.stopLocked(ctx, e); err != nil {
		return err
	}
	s.reconcileLocked()
	return nil
}

func (s *Store) stopLocked(ctx context.Context, e *Entry) error {
	resp, err := s.backend.StopEntry(ctx, e.ID, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to stop entry: %w", err)
	}
	e.apply(resp, s.now())
	return nil
}

// Complete marks an entry done, stopping it first when running. A failed
// stop aborts the complete.
func (s *Store) Complete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return nil
	}
	if e.IsRunning {
		if err := s.stopLocked(ctx, e); err != nil {
			return err
		}
	}
	resp, err := s.backend.CompleteEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to complete entry: %w", err)
	}
	e.apply(resp, s.now())
	s.reconcileLocked()
	return nil
}

// Uncomplete reopens a completed entry.
func (s *Store) Uncomplete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return nil
	}
	resp, err := s.backend.UncompleteEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to reopen entry: %w", err)
	}
	e.apply(resp, s.now())
	return nil
}

// Reset zeroes an entry's duration and dates.
func (s *Store) Reset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return nil
	}
	resp, err := s.backend.ResetEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to reset entry: %w", err)
	}
	e.apply(resp, s.now())
	s.reconcileLocked()
	return nil
}

// Adjust adds a signed delta to an entry's duration. The daemon clamps the
// result at zero.
func (s *Store) Adjust(ctx context.Context, id string, deltaMillis int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return nil
	}
	resp, err := s.backend.AddMilliseconds(ctx, id, deltaMillis)
	if err != nil {
		return fmt.Errorf("failed to adjust entry: %w", err)
	}
	e.apply(resp, s.now())
	return nil
}

// SetNote replaces an entry's note.
func (s *Store) SetNote(ctx context.Context, id, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return nil
	}
	resp, err := s.backend.SetNote(ctx, id, description)
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	e.apply(resp, s.now())
	return nil
}

// Link attaches an entry to an external record; an empty recordID unlinks.
func (s *Store) Link(ctx context.Context, id, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.find(id)
	if e == nil {
		return nil
	}
	resp, err := s.backend.LinkRecord(ctx, id, recordID)
	if err != nil {
		return fmt.Errorf("failed to link record: %w", err)
	}
	e.apply(resp, s.now())
	return nil
}

// SetBusy marks an entry as having an in-flight operation so the UI can
// disable its controls.
func (s *Store) SetBusy(id string, busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.find(id); e != nil {
		e.Busy = busy
	}
}

// autoLinkID returns the configured record id when it carries a linkable
// prefix, otherwise empty.
func (s *Store) autoLinkID() string {
	rid := s.cfg.AssociatedRecordID
	if rid == "" {
		return ""
	}
	for _, prefix := range s.cfg.LinkablePrefixes {
		if prefix != "" && strings.HasPrefix(rid, prefix) {
			return rid
		}
	}
	return ""
}

func (s *Store) categoryName(id string) string {
	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (s *Store) find(id string) *Entry {
	for _, e := range s.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *Store) remove(id string) {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *Store) reconcileLocked() {
	anyRunning := false
	for _, e := range s.entries {
		if e.IsRunning {
			anyRunning = true
			break
		}
	}
	s.sched.Reconcile(anyRunning)
}
