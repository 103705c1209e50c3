package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"google.golang.org/grpc"

	"github.com/timetrack-io/timetrack/internal/models"
	"github.com/timetrack-io/timetrack/internal/rpc"
	"github.com/timetrack-io/timetrack/internal/track"
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	// gRPC connection
	conn      *grpc.ClientConn
	connected bool

	// Entry data
	settings *models.Settings
	store    *track.Store

	// UI state
	activeOverlay int
	width         int
	height        int

	// Confirm mode
	confirmMode int

	// Status display
	err       error
	showSaved bool

	// Ticker state; true while a TickMsg is scheduled.
	ticking bool

	// Child components
	entryList *EntryList
	entryForm *EntryForm
	noteForm  *NoteForm
	linkForm  *LinkForm
}

// NewModel creates the initial TUI model.
func NewModel(settings *models.Settings) Model {
	return Model{
		settings:  settings,
		entryList: NewEntryList(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		connectDaemonCmd(),
		tea.EnableMouseAllMotion,
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.entryList.SetHeight(m.listHeight())
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// ── Mouse events ───────────────────────────────────────────────
	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	// ── Daemon connection ──────────────────────────────────────────
	case DaemonConnectedMsg:
		m.conn = msg.Conn
		m.connected = true
		m.store = track.NewStore(rpc.NewClient(m.conn), track.Config{
			SingleTaskOnlyRunning: m.settings.SingleTaskOnlyRunning,
			AssociatedRecordID:    m.settings.Linking.AssociatedRecordID,
			LinkablePrefixes:      m.settings.Linking.LinkablePrefixes,
			Policy:                track.ParsePolicy(m.settings.View.FilterPolicy),
			DefaultWindow:         track.ParseWindow(m.settings.View.DefaultFilter),
			ShowCompleted:         m.settings.View.ShowCompleted,
		})
		return m, loadEntriesCmd(m.store)

	case DaemonDisconnectedMsg:
		m.connected = false
		return m, nil

	// ── Entry data ─────────────────────────────────────────────────
	case EntriesLoadedMsg:
		if msg.Err != nil {
			cmds = append(cmds, m.showError(msg.Err))
		}
		m.syncFromStore()
		cmds = append(cmds, m.ensureTicker())
		return m, tea.Batch(cmds...)

	case EntryOpDoneMsg:
		if msg.Err != nil {
			cmds = append(cmds, m.showError(msg.Err))
		}
		m.syncFromStore()
		cmds = append(cmds, m.ensureTicker())
		return m, tea.Batch(cmds...)

	case EntrySavedMsg:
		if msg.Err != nil {
			// The overlay stays open so the draft can be fixed and retried.
			cmds = append(cmds, m.showError(msg.Err))
			m.syncFromStore()
			return m, tea.Batch(cmds...)
		}
		if m.activeOverlay == overlayAddEntry || m.activeOverlay == overlayEditEntry {
			m.activeOverlay = overlayNone
			m.entryForm = nil
		}
		m.showSaved = true
		m.syncFromStore()
		if id := msg.EntryID; id != "" {
			m.entryList.Select(id)
		}
		cmds = append(cmds, clearSavedAfter(2*time.Second), m.ensureTicker())
		return m, tea.Batch(cmds...)

	// ── External file changes ──────────────────────────────────────
	case EntriesChangedMsg:
		// An unsaved draft or edit wins over the on-disk change; the
		// refresh would be rejected with ErrPendingChanges anyway.
		if m.store == nil || !m.store.Loaded() || m.store.HasPendingChanges() {
			return m, nil
		}
		return m, refreshCmd(m.store)

	// ── Timer tick ─────────────────────────────────────────────────
	case TickMsg:
		m.ticking = false
		if m.store != nil && m.store.TickActive() {
			m.store.Tick()
			m.syncFromStore()
			m.ticking = true
			return m, tickCmd()
		}
		return m, nil

	// ── Status display ─────────────────────────────────────────────
	case ErrorMsg:
		return m, m.showError(msg.Err)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearSavedMsg:
		m.showSaved = false
		return m, nil
	}

	return m, nil
}

// handleKey routes key events by UI mode.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Quit confirmation takes priority over everything.
	if m.confirmMode == confirmQuit {
		switch {
		case key.Matches(msg, confirmKeys.Yes):
			return tea.Quit
		case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
			m.confirmMode = confirmNone
		}
		return nil
	}

	if key.Matches(msg, globalKeys.Quit) {
		if m.store != nil && m.store.HasPendingChanges() {
			m.confirmMode = confirmQuit
			return nil
		}
		return tea.Quit
	}

	if m.activeOverlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	if key.Matches(msg, globalKeys.Help) {
		m.activeOverlay = overlayHelp
		return nil
	}

	if m.store == nil {
		return nil
	}

	return m.handleListKey(msg)
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch m.activeOverlay {
	case overlayHelp:
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return nil

	case overlayAddEntry, overlayEditEntry:
		return m.handleEntryFormKey(msg)

	case overlayNote:
		return m.handleNoteFormKey(msg)

	case overlayLink:
		return m.handleLinkFormKey(msg)
	}
	return nil
}

func (m *Model) handleEntryFormKey(msg tea.KeyMsg) tea.Cmd {
	form := m.entryForm
	if form == nil {
		m.activeOverlay = overlayNone
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		m.store.SetDraftName(form.EntryID(), form.Name())
		m.store.SetDraftCategory(form.EntryID(), form.CategoryID())
		return saveEntryCmd(m.store, form.EntryID())

	case key.Matches(msg, overlayKeys.Cancel):
		m.store.Cancel(form.EntryID())
		m.activeOverlay = overlayNone
		m.entryForm = nil
		m.syncFromStore()
		return nil

	case key.Matches(msg, overlayKeys.Tab):
		form.FocusNext()
		return nil
	}

	if form.FocusIndex() == 1 {
		switch msg.String() {
		case "left", "h":
			form.PrevCategory()
			return nil
		case "right", "l", " ":
			form.NextCategory()
			return nil
		}
		return nil
	}

	var cmd tea.Cmd
	*form.NameInput(), cmd = form.NameInput().Update(msg)
	m.store.SetDraftName(form.EntryID(), form.Name())
	m.syncFromStore()
	return cmd
}

func (m *Model) handleNoteFormKey(msg tea.KeyMsg) tea.Cmd {
	form := m.noteForm
	if form == nil {
		m.activeOverlay = overlayNone
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		id, note := form.EntryID(), form.Note()
		m.activeOverlay = overlayNone
		m.noteForm = nil
		return entryOpCmd(m.store, id, func(ctx context.Context) error {
			return m.store.SetNote(ctx, id, note)
		})

	case key.Matches(msg, overlayKeys.Cancel):
		m.activeOverlay = overlayNone
		m.noteForm = nil
		return nil
	}

	var cmd tea.Cmd
	*form.Area(), cmd = form.Area().Update(msg)
	return cmd
}

func (m *Model) handleLinkFormKey(msg tea.KeyMsg) tea.Cmd {
	form := m.linkForm
	if form == nil {
		m.activeOverlay = overlayNone
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		id, recordID := form.EntryID(), form.RecordID()
		m.activeOverlay = overlayNone
		m.linkForm = nil
		return entryOpCmd(m.store, id, func(ctx context.Context) error {
			return m.store.Link(ctx, id, recordID)
		})

	case key.Matches(msg, overlayKeys.Cancel):
		m.activeOverlay = overlayNone
		m.linkForm = nil
		return nil
	}

	var cmd tea.Cmd
	*form.Input(), cmd = form.Input().Update(msg)
	return cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	selected := m.entryList.Selected()

	// A pending delete narrows the keymap to confirm or keep.
	if selected != nil && selected.IsPendingDelete {
		switch {
		case key.Matches(msg, entryListKeys.Delete), key.Matches(msg, confirmKeys.Yes):
			id := selected.ID
			return entryOpCmd(m.store, id, func(ctx context.Context) error {
				return m.store.ConfirmDelete(ctx, id)
			})
		default:
			m.store.CancelDelete(selected.ID)
			m.syncFromStore()
			return nil
		}
	}

	switch {
	case key.Matches(msg, entryListKeys.Up):
		m.entryList.MoveUp()
		return nil

	case key.Matches(msg, entryListKeys.Down):
		m.entryList.MoveDown()
		return nil

	case key.Matches(msg, entryListKeys.Add):
		id := m.store.Add()
		m.syncFromStore()
		m.entryList.Select(id)
		m.entryForm = NewEntryForm("add", id, m.store.Categories(), m.width)
		m.activeOverlay = overlayAddEntry
		return nil

	case key.Matches(msg, entryListKeys.Edit), key.Matches(msg, entryListKeys.Enter):
		if selected == nil || selected.Completed {
			return nil
		}
		m.store.Edit(selected.ID)
		m.syncFromStore()
		m.entryForm = NewEntryForm("edit", selected.ID, m.store.Categories(), m.width)
		m.entryForm.PreFill(selected.Name, selected.CategoryID)
		m.activeOverlay = overlayEditEntry
		return nil

	case key.Matches(msg, entryListKeys.StartStop):
		if selected == nil || selected.IsNew || selected.Busy {
			return nil
		}
		id := selected.ID
		if selected.IsRunning {
			return entryOpCmd(m.store, id, func(ctx context.Context) error {
				return m.store.Stop(ctx, id)
			})
		}
		return entryOpCmd(m.store, id, func(ctx context.Context) error {
			return m.store.Start(ctx, id)
		})

	case key.Matches(msg, entryListKeys.Complete):
		if selected == nil || selected.IsNew || selected.Completed || selected.Busy {
			return nil
		}
		id := selected.ID
		return entryOpCmd(m.store, id, func(ctx context.Context) error {
			return m.store.Complete(ctx, id)
		})

	case key.Matches(msg, entryListKeys.Uncomplete):
		if selected == nil || !selected.Completed || selected.Busy {
			return nil
		}
		id := selected.ID
		return entryOpCmd(m.store, id, func(ctx context.Context) error {
			return m.store.Uncomplete(ctx, id)
		})

	case key.Matches(msg, entryListKeys.Reset):
		if selected == nil || selected.IsNew || selected.Busy {
			return nil
		}
		id := selected.ID
		return entryOpCmd(m.store, id, func(ctx context.Context) error {
			return m.store.Reset(ctx, id)
		})

	case key.Matches(msg, entryListKeys.AddTime):
		return m.adjustSelected(selected, track.AdjustStepMillis)

	case key.Matches(msg, entryListKeys.SubTime):
		return m.adjustSelected(selected, -track.AdjustStepMillis)

	case key.Matches(msg, entryListKeys.Note):
		if selected == nil || selected.IsNew {
			return nil
		}
		m.noteForm = NewNoteForm(selected.ID, selected.Name, selected.Description, m.width)
		m.activeOverlay = overlayNote
		return nil

	case key.Matches(msg, entryListKeys.Link):
		if selected == nil || selected.IsNew {
			return nil
		}
		m.linkForm = NewLinkForm(selected.ID, selected.Name, selected.LinkedRecordID, m.width)
		m.activeOverlay = overlayLink
		return nil

	case key.Matches(msg, entryListKeys.Unlink):
		if selected == nil || selected.LinkedRecordID == "" || selected.Busy {
			return nil
		}
		id := selected.ID
		return entryOpCmd(m.store, id, func(ctx context.Context) error {
			return m.store.Link(ctx, id, "")
		})

	case key.Matches(msg, entryListKeys.Delete):
		if selected == nil {
			return nil
		}
		m.store.MarkDelete(selected.ID)
		m.syncFromStore()
		return nil

	case key.Matches(msg, entryListKeys.Refresh):
		return refreshCmd(m.store)

	case key.Matches(msg, entryListKeys.ShowCompleted):
		m.store.ToggleShowCompleted()
		m.syncFromStore()
		return nil

	case key.Matches(msg, windowKeys.Day):
		return m.switchWindow(track.WindowDay)
	case key.Matches(msg, windowKeys.Yesterday):
		return m.switchWindow(track.WindowYesterday)
	case key.Matches(msg, windowKeys.Week):
		return m.switchWindow(track.WindowWeek)
	case key.Matches(msg, windowKeys.Month):
		return m.switchWindow(track.WindowMonth)
	}

	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.activeOverlay != overlayNone || m.store == nil {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			m.entryList.MoveUp()
		}
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			m.entryList.MoveDown()
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		// Rows: 0 header, 1 top border, list starts at 2.
		if msg.Y >= 2 && msg.Y < 2+m.listHeight() {
			m.entryList.SelectAt(msg.Y - 2)
		}
	}
	return nil
}

func (m *Model) adjustSelected(selected *track.Entry, delta int64) tea.Cmd {
	if selected == nil || selected.IsNew || selected.IsRunning || selected.Busy {
		return nil
	}
	id := selected.ID
	return entryOpCmd(m.store, id, func(ctx context.Context) error {
		return m.store.Adjust(ctx, id, delta)
	})
}

func (m *Model) switchWindow(w track.Window) tea.Cmd {
	m.store.SetWindow(w)
	m.syncFromStore()
	return nil
}

// syncFromStore refreshes the entry list snapshot from the store.
func (m *Model) syncFromStore() {
	if m.store == nil {
		return
	}
	m.entryList.SetEntries(m.store.Entries(), m.store.Filters())
}

// ensureTicker schedules the one-second tick when a timer is running and no
// tick is already in flight.
func (m *Model) ensureTicker() tea.Cmd {
	if m.ticking || m.store == nil || !m.store.TickActive() {
		return nil
	}
	m.ticking = true
	return tickCmd()
}

func (m *Model) showError(err error) tea.Cmd {
	m.err = err
	return clearErrorAfter(5 * time.Second)
}

func (m *Model) runningName() string {
	for _, e := range m.store.Entries() {
		if e.IsRunning {
			return e.Name
		}
	}
	return ""
}

func (m *Model) listHeight() int {
	h := m.height - 4 // header + borders + status bar
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small. Resize to at least 40x10."
	}

	if !m.connected || m.store == nil {
		msg := lipgloss.NewStyle().Foreground(colorDim).Render("Connecting to daemon...")
		base := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
		if m.err != nil {
			return lipgloss.JoinVertical(lipgloss.Left,
				base,
				renderErrorBar(m.err.Error(), m.width),
			)
		}
		return base
	}

	header := renderHeader(m.store.Filters(), m.store.TotalTime(), m.runningName(), m.width)

	list := listBorderStyle.
		Width(m.width - 2).
		Height(m.listHeight()).
		Render(m.entryList.View(m.width - 4))

	status := renderStatusBar(&m, m.width)

	base := lipgloss.JoinVertical(lipgloss.Left, header, list, status)

	switch m.activeOverlay {
	case overlayHelp:
		return renderOverlay(base, renderHelp(m.width), m.width, m.height)
	case overlayAddEntry, overlayEditEntry:
		if m.entryForm != nil {
			return renderOverlay(base, m.entryForm.View(), m.width, m.height)
		}
	case overlayNote:
		if m.noteForm != nil {
			return renderOverlay(base, m.noteForm.View(), m.width, m.height)
		}
	case overlayLink:
		if m.linkForm != nil {
			return renderOverlay(base, m.linkForm.View(), m.width, m.height)
		}
	}

	return base
}
