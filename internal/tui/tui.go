// Package tui implements the interactive TUI for Timetrack.
package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/timetrack-io/timetrack/internal/config"
	"github.com/timetrack-io/timetrack/internal/daemon/watcher"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI.
func Run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	ref := &programRef{}
	model := NewModel(settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	// Store program reference for goroutine sends
	ref.Set(p)

	if w := startDataWatcher(ref); w != nil {
		defer w.Stop()
	}

	_, err = p.Run()
	ref.Clear()
	return err
}

// startDataWatcher forwards on-disk data changes into the running program so
// the list refreshes when the daemon or another client writes an entry file.
// Watch failures are non-fatal; the TUI still works, just without live
// refresh.
func startDataWatcher(ref *programRef) *watcher.Watcher {
	dataDir, err := config.GlobalDir()
	if err != nil {
		return nil
	}
	w, err := watcher.New(dataDir)
	if err != nil {
		return nil
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return nil
	}

	go func() {
		for ev := range w.Events() {
			switch ev.Type {
			case watcher.EventEntryChanged, watcher.EventEntryCreated,
				watcher.EventEntryDeleted, watcher.EventCategoriesChanged:
				ref.Send(EntriesChangedMsg{})
			}
		}
	}()

	return w
}
