// Package watcher handles file system watching for the daemon.
package watcher

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/timetrack-io/timetrack/internal/config"
)

// EventType represents the type of file system event.
type EventType int

// Event types for file system changes.
const (
	EventEntryChanged EventType = iota
	EventEntryCreated
	EventEntryDeleted
	EventCategoriesChanged
	EventSettingsChanged
)

// Event represents a file system change event.
type Event struct {
	Type    EventType
	EntryID string
	Path    string
}

// Watcher watches the data directory for changes made behind the daemon's
// back, e.g. by a second client instance or a sync tool.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	dataDir    string
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a new file system watcher for dataDir.
func New(dataDir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 100),
		done:       make(chan struct{}),
		dataDir:    dataDir,
		debounce:   make(map[string]*time.Timer),
	}

	return w, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts the watcher.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dataDir); err != nil {
		return err
	}
	if err := w.fsWatcher.Add(config.EntriesDir(w.dataDir)); err != nil {
		// Entries dir might not exist yet, that's OK
		log.Printf("Warning: failed to watch entries dir: %v", err)
	}

	// Start processing events
	go w.processEvents()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

// processEvents processes file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// handleEvent processes a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, rename and remove events. Rename matters
	// because atomic writes (write tmp, rename to target) produce Rename
	// events on the target file.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	// Debounce events
	w.debounceEvent(event.Name, func() {
		w.processFileChange(event.Name, event.Op)
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	// Cancel existing timer
	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	// Create new timer
	w.debounce[path] = time.AfterFunc(100*time.Millisecond, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

// processFileChange handles a debounced file change.
func (w *Watcher) processFileChange(path string, op fsnotify.Op) {
	filename := filepath.Base(path)
	dir := filepath.Dir(path)

	if dir == w.dataDir {
		switch filename {
		case config.CategoriesFileName:
			w.eventsChan <- Event{Type: EventCategoriesChanged, Path: path}
		case config.SettingsFileName:
			w.eventsChan <- Event{Type: EventSettingsChanged, Path: path}
		case config.EntriesDirName:
			// A freshly created entries dir needs its own watch.
			if op&fsnotify.Create != 0 {
				if err := w.fsWatcher.Add(path); err != nil {
					log.Printf("Warning: failed to watch entries dir: %v", err)
				}
			}
		}
		return
	}

	if dir == config.EntriesDir(w.dataDir) && strings.HasSuffix(filename, ".yaml") {
		eventType := EventEntryChanged
		switch {
		case op&fsnotify.Create != 0:
			eventType = EventEntryCreated
		case op&fsnotify.Remove != 0:
			eventType = EventEntryDeleted
		}
		w.eventsChan <- Event{
			Type:    eventType,
			EntryID: strings.TrimSuffix(filename, ".yaml"),
			Path:    path,
		}
	}
}
