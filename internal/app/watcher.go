package app

import (
	"os"
	"time"
)

// FileWatcher polls a set of data files for modification and triggers
// a callback when any of them changes. Useful when a graph is kept
// open over a file another process appends to.
type FileWatcher struct {
	paths         []string
	baseline      map[string]time.Time
	checkInterval time.Duration
	stopCh        chan struct{}
	onChange      func(path string)
}

// NewFileWatcher creates a watcher over the given files. Files that
// cannot be stat'ed now are still watched; they fire once they appear.
func NewFileWatcher(paths []string, checkInterval time.Duration) *FileWatcher {
	w := &FileWatcher{
		paths:         paths,
		baseline:      make(map[string]time.Time),
		checkInterval: checkInterval,
		stopCh:        make(chan struct{}),
	}
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil {
			w.baseline[p] = info.ModTime()
		}
	}
	return w
}

// OnChange sets the callback to invoke when a watched file changes.
// The callback is called from a background goroutine - use appropriate
// synchronization if updating UI.
func (w *FileWatcher) OnChange(callback func(path string)) {
	w.onChange = callback
}

// Start begins watching in a background goroutine.
func (w *FileWatcher) Start() {
	w.stopCh = make(chan struct{})
	go w.watchLoop()
}

// Stop stops the watcher goroutine.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

func (w *FileWatcher) watchLoop() {
	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			for _, p := range w.changed() {
				if w.onChange != nil {
					w.onChange(p)
				}
			}
		}
	}
}

// changed returns the files modified since the last check and advances
// the baseline so each change fires once.
func (w *FileWatcher) changed() []string {
	var out []string
	for _, p := range w.paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		last, seen := w.baseline[p]
		if !seen || info.ModTime().After(last) {
			w.baseline[p] = info.ModTime()
			if seen {
				out = append(out, p)
			}
		}
	}
	return out
}
