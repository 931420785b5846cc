package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"ide-commands/log"
)

// DefaultWatchDelay is how long the file has to stay quiet before a change
// is reported. Editors and atomic saves produce bursts of events.
const DefaultWatchDelay = 300 * time.Millisecond

// Watcher reports changes to a single file. It watches the parent directory
// so that atomic replacements and re-creations are seen.
type Watcher struct {
	path      string
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	changes   chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup
}

// WatchFile starts watching path. Changes are coalesced: Changes holds at
// most one pending notification.
func WatchFile(path string, delay time.Duration) (*Watcher, error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	// Make sure the directory exists before watching it
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to add %s to watcher: %w", dir, err)
	}

	w := &Watcher{
		path:      path,
		watcher:   fsw,
		debouncer: newDebouncer(delay),
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	log.InfoLog.Printf("watching shortcut file: %s", path)
	return w, nil
}

// Changes delivers a value after the file settles following a change.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching. Pending notifications are dropped.
func (w *Watcher) Close() error {
	close(w.done)
	w.debouncer.Cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	// Watch errors tend to repeat; log at most once a minute.
	everyN := log.NewEvery(60 * time.Second)
	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || event.Op&relevant == 0 {
				continue
			}
			w.debouncer.Trigger(w.notify)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if everyN.ShouldLog() {
				log.ErrorLog.Printf("shortcut file watcher error: %v", err)
			}
		}
	}
}

func (w *Watcher) notify() {
	select {
	case <-w.done:
	case w.changes <- struct{}{}:
	default:
	}
}

// debouncer delays an operation until triggers have settled
type debouncer struct {
	delay time.Duration
	timer *time.Timer
	mutex sync.Mutex
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// Trigger schedules callback after the delay, cancelling any pending one.
func (d *debouncer) Trigger(callback func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, callback)
}

// Cancel stops any pending operation
func (d *debouncer) Cancel() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
