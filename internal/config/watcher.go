package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/iamgreaser/forceime/internal/diag"
)

// ReloadFunc is called with the re-parsed configuration after the watched
// file changes. Only diagnostics settings can be applied to a live session;
// buffer geometry takes effect for sessions created afterwards.
type ReloadFunc func(Config)

// Watcher reloads the configuration file when it changes on disk.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload ReloadFunc
	log      *diag.Logger

	mu     sync.Mutex
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher watches path and calls onReload with each successfully parsed
// new configuration. Parse and validation failures are logged and the
// previous configuration stays in effect.
func NewWatcher(path string, onReload ReloadFunc, log *diag.Logger) (*Watcher, error) {
	if log == nil {
		log = diag.NullLogger
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors replace config files by
	// rename, which drops a watch on the file itself.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		watcher:  fsw,
		onReload: onReload,
		log:      log,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("config reload failed, keeping previous: %v", err)
		return
	}
	w.log.Info("config reloaded from %s", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
