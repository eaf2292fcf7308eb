// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fstree

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bonsai-go/bonsai/node"
)

// Watcher reports changes to the directories of an [FS] backend rooted
// at an operating system directory. It only reports changes; it never
// modifies any nodes, so the host can reload the affected branches on
// its own event loop. The change function is called on a goroutine of
// the watcher.
type Watcher struct {

	// Root is the absolute operating system directory that
	// backend paths are relative to.
	Root string

	watcher  *fsnotify.Watcher
	onChange func(dir string)

	// mu protects watched
	mu      sync.Mutex
	watched map[string]bool

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewWatcher returns a new watcher for backend paths relative to the
// given operating system directory. The given function is called with
// the backend path of a watched directory whenever one of its entries
// is created, removed, renamed or written.
func NewWatcher(root string, onChange func(dir string)) (*Watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fstree: creating watcher: %w", err)
	}
	w := &Watcher{
		Root:     abs,
		watcher:  fw,
		onChange: onChange,
		watched:  map[string]bool{},
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// osPath returns the operating system path of the given backend path.
func (w *Watcher) osPath(dir string) string {
	return filepath.Join(w.Root, filepath.FromSlash(dir))
}

// backendPath returns the backend path of the given operating system path.
func (w *Watcher) backendPath(osPath string) (string, bool) {
	rel, err := filepath.Rel(w.Root, osPath)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// Add starts watching the given backend directory.
// It does nothing if the directory is already watched.
func (w *Watcher) Add(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watched[dir] {
		return nil
	}
	if err := w.watcher.Add(w.osPath(dir)); err != nil {
		return fmt.Errorf("fstree: watching %q: %w", dir, err)
	}
	w.watched[dir] = true
	return nil
}

// Remove stops watching the given backend directory.
func (w *Watcher) Remove(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.watched[dir] {
		return nil
	}
	delete(w.watched, dir)
	return w.watcher.Remove(w.osPath(dir))
}

// IsWatched returns whether the given backend directory is watched.
func (w *Watcher) IsWatched(dir string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.watched[dir]
}

// Track watches the directory of the given branch while it is
// expanded, starting now if it already is.
func (w *Watcher) Track(b *node.Branch[string]) {
	dir := b.Content()
	if b.IsExpanded() {
		w.logError(w.Add(dir))
	}
	b.Expanded().OnChange(func(expanded bool) {
		if expanded {
			w.logError(w.Add(dir))
		} else {
			w.logError(w.Remove(dir))
		}
	})
}

// Sync makes the set of watched directories the set of visible expanded
// branches of the given roots, plus the given directories to keep, such
// as the root directory when its entries are the roots.
func (w *Watcher) Sync(roots []node.Node[string], keep ...string) {
	want := map[string]bool{}
	for _, dir := range keep {
		want[dir] = true
	}
	for _, n := range node.Visible(roots) {
		if b, ok := node.AsBranch(n); ok && b.IsExpanded() {
			want[b.Content()] = true
		}
	}
	w.mu.Lock()
	var stale []string
	for dir := range w.watched {
		if !want[dir] {
			stale = append(stale, dir)
		}
	}
	w.mu.Unlock()
	for _, dir := range stale {
		w.logError(w.Remove(dir))
	}
	for dir := range want {
		w.logError(w.Add(dir))
	}
}

// Close stops the watcher and waits for its goroutine to finish.
// Calling it again does nothing and returns the first result.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.watcher.Close()
		close(w.done)
		w.wg.Wait()
	})
	return w.closeErr
}

func (w *Watcher) logError(err error) {
	if err != nil {
		slog.Error(err.Error())
	}
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("fstree: watcher error", "err", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op == fsnotify.Chmod {
		return
	}
	if dir, ok := w.backendPath(filepath.Dir(ev.Name)); ok && w.IsWatched(dir) {
		w.onChange(dir)
	}
	if !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	// a watched directory that went away is no longer watched
	if self, ok := w.backendPath(ev.Name); ok && w.IsWatched(self) {
		w.mu.Lock()
		delete(w.watched, self)
		w.mu.Unlock()
	}
}
