// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package watch reruns a function when a file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

// It's better to have a bit of delay, so that we don't regenerate icons
// several times while an editor is still saving the file.
var debounceDelay = 250 * time.Millisecond

// Watch calls fn, then calls it again each time the file at path is written
// or replaced, until ctx is done. Errors returned by fn are logged. Calls of
// fn never overlap.
func Watch(ctx context.Context, path string, fn func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Watch the directory: editors often save by replacing the file, which
	// drops watches set on the file itself.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		stopped bool
	)
	run := func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		if err := fn(); err != nil {
			logger.Error(ctx, "failed to regenerate icons", slog.Any("err", err))
		}
	}

	logger.Info(ctx, "performing an initial run", slog.String("path", abs))
	run()

	debouncer := newDebouncer(debounceDelay, run)
	defer func() {
		debouncer.Stop()
		// Waits for a run that may be in progress.
		mu.Lock()
		stopped = true
		mu.Unlock()
	}()

	logger.Info(ctx, "started watching for new changes")
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRerun(abs, event) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling run",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watcher failed", slog.Any("err", err))
		case <-ctx.Done():
			logger.Info(ctx, "stopped watching")
			return nil
		}
	}
}

func shouldRerun(path string, event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a scheduled execution, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}
