package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce absorbs the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

// watchWorkspace runs fn once, then again after every change to path, until
// ctx is cancelled. Errors from fn are printed and watching continues.
// The parent directory is watched because editors often replace files by
// rename.
func watchWorkspace(ctx context.Context, path string, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	report := func() {
		if err := fn(); err != nil {
			rootCmd.PrintErrln("Error:", err)
		}
	}
	report()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watchDebounce)
			fire = timer.C
		case <-fire:
			fire = nil
			report()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			rootCmd.PrintErrln("Watch error:", err)
		}
	}
}
