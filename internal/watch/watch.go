// Package watch re-runs a callback when a single file changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is how long a burst of events must settle before the
// callback runs. Editors often write a file in several steps.
const DefaultDelay = 300 * time.Millisecond

// Watch calls fn after path is created or written, at most once per burst
// of events. It watches the parent directory so that files replaced by
// rename are still seen. fn runs on the calling goroutine. Watch returns
// nil when ctx is cancelled.
func Watch(ctx context.Context, path string, delay time.Duration, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	dir, name := filepath.Dir(path), filepath.Base(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	debounced := debounce.New(delay)
	fire := make(chan struct{}, 1)
	signal := func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounced(signal)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)

		case <-fire:
			fn()
		}
	}
}
