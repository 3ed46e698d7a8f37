package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatch(t *testing.T, path string) (<-chan struct{}, func()) {
	t.Helper()
	calls := make(chan struct{}, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 50*time.Millisecond, func() { calls <- struct{}{} })
	}()
	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	stop := func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Watch returned %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("Watch did not return after cancel")
		}
	}
	return calls, stop
}

func TestWatchCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	calls, stop := startWatch(t, path)
	defer stop()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("callback not called after write")
	}

	select {
	case <-calls:
		t.Error("burst of writes triggered more than one callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")

	calls, stop := startWatch(t, path)
	defer stop()

	if err := os.WriteFile(filepath.Join(dir, "other.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-calls:
		t.Error("callback called for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "logo.png")
	if err := Watch(context.Background(), path, DefaultDelay, func() {}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
