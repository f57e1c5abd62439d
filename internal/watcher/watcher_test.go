package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_RebuildsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparkle.png")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	rebuilt := make(chan struct{}, 8)
	w, err := New(path, func() { rebuilt <- struct{}{} })
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watch loop a moment to start, then touch the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-rebuilt:
	case <-ctx.Done():
		t.Fatal("rebuild callback never fired")
	}

	cancel()
	if err := <-done; err != context.Canceled && err != context.DeadlineExceeded {
		t.Fatalf("run returned %v", err)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparkle.png")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	rebuilt := make(chan struct{}, 8)
	w, err := New(path, func() { rebuilt <- struct{}{} })
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-rebuilt:
		t.Fatal("sibling file triggered a rebuild")
	case <-time.After(2 * debounceDelay):
	}
}
