package leveldata

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsLevelFile(t *testing.T) {
	tests := map[string]bool{
		"levels/theater.yaml": true,
		"levels/THEATER.YML":  true,
		"collision.tmx":       true,
		"notes.txt":           false,
		"theater.yaml~":       false,
	}
	for path, want := range tests {
		if got := IsLevelFile(path); got != want {
			t.Errorf("IsLevelFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "theater.yaml")
	if err := os.WriteFile(path, []byte("collision: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "theater.yaml" {
			t.Errorf("event for %q, want theater.yaml", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
