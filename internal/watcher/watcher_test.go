package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	w := &Watcher{base: "choremate.db"}
	tests := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{"/d/choremate.db", fsnotify.Write, true},
		{"/d/choremate.db-wal", fsnotify.Write, true},
		{"/d/choremate.db-journal", fsnotify.Create, true},
		{"/d/choremate.db-shm", fsnotify.Write, false},
		{"/d/choremate.db", fsnotify.Chmod, false},
		{"/d/config.yml", fsnotify.Write, false},
		{"/d/choremate.dbx", fsnotify.Write, false},
	}
	for _, tt := range tests {
		if got := w.relevant(fsnotify.Event{Name: tt.name, Op: tt.op}); got != tt.want {
			t.Errorf("relevant(%s %v) = %v, want %v", tt.name, tt.op, got, tt.want)
		}
	}
}

func TestRunDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "choremate.db")
	if err := os.WriteFile(db, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 10)
	w, err := New(db, func() { fired <- struct{}{} })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx, nil)

	for range 5 {
		if err := os.WriteFile(db, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("callback not invoked")
	}
	select {
	case <-fired:
		t.Error("writes were not coalesced")
	case <-time.After(3 * debounceDelay):
	}
}
