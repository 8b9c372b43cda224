package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Watcher tests run against the real filesystem; fsnotify has no in-memory
// backend. Timings stay generous to survive slow machines.

func TestWatcher_EmitsOnChange(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "plank-test-watch-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	w := NewWatcher()
	w.Debounce = 20 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Watch(ctx, tempDir)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(tempDir, "init.lua"), []byte("x\n"), 0o644)
	}()

	select {
	case ev := <-events:
		assert.Contains(t, ev.Path, "init.lua")
		assert.GreaterOrEqual(t, ev.Changes, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change event")
	}
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "plank-test-watch-burst-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	w := NewWatcher()
	w.Debounce = 100 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Watch(ctx, tempDir)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		for i := 0; i < 3; i++ {
			os.WriteFile(filepath.Join(tempDir, "burst.lua"), []byte("x\n"), 0o644)
			time.Sleep(10 * time.Millisecond)
		}
	}()

	select {
	case ev := <-events:
		assert.GreaterOrEqual(t, ev.Changes, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for coalesced event")
	}
}

func TestWatcher_CancelClosesChannel(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "plank-test-watch-cancel-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	w := NewWatcher()
	ctx, cancel := context.WithCancel(context.Background())

	events, err := w.Watch(ctx, tempDir)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-events:
		assert.False(t, open, "channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}

func TestWatcher_MissingRoot(t *testing.T) {
	w := NewWatcher()

	_, err := w.Watch(context.Background(), "/does/not/exist")

	assert.Error(t, err)
}
