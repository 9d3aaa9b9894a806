package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.WriteFile(file, []byte("4 Switch SVI 194\n"), 0o644))

	w, err := New([]string{file}, 50*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watch loop a moment to start before touching the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("4 Ultra Ball SVI 196\n"), 0o644))

	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("watcher did not fire on write")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "deck.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(watched, []byte("x"), 0o644))

	w, err := New([]string{watched}, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	fired := make(chan struct{}, 1)
	go w.Run(ctx, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("y"), 0o644))

	select {
	case <-fired:
		t.Fatal("watcher fired for an unwatched file")
	case <-ctx.Done():
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := New([]string{"/nonexistent-dir-for-watch/deck.txt"}, time.Second, nil)
	assert.Error(t, err)
}
