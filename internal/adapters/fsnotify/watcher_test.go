package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/hanscan/internal/ports"
)

func TestWatcher_ImplementsPort(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	var _ ports.Watcher = w
}

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func TestWatcher_DetectsSourceFileChange(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "app.ts")
	require.NoError(t, os.WriteFile(testFile, []byte("const a = 1;"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch(dir, func(path string) {
		changed <- path
	}))

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(testFile, []byte("const a = \"中\";"), 0o644))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for source file change")
	assert.Equal(t, testFile, path)
}

func TestWatcher_IgnoresNonSourceFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch(dir, func(path string) {
		changed <- path
	}))

	time.Sleep(50 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(dir, "README.md"), []byte("# 中文"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "data.json"), []byte("{}"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, ".app.ts.swp"), []byte("x"), 0o644)

	_, ok := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "non-source files must not trigger callbacks")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.tsx"), []byte("x"), 0o644))
	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for .tsx file")
	assert.Equal(t, filepath.Join(dir, "page.tsx"), path)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Watch(t.TempDir(), func(string) {}))

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
