package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "index.html")

	require.NoError(t, WriteFileAtomic(path, []byte("<html></html>"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	// No temp leftovers.
	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomicReplacesExisting(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o644))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "out.html"), []byte("x"), 0o644)
	if err == nil {
		t.Fatal("expected error for missing destination directory")
	}
	if !strings.Contains(err.Error(), "create temp file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDirExists(t *testing.T) {
	tmp := t.TempDir()
	assert.True(t, DirExists(tmp))
	assert.False(t, DirExists(filepath.Join(tmp, "nope")))

	f := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))
	assert.False(t, DirExists(f))
}
