package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/data"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/logging"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/scan"
)

// Classification trusts the allow-listed extension, so placeholder bytes are
// enough for pipeline tests.
func writeImage(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
}

func setupBookTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeImage(t, filepath.Join(root, "cover.jpg"))
	writeImage(t, filepath.Join(root, "ch1", "001.png"))
	writeImage(t, filepath.Join(root, "ch1", "002.png"))
	writeImage(t, filepath.Join(root, "ch2", "001.png"))
	return root
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":         ModeAuto,
		"auto":     ModeAuto,
		"eager":    ModeEager,
		"windowed": ModeWindowed,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseMode("virtual")
	assert.Error(t, err)
}

func TestGenerateReaderEager(t *testing.T) {
	root := setupBookTree(t)
	g := NewGenerator(Config{Root: root}, logging.Discard())

	res, err := g.GenerateReader(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ModeEager, res.Mode)
	assert.Equal(t, filepath.Join(root, EagerOutputName), res.OutputPath)
	assert.Equal(t, 4, res.Book.TotalPages)
	assert.Len(t, res.Book.Chapters, 3)

	raw, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `src="ch1/001.png"`)
}

func TestGenerateReaderForcedWindowed(t *testing.T) {
	root := setupBookTree(t)
	g := NewGenerator(Config{Root: root, Mode: ModeWindowed}, logging.Discard())

	res, err := g.GenerateReader(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ModeWindowed, res.Mode)
	assert.Equal(t, filepath.Join(root, WindowedOutputName), res.OutputPath)
	assert.FileExists(t, res.OutputPath)
}

func TestGenerateReaderAutoThreshold(t *testing.T) {
	root := setupBookTree(t) // 4 pages

	g := NewGenerator(Config{Root: root, Threshold: 4}, logging.Discard())
	res, err := g.GenerateReader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ModeWindowed, res.Mode)

	g = NewGenerator(Config{Root: root, Threshold: 5}, logging.Discard())
	res, err = g.GenerateReader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ModeEager, res.Mode)
}

func TestGenerateReaderCustomOutput(t *testing.T) {
	root := setupBookTree(t)
	g := NewGenerator(Config{Root: root, OutputName: "my-reader.html"}, logging.Discard())

	res, err := g.GenerateReader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "my-reader.html"), res.OutputPath)
	assert.FileExists(t, res.OutputPath)
}

func TestGenerateReaderMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	g := NewGenerator(Config{Root: missing}, logging.Discard())

	_, err := g.GenerateReader(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, scan.ErrNotFound))
}

func TestGenerateReaderRootIsFile(t *testing.T) {
	root := t.TempDir()
	f := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	g := NewGenerator(Config{Root: f}, logging.Discard())
	_, err := g.GenerateReader(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, scan.ErrNotDirectory))
}

func TestGenerateReaderRecordsIndex(t *testing.T) {
	root := setupBookTree(t)
	indexPath := filepath.Join(t.TempDir(), "library.db")

	g := NewGenerator(Config{Root: root, IndexPath: indexPath}, logging.Discard())
	res, err := g.GenerateReader(context.Background())
	require.NoError(t, err)

	store, err := data.Open(indexPath)
	require.NoError(t, err)
	defer store.Close()

	rec, err := store.GetBook(res.Book.Root)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, res.Book.Title, rec.Title)
	assert.Equal(t, 4, rec.TotalPages)
	assert.Equal(t, EagerOutputName, rec.ReaderFile)
	assert.Equal(t, "eager", rec.Mode)
	assert.False(t, rec.GeneratedAt.IsZero())
}

func TestGenerateReaderEmptyTree(t *testing.T) {
	root := t.TempDir()
	g := NewGenerator(Config{Root: root}, logging.Discard())

	res, err := g.GenerateReader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Book.TotalPages)
	assert.FileExists(t, res.OutputPath)
}
