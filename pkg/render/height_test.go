package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/book"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/logging"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func pagesFor(t *testing.T, names ...string) []book.Page {
	t.Helper()
	var pages []book.Page
	for i, name := range names {
		entry, err := book.NewImageEntry(name)
		require.NoError(t, err)
		pages = append(pages, book.Page{Number: i + 1, Entry: entry, Chapter: 1})
	}
	return pages
}

func TestEstimatePageHeight(t *testing.T) {
	root := t.TempDir()
	names := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("page%d.png", i)
		// Ratio 1.5, so the estimate at the assumed width is exactly 1080.
		writePNG(t, filepath.Join(root, name), 720, 1080)
		names = append(names, name)
	}

	got := EstimatePageHeight(root, pagesFor(t, names...), logging.Discard())
	assert.Equal(t, 1080, got)
}

func TestEstimatePageHeightClamped(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "strip.png"), 100, 2000) // webtoon strip, ratio 20

	got := EstimatePageHeight(root, pagesFor(t, "strip.png"), logging.Discard())
	assert.Equal(t, maxPageHeight, got)

	writePNG(t, filepath.Join(root, "wide.png"), 2000, 100)
	got = EstimatePageHeight(root, pagesFor(t, "wide.png"), logging.Discard())
	assert.Equal(t, minPageHeight, got)
}

func TestEstimatePageHeightFallback(t *testing.T) {
	root := t.TempDir()

	assert.Equal(t, fallbackPageHeight, EstimatePageHeight(root, nil, logging.Discard()))

	// Unreadable files fall back to the default rather than failing.
	pages := pagesFor(t, "missing.png")
	assert.Equal(t, fallbackPageHeight, EstimatePageHeight(root, pages, logging.Discard()))

	require.NoError(t, os.WriteFile(filepath.Join(root, "junk.png"), []byte("not a png"), 0o644))
	pages = pagesFor(t, "junk.png")
	assert.Equal(t, fallbackPageHeight, EstimatePageHeight(root, pages, logging.Discard()))
}
