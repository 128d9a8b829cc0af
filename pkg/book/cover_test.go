package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEmpty(path string) error {
	return os.WriteFile(path, nil, 0o644)
}

func isImageByExt(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

func TestFindCoverImageDirectFileFirst(t *testing.T) {
	base := buildTree(t,
		"book/zz.png",
		"book/aa/deep.png",
	)
	// Direct files take precedence over any subfolder descent.
	cover, ok := FindCoverImage(filepath.Join(base, "book"), base, isImageByExt)
	require.True(t, ok)
	assert.Equal(t, "book/zz.png", cover)
}

func TestFindCoverImageRecursiveDescent(t *testing.T) {
	base := buildTree(t,
		"book/readme.txt",
		"book/b/page.png",
		"book/a/sub/first.png",
	)
	// No direct image: descend into subfolders in sorted order, a before b.
	cover, ok := FindCoverImage(filepath.Join(base, "book"), base, isImageByExt)
	require.True(t, ok)
	assert.Equal(t, "book/a/sub/first.png", cover)
}

func TestFindCoverImageNone(t *testing.T) {
	base := buildTree(t, "book/readme.txt")
	_, ok := FindCoverImage(filepath.Join(base, "book"), base, isImageByExt)
	assert.False(t, ok)
}

func TestFindReaderFilePriorityOrder(t *testing.T) {
	base := buildTree(t,
		"book/index.html",
		"book/index-mb.html",
	)
	// index-mb.html outranks index.html in the priority list.
	link, ok := FindReaderFile(filepath.Join(base, "book"), base)
	require.True(t, ok)
	assert.Equal(t, "book/index-mb.html", link)

	// The windowed reader outranks everything once present.
	buildFile := filepath.Join(base, "book", "index-mb-virtualscroll.html")
	require.NoError(t, writeEmpty(buildFile))
	link, ok = FindReaderFile(filepath.Join(base, "book"), base)
	require.True(t, ok)
	assert.Equal(t, "book/index-mb-virtualscroll.html", link)
}

func TestFindReaderFileHTMLFallback(t *testing.T) {
	base := buildTree(t, "book/custom-reader.html", "book/page.png")
	link, ok := FindReaderFile(filepath.Join(base, "book"), base)
	require.True(t, ok)
	assert.Equal(t, "book/custom-reader.html", link)
}

func TestFindReaderFileNone(t *testing.T) {
	base := buildTree(t, "book/page.png")
	_, ok := FindReaderFile(filepath.Join(base, "book"), base)
	assert.False(t, ok)
}
