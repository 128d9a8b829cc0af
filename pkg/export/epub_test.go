package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/book"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/logging"
)

func createTestImage(t *testing.T, dir string, filename string) {
	t.Helper()

	// Create a simple 1x1 PNG
	pngData := []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, // PNG signature
		0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52, // IHDR chunk
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, // 1x1 dimensions
		0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53,
		0xDE, 0x00, 0x00, 0x00, 0x0C, 0x49, 0x44, 0x41, // IDAT chunk
		0x54, 0x08, 0x99, 0x63, 0xF8, 0x0F, 0x00, 0x00,
		0x01, 0x01, 0x00, 0x05, 0x18, 0x0D, 0xA3, 0xD2,
		0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, // IEND chunk
		0xAE, 0x42, 0x60, 0x82,
	}

	if err := os.WriteFile(filepath.Join(dir, filename), pngData, 0644); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
}

func buildTestBook(t *testing.T) *book.Book {
	t.Helper()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "ch1"), 0755); err != nil {
		t.Fatalf("Failed to create chapter dir: %v", err)
	}
	createTestImage(t, root, "cover.png")
	createTestImage(t, filepath.Join(root, "ch1"), "001.png")
	createTestImage(t, filepath.Join(root, "ch1"), "002.png")

	b := &book.Book{Title: "Test Series", Root: root, TotalPages: 3}

	main, err := book.NewChapter(1, "Main Chapter", ".", 1, 1)
	if err != nil {
		t.Fatalf("Failed to build chapter: %v", err)
	}
	ch1, err := book.NewChapter(2, "Chapter 1", "ch1", 2, 2)
	if err != nil {
		t.Fatalf("Failed to build chapter: %v", err)
	}
	b.Chapters = []book.Chapter{main, ch1}

	for i, rel := range []string{"cover.png", "ch1/001.png", "ch1/002.png"} {
		entry, err := book.NewImageEntry(rel)
		if err != nil {
			t.Fatalf("Failed to build entry: %v", err)
		}
		chapter := 1
		if i > 0 {
			chapter = 2
		}
		b.Pages = append(b.Pages, book.Page{Number: i + 1, Entry: entry, Chapter: chapter})
	}
	return b
}

func TestBuildEPub(t *testing.T) {
	b := buildTestBook(t)
	builder := NewEPubBuilder(logging.Discard())

	path, err := builder.Build(b, "")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if filepath.Dir(path) != b.Root {
		t.Errorf("Expected epub next to images, got %s", path)
	}
	if filepath.Base(path) != "Test Series.epub" {
		t.Errorf("Unexpected file name: %s", filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("EPUB file should exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("EPUB file should not be empty")
	}
}

func TestBuildEPubExplicitOutput(t *testing.T) {
	b := buildTestBook(t)
	builder := NewEPubBuilder(logging.Discard())

	out := filepath.Join(t.TempDir(), "custom.epub")
	path, err := builder.Build(b, out)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if path != out {
		t.Errorf("Expected %s, got %s", out, path)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("EPUB file should exist: %v", err)
	}
}

func TestBuildEPubEmptyBook(t *testing.T) {
	b := &book.Book{Title: "Empty", Root: t.TempDir()}
	builder := NewEPubBuilder(logging.Discard())

	if _, err := builder.Build(b, ""); err == nil {
		t.Error("Build() should fail for a book with no pages")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Simple Title", "Simple Title"},
		{"a/b\\c:d", "a_b_c_d"},
		{"  spaced  ", "spaced"},
		{"dots...", "dots"},
		{"***", "___"},
		{"...", "book"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
