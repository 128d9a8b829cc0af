package book

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ImageEntry is one discovered page image. Path is root-relative with forward
// slashes regardless of host separator; entries are immutable once created.
type ImageEntry struct {
	Path string
	Ext  string
}

// NewImageEntry validates and normalizes a root-relative path. Paths that
// escape the root are rejected here so emitted documents can never reference
// outside the scanned tree.
func NewImageEntry(rel string) (ImageEntry, error) {
	// filepath.ToSlash is a no-op off Windows; normalize backslashes
	// explicitly so emitted references never carry them.
	rel = strings.ReplaceAll(filepath.ToSlash(rel), "\\", "/")
	if rel == "" || rel == "." {
		return ImageEntry{}, fmt.Errorf("empty image path")
	}
	if rel == ".." || strings.HasPrefix(rel, "../") || strings.Contains(rel, "/../") || strings.HasSuffix(rel, "/..") {
		return ImageEntry{}, fmt.Errorf("image path escapes root: %q", rel)
	}
	if path.IsAbs(rel) {
		return ImageEntry{}, fmt.Errorf("image path must be relative: %q", rel)
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(rel), "."))
	return ImageEntry{Path: rel, Ext: ext}, nil
}

// Chapter is a contiguous, numbered run of pages backed by one folder (or the
// root itself, FolderPath "."). EndPage-StartPage+1 always equals PageCount.
type Chapter struct {
	Number     int
	Name       string
	FolderPath string
	PageCount  int
	StartPage  int
	EndPage    int
}

// NewChapter builds a validated chapter; malformed records are rejected at
// construction instead of failing later during rendering.
func NewChapter(number int, name, folder string, startPage, pageCount int) (Chapter, error) {
	if number < 1 {
		return Chapter{}, fmt.Errorf("chapter number must be positive, got %d", number)
	}
	if name == "" {
		return Chapter{}, fmt.Errorf("chapter %d: empty name", number)
	}
	if startPage < 1 || pageCount < 1 {
		return Chapter{}, fmt.Errorf("chapter %d: invalid page range start=%d count=%d", number, startPage, pageCount)
	}
	return Chapter{
		Number:     number,
		Name:       name,
		FolderPath: normalizeSlash(folder),
		PageCount:  pageCount,
		StartPage:  startPage,
		EndPage:    startPage + pageCount - 1,
	}, nil
}

// Page is one image with its global page number and owning chapter.
type Page struct {
	Number  int
	Entry   ImageEntry
	Chapter int
}

// Book is the fully assembled model for one reader document. Pages are in
// final reading order: chapter order, natural sort within a chapter.
type Book struct {
	Title      string
	Root       string
	Chapters   []Chapter
	Pages      []Page
	TotalPages int
}

// ChapterByPage returns the chapter owning the given page number.
func (b *Book) ChapterByPage(page int) (Chapter, bool) {
	for _, ch := range b.Chapters {
		if page >= ch.StartPage && page <= ch.EndPage {
			return ch, true
		}
	}
	return Chapter{}, false
}

// BookItem is one shelf card in the gallery document.
type BookItem struct {
	Title      string
	FolderPath string
	CoverImage string // relative path, empty when no cover was found
	ReaderLink string
	PageCount  int
	Subfolders int
}

// NewBookItem validates the fields every card needs to render.
func NewBookItem(title, folder, cover, readerLink string, pageCount, subfolders int) (BookItem, error) {
	if title == "" {
		return BookItem{}, fmt.Errorf("book item %s: empty title", folder)
	}
	if folder == "" {
		return BookItem{}, fmt.Errorf("book item %q: empty folder path", title)
	}
	if readerLink == "" {
		return BookItem{}, fmt.Errorf("book item %q: no reader link", title)
	}
	return BookItem{
		Title:      title,
		FolderPath: normalizeSlash(folder),
		CoverImage: normalizeSlash(cover),
		ReaderLink: normalizeSlash(readerLink),
		PageCount:  pageCount,
		Subfolders: subfolders,
	}, nil
}

// ExtractTitle derives a shelf display title from a folder name: the last
// dot-separated segment with underscores turned into spaces, falling back to
// the raw name when that leaves nothing.
func ExtractTitle(folderName string) string {
	parts := strings.Split(folderName, ".")
	title := parts[len(parts)-1]
	title = strings.TrimSpace(strings.ReplaceAll(title, "_", " "))
	if title == "" {
		return folderName
	}
	return title
}

func normalizeSlash(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "\\", "/")
}
