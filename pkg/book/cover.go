package book

import (
	"os"
	"path/filepath"
	"strings"
)

// ReaderPriority is the ordered filename list the bookshelf uses to discover
// a book's reader document. This list is the only coupling between reader and
// bookshelf generation; both sides must agree on it.
var ReaderPriority = []string{
	"index-mb-virtualscroll.html",
	"index-mb.html",
	"index.html",
	"index-mobile.html",
}

// FindReaderFile returns the book folder's reader document relative to base,
// trying ReaderPriority in order and falling back to any .html file.
func FindReaderFile(folder, base string) (string, bool) {
	for _, name := range ReaderPriority {
		p := filepath.Join(folder, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return relToSlash(base, p)
		}
	}
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".html") {
			return relToSlash(base, filepath.Join(folder, e.Name()))
		}
	}
	return "", false
}

// FindCoverImage returns the first image found by recursive depth-first
// sorted descent into folder: direct files first, then each subfolder in
// name order. The result is relative to base.
func FindCoverImage(folder, base string, isImage func(string) bool) (string, bool) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", false
	}
	for _, e := range entries { // ReadDir is name-sorted
		if e.IsDir() {
			continue
		}
		p := filepath.Join(folder, e.Name())
		if isImage(p) {
			return relToSlash(base, p)
		}
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if cover, ok := FindCoverImage(filepath.Join(folder, e.Name()), base, isImage); ok {
			return cover, true
		}
	}
	return "", false
}

func relToSlash(base, p string) (string, bool) {
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
