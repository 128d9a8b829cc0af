package data

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecord(path string) *BookRecord {
	return &BookRecord{
		Path:         path,
		Title:        "Test Series",
		TotalPages:   42,
		ChapterCount: 3,
		ReaderFile:   "index-mb.html",
		Mode:         "eager",
		GeneratedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGetBook(t *testing.T) {
	store := setupTestStore(t)

	rec := testRecord("/library/test-series")
	if err := store.SaveBook(rec); err != nil {
		t.Fatalf("Failed to save book: %v", err)
	}

	got, err := store.GetBook("/library/test-series")
	if err != nil {
		t.Fatalf("Failed to get book: %v", err)
	}
	if got == nil {
		t.Fatal("Expected book to be found")
	}
	if got.Title != rec.Title {
		t.Errorf("Expected title %q, got %q", rec.Title, got.Title)
	}
	if got.TotalPages != rec.TotalPages {
		t.Errorf("Expected %d pages, got %d", rec.TotalPages, got.TotalPages)
	}
	if got.Mode != rec.Mode {
		t.Errorf("Expected mode %q, got %q", rec.Mode, got.Mode)
	}
}

func TestGetBookMissing(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.GetBook("/nowhere")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for unindexed path, got %+v", got)
	}
}

func TestSaveBookReplaces(t *testing.T) {
	store := setupTestStore(t)

	rec := testRecord("/library/test-series")
	if err := store.SaveBook(rec); err != nil {
		t.Fatalf("Failed to save book: %v", err)
	}

	rec.TotalPages = 100
	rec.Mode = "windowed"
	if err := store.SaveBook(rec); err != nil {
		t.Fatalf("Failed to re-save book: %v", err)
	}

	books, err := store.ListBooks()
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("Expected 1 book after replace, got %d", len(books))
	}
	if books[0].TotalPages != 100 || books[0].Mode != "windowed" {
		t.Errorf("Replace did not update fields: %+v", books[0])
	}
}

func TestListBooksOrdered(t *testing.T) {
	store := setupTestStore(t)

	books, err := store.ListBooks()
	if err != nil {
		t.Fatalf("Failed to list empty store: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("Expected empty list, got %d", len(books))
	}

	for _, title := range []string{"Zeta", "Alpha", "Mid"} {
		rec := testRecord("/library/" + title)
		rec.Title = title
		if err := store.SaveBook(rec); err != nil {
			t.Fatalf("Failed to save %s: %v", title, err)
		}
	}

	books, err = store.ListBooks()
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	want := []string{"Alpha", "Mid", "Zeta"}
	if len(books) != len(want) {
		t.Fatalf("Expected %d books, got %d", len(want), len(books))
	}
	for i, title := range want {
		if books[i].Title != title {
			t.Errorf("Position %d: expected %q, got %q", i, title, books[i].Title)
		}
	}
}

func TestDeleteBook(t *testing.T) {
	store := setupTestStore(t)

	rec := testRecord("/library/test-series")
	if err := store.SaveBook(rec); err != nil {
		t.Fatalf("Failed to save book: %v", err)
	}
	if err := store.DeleteBook(rec.Path); err != nil {
		t.Fatalf("Failed to delete book: %v", err)
	}

	got, err := store.GetBook(rec.Path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != nil {
		t.Error("Expected book to be gone after delete")
	}

	// Deleting again is a no-op.
	if err := store.DeleteBook(rec.Path); err != nil {
		t.Errorf("Deleting a missing path should not error: %v", err)
	}
}
