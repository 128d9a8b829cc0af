// Package data persists the library index, a catalog of every reader this
// tool has generated. The index is optional; generation works without it.
package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
	path          VARCHAR PRIMARY KEY,
	title         VARCHAR NOT NULL,
	total_pages   INTEGER NOT NULL,
	chapter_count INTEGER NOT NULL,
	reader_file   VARCHAR NOT NULL,
	mode          VARCHAR NOT NULL,
	generated_at  TIMESTAMP NOT NULL
)`

// Store wraps the DuckDB-backed library index. Callers own the lifecycle:
// Open it, use it, Close it.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the index at path and ensures the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create index directory: %w", err)
		}
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init index schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBook inserts or replaces the record for one book folder.
func (s *Store) SaveBook(rec *BookRecord) error {
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO books (path, title, total_pages, chapter_count, reader_file, mode, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Path, rec.Title, rec.TotalPages, rec.ChapterCount, rec.ReaderFile, rec.Mode, rec.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("save book %s: %w", rec.Path, err)
	}
	return nil
}

// GetBook returns the record for a book folder, or nil when not indexed.
func (s *Store) GetBook(path string) (*BookRecord, error) {
	row := s.db.QueryRow(`
		SELECT path, title, total_pages, chapter_count, reader_file, mode, generated_at
		FROM books WHERE path = ?`, path)

	var rec BookRecord
	err := row.Scan(&rec.Path, &rec.Title, &rec.TotalPages, &rec.ChapterCount, &rec.ReaderFile, &rec.Mode, &rec.GeneratedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get book %s: %w", path, err)
	}
	return &rec, nil
}

// ListBooks returns every indexed book ordered by title.
func (s *Store) ListBooks() ([]*BookRecord, error) {
	rows, err := s.db.Query(`
		SELECT path, title, total_pages, chapter_count, reader_file, mode, generated_at
		FROM books ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var records []*BookRecord
	for rows.Next() {
		var rec BookRecord
		if err := rows.Scan(&rec.Path, &rec.Title, &rec.TotalPages, &rec.ChapterCount, &rec.ReaderFile, &rec.Mode, &rec.GeneratedAt); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// DeleteBook removes a book from the index. Deleting a missing path is not
// an error.
func (s *Store) DeleteBook(path string) error {
	if _, err := s.db.Exec(`DELETE FROM books WHERE path = ?`, path); err != nil {
		return fmt.Errorf("delete book %s: %w", path, err)
	}
	return nil
}
