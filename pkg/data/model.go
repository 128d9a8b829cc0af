package data

import "time"

// BookRecord is one generated book in the library index.
type BookRecord struct {
	Path         string // absolute path to the book folder, primary key
	Title        string
	TotalPages   int
	ChapterCount int
	ReaderFile   string // file name of the generated reader within Path
	Mode         string // "eager" or "windowed"
	GeneratedAt  time.Time
}
