package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/book"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/render"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/scan"
)

const DefaultBookshelfOutput = "index.html"

// BookshelfConfig drives gallery generation for one collection root.
type BookshelfConfig struct {
	Root            string
	OutputName      string // default index.html
	GenerateReaders bool   // generate missing per-book readers in place
	Threshold       int
	Workers         int
	IndexPath       string
}

// BookshelfResult reports what the gallery run produced.
type BookshelfResult struct {
	OutputPath string
	Items      []book.BookItem
	Skipped    []string // folders with no reachable reader document
}

// Bookshelf builds the gallery document for a collection of book folders.
type Bookshelf struct {
	cfg        BookshelfConfig
	log        *slog.Logger
	classifier *scan.Classifier
}

func NewBookshelf(cfg BookshelfConfig, log *slog.Logger) *Bookshelf {
	if cfg.OutputName == "" {
		cfg.OutputName = DefaultBookshelfOutput
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return &Bookshelf{cfg: cfg, log: log, classifier: scan.NewClassifier(log)}
}

// Generate walks the collection root's direct subdirectories, ensures each has
// a reader document, and writes the card gallery. Folders without any reader
// are skipped with a warning rather than failing the run.
func (s *Bookshelf) Generate(ctx context.Context) (*BookshelfResult, error) {
	root, err := filepath.Abs(s.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", s.cfg.Root, err)
	}
	if err := scan.ValidateRoot(root); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read collection root: %w", err)
	}
	var folders []string
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, e.Name())
		}
	}
	scan.SortNatural(folders)

	result := &BookshelfResult{OutputPath: filepath.Join(root, s.cfg.OutputName)}
	for _, name := range folders {
		item, ok := s.buildItem(ctx, root, name)
		if !ok {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		result.Items = append(result.Items, item)
	}

	title := filepath.Base(root)
	if err := render.WriteBookshelf(title, result.Items, result.OutputPath, s.log); err != nil {
		return nil, err
	}
	s.log.Info("bookshelf generated", "path", result.OutputPath, "books", len(result.Items), "skipped", len(result.Skipped))
	return result, nil
}

func (s *Bookshelf) buildItem(ctx context.Context, root, name string) (book.BookItem, bool) {
	folder := filepath.Join(root, name)

	gen := NewGenerator(Config{
		Root:      folder,
		Mode:      ModeAuto,
		Threshold: s.cfg.Threshold,
		Workers:   s.cfg.Workers,
		IndexPath: s.cfg.IndexPath,
	}, s.log)

	b, err := gen.BuildBook(ctx)
	if err != nil {
		s.log.Warn("skipping unreadable book folder", "folder", name, "error", err)
		return book.BookItem{}, false
	}

	readerLink, haveReader := book.FindReaderFile(folder, root)

	// A big book whose only reader is the eager one still needs the
	// windowed variant; ReaderPriority then prefers it for the card link.
	needsWindowed := b.TotalPages >= s.cfg.Threshold && !windowedReaderExists(folder)
	if s.cfg.GenerateReaders && (!haveReader || needsWindowed) {
		if _, err := gen.GenerateReader(ctx); err != nil {
			s.log.Warn("reader generation failed", "folder", name, "error", err)
		} else {
			readerLink, haveReader = book.FindReaderFile(folder, root)
		}
	}
	if !haveReader {
		s.log.Warn("no reader document, skipping book", "folder", name)
		return book.BookItem{}, false
	}

	cover, _ := book.FindCoverImage(folder, root, s.classifier.IsImage)

	subfolders := 0
	if children, err := os.ReadDir(folder); err == nil {
		for _, c := range children {
			if c.IsDir() {
				subfolders++
			}
		}
	}

	item, err := book.NewBookItem(book.ExtractTitle(name), name, cover, readerLink, b.TotalPages, subfolders)
	if err != nil {
		s.log.Warn("invalid book card, skipping", "folder", name, "error", err)
		return book.BookItem{}, false
	}
	return item, true
}

func windowedReaderExists(folder string) bool {
	info, err := os.Stat(filepath.Join(folder, WindowedOutputName))
	return err == nil && !info.IsDir()
}
