// Package services orchestrates the generation pipelines: scan, classify,
// analyze, render.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/book"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/data"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/render"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/scan"
)

// Mode selects the reader layout.
type Mode string

const (
	// ModeAuto picks windowed when the page count crosses the threshold.
	ModeAuto Mode = "auto"
	// ModeEager mounts every page in the document.
	ModeEager Mode = "eager"
	// ModeWindowed ships a page manifest and mounts a window around the
	// viewport.
	ModeWindowed Mode = "windowed"
)

// ParseMode validates a mode flag value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeEager, ModeWindowed:
		return Mode(s), nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want auto, eager or windowed)", s)
	}
}

const (
	DefaultThreshold = 1000
	DefaultWorkers   = 4

	// Output file names, matched by the bookshelf's reader discovery.
	EagerOutputName    = "index-mb.html"
	WindowedOutputName = "index-mb-virtualscroll.html"
)

// Config drives one reader generation.
type Config struct {
	Root       string
	Mode       Mode
	Threshold  int    // page count at which auto mode switches to windowed
	Workers    int    // parallel image classification
	OutputName string // overrides the mode's default file name
	IndexPath  string // library index location, empty disables indexing
}

// Result describes one generated reader.
type Result struct {
	Book       *book.Book
	OutputPath string
	Mode       Mode // resolved mode, never auto
}

// Generator runs the scan, classify, analyze, render pipeline for one book
// folder.
type Generator struct {
	cfg        Config
	log        *slog.Logger
	classifier *scan.Classifier
}

func NewGenerator(cfg Config, log *slog.Logger) *Generator {
	if cfg.Mode == "" {
		cfg.Mode = ModeAuto
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return &Generator{cfg: cfg, log: log, classifier: scan.NewClassifier(log)}
}

// BuildBook runs the pipeline up to the assembled book model without
// rendering anything.
func (g *Generator) BuildBook(ctx context.Context) (*book.Book, error) {
	root, err := filepath.Abs(g.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", g.cfg.Root, err)
	}
	if err := scan.ValidateRoot(root); err != nil {
		return nil, err
	}

	files, dirs, err := scan.NewScanner(root, g.log).Scan()
	if err != nil {
		return nil, err
	}
	g.log.Debug("scan complete", "files", len(files), "dirs", len(dirs))

	images, err := g.classifier.FilterImages(ctx, files, g.cfg.Workers)
	if err != nil {
		return nil, err
	}
	g.log.Info("classified images", "images", len(images), "files", len(files))

	return book.NewAnalyzer(root, g.log).Analyze(images, dirs)
}

// GenerateReader runs the full pipeline and writes the reader document into
// the book folder. The output is written even for an empty book so the
// bookshelf always has a link target.
func (g *Generator) GenerateReader(ctx context.Context) (*Result, error) {
	b, err := g.BuildBook(ctx)
	if err != nil {
		return nil, err
	}

	mode := g.cfg.Mode
	if mode == ModeAuto {
		mode = ModeEager
		if b.TotalPages >= g.cfg.Threshold {
			mode = ModeWindowed
		}
	}

	name := g.cfg.OutputName
	if name == "" {
		name = EagerOutputName
		if mode == ModeWindowed {
			name = WindowedOutputName
		}
	}
	outPath := filepath.Join(b.Root, name)

	switch mode {
	case ModeWindowed:
		height := render.EstimatePageHeight(b.Root, b.Pages, g.log)
		err = render.WriteWindowedReader(b, outPath, height, g.log)
	default:
		err = render.WriteReader(b, outPath, g.log)
	}
	if err != nil {
		return nil, err
	}
	g.log.Info("reader generated", "path", outPath, "mode", mode, "pages", b.TotalPages, "chapters", len(b.Chapters))

	if g.cfg.IndexPath != "" {
		if err := g.recordBook(b, name, mode); err != nil {
			// Indexing is best effort; the reader on disk is already good.
			g.log.Warn("library index update failed", "error", err)
		}
	}

	return &Result{Book: b, OutputPath: outPath, Mode: mode}, nil
}

func (g *Generator) recordBook(b *book.Book, readerFile string, mode Mode) error {
	store, err := data.Open(g.cfg.IndexPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SaveBook(&data.BookRecord{
		Path:         b.Root,
		Title:        b.Title,
		TotalPages:   b.TotalPages,
		ChapterCount: len(b.Chapters),
		ReaderFile:   readerFile,
		Mode:         string(mode),
	})
}
