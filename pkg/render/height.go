package render

import (
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	// Page trees mix formats; register the decoders DecodeConfig needs.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/book"
)

const (
	fallbackPageHeight   = 800
	assumedViewportWidth = 720
	heightSampleLimit    = 12
	minPageHeight        = 400
	maxPageHeight        = 2000
)

// EstimatePageHeight derives the windowed reader's reserved per-page height
// by sampling page dimensions across the book. The estimate only seeds the
// scroll range; the embedded script corrects it as real heights load in.
func EstimatePageHeight(root string, pages []book.Page, log *slog.Logger) int {
	if len(pages) == 0 {
		return fallbackPageHeight
	}
	step := len(pages) / heightSampleLimit
	if step < 1 {
		step = 1
	}

	var ratios []float64
	for i := 0; i < len(pages) && len(ratios) < heightSampleLimit; i += step {
		p := filepath.Join(root, filepath.FromSlash(pages[i].Entry.Path))
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		cfg, _, err := image.DecodeConfig(f)
		f.Close()
		if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
			log.Debug("page dimensions unreadable", "path", p, "error", err)
			continue
		}
		ratios = append(ratios, float64(cfg.Height)/float64(cfg.Width))
	}
	if len(ratios) == 0 {
		return fallbackPageHeight
	}

	sort.Float64s(ratios)
	est := int(ratios[len(ratios)/2] * assumedViewportWidth)
	if est < minPageHeight {
		return minPageHeight
	}
	if est > maxPageHeight {
		return maxPageHeight
	}
	return est
}
