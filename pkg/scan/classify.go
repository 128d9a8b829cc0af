package scan

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"
)

// imageExts is the extension allow-list.
var imageExts = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {},
	"bmp": {}, "webp": {}, "avif": {}, "svg": {},
}

// blockedExts is the extension block-list, checked before the allow-list so
// markup, metadata and archives never reach content sniffing.
var blockedExts = map[string]struct{}{
	"html": {}, "json": {}, "js": {}, "py": {}, "ini": {}, "txt": {},
	"rar": {}, "zip": {}, "7z": {}, "gitignore": {}, "url": {},
	"nomedia": {}, "exe": {}, "bat": {}, "cmd": {}, "sh": {},
}

// Classifier decides whether a file is a page image. Decisions are pure per
// path, so classifying the same file twice always agrees.
type Classifier struct {
	log *slog.Logger
}

func NewClassifier(log *slog.Logger) *Classifier {
	return &Classifier{log: log}
}

// IsImage applies the three-tier policy: block-list extension rejects,
// allow-list extension accepts, anything else falls through to content
// sniffing and is accepted only for an image/* type. An unknown extension
// must not silently become a broken <img> reference, but a legitimately
// renamed image file should still pass.
func (c *Classifier) IsImage(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, blocked := blockedExts[ext]; blocked {
		return false
	}
	if _, ok := imageExts[ext]; ok {
		return true
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		c.log.Debug("content sniff failed", "path", path, "error", err)
		return false
	}
	if strings.HasPrefix(mt.String(), "image/") {
		c.log.Warn("accepting unknown extension by content type",
			"path", path, "type", mt.String())
		return true
	}
	c.log.Debug("skipping non-image file", "path", path)
	return false
}

// FilterImages classifies paths on a bounded worker pool and returns the
// image subset in the original order. Classification of one file never
// depends on another, so the pool only overlaps I/O.
func (c *Classifier) FilterImages(ctx context.Context, paths []string, workers int) ([]string, error) {
	if workers < 1 {
		workers = 1
	}
	keep := make([]bool, len(paths))

	// Keep the caller's context separate from the group's; the group
	// context is canceled as soon as Wait returns even on success.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			keep[i] = c.IsImage(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	images := make([]string, 0, len(paths))
	for i, p := range paths {
		if keep[i] {
			images = append(images, p)
		}
	}
	return images, nil
}
