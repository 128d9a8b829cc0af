// Package export compiles an analyzed book into portable formats.
package export

import (
	"fmt"
	"html"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/book"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/fsutil"
)

type EPubBuilder struct {
	log *slog.Logger
}

func NewEPubBuilder(log *slog.Logger) *EPubBuilder {
	return &EPubBuilder{log: log}
}

// Build compiles the whole book into one EPUB, a section per chapter. When
// outputPath is empty the file lands next to the source images as
// "<title>.epub". Returns the path written.
func (p *EPubBuilder) Build(b *book.Book, outputPath string) (string, error) {
	if b.TotalPages == 0 {
		return "", fmt.Errorf("no pages to compile")
	}

	e, err := epub.NewEpub(b.Title)
	if err != nil {
		return "", fmt.Errorf("create epub: %w", err)
	}
	e.SetLang("en")
	e.SetDescription(fmt.Sprintf("%d pages in %d chapters", b.TotalPages, len(b.Chapters)))

	for _, ch := range b.Chapters {
		if err := p.addChapter(e, b, ch); err != nil {
			return "", fmt.Errorf("chapter %d (%s): %w", ch.Number, ch.Name, err)
		}
	}

	if outputPath == "" {
		outputPath = filepath.Join(b.Root, sanitizeFilename(b.Title)+".epub")
	}

	// Stage in a temp file so a failed write never clobbers a previous epub.
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".mangashelf-epub-*")
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := e.Write(tmpPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("write epub: %w", err)
	}
	if err := fsutil.ReplaceFile(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	p.log.Info("epub written", "path", outputPath, "pages", b.TotalPages)
	return outputPath, nil
}

func (p *EPubBuilder) addChapter(e *epub.Epub, b *book.Book, ch book.Chapter) error {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(ch.Name)))

	for _, page := range b.Pages {
		if page.Chapter != ch.Number {
			continue
		}
		src := filepath.Join(b.Root, filepath.FromSlash(page.Entry.Path))
		ext := page.Entry.Ext
		if ext == "" {
			ext = "jpg"
		}
		// Internal names are numbered globally; source basenames repeat
		// across chapter folders.
		internal, err := e.AddImage(src, fmt.Sprintf("page%05d.%s", page.Number, ext))
		if err != nil {
			return fmt.Errorf("add image %s: %w", page.Entry.Path, err)
		}
		body.WriteString(fmt.Sprintf(
			`<div class="page"><img src="%s" alt="Page %d" style="width:100%%;height:auto;"/></div>%s`,
			internal, page.Number, "\n",
		))
	}

	if _, err := e.AddSection(body.String(), ch.Name, "", ""); err != nil {
		return fmt.Errorf("add section: %w", err)
	}
	return nil
}

// sanitizeFilename replaces characters that are invalid in file names.
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "book"
	}
	return result
}
