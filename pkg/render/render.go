// Package render turns an analyzed book into self-contained HTML documents.
// Every template goes through html/template so titles and file names coming
// off the disk are escaped for their exact context, including the JSON
// payloads embedded in script blocks.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/fsutil"
)

func renderToFile(t *template.Template, data any, path string) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := fsutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
