package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// maxDepth bounds descent so a symlink chain the visited set cannot catch
// (e.g. a moving mount) still terminates.
const maxDepth = 64

// Scanner walks one root directory tree. Traversal is sequential and
// deterministic: entries are visited in lexicographic depth-first order,
// because chapter numbering depends on discovery order.
type Scanner struct {
	root string
	log  *slog.Logger
}

func NewScanner(root string, log *slog.Logger) *Scanner {
	return &Scanner{root: root, log: log}
}

// Scan returns every regular file reachable below the root, plus every
// directory encountered (the root itself excluded), both as absolute paths.
// Unreadable subtrees are logged and skipped; partial results are valid.
// Directory symlinks are followed, but each resolved path is visited once.
func (s *Scanner) Scan() (files, dirs []string, err error) {
	if err := ValidateRoot(s.root); err != nil {
		return nil, nil, err
	}
	root, err := filepath.Abs(s.root)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve root %s: %w", s.root, err)
	}

	visited := make(map[string]struct{})
	s.walk(root, 0, visited, &files, &dirs)
	return files, dirs, nil
}

func (s *Scanner) walk(dir string, depth int, visited map[string]struct{}, files, dirs *[]string) {
	if depth > maxDepth {
		s.log.Warn("max traversal depth exceeded, skipping subtree", "dir", dir)
		return
	}
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		if _, seen := visited[real]; seen {
			s.log.Warn("directory already visited, skipping symlink cycle", "dir", dir)
			return
		}
		visited[real] = struct{}{}
	}

	entries, err := os.ReadDir(dir) // sorted by name
	if err != nil {
		s.log.Warn("skipping unreadable directory", "dir", dir, "error", err)
		return
	}
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		switch {
		case e.IsDir():
			*dirs = append(*dirs, p)
			s.walk(p, depth+1, visited, files, dirs)
		case e.Type()&fs.ModeSymlink != 0:
			info, err := os.Stat(p)
			if err != nil {
				s.log.Warn("skipping broken symlink", "path", p, "error", err)
				continue
			}
			if info.IsDir() {
				*dirs = append(*dirs, p)
				s.walk(p, depth+1, visited, files, dirs)
				continue
			}
			*files = append(*files, p)
		case e.Type().IsRegular():
			*files = append(*files, p)
		}
	}
}
