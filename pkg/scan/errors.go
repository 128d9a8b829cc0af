package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrNotFound reports a root path that does not exist.
	ErrNotFound = errors.New("directory not found")
	// ErrNotDirectory reports a root path that is a regular file.
	ErrNotDirectory = errors.New("not a directory")
)

// ValidateRoot checks that path exists and names a directory. Both failure
// modes are fatal for a generation run.
func ValidateRoot(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return nil
}
