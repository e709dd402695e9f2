package services

import (
	"fmt"
	"os"
	"path/filepath"
)

func cleanPath(path string) string {
	if path == "" {
		return path
	}
	clean := filepath.Clean(path)
	abs, err := filepath.Abs(clean)
	if err != nil {
		return clean
	}
	return abs
}

// ValidateRoot is the pre-flight check callers run before dispatching a
// scan: the root must exist and be a directory. The scanner repeats neither
// check; it only fails if the root cannot be listed once traversal starts.
func ValidateRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	return nil
}
