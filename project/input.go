package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputNotFoundError reports an entry file that does not exist after all
// lookup fallbacks were tried.
type InputNotFoundError struct {
	Display string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input not found: %s", e.Display)
}

// ResolveInput locates the entry file. Absolute paths are used as-is.
// Relative paths are tried against root first, then against the working directory.
func ResolveInput(raw, root string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("input path cannot be empty")
	}

	path := raw
	if !filepath.IsAbs(path) {
		candidate := filepath.Join(root, raw)
		if fileExists(candidate) {
			path = candidate
		} else {
			abs, err := filepath.Abs(raw)
			if err != nil {
				return "", fmt.Errorf("failed to resolve input path: %w", err)
			}
			path = abs
		}
	}
	path = filepath.Clean(path)

	if !fileExists(path) {
		return "", &InputNotFoundError{Display: DisplayPath(path, root, true)}
	}
	return path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
