package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutput is written in the working directory when -o is not given.
const DefaultOutput = "expanded.cpp"

// WriteOutput writes text to path, creating missing parent directories.
func WriteOutput(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
