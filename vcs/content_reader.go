package vcs

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
)

// ContentReader is a function that reads file content given a file path.
// This allows the caller to control how files are read (filesystem, in-memory fixtures, etc.)
type ContentReader func(filePath string) ([]byte, error)

// FilesystemContentReader reads files from disk and returns their content as valid UTF-8.
func FilesystemContentReader() ContentReader {
	return func(filePath string) ([]byte, error) {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		return DecodeText(raw)
	}
}

// DecodeText interprets raw as UTF-8, replacing every invalid byte sequence
// with U+FFFD instead of failing.
func DecodeText(raw []byte) ([]byte, error) {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode text: %w", err)
	}
	return decoded, nil
}
