package project

import (
	"os"
	"path/filepath"
	"strings"
)

// DisplayPath renders path for markers and messages without leaking absolute
// locations. Paths inside root are shown root-relative. Otherwise, when
// preferRelative is set, a working-directory-relative form is tried. The
// final fallback is the bare file name.
func DisplayPath(path, root string, preferRelative bool) string {
	abs, err := filepath.Abs(path)
	if err == nil {
		if rel, ok := relativeWithin(root, abs); ok {
			return rel
		}
		if preferRelative {
			if wd, err := os.Getwd(); err == nil {
				if rel, ok := relativeWithin(wd, abs); ok {
					return rel
				}
			}
		}
	}
	return filepath.Base(path)
}

// DisplayPaths applies DisplayPath to every entry.
func DisplayPaths(paths []string, root string, preferRelative bool) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, DisplayPath(p, root, preferRelative))
	}
	return out
}

func relativeWithin(base, target string) (string, bool) {
	if base == "" {
		return "", false
	}
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(target))
	if err != nil || filepath.IsAbs(rel) {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
