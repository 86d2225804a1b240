// Package project locates the competitive-programming library root and the
// include search directories that hang off it.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AlgorithmDir and DataStructureDir must both exist directly under the project root.
	AlgorithmDir     = "algorithm"
	DataStructureDir = "data-structure"

	// EnvRoot overrides root discovery when --root is not given.
	EnvRoot = "CPEXPAND_ROOT"

	maxAscend = 6
)

// ErrProjectRootNotFound is returned when no directory containing both
// algorithm/ and data-structure/ can be located.
var ErrProjectRootNotFound = errors.New("project root not found (expected algorithm/ and data-structure/ near the executable)")

// IsRoot reports whether dir contains both expected library directories.
func IsRoot(dir string) bool {
	return isDir(filepath.Join(dir, AlgorithmDir)) && isDir(filepath.Join(dir, DataStructureDir))
}

// FindRoot locates the project root from the location of the running tool.
// The tool is expected two levels below the root (<root>/scripts/cpexpand);
// otherwise its ancestors are searched, at most maxAscend levels up.
func FindRoot(toolPath string) (string, error) {
	toolPath = Canonical(toolPath)

	root := filepath.Dir(filepath.Dir(toolPath))
	if IsRoot(root) {
		return root, nil
	}

	cur := filepath.Dir(toolPath)
	for i := 0; i < maxAscend; i++ {
		candidate := filepath.Dir(cur)
		if IsRoot(candidate) {
			return candidate, nil
		}
		if candidate == cur {
			break
		}
		cur = candidate
	}

	return "", ErrProjectRootNotFound
}

// LocateRoot picks the project root for one run. An explicit directory wins,
// then the EnvRoot environment variable, then discovery from the executable.
func LocateRoot(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvRoot)
	}
	if explicit != "" {
		root := Canonical(explicit)
		if !IsRoot(root) {
			return "", fmt.Errorf("%w: %s has no %s/ and %s/ directories",
				ErrProjectRootNotFound, filepath.Base(root), AlgorithmDir, DataStructureDir)
		}
		return root, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: cannot determine executable location: %v", ErrProjectRootNotFound, err)
	}
	return FindRoot(exe)
}

// IncludeDirs returns the ordered header search list for root. The fixed
// directories come first; extra entries are taken relative to root unless absolute.
func IncludeDirs(root string, extra ...string) []string {
	dirs := []string{
		root,
		filepath.Join(root, AlgorithmDir),
		filepath.Join(root, DataStructureDir),
	}
	for _, dir := range extra {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}
		dirs = append(dirs, filepath.Clean(dir))
	}
	return dirs
}

// Canonical returns the absolute, symlink-free form of path. When symlinks
// cannot be evaluated (for example the path does not exist) the cleaned
// absolute path is returned.
func Canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
