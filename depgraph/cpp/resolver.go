package cpp

import (
	"os"
	"path/filepath"
)

// IncludeResolver finds the file a quoted include refers to.
type IncludeResolver struct {
	includeDirs []string
}

// NewIncludeResolver returns a resolver searching includeDirs in order after
// the including file's own directory.
func NewIncludeResolver(includeDirs []string) IncludeResolver {
	dirs := make([]string, len(includeDirs))
	copy(dirs, includeDirs)
	return IncludeResolver{includeDirs: dirs}
}

// SearchDirs lists the directories tried for an include found in includingFile, in order.
func (r IncludeResolver) SearchDirs(includingFile string) []string {
	dirs := make([]string, 0, len(r.includeDirs)+1)
	dirs = append(dirs, filepath.Dir(includingFile))
	return append(dirs, r.includeDirs...)
}

// Resolve returns the first regular file named header in the search
// directories of includingFile.
func (r IncludeResolver) Resolve(header, includingFile string) (string, bool) {
	if filepath.IsAbs(header) {
		if isRegularFile(header) {
			return filepath.Clean(header), true
		}
		return "", false
	}

	for _, dir := range r.SearchDirs(includingFile) {
		candidate := filepath.Join(dir, header)
		if isRegularFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
