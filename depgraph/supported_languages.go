package depgraph

import (
	"path/filepath"
	"strings"
)

var sourceExtensions = map[string]bool{
	".h":   true,
	".hh":  true,
	".hpp": true,
	".hxx": true,
	".cc":  true,
	".cpp": true,
	".cxx": true,
	".inl": true,
}

// IsSourceFile reports whether path has a C or C++ source or header extension.
func IsSourceFile(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}
