package formatters

import "github.com/LegacyCodeHQ/cpexpand/depgraph"

// RenderOptions contains optional parameters for formatting include graphs.
type RenderOptions struct {
	// Label is an optional title or label for the graph
	Label string
}

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts an include graph to a formatted string representation.
	Format(g *depgraph.IncludeGraph, opts RenderOptions) (string, error)
	// GenerateURL returns a visualization URL for output, if the format supports one.
	GenerateURL(output string) (string, bool)
}
