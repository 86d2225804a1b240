package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/cpexpand/depgraph"
)

// JSONFormatter formats include graphs as JSON.
type JSONFormatter struct{}

type jsonGraph struct {
	Label    string                   `json:"label,omitempty"`
	Files    []string                 `json:"files"`
	Includes depgraph.DependencyGraph `json:"includes"`
	Cycles   [][]string               `json:"cycles"`
}

// Format converts the include graph to JSON.
func (f *JSONFormatter) Format(g *depgraph.IncludeGraph, opts RenderOptions) (string, error) {
	adjacency, err := g.AdjacencyList()
	if err != nil {
		return "", err
	}
	cycles, err := g.Cycles()
	if err != nil {
		return "", err
	}

	out := jsonGraph{
		Label:    opts.Label,
		Files:    g.Files(),
		Includes: adjacency,
		Cycles:   make([][]string, 0, len(cycles)),
	}
	for _, c := range cycles {
		out.Cycles = append(out.Cycles, c.Path)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GenerateURL returns false as JSON format does not support URL generation.
func (f *JSONFormatter) GenerateURL(output string) (string, bool) {
	return "", false
}
