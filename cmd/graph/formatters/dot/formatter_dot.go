package dot

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/LegacyCodeHQ/cpexpand/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/cpexpand/depgraph"
)

// Formatter formats include graphs as Graphviz DOT.
type Formatter struct{}

// Format converts the include graph to Graphviz DOT format. Cycles are
// listed as comments above the graph.
func (f *Formatter) Format(g *depgraph.IncludeGraph, opts formatters.RenderOptions) (string, error) {
	var sb strings.Builder

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("// %s\n", opts.Label))
	}

	cycles, err := g.Cycles()
	if err != nil {
		return "", err
	}
	for i, cycle := range cycles {
		sb.WriteString(fmt.Sprintf("// C%d: %s\n", i+1, strings.Join(cycle.Path, " <-> ")))
	}

	if err := g.WriteDOT(&sb); err != nil {
		return "", fmt.Errorf("failed to render DOT: %w", err)
	}
	return sb.String(), nil
}

// GenerateURL creates a GraphvizOnline URL with the DOT graph embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	encoded := url.PathEscape(output)
	return fmt.Sprintf("https://dreampuf.github.io/GraphvizOnline/?engine=dot#%s", encoded), true
}
