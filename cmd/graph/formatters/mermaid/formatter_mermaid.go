package mermaid

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/LegacyCodeHQ/cpexpand/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/cpexpand/depgraph"
)

// Formatter formats include graphs as Mermaid.js flowcharts.
type Formatter struct{}

// Format converts the include graph to Mermaid.js flowchart format. Nodes
// appear in expansion order.
func (f *Formatter) Format(g *depgraph.IncludeGraph, opts formatters.RenderOptions) (string, error) {
	adjacency, err := g.AdjacencyList()
	if err != nil {
		return "", err
	}
	cycles, err := g.Cycles()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	// Add title if label provided
	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}

	sb.WriteString("flowchart LR\n")

	cycleNodes := make(map[string]bool)
	for i, cycle := range cycles {
		parts := append([]string(nil), cycle.Path...)
		parts = append(parts, cycle.Path[0])
		for _, node := range cycle.Path {
			cycleNodes[node] = true
		}
		sb.WriteString(fmt.Sprintf("%%%% C%d: %s\n", i+1, strings.Join(parts, " -> ")))
	}

	// Mermaid node IDs can't have dots or special characters.
	files := g.Files()
	nodeIDs := make(map[string]string, len(files))
	for i, file := range files {
		nodeIDs[file] = fmt.Sprintf("n%d", i)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeIDs[file], file))
	}

	for _, file := range files {
		for _, dep := range adjacency[file] {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeIDs[file], nodeIDs[dep]))
		}
	}

	if len(cycleNodes) > 0 {
		sb.WriteString("    classDef cycle stroke:#d62728,stroke-width:2px\n")
		for _, file := range files {
			if cycleNodes[file] {
				sb.WriteString(fmt.Sprintf("    class %s cycle\n", nodeIDs[file]))
			}
		}
	}

	return sb.String(), nil
}

// GenerateURL creates a mermaid.live URL with the diagram embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	payload := map[string]interface{}{
		"code": output,
		"mermaid": map[string]interface{}{
			"theme": "default",
		},
		"autoSync":      true,
		"updateDiagram": true,
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		// Fallback: just return the code URL-encoded
		return fmt.Sprintf("https://mermaid.live/edit#%s", url.PathEscape(output)), true
	}

	encoded := base64.URLEncoding.EncodeToString(jsonBytes)
	return fmt.Sprintf("https://mermaid.live/edit#base64:%s", encoded), true
}
