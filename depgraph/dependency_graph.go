package depgraph

import (
	"errors"
	"fmt"
	"io"
	"sort"

	graphlib "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// DependencyGraph represents a mapping from file paths to the files they include.
type DependencyGraph map[string][]string

// FileCycle describes a set of files that include each other, sorted by name.
type FileCycle struct {
	Path []string
}

// IncludeGraph records which files an expansion visited and which quoted
// includes connected them. Files are added by identity (a canonical path) and
// every query and rendering uses the file's label. Distinct files always get
// distinct labels.
type IncludeGraph struct {
	g      graphlib.Graph[string, string]
	files  []string
	labels map[string]string
	label  func(string) string
}

// NewIncludeGraph returns an empty directed include graph that labels every
// file with its identity.
func NewIncludeGraph() *IncludeGraph {
	return NewLabeledIncludeGraph(func(file string) string { return file })
}

// NewLabeledIncludeGraph returns an empty directed include graph that renders
// files with label. When two files share a label, the later one is suffixed
// with " (2)", " (3)" and so on.
func NewLabeledIncludeGraph(label func(string) string) *IncludeGraph {
	return &IncludeGraph{
		g:      graphlib.New(graphlib.StringHash, graphlib.Directed()),
		labels: make(map[string]string),
		label:  label,
	}
}

// AddFile adds file as a vertex. Adding a known file is a no-op.
func (ig *IncludeGraph) AddFile(file string) error {
	_, err := ig.vertex(file)
	return err
}

// AddInclude records that from includes to, adding either vertex if needed.
func (ig *IncludeGraph) AddInclude(from, to string) error {
	source, err := ig.vertex(from)
	if err != nil {
		return err
	}
	target, err := ig.vertex(to)
	if err != nil {
		return err
	}
	if err := ig.g.AddEdge(source, target, graphlib.EdgeWeight(1)); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
		return fmt.Errorf("failed to add include %s -> %s: %w", source, target, err)
	}
	return nil
}

// Label returns the label of file, or "" when file is not in the graph.
func (ig *IncludeGraph) Label(file string) string {
	return ig.labels[file]
}

func (ig *IncludeGraph) vertex(file string) (string, error) {
	if v, ok := ig.labels[file]; ok {
		return v, nil
	}

	base := ig.label(file)
	v := base
	for n := 2; ; n++ {
		err := ig.g.AddVertex(v)
		if err == nil {
			break
		}
		if !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return "", fmt.Errorf("failed to add %s to include graph: %w", base, err)
		}
		v = fmt.Sprintf("%s (%d)", base, n)
	}

	ig.labels[file] = v
	ig.files = append(ig.files, v)
	return v, nil
}

// Files returns the label of every file in the order it was first seen.
func (ig *IncludeGraph) Files() []string {
	return append([]string(nil), ig.files...)
}

// AdjacencyList returns the graph as a plain map with sorted dependency lists.
func (ig *IncludeGraph) AdjacencyList() (DependencyGraph, error) {
	adjacency, err := ig.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	result := make(DependencyGraph, len(adjacency))
	for source, targets := range adjacency {
		deps := make([]string, 0, len(targets))
		for target := range targets {
			deps = append(deps, target)
		}
		sort.Strings(deps)
		result[source] = deps
	}
	return result, nil
}

// Cycles returns every group of mutually including files, including files
// that include themselves. Groups are sorted by their first file.
func (ig *IncludeGraph) Cycles() ([]FileCycle, error) {
	components, err := graphlib.StronglyConnectedComponents(ig.g)
	if err != nil {
		return nil, fmt.Errorf("failed to find include cycles: %w", err)
	}
	adjacency, err := ig.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	var cycles []FileCycle
	for _, component := range components {
		if len(component) == 1 {
			if _, selfLoop := adjacency[component[0]][component[0]]; !selfLoop {
				continue
			}
		}
		path := append([]string(nil), component...)
		sort.Strings(path)
		cycles = append(cycles, FileCycle{Path: path})
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i].Path[0] < cycles[j].Path[0]
	})
	return cycles, nil
}

// WriteDOT renders the graph in Graphviz DOT format.
func (ig *IncludeGraph) WriteDOT(w io.Writer) error {
	return draw.DOT(ig.g, w)
}
