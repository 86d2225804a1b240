package depgraph

import (
	"errors"
	"fmt"
	"path"
	"sort"

	graphlib "github.com/dominikbraun/graph"
)

// ErrNoIncludeChain is returned when the target file is not reachable from the source.
var ErrNoIncludeChain = errors.New("no include chain")

// FindFile returns the file labeled name. When no label matches exactly, a
// unique label whose path ends in "/"+name is accepted, so a bare header name
// can be given. Ambiguous names return every candidate label.
func (ig *IncludeGraph) FindFile(name string) (string, []string) {
	for _, file := range ig.files {
		if file == name {
			return file, nil
		}
	}

	var candidates []string
	for _, file := range ig.files {
		if path.Base(file) == name || hasPathSuffix(file, name) {
			candidates = append(candidates, file)
		}
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	sort.Strings(candidates)
	return "", candidates
}

// IncludeChain returns the shortest sequence of file labels from source to
// target where each file includes the next.
func (ig *IncludeGraph) IncludeChain(source, target string) ([]string, error) {
	chain, err := graphlib.ShortestPath(ig.g, source, target)
	if errors.Is(err, graphlib.ErrTargetNotReachable) {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoIncludeChain, source, target)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find include chain from %s to %s: %w", source, target, err)
	}
	return chain, nil
}

// Includers returns the files that directly include target, sorted.
func (ig *IncludeGraph) Includers(target string) ([]string, error) {
	predecessors, err := ig.g.PredecessorMap()
	if err != nil {
		return nil, err
	}
	var includers []string
	for source := range predecessors[target] {
		includers = append(includers, source)
	}
	sort.Strings(includers)
	return includers, nil
}

func hasPathSuffix(file, suffix string) bool {
	return len(file) > len(suffix) && file[len(file)-len(suffix)-1] == '/' && file[len(file)-len(suffix):] == suffix
}
