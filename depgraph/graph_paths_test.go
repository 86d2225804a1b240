package depgraph_test

import (
	"errors"
	"testing"

	"github.com/LegacyCodeHQ/cpexpand/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contestGraph(t *testing.T) *depgraph.IncludeGraph {
	t.Helper()
	g := depgraph.NewIncludeGraph()
	require.NoError(t, g.AddInclude("contest/a.cpp", "data-structure/segtree.hpp"))
	require.NoError(t, g.AddInclude("contest/a.cpp", "algorithm/util.hpp"))
	require.NoError(t, g.AddInclude("data-structure/segtree.hpp", "algorithm/monoid.hpp"))
	require.NoError(t, g.AddInclude("algorithm/monoid.hpp", "algorithm/util.hpp"))
	require.NoError(t, g.AddFile("data-structure/util.hpp"))
	return g
}

func TestIncludeChain_ShortestPath(t *testing.T) {
	g := contestGraph(t)

	chain, err := g.IncludeChain("contest/a.cpp", "algorithm/monoid.hpp")

	require.NoError(t, err)
	assert.Equal(t, []string{"contest/a.cpp", "data-structure/segtree.hpp", "algorithm/monoid.hpp"}, chain)

	direct, err := g.IncludeChain("contest/a.cpp", "algorithm/util.hpp")
	require.NoError(t, err)
	assert.Equal(t, []string{"contest/a.cpp", "algorithm/util.hpp"}, direct)
}

func TestIncludeChain_Unreachable(t *testing.T) {
	g := contestGraph(t)

	_, err := g.IncludeChain("algorithm/util.hpp", "contest/a.cpp")

	assert.True(t, errors.Is(err, depgraph.ErrNoIncludeChain))
}

func TestFindFile(t *testing.T) {
	g := contestGraph(t)

	file, candidates := g.FindFile("algorithm/monoid.hpp")
	assert.Equal(t, "algorithm/monoid.hpp", file)
	assert.Empty(t, candidates)

	file, candidates = g.FindFile("segtree.hpp")
	assert.Equal(t, "data-structure/segtree.hpp", file)
	assert.Empty(t, candidates)

	file, candidates = g.FindFile("util.hpp")
	assert.Empty(t, file)
	assert.Equal(t, []string{"algorithm/util.hpp", "data-structure/util.hpp"}, candidates)

	file, candidates = g.FindFile("missing.hpp")
	assert.Empty(t, file)
	assert.Empty(t, candidates)
}

func TestIncluders(t *testing.T) {
	g := contestGraph(t)

	includers, err := g.Includers("algorithm/util.hpp")

	require.NoError(t, err)
	assert.Equal(t, []string{"algorithm/monoid.hpp", "contest/a.cpp"}, includers)
}
