package dot

import (
	"strings"
	"testing"

	"github.com/LegacyCodeHQ/cpexpand/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/cpexpand/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format_RendersEdgesAndCycles(t *testing.T) {
	g := depgraph.NewIncludeGraph()
	require.NoError(t, g.AddInclude("main.cpp", "algorithm/a.hpp"))
	require.NoError(t, g.AddInclude("algorithm/a.hpp", "algorithm/b.hpp"))
	require.NoError(t, g.AddInclude("algorithm/b.hpp", "algorithm/a.hpp"))

	output, err := (&Formatter{}).Format(g, formatters.RenderOptions{Label: "main.cpp"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "// main.cpp\n// C1: algorithm/a.hpp <-> algorithm/b.hpp\n"))
	assert.Contains(t, output, "digraph")
	assert.Contains(t, output, `"main.cpp" -> "algorithm/a.hpp"`)
	assert.Contains(t, output, `"algorithm/b.hpp" -> "algorithm/a.hpp"`)
}

func TestFormatter_GenerateURL(t *testing.T) {
	u, ok := (&Formatter{}).GenerateURL("digraph { a -> b }")

	assert.True(t, ok)
	assert.Equal(t, "https://dreampuf.github.io/GraphvizOnline/?engine=dot#digraph%20%7B%20a%20-%3E%20b%20%7D", u)
}
