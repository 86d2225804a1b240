package why

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/cpexpand/cmd/workspace"
	"github.com/LegacyCodeHQ/cpexpand/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProject(t *testing.T) string {
	t.Helper()
	root := project.Canonical(t.TempDir())
	files := map[string]string{
		"contest/a.cpp":              "#include \"segtree.hpp\"\n#include \"util.hpp\"\n",
		"data-structure/segtree.hpp": "#include \"monoid.hpp\"\n",
		"algorithm/monoid.hpp":       "#include \"util.hpp\"\n",
		"algorithm/util.hpp":         "#include <vector>\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func execute(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(&workspace.Flags{Root: root})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestWhy_PrintsShortestChain(t *testing.T) {
	t.Parallel()
	root := setupProject(t)

	out, err := execute(t, root, "contest/a.cpp", "monoid.hpp")

	require.NoError(t, err)
	assert.Equal(t, "algorithm/monoid.hpp is included via:\n"+
		"contest/a.cpp\n"+
		"  data-structure/segtree.hpp\n"+
		"    algorithm/monoid.hpp\n"+
		"\n"+
		"Included directly by: data-structure/segtree.hpp\n", out)
}

func TestWhy_JSONListsAllIncluders(t *testing.T) {
	t.Parallel()
	root := setupProject(t)

	out, err := execute(t, root, "contest/a.cpp", "algorithm/util.hpp", "-f", "json")

	require.NoError(t, err)
	var got Explanation
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, Explanation{
		Input:     "contest/a.cpp",
		Header:    "algorithm/util.hpp",
		Chain:     []string{"contest/a.cpp", "algorithm/util.hpp"},
		Includers: []string{"algorithm/monoid.hpp", "contest/a.cpp"},
	}, got)
}

func TestWhy_InputItself(t *testing.T) {
	t.Parallel()
	root := setupProject(t)

	out, err := execute(t, root, "contest/a.cpp", "a.cpp")

	require.NoError(t, err)
	assert.Equal(t, "contest/a.cpp is the input file.\n", out)
}

func TestWhy_HeaderNotIncluded(t *testing.T) {
	t.Parallel()
	root := setupProject(t)

	_, err := execute(t, root, "contest/a.cpp", "fenwick.hpp")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fenwick.hpp is not included by contest/a.cpp")
}

func TestWhy_UnknownFormat(t *testing.T) {
	t.Parallel()
	root := setupProject(t)

	_, err := execute(t, root, "contest/a.cpp", "util.hpp", "-f", "dot")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: dot")
}

func TestWhy_EntryOutsideRootKeepsSameNamedHeadersApart(t *testing.T) {
	t.Parallel()
	root := setupProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "common.hpp"), []byte("#include <vector>\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "algorithm", "monoid.hpp"), []byte("#include \"common.hpp\"\n"), 0o644))
	work := project.Canonical(t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(work, "common.hpp"), []byte("#include \"segtree.hpp\"\n"), 0o644))
	entry := filepath.Join(work, "main.cpp")
	require.NoError(t, os.WriteFile(entry, []byte("#include \"common.hpp\"\n"), 0o644))

	out, err := execute(t, root, entry, "common.hpp (2)", "-f", "json")

	require.NoError(t, err)
	var got Explanation
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, Explanation{
		Input:     "main.cpp",
		Header:    "common.hpp (2)",
		Chain:     []string{"main.cpp", "common.hpp", "data-structure/segtree.hpp", "algorithm/monoid.hpp", "common.hpp (2)"},
		Includers: []string{"algorithm/monoid.hpp"},
	}, got)

	out, err = execute(t, root, entry, "common.hpp")

	require.NoError(t, err)
	assert.Contains(t, out, "Included directly by: main.cpp\n")
}
