package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLayout(t *testing.T) string {
	t.Helper()
	root := Canonical(t.TempDir())
	for _, dir := range []string{AlgorithmDir, DataStructureDir, "scripts"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	return root
}

func TestFindRoot_ToolTwoLevelsBelowRoot(t *testing.T) {
	t.Parallel()
	root := newLayout(t)

	found, err := FindRoot(filepath.Join(root, "scripts", "cpexpand"))

	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindRoot_ToolNestedDeeper_WalksUpward(t *testing.T) {
	t.Parallel()
	root := newLayout(t)
	deep := filepath.Join(root, "tools", "bin", "linux")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	found, err := FindRoot(filepath.Join(deep, "cpexpand"))

	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindRoot_NoLayout_ReturnsConfigurationError(t *testing.T) {
	t.Parallel()
	dir := Canonical(t.TempDir())

	_, err := FindRoot(filepath.Join(dir, "scripts", "cpexpand"))

	assert.ErrorIs(t, err, ErrProjectRootNotFound)
}

func TestLocateRoot_ExplicitRoot(t *testing.T) {
	t.Parallel()
	root := newLayout(t)

	found, err := LocateRoot(root)

	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestLocateRoot_ExplicitRootWithoutLayout_Fails(t *testing.T) {
	t.Parallel()

	_, err := LocateRoot(t.TempDir())

	assert.ErrorIs(t, err, ErrProjectRootNotFound)
}

func TestLocateRoot_FromEnvironment(t *testing.T) {
	root := newLayout(t)
	t.Setenv(EnvRoot, root)

	found, err := LocateRoot("")

	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestIncludeDirs_FixedOrderThenExtras(t *testing.T) {
	t.Parallel()
	root := filepath.Join(string(filepath.Separator), "lib")
	abs := filepath.Join(string(filepath.Separator), "opt", "headers")

	dirs := IncludeDirs(root, "third_party", abs)

	assert.Equal(t, []string{
		root,
		filepath.Join(root, AlgorithmDir),
		filepath.Join(root, DataStructureDir),
		filepath.Join(root, "third_party"),
		abs,
	}, dirs)
}

func TestCanonical_ResolvesSymlinks(t *testing.T) {
	t.Parallel()
	dir := Canonical(t.TempDir())
	target := filepath.Join(dir, "real.hpp")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	link := filepath.Join(dir, "link.hpp")
	require.NoError(t, os.Symlink(target, link))

	assert.Equal(t, target, Canonical(link))
	assert.Equal(t, target, Canonical(filepath.Join(dir, "sub", "..", "real.hpp")))
}
