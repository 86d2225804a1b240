package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInput_PrefersRootRelative(t *testing.T) {
	root := newLayout(t)
	workDir := Canonical(t.TempDir())
	t.Chdir(workDir)
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.cpp"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "main.cpp"), nil, 0o644))

	path, err := ResolveInput("main.cpp", root)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "main.cpp"), path)
}

func TestResolveInput_FallsBackToWorkingDirectory(t *testing.T) {
	root := newLayout(t)
	workDir := Canonical(t.TempDir())
	t.Chdir(workDir)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "a.cpp"), nil, 0o644))

	path, err := ResolveInput("a.cpp", root)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "a.cpp"), path)
}

func TestResolveInput_AbsolutePathUsedAsIs(t *testing.T) {
	t.Parallel()
	root := newLayout(t)
	abs := filepath.Join(Canonical(t.TempDir()), "b.cpp")
	require.NoError(t, os.WriteFile(abs, nil, 0o644))

	path, err := ResolveInput(abs, root)

	require.NoError(t, err)
	assert.Equal(t, abs, path)
}

func TestResolveInput_Missing_ReturnsInputNotFoundError(t *testing.T) {
	t.Parallel()
	root := newLayout(t)

	_, err := ResolveInput(filepath.Join(root, "contest", "missing.cpp"), root)

	var notFound *InputNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "contest/missing.cpp", notFound.Display)
	assert.Equal(t, "input not found: contest/missing.cpp", err.Error())
}

func TestResolveInput_Directory_IsNotAnInput(t *testing.T) {
	t.Parallel()
	root := newLayout(t)

	_, err := ResolveInput(AlgorithmDir, root)

	var notFound *InputNotFoundError
	assert.True(t, errors.As(err, &notFound))
}
