package pkgmgr

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeBinary(t *testing.T, dir, name string) string {
	t.Helper()

	binPath := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(binPath, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	return binPath
}

func TestDiscoverFrom(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH-based fake binaries are not portable to windows")
	}

	dir := t.TempDir()
	writeFakeBinary(t, dir, "apt")
	writeFakeBinary(t, dir, "pacman")

	t.Setenv("PATH", dir)

	selection := discoverFrom([]string{"apt", "dnf", "pacman"})

	assert.Equal(t, []string{"apt", "pacman"}, selection.Packages)
	require.Len(t, selection.Available, 2)
	assert.Contains(t, selection.Available[0], "apt")
	assert.Contains(t, selection.Available[1], "pacman")
}

func TestDiscoverFrom_NoneFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	selection := discoverFrom([]string{"apt", "dnf"})

	require.NotNil(t, selection)
	assert.NotNil(t, selection.Packages)
	assert.NotNil(t, selection.Available)
	assert.Empty(t, selection.Packages)
	assert.Empty(t, selection.Available)
}

func TestDiscoverFrom_ResolvesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation is not reliable on windows")
	}

	dir := t.TempDir()
	real := writeFakeBinary(t, dir, "dnf")
	link := filepath.Join(dir, "yum")
	require.NoError(t, os.Symlink(real, link))

	t.Setenv("PATH", dir)

	selection := discoverFrom([]string{"yum"})

	require.Equal(t, []string{"yum"}, selection.Packages)
	require.Len(t, selection.Available, 1)

	resolvedReal, err := filepath.EvalSymlinks(real)
	require.NoError(t, err)
	assert.Equal(t, resolvedReal, selection.Available[0])
}

func TestResolvePath_MissingTarget(t *testing.T) {
	// A dangling path falls back to the input untouched.
	missing := filepath.Join(t.TempDir(), "missing-binary")
	assert.Equal(t, missing, resolvePath(missing))
}
