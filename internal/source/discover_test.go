// internal/source/discover_test.go
package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		p := filepath.Join(root, filepath.FromSlash(r))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
}

func TestDiscover_WalksDirectories(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"main.c",
		"util/str.h",
		"util/vec.hpp",
		"gpu/blur.cl",
		"gpu/scan.cu",
		"README.md",
		"build.sh",
		".git/hooks/pre-commit.c",
		"util/.hidden.c",
		"vendor/lib/dep.c",
	)

	got := Discover([]string{root})

	want := []string{
		filepath.Join(root, "gpu", "blur.cl"),
		filepath.Join(root, "gpu", "scan.cu"),
		filepath.Join(root, "main.c"),
		filepath.Join(root, "util", "str.h"),
		filepath.Join(root, "util", "vec.hpp"),
	}
	assert.Equal(t, want, got)
}

func TestDiscover_ExplicitFilesAreKept(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "notes.txt", "a.c")

	notes := filepath.Join(root, "notes.txt")
	missing := filepath.Join(root, "missing.c")
	a := filepath.Join(root, "a.c")

	got := Discover([]string{notes, missing, a, a, root})

	assert.Equal(t, []string{a, missing, notes}, got)
}

func TestDiscover_Empty(t *testing.T) {
	assert.Empty(t, Discover(nil))
}

func TestIsCFamily(t *testing.T) {
	for _, p := range []string{"a.c", "a.h", "a.cpp", "a.cc", "a.hpp", "a.cl", "a.cu", "a.m", "a.mm"} {
		assert.True(t, IsCFamily(p), p)
	}
	for _, p := range []string{"a.go", "a.py", "Makefile", "a.txt"} {
		assert.False(t, IsCFamily(p), p)
	}
}
