package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
}

func TestPythonPath(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"testcases/suite_b/libraries",
		"testcases/suite_a/libraries/libraries",
		"testcases/suite_a/resources",
		"testcases/suite_c/mylibraries",
		"other/libraries",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, "testcases", "libraries"), []byte("not a dir"), 0644))

	assert.Equal(t, []string{
		root,
		filepath.Join(root, "libraries"),
		filepath.Join(root, "resources"),
		filepath.Join(root, "testcases/suite_a/libraries"),
		filepath.Join(root, "testcases/suite_a/libraries/libraries"),
		filepath.Join(root, "testcases/suite_b/libraries"),
	}, PythonPath(root))
}

func TestPythonPathWithoutTestcases(t *testing.T) {
	root := t.TempDir()
	assert.Equal(t, []string{
		root,
		filepath.Join(root, "libraries"),
		filepath.Join(root, "resources"),
	}, PythonPath(root))
}

func TestPythonPathFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	shared := t.TempDir()
	mkdirs(t, shared, "libraries")
	mkdirs(t, root, "testcases/suite")

	if err := os.Symlink(shared, filepath.Join(root, "testcases", "suite", "shared")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	// A loop back to testcases must not recurse forever.
	require.NoError(t, os.Symlink(filepath.Join(root, "testcases"), filepath.Join(shared, "loop")))

	paths := PythonPath(root)
	assert.Contains(t, paths, filepath.Join(root, "testcases/suite/shared/libraries"))
	assert.Len(t, paths, 4)
}

func TestJoinSplitPath(t *testing.T) {
	sep := string(os.PathListSeparator)

	assert.Equal(t, "a"+sep+"b", JoinPath([]string{"a", "", "b", "a"}))
	assert.Equal(t, []string{"a", "b"}, SplitPath(sep+"a"+sep+sep+"b"))
	assert.Nil(t, SplitPath(""))
}
