package env

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LibrariesDir is the directory name collected below testcases/.
const LibrariesDir = "libraries"

// PythonPath returns the import path for a suite rooted at calldir: calldir
// itself, calldir/libraries, calldir/resources and every directory named
// "libraries" below calldir/testcases in lexical order. Symlinked
// directories are followed; each real directory is visited once.
func PythonPath(calldir string) []string {
	paths := []string{
		calldir,
		filepath.Join(calldir, LibrariesDir),
		filepath.Join(calldir, "resources"),
	}
	return append(paths, findDirs(filepath.Join(calldir, "testcases"), LibrariesDir)...)
}

// findDirs walks root and returns the directories called name. Unreadable
// directories and broken links are skipped.
func findDirs(root, name string) []string {
	var found []string
	visited := make(map[string]bool)

	var walk func(dir string)
	walk = func(dir string) {
		real, err := filepath.EvalSymlinks(dir)
		if err != nil || visited[real] {
			return
		}
		visited[real] = true

		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			if !isDir(path, e) {
				continue
			}
			if e.Name() == name {
				found = append(found, path)
			}
			walk(path)
		}
	}

	walk(root)
	return found
}

func isDir(path string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SplitPath splits a PYTHONPATH-style list, dropping empty elements.
func SplitPath(list string) []string {
	var paths []string
	for _, p := range strings.Split(list, string(os.PathListSeparator)) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// JoinPath joins paths with the OS list separator, keeping the first
// occurrence of duplicates.
func JoinPath(paths []string) string {
	seen := make(map[string]bool, len(paths))
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		kept = append(kept, p)
	}
	return strings.Join(kept, string(os.PathListSeparator))
}
