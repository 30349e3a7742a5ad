// Package searchpath assembles child-process PATH values from hint
// directories and resolves executables against them.
//
// Go's os/exec resolves bare command names against the parent process
// environment, so hint directories installed only in the child's PATH would
// never be consulted. Resolution therefore happens here, against the exact
// PATH value the child will receive.
package searchpath

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Build concatenates the directory lists in order, then the inherited PATH
// value, joined with the platform path-list delimiter. Nothing is
// deduplicated or reordered.
func Build(inherited string, dirLists ...[]string) string {
	var dirs []string
	for _, list := range dirLists {
		dirs = append(dirs, list...)
	}
	joined := strings.Join(dirs, string(os.PathListSeparator))
	switch {
	case joined == "":
		return inherited
	case inherited == "":
		return joined
	}
	return joined + string(os.PathListSeparator) + inherited
}

// LookPath resolves file against the directories of pathList, in order.
// When no directory holds an executable with that name the returned error
// wraps fs.ErrNotExist, letting callers distinguish "not installed" from
// other I/O failures.
func LookPath(pathList, file string) (string, error) {
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			dir = "."
		}
		for _, name := range candidateNames(file) {
			candidate := filepath.Join(dir, name)
			if isExecutable(candidate) {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("searchpath: %q not found in %q: %w", file, pathList, fs.ErrNotExist)
}
