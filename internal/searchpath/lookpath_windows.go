//go:build windows

package searchpath

import (
	"os"
	"path/filepath"
)

// Extensions probed when the name has none, mirroring cmd.exe resolution
// for the common executable types.
var executableExtensions = []string{".com", ".exe", ".bat", ".cmd"}

func candidateNames(file string) []string {
	if filepath.Ext(file) != "" {
		return []string{file}
	}
	names := make([]string, 0, len(executableExtensions)+1)
	names = append(names, file)
	for _, ext := range executableExtensions {
		names = append(names, file+ext)
	}
	return names
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
