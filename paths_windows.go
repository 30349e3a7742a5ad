//go:build windows

package pandoc

import (
	"os"
	"path/filepath"
)

// defaultPandocPaths lists hard-coded pandoc install directories consulted
// after explicit hints. The pandoc installer defaults to the user-local
// AppData directory.
func defaultPandocPaths() []string {
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		return nil
	}
	return []string{filepath.Join(localAppData, "Pandoc")}
}

// defaultLatexPaths lists common MiKTeX install directories.
func defaultLatexPaths() []string {
	return []string{
		`C:\Program Files (x86)\MiKTeX 2.9\miktex\bin`,
		`C:\Program Files\MiKTeX 2.9\miktex\bin`,
	}
}
