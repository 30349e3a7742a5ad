//go:build !windows

package pandoc

// defaultPandocPaths lists hard-coded pandoc install directories consulted
// after explicit hints. There are none outside Windows; PATH covers the
// usual package-manager locations.
func defaultPandocPaths() []string { return nil }

// defaultLatexPaths lists common TeX Live install directories.
func defaultLatexPaths() []string {
	return []string{
		"/usr/local/bin",
		"/usr/local/texlive/2015/bin/i386-linux",
	}
}
