package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag handling.
var (
	ErrInvalidFlags = errors.New("invalid flags")
	ErrNoDumpOutput = errors.New("--print-default-template requires -o")
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	from           string
	to             string
	output         string
	standalone     bool
	toc            bool
	numberSections bool
	slideLevel     int
	template       string
	variables      []string
	metadata       []string
	pandocPaths    []string
	latexPaths     []string
	showCmdline    bool
	config         string
	dumpTemplate   string
	version        bool
}

// parseFlags parses args (including the program name) and returns the flags
// plus the positional input files.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("go-pandoc", flag.ContinueOnError)

	fs.StringVarP(&f.from, "from", "f", "", "input format, optionally with extensions (markdown+smart)")
	fs.StringVarP(&f.to, "to", "t", "", "output format, optionally with extensions")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: write converted text to stdout)")
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "produce a complete document")
	fs.BoolVar(&f.toc, "toc", false, "include a table of contents")
	fs.BoolVarP(&f.numberSections, "number-sections", "N", false, "number section headings")
	fs.IntVar(&f.slideLevel, "slide-level", 0, "heading level that defines slides")
	fs.StringVar(&f.template, "template", "", "custom template file")
	fs.StringArrayVarP(&f.variables, "variable", "V", nil, "template variable key=value (repeatable)")
	fs.StringArrayVarP(&f.metadata, "metadata", "M", nil, "metadata key[=value] (repeatable)")
	fs.StringArrayVar(&f.pandocPaths, "pandoc-path", nil, "directory searched for pandoc before PATH (repeatable)")
	fs.StringArrayVar(&f.latexPaths, "latex-path", nil, "directory searched for the LaTeX engine before PATH (repeatable)")
	fs.BoolVar(&f.showCmdline, "show-cmdline", false, "echo the assembled pandoc command line")
	fs.StringVar(&f.config, "config", "", "profile name or path (YAML)")
	fs.StringVar(&f.dumpTemplate, "print-default-template", "", "write pandoc's default template for FORMAT to -o and exit")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if f.dumpTemplate != "" && f.output == "" {
		return nil, nil, ErrNoDumpOutput
	}
	return f, fs.Args(), nil
}

// splitKeyValue splits "key=value" into its parts; a missing "=" yields an
// empty value, which the library treats as a bare key.
func splitKeyValue(s string) (key, value string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
