package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	pandoc "github.com/alnah/go-pandoc"
)

// Sentinel errors for run-level validation.
var (
	ErrWriteOutput = errors.New("failed to write output")
)

// run parses arguments, merges the optional profile, builds the conversion
// and writes any captured result to stdout.
func run(args []string, stdout io.Writer) error {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(stdout, "go-pandoc %s\n", Version)
		return nil
	}

	profile := &Profile{}
	if flags.config != "" {
		profile, err = LoadProfile(flags.config)
		if err != nil {
			return err
		}
	}

	p := buildConversion(flags, profile, inputs)

	if flags.dumpTemplate != "" {
		return p.WriteDefaultTemplate(pandoc.OutputFormat(flags.dumpTemplate), flags.output)
	}

	out, err := p.Execute()
	if err != nil {
		return err
	}

	switch result := out.(type) {
	case pandoc.TextOutput:
		if _, err := io.WriteString(stdout, string(result)); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	case pandoc.BytesOutput:
		if _, err := stdout.Write(result); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	case pandoc.FileOutput:
		// pandoc wrote the file itself; nothing to emit.
	}
	return nil
}

// buildConversion assembles the builder from profile defaults and explicit
// flags, flags winning wherever both are set.
func buildConversion(flags *cliFlags, profile *Profile, inputs []string) *pandoc.Pandoc {
	p := pandoc.New()

	for _, dir := range append(profile.LatexPath, flags.latexPaths...) {
		p.AddLatexPathHint(dir)
	}
	for _, dir := range append(profile.PandocPath, flags.pandocPaths...) {
		p.AddPandocPathHint(dir)
	}
	p.SetShowCmdline(flags.showCmdline)

	if from := firstOf(flags.from, profile.From); from != "" {
		format, extensions := parseFormat(from)
		p.SetInputFormat(pandoc.InputFormat(format), extensions...)
	}
	if to := firstOf(flags.to, profile.To); to != "" {
		format, extensions := parseFormat(to)
		p.SetOutputFormat(pandoc.OutputFormat(format), extensions...)
	}

	if flags.standalone || profile.Standalone {
		p.AddOption(pandoc.Standalone())
	}
	if flags.toc || profile.TOC {
		p.AddOption(pandoc.TableOfContents())
	}
	if flags.numberSections || profile.NumberSections {
		p.AddOption(pandoc.NumberSections())
	}
	if level := firstPositive(flags.slideLevel, profile.SlideLevel); level > 0 {
		p.AddOption(pandoc.SlideLevel(uint(level)))
	}
	if template := firstOf(flags.template, profile.Template); template != "" {
		p.AddOption(pandoc.Template(template))
	}

	// Profile variables first (sorted for a stable command line), then
	// explicit ones so pandoc's last-wins semantics favor the flags.
	keys := make([]string, 0, len(profile.Variables))
	for key := range profile.Variables {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		p.AddOption(pandoc.Variable(key, profile.Variables[key]))
	}
	for _, kv := range flags.variables {
		key, value := splitKeyValue(kv)
		p.AddOption(pandoc.Variable(key, value))
	}
	for _, kv := range flags.metadata {
		key, value := splitKeyValue(kv)
		p.AddOption(pandoc.Meta(key, value))
	}

	for _, input := range inputs {
		p.AddInput(input)
	}
	if flags.output != "" {
		p.SetOutput(flags.output)
	} else {
		p.SetOutputPipe()
	}
	return p
}

// parseFormat splits "markdown+smart+emoji" into the format tag and its
// extension list.
func parseFormat(s string) (string, []pandoc.Extension) {
	parts := strings.Split(s, "+")
	extensions := make([]pandoc.Extension, 0, len(parts)-1)
	for _, ext := range parts[1:] {
		extensions = append(extensions, pandoc.Extension(ext))
	}
	return parts[0], extensions
}

func firstOf(explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}
	return fallback
}

func firstPositive(explicit, fallback int) int {
	if explicit > 0 {
		return explicit
	}
	return fallback
}
