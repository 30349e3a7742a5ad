package pandoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-pandoc/internal/searchpath"
)

// pandocExecutable is the bare name resolved against the assembled search
// path.
const pandocExecutable = "pandoc"

// lookPandoc resolves the executable; a variable so tests can stub
// resolution without a pandoc install.
var lookPandoc = searchpath.LookPath

// commandRunner abstracts subprocess execution so the engine is testable
// without spawning pandoc. run returns the captured output streams and the
// exit code; err is non-nil only when the process could not run at all.
type commandRunner interface {
	run(exe string, args, env []string, stdin io.Reader) (stdout, stderr []byte, exitCode int, err error)
}

// execRunner runs commands with os/exec, blocking until exit. No timeout is
// applied; callers needing one wrap Execute in their own cancellation
// layer.
type execRunner struct{}

func (execRunner) run(exe string, args, env []string, stdin io.Reader) ([]byte, []byte, int, error) {
	cmd := exec.Command(exe, args...)
	cmd.Env = env
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
	}
	if err != nil {
		return nil, nil, 0, err
	}
	return stdout.Bytes(), stderr.Bytes(), 0, nil
}

// Execute consumes the builder, runs pandoc, and classifies the outcome.
// When filters are registered the conversion happens in two passes: a
// pre-pass through the JSON document representation, the filters, then the
// real invocation fed the filtered document on stdin.
func (p *Pandoc) Execute() (Output, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.filters) == 0 {
		return p.run()
	}
	return p.runFiltered()
}

// run performs one pandoc invocation from the current configuration.
func (p *Pandoc) run() (Output, error) {
	if !p.outputSet {
		return nil, ErrNoOutput
	}
	if len(p.inputFiles) == 0 && !p.pipedSet {
		return nil, ErrNoInput
	}

	stdout, err := p.invoke(p.buildArgs(), p.stdin())
	if err != nil {
		return nil, err
	}

	if !p.outputPipe {
		return FileOutput(p.outputFile), nil
	}
	if p.outputFmt != nil && OutputFormat(p.outputFmt.name).binary() {
		return BytesOutput(stdout), nil
	}
	text, err := decodeUTF8(stdout)
	if err != nil {
		return nil, err
	}
	return TextOutput(text), nil
}

// runFiltered chains the JSON pre-pass through the registered filters and
// feeds the result into the main invocation. The pre-pass inherits the
// original input, input format, path hints and diagnostic echo; its output
// is forced to a captured JSON document.
func (p *Pandoc) runFiltered() (Output, error) {
	pre := New()
	pre.runner = p.runner
	pre.latexHints = append([]string(nil), p.latexHints...)
	pre.pandocHints = append([]string(nil), p.pandocHints...)
	pre.showCmdline = p.showCmdline
	pre.inputFiles = p.inputFiles
	pre.pipedInput, pre.pipedSet = p.pipedInput, p.pipedSet
	pre.inputFmt = p.inputFmt
	pre.outputFmt = &formatSpec{name: string(OutputJSON)}
	pre.outputPipe, pre.outputSet = true, true

	out, err := pre.run()
	if err != nil {
		return nil, err
	}
	// json is a text format, so run already decoded (and UTF-8 validated)
	// the captured document.
	doc := string(out.(TextOutput))
	for _, filter := range p.filters {
		doc = filter(doc)
	}

	// The main pass reads the filtered document from stdin as JSON,
	// keeping whatever extensions were set on the original input format.
	var extensions []Extension
	if p.inputFmt != nil {
		extensions = p.inputFmt.extensions
	}
	p.inputFmt = &formatSpec{name: string(InputJSON), extensions: extensions}
	p.inputFiles = nil
	p.pipedInput, p.pipedSet = doc, true
	return p.run()
}

// WriteDefaultTemplate writes pandoc's default template for the given
// output format to filename, honoring the builder's path hints.
func (p *Pandoc) WriteDefaultTemplate(format OutputFormat, filename string) error {
	stdout, err := p.invoke([]string{"-D", string(format)}, nil)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, stdout, 0o644); err != nil {
		return fmt.Errorf("pandoc: writing template: %w", err)
	}
	return nil
}

// invoke resolves the executable, installs the hint-augmented PATH on the
// child, runs it, and turns a nonzero exit into an *ExitError.
func (p *Pandoc) invoke(args []string, stdin io.Reader) ([]byte, error) {
	path := p.childSearchPath()
	exe, err := lookPandoc(path, pandocExecutable)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w (searched %s)", ErrPandocNotFound, path)
		}
		return nil, fmt.Errorf("pandoc: resolving executable: %w", err)
	}

	if p.showCmdline {
		fmt.Printf("cmd: %s %s\n", exe, strings.Join(args, " "))
	}

	stdout, stderr, exitCode, err := p.runner.run(exe, args, childEnv(path), stdin)
	if err != nil {
		return nil, fmt.Errorf("pandoc: running %s: %w", exe, err)
	}
	if exitCode != 0 {
		return nil, &ExitError{Code: exitCode, Stdout: string(stdout), Stderr: string(stderr)}
	}
	return stdout, nil
}

// buildArgs assembles the argument vector. The order is fixed: input
// format, raw passthrough args, output designation, output format, catalog
// options in insertion order, then positional input files.
func (p *Pandoc) buildArgs() []string {
	var args []string
	if p.inputFmt != nil {
		args = append(args, "-f", p.inputFmt.render())
	}
	for _, raw := range p.rawArgs {
		if raw.value == "" {
			args = append(args, "--"+raw.key)
		} else {
			args = append(args, "--"+raw.key+"="+raw.value)
		}
	}
	if p.outputSet && !p.outputPipe {
		args = append(args, "-o", p.outputFile)
	}
	if p.outputFmt != nil {
		args = append(args, "-t", p.outputFmt.render())
	}
	for _, option := range p.options {
		args = append(args, option.args()...)
	}
	args = append(args, p.inputFiles...)
	return args
}

// stdin returns the reader for piped input, or nil for file-based input.
func (p *Pandoc) stdin() io.Reader {
	if !p.pipedSet {
		return nil
	}
	return strings.NewReader(p.pipedInput)
}

// childSearchPath builds the child's PATH: explicit LaTeX hints, explicit
// pandoc hints, the hard-coded platform defaults, then the inherited PATH.
func (p *Pandoc) childSearchPath() string {
	return searchpath.Build(os.Getenv("PATH"),
		p.latexHints, p.pandocHints, defaultPandocPaths(), defaultLatexPaths())
}

// childEnv is the inherited environment with PATH replaced, for the
// subprocess only.
func childEnv(path string) []string {
	env := os.Environ()
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if len(kv) >= 5 && strings.EqualFold(kv[:5], "PATH=") {
			continue
		}
		out = append(out, kv)
	}
	return append(out, "PATH="+path)
}

// decodeUTF8 converts captured output to text, reporting the length of the
// longest valid prefix when the bytes are not UTF-8.
func decodeUTF8(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	valid := 0
	for valid < len(b) {
		r, size := utf8.DecodeRune(b[valid:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		valid += size
	}
	return "", &InvalidUTF8Error{ValidBytes: valid}
}
