package pandoc

// Notes:
// - Tests that swap the package-level lookPandoc variable or touch the
//   environment do not use t.Parallel(). Rendering and builder tests
//   (options_test.go, pandoc_test.go) stay parallel instead.
// - The fake runner records every invocation, which is how the two-phase
//   filter pipeline is observed end to end.

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type runnerCall struct {
	exe   string
	args  []string
	env   []string
	stdin string
}

// fakeRunner replays canned results and records calls. When stdouts holds
// fewer entries than calls, the last entry repeats.
type fakeRunner struct {
	calls    []runnerCall
	stdouts  [][]byte
	stderr   []byte
	exitCode int
	err      error
}

func (f *fakeRunner) run(exe string, args, env []string, stdin io.Reader) ([]byte, []byte, int, error) {
	var in string
	if stdin != nil {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, 0, err
		}
		in = string(b)
	}
	f.calls = append(f.calls, runnerCall{exe: exe, args: args, env: env, stdin: in})

	if f.err != nil {
		return nil, nil, 0, f.err
	}
	var out []byte
	if len(f.stdouts) > 0 {
		i := len(f.calls) - 1
		if i >= len(f.stdouts) {
			i = len(f.stdouts) - 1
		}
		out = f.stdouts[i]
	}
	return out, f.stderr, f.exitCode, nil
}

// stubPandocPath makes executable resolution succeed without a pandoc
// install.
func stubPandocPath(t *testing.T) {
	t.Helper()
	orig := lookPandoc
	lookPandoc = func(pathList, file string) (string, error) {
		return filepath.Join("/opt/pandoc/bin", file), nil
	}
	t.Cleanup(func() { lookPandoc = orig })
}

// ---------------------------------------------------------------------------
// TestExecute_MissingConfiguration
// ---------------------------------------------------------------------------

func TestExecute_MissingConfiguration(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*Pandoc)
		wantErr   error
	}{
		{
			name:      "no output",
			configure: func(p *Pandoc) { p.AddInput("doc.md") },
			wantErr:   ErrNoOutput,
		},
		{
			name:      "no input",
			configure: func(p *Pandoc) { p.SetOutput("out.html") },
			wantErr:   ErrNoInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			p := New()
			p.runner = runner
			tt.configure(p)

			if _, err := p.Execute(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if len(runner.calls) != 0 {
				t.Errorf("no process must be spawned, got %d calls", len(runner.calls))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExecute_NotFound
// ---------------------------------------------------------------------------

func TestExecute_NotFound(t *testing.T) {
	orig := lookPandoc
	lookPandoc = func(pathList, file string) (string, error) {
		return "", fmt.Errorf("searchpath: %q not found: %w", file, fs.ErrNotExist)
	}
	t.Cleanup(func() { lookPandoc = orig })

	p := New()
	p.runner = &fakeRunner{}
	p.AddInput("doc.md").SetOutput("out.html")

	if _, err := p.Execute(); !errors.Is(err, ErrPandocNotFound) {
		t.Errorf("Execute() error = %v, want ErrPandocNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestExecute_Outcomes - sink and format classification
// ---------------------------------------------------------------------------

func TestExecute_FileOutput(t *testing.T) {
	stubPandocPath(t)
	runner := &fakeRunner{}
	p := New()
	p.runner = runner
	p.AddInput("doc.md").SetOutput("out.html")

	out, err := p.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, ok := out.(FileOutput); !ok || string(got) != "out.html" {
		t.Errorf("Execute() = %#v, want FileOutput(out.html)", out)
	}
}

func TestExecute_TextOutput(t *testing.T) {
	stubPandocPath(t)
	runner := &fakeRunner{stdouts: [][]byte{[]byte("<p>hi</p>\n")}}
	p := New()
	p.runner = runner
	p.AddInput("doc.md").SetOutputPipe().SetOutputFormat(OutputHTML)

	out, err := p.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, ok := out.(TextOutput); !ok || string(got) != "<p>hi</p>\n" {
		t.Errorf("Execute() = %#v, want TextOutput", out)
	}
}

func TestExecute_BinaryOutput(t *testing.T) {
	stubPandocPath(t)
	raw := []byte{0x50, 0x4b, 0x03, 0x04, 0xff} // zip magic plus junk
	runner := &fakeRunner{stdouts: [][]byte{raw}}
	p := New()
	p.runner = runner
	p.AddInput("doc.md").SetOutputPipe().SetOutputFormat(OutputDocx)

	out, err := p.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, ok := out.(BytesOutput); !ok || !reflect.DeepEqual([]byte(got), raw) {
		t.Errorf("Execute() = %#v, want raw BytesOutput", out)
	}
}

func TestExecute_InvalidUTF8(t *testing.T) {
	stubPandocPath(t)
	runner := &fakeRunner{stdouts: [][]byte{{'h', 'i', 0xff, 0xfe}}}
	p := New()
	p.runner = runner
	p.AddInput("doc.md").SetOutputPipe().SetOutputFormat(OutputHTML)

	_, err := p.Execute()
	var utf8Err *InvalidUTF8Error
	if !errors.As(err, &utf8Err) {
		t.Fatalf("Execute() error = %v, want *InvalidUTF8Error", err)
	}
	if utf8Err.ValidBytes != 2 {
		t.Errorf("ValidBytes = %d, want 2", utf8Err.ValidBytes)
	}
}

// ---------------------------------------------------------------------------
// TestExecute_ExitError
// ---------------------------------------------------------------------------

func TestExecute_ExitError(t *testing.T) {
	stubPandocPath(t)
	runner := &fakeRunner{
		exitCode: 21,
		stdouts:  [][]byte{[]byte("partial")},
		stderr:   []byte("pandoc: unknown reader: klingon"),
	}
	p := New()
	p.runner = runner
	p.AddInput("doc.md").SetOutput("out.html")

	_, err := p.Execute()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Execute() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 21 {
		t.Errorf("Code = %d, want 21", exitErr.Code)
	}
	if !strings.Contains(err.Error(), "pandoc: unknown reader: klingon") {
		t.Errorf("Error() must contain captured stderr, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "partial") {
		t.Errorf("Error() must contain captured stdout, got %q", err.Error())
	}
}

// ---------------------------------------------------------------------------
// TestExecute_PipedInput
// ---------------------------------------------------------------------------

func TestExecute_PipedInput(t *testing.T) {
	stubPandocPath(t)
	runner := &fakeRunner{}
	p := New()
	p.runner = runner
	p.SetInputPipe("# title\n\nbody\n").SetOutput("out.html")

	if _, err := p.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(runner.calls))
	}
	if runner.calls[0].stdin != "# title\n\nbody\n" {
		t.Errorf("stdin = %q, want full piped payload", runner.calls[0].stdin)
	}
}

// ---------------------------------------------------------------------------
// TestExecute_FilterPipeline - two-phase conversion
// ---------------------------------------------------------------------------

func TestExecute_FilterPipeline(t *testing.T) {
	stubPandocPath(t)
	astDoc := `{"meta":{},"blocks":[]}`
	runner := &fakeRunner{stdouts: [][]byte{[]byte(astDoc), nil}}

	p := New()
	p.runner = runner
	p.AddInput("doc.md")
	p.SetInputFormat(InputMarkdown, ExtSmart)
	p.SetOutput("out.html")
	p.SetOutputFormat(OutputHTML)
	p.AddFilter(func(doc string) string { return doc + "+one" })
	p.AddFilter(func(doc string) string { return doc + "+two" })

	out, err := p.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, ok := out.(FileOutput); !ok || string(got) != "out.html" {
		t.Errorf("Execute() = %#v, want FileOutput(out.html)", out)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("got %d calls, want 2 (pre-pass + main)", len(runner.calls))
	}

	pre := runner.calls[0]
	wantPre := []string{"-f", "markdown+smart", "-t", "json", "doc.md"}
	if !reflect.DeepEqual(pre.args, wantPre) {
		t.Errorf("pre-pass args = %v, want %v", pre.args, wantPre)
	}

	main := runner.calls[1]
	wantMain := []string{"-f", "json+smart", "-o", "out.html", "-t", "html"}
	if !reflect.DeepEqual(main.args, wantMain) {
		t.Errorf("main args = %v, want %v", main.args, wantMain)
	}
	if main.stdin != astDoc+"+one+two" {
		t.Errorf("main stdin = %q, want filtered document in order", main.stdin)
	}
}

func TestExecute_IdentityFiltersRoundTrip(t *testing.T) {
	stubPandocPath(t)
	astDoc := `{"meta":{},"blocks":[{"t":"Para","c":[]}]}`
	runner := &fakeRunner{stdouts: [][]byte{[]byte(astDoc), []byte("rendered")}}

	p := New()
	p.runner = runner
	p.SetInputPipe("body").SetOutputPipe().SetOutputFormat(OutputHTML)
	for range 3 {
		p.AddFilter(Identity)
	}

	out, err := p.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if runner.calls[1].stdin != astDoc {
		t.Errorf("identity filters must not change the document, got %q", runner.calls[1].stdin)
	}
	if got := out.(TextOutput); string(got) != "rendered" {
		t.Errorf("Execute() = %q, want rendered output", got)
	}
}

// ---------------------------------------------------------------------------
// TestChildSearchPath - hint ordering and PATH override
// ---------------------------------------------------------------------------

func TestChildSearchPath(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")

	p := New()
	p.AddLatexPathHint("/opt/texlive/bin")
	p.AddPandocPathHint("/opt/pandoc/bin")

	sep := string(os.PathListSeparator)
	var want []string
	want = append(want, "/opt/texlive/bin", "/opt/pandoc/bin")
	want = append(want, defaultPandocPaths()...)
	want = append(want, defaultLatexPaths()...)
	want = append(want, "/usr/bin")

	if got := p.childSearchPath(); got != strings.Join(want, sep) {
		t.Errorf("childSearchPath() = %q, want %q", got, strings.Join(want, sep))
	}
}

func TestChildEnv_ReplacesPath(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")

	env := childEnv("/hints" + string(os.PathListSeparator) + "/usr/bin")
	var pathEntries []string
	for _, kv := range env {
		if strings.EqualFold(kv[:min(5, len(kv))], "PATH=") {
			pathEntries = append(pathEntries, kv)
		}
	}
	if len(pathEntries) != 1 {
		t.Fatalf("got %d PATH entries, want exactly 1: %v", len(pathEntries), pathEntries)
	}
	if !strings.HasPrefix(pathEntries[0], "PATH=/hints") {
		t.Errorf("child PATH = %q, want hint-augmented value", pathEntries[0])
	}
}

// ---------------------------------------------------------------------------
// TestWriteDefaultTemplate
// ---------------------------------------------------------------------------

func TestWriteDefaultTemplate(t *testing.T) {
	stubPandocPath(t)
	runner := &fakeRunner{stdouts: [][]byte{[]byte("\\documentclass{article}\n")}}
	p := New()
	p.runner = runner

	dest := filepath.Join(t.TempDir(), "default.latex")
	if err := p.WriteDefaultTemplate(OutputLatex, dest); err != nil {
		t.Fatalf("WriteDefaultTemplate() error = %v", err)
	}

	wantArgs := []string{"-D", "latex"}
	if !reflect.DeepEqual(runner.calls[0].args, wantArgs) {
		t.Errorf("args = %v, want %v", runner.calls[0].args, wantArgs)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading dumped template: %v", err)
	}
	if string(data) != "\\documentclass{article}\n" {
		t.Errorf("template content = %q", data)
	}
}

// ---------------------------------------------------------------------------
// TestDecodeUTF8
// ---------------------------------------------------------------------------

func TestDecodeUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     []byte
		wantText  string
		wantValid int // valid prefix length for the error case, -1 for success
	}{
		{name: "empty", input: nil, wantText: "", wantValid: -1},
		{name: "ascii", input: []byte("plain"), wantText: "plain", wantValid: -1},
		{name: "multibyte", input: []byte("héllo"), wantText: "héllo", wantValid: -1},
		{name: "invalid at start", input: []byte{0xff, 'a'}, wantValid: 0},
		{name: "invalid after prefix", input: []byte{'o', 'k', 0xc3}, wantValid: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			text, err := decodeUTF8(tt.input)
			if tt.wantValid < 0 {
				if err != nil {
					t.Fatalf("decodeUTF8() error = %v", err)
				}
				if text != tt.wantText {
					t.Errorf("decodeUTF8() = %q, want %q", text, tt.wantText)
				}
				return
			}
			var utf8Err *InvalidUTF8Error
			if !errors.As(err, &utf8Err) {
				t.Fatalf("decodeUTF8() error = %v, want *InvalidUTF8Error", err)
			}
			if utf8Err.ValidBytes != tt.wantValid {
				t.Errorf("ValidBytes = %d, want %d", utf8Err.ValidBytes, tt.wantValid)
			}
		})
	}
}
