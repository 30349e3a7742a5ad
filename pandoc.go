package pandoc

// Pandoc accumulates the configuration for one conversion: inputs, output
// sink, formats, catalog options, filters and search-path hints. Create one
// with New, chain mutators, then call Execute exactly once; the builder is
// consumed by Execute and must not be reused.
//
// A Pandoc value is not safe for concurrent use. Callers wanting parallel
// conversions run independent builders.
type Pandoc struct {
	inputFiles  []string
	pipedInput  string
	pipedSet    bool
	outputFile  string
	outputPipe  bool
	outputSet   bool
	inputFmt    *formatSpec
	outputFmt   *formatSpec
	rawArgs     []rawArg
	options     []Option
	filters     []Filter
	latexHints  []string
	pandocHints []string
	showCmdline bool
	runner      commandRunner
	err         error // first configuration error, surfaced by Execute
}

// rawArg is a passthrough flag added with AddArg, rendered as "--key=value".
type rawArg struct {
	key   string
	value string
}

// DocumentClass is the LaTeX document class set by SetDocClass.
type DocumentClass string

// LaTeX document classes.
const (
	Article DocumentClass = "article" // compact form of report
	Report  DocumentClass = "report"  // abstract, chapters, separate title page
	Book    DocumentClass = "book"    // report without an abstract
)

// New returns an empty builder.
func New() *Pandoc {
	return &Pandoc{runner: execRunner{}}
}

// AddInput appends an input file. Files are processed in the order they
// were added. Calling AddInput after SetInputPipe records
// ErrConflictingInput, which Execute returns before doing anything else.
func (p *Pandoc) AddInput(filename string) *Pandoc {
	if p.pipedSet {
		return p.fail(ErrConflictingInput)
	}
	p.inputFiles = append(p.inputFiles, filename)
	return p
}

// SetInputPipe uses content as the sole input, written to pandoc's standard
// input. Mutually exclusive with AddInput; calling both records
// ErrConflictingInput.
func (p *Pandoc) SetInputPipe(content string) *Pandoc {
	if len(p.inputFiles) > 0 {
		return p.fail(ErrConflictingInput)
	}
	p.pipedInput = content
	p.pipedSet = true
	return p
}

// SetOutput sets or overwrites the output filename.
func (p *Pandoc) SetOutput(filename string) *Pandoc {
	p.outputFile = filename
	p.outputPipe = false
	p.outputSet = true
	return p
}

// SetOutputPipe captures pandoc's standard output instead of writing a
// file. Execute then returns the captured text, or raw bytes for binary
// output formats.
func (p *Pandoc) SetOutputPipe() *Pandoc {
	p.outputFile = ""
	p.outputPipe = true
	p.outputSet = true
	return p
}

// SetInputFormat sets or overwrites the input format and its extensions.
func (p *Pandoc) SetInputFormat(format InputFormat, extensions ...Extension) *Pandoc {
	p.inputFmt = &formatSpec{name: string(format), extensions: extensions}
	return p
}

// SetOutputFormat sets or overwrites the output format and its extensions.
func (p *Pandoc) SetOutputFormat(format OutputFormat, extensions ...Extension) *Pandoc {
	p.outputFmt = &formatSpec{name: string(format), extensions: extensions}
	return p
}

// AddOption appends one catalog option. Order is preserved into the
// rendered argument vector.
func (p *Pandoc) AddOption(option Option) *Pandoc {
	p.options = append(p.options, option)
	return p
}

// AddOptions appends several catalog options in the given order.
func (p *Pandoc) AddOptions(options ...Option) *Pandoc {
	p.options = append(p.options, options...)
	return p
}

// AddArg appends a raw passthrough flag rendered as "--key=value", or
// "--key" when value is empty. Raw args precede the output designation and
// all catalog options.
func (p *Pandoc) AddArg(key, value string) *Pandoc {
	p.rawArgs = append(p.rawArgs, rawArg{key, value})
	return p
}

// AddFilter registers an in-process filter applied to the JSON document
// representation between the two conversion passes, in registration order.
func (p *Pandoc) AddFilter(filter Filter) *Pandoc {
	p.filters = append(p.filters, filter)
	return p
}

// AddLatexPathHint adds a directory searched for the LaTeX engine before
// PATH and the hard-coded defaults.
func (p *Pandoc) AddLatexPathHint(dir string) *Pandoc {
	p.latexHints = append(p.latexHints, dir)
	return p
}

// AddPandocPathHint adds a directory searched for the pandoc executable
// before PATH and the hard-coded defaults.
func (p *Pandoc) AddPandocPathHint(dir string) *Pandoc {
	p.pandocHints = append(p.pandocHints, dir)
	return p
}

// SetShowCmdline echoes the assembled command line before execution.
// Diagnostic only; the invocation itself is unchanged.
func (p *Pandoc) SetShowCmdline(show bool) *Pandoc {
	p.showCmdline = show
	return p
}

// Convenience setters mirroring the most common options.

// SetDocClass sets the LaTeX document class template variable.
func (p *Pandoc) SetDocClass(class DocumentClass) *Pandoc {
	return p.AddOption(Variable("documentclass", string(class)))
}

// SetChapters treats top-level headings as chapters.
func (p *Pandoc) SetChapters() *Pandoc {
	return p.AddOption(TopLevelDivision(DivisionChapter))
}

// SetNumberSections numbers section headings.
func (p *Pandoc) SetNumberSections() *Pandoc {
	return p.AddOption(NumberSections())
}

// SetLatexTemplate sets a custom template file.
func (p *Pandoc) SetLatexTemplate(filename string) *Pandoc {
	return p.AddOption(Template(filename))
}

// SetSlideLevel sets the heading level that defines individual slides.
func (p *Pandoc) SetSlideLevel(level uint) *Pandoc {
	return p.AddOption(SlideLevel(level))
}

// SetTOC includes an automatically generated table of contents.
func (p *Pandoc) SetTOC() *Pandoc {
	return p.AddOption(TableOfContents())
}

// SetBibliography sets the bibliography database file.
func (p *Pandoc) SetBibliography(filename string) *Pandoc {
	return p.AddOption(Bibliography(filename))
}

// SetCSL sets the citation style file.
func (p *Pandoc) SetCSL(filename string) *Pandoc {
	return p.AddOption(CSL(filename))
}

// SetVariable sets a template variable. Prefer the typed option
// constructors where one exists.
func (p *Pandoc) SetVariable(key, value string) *Pandoc {
	return p.AddOption(Variable(key, value))
}

// fail records the first configuration error; later errors are dropped so
// Execute reports the original misuse.
func (p *Pandoc) fail(err error) *Pandoc {
	if p.err == nil {
		p.err = err
	}
	return p
}

// Output is the terminal result of Execute: a FileOutput naming the written
// destination, a TextOutput holding captured stdout decoded as UTF-8, or a
// BytesOutput holding raw captured stdout for binary formats.
type Output interface {
	isOutput()
}

// FileOutput is the path of the output file pandoc wrote.
type FileOutput string

// TextOutput is captured standard output decoded as UTF-8 text.
type TextOutput string

// BytesOutput is raw captured standard output for binary output formats.
type BytesOutput []byte

func (FileOutput) isOutput()  {}
func (TextOutput) isOutput()  {}
func (BytesOutput) isOutput() {}
