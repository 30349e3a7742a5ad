// Package pandoc builds and runs invocations of the pandoc command-line
// document converter.
//
// # Quick Start
//
// Create a builder, chain configuration calls, and execute:
//
//	p := pandoc.New()
//	p.AddInput("notes.md").
//		SetOutput("notes.pdf").
//		SetOutputFormat(pandoc.OutputLatex).
//		AddOptions(pandoc.Standalone(), pandoc.TableOfContents())
//	out, err := p.Execute()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Execute consumes the builder: configure a fresh one for every conversion.
// The result is a FileOutput, TextOutput or BytesOutput depending on the
// configured sink and output format. A failed conversion surfaces as an
// *ExitError carrying the exit code and both captured output streams.
//
// # Input and Output
//
// Input comes either from files added with AddInput (order preserved) or
// from a single text payload piped to pandoc's stdin with SetInputPipe; the
// two are mutually exclusive. Output goes to a file named with SetOutput or
// into memory with SetOutputPipe. Captured output is decoded as UTF-8
// except for binary formats (docx, odt, epub, epub3, pdf), which come back
// as raw bytes.
//
// # Options
//
// Every pandoc flag has a typed constructor in the option catalog
// (Standalone, Template, SlideLevel, WebTex, ...). Options render to
// command-line tokens deterministically and keep their insertion order,
// which matters because pandoc lets later flags override earlier ones.
//
// # Filters
//
// Filters are in-process transformations of pandoc's JSON document
// representation. Registering at least one filter switches Execute to a
// two-phase pipeline: the input is first converted to JSON, piped through
// the filters in order, and the filtered document is fed to the real
// invocation. Pandoc does all parsing; this package never interprets
// document content itself.
//
//	p.AddFilter(pandoc.SetMeta("lang", "en"))
//
// # Executable Discovery
//
// The pandoc executable is resolved against a search path assembled from
// the builder's path hints, a few hard-coded platform install directories,
// and the inherited PATH; the assembled value also replaces PATH in the
// child's environment so helper programs such as the LaTeX engine are found
// the same way.
//
// Every invocation is synchronous and blocking with no timeout: a hung
// pandoc hangs the caller. Wrap Execute in your own cancellation layer if
// you need one.
package pandoc
