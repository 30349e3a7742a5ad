package pandoc

import (
	"os"
	"strconv"
	"strings"
)

// Option is one typed pandoc flag. Every option renders to one or more
// command-line tokens; rendering is pure and never fails, so whatever
// validation a constructor needs happens at construction time. Options are
// appended to the argument vector in the order they were added, which
// matters because pandoc lets later flags override earlier ones.
type Option interface {
	args() []string
}

// flagOpt renders to a single fixed token, e.g. "--standalone".
type flagOpt string

func (o flagOpt) args() []string { return []string{string(o)} }

// valueOpt renders to a single "--name=value" token.
type valueOpt struct {
	flag  string
	value string
}

func (o valueOpt) args() []string { return []string{o.flag + "=" + o.value} }

// pairOpt renders to two tokens, e.g. "-M" "author:me".
type pairOpt struct {
	flag  string
	value string
}

func (o pairOpt) args() []string { return []string{o.flag, o.value} }

// urlOpt renders to the flag alone when no URL was supplied, otherwise
// "--name=url".
type urlOpt struct {
	flag string
	url  string
}

func (o urlOpt) args() []string {
	if o.url == "" {
		return []string{o.flag}
	}
	return []string{o.flag + "=" + o.url}
}

// rtsOpt brackets resource limits between the GHC runtime sentinels.
type rtsOpt []ResourceLimit

func (o rtsOpt) args() []string {
	tokens := make([]string, 0, len(o)+2)
	tokens = append(tokens, "+RTS")
	for _, limit := range o {
		tokens = append(tokens, limit.token)
	}
	return append(tokens, "-RTS")
}

func uintValue(flag string, n uint) Option {
	return valueOpt{flag, strconv.FormatUint(uint64(n), 10)}
}

// keyValue joins key and value as "key:value", or passes the key through
// alone when the value is empty.
func keyValue(key, value string) string {
	if value == "" {
		return key
	}
	return key + ":" + value
}

// ChangeTracking selects how --track-changes treats Word revisions.
type ChangeTracking string

// Track-changes modes.
const (
	AcceptChanges ChangeTracking = "accept"
	RejectChanges ChangeTracking = "reject"
	AllChanges    ChangeTracking = "all"
)

// ObfuscationMode selects how mailto links are obfuscated in HTML output.
type ObfuscationMode string

// Email obfuscation modes.
const (
	ObfuscationNone       ObfuscationMode = "none"
	ObfuscationJavascript ObfuscationMode = "javascript"
	ObfuscationReferences ObfuscationMode = "references"
)

// Division is the top-level structural unit of a document.
type Division string

// Top-level divisions.
const (
	DivisionSection Division = "section"
	DivisionChapter Division = "chapter"
	DivisionPart    Division = "part"
)

// ResourceLimit is one GHC runtime-system resource bound, passed between the
// +RTS/-RTS sentinels by RuntimeSystem.
type ResourceLimit struct {
	token string
}

// StackSize limits the runtime stack, e.g. StackSize("512m").
func StackSize(size string) ResourceLimit { return ResourceLimit{"-K" + size} }

// HeapSize limits the runtime heap, e.g. HeapSize("1g").
func HeapSize(size string) ResourceLimit { return ResourceLimit{"-M" + size} }

// Reader options.

// DataDir sets the pandoc user data directory.
func DataDir(dir string) Option { return valueOpt{"--data-dir", dir} }

// Strict uses strict markdown syntax with no pandoc extensions.
func Strict() Option { return flagOpt("--strict") }

// ParseRaw passes raw HTML or TeX through instead of skipping it.
func ParseRaw() Option { return flagOpt("--parse-raw") }

// Smart produces typographically correct output (curly quotes, dashes,
// ellipses).
func Smart() Option { return flagOpt("--smart") }

// OldDashes uses the pre-1.8.2 emdash/endash rules.
func OldDashes() Option { return flagOpt("--old-dashes") }

// BaseHeaderLevel sets the level of the topmost heading.
func BaseHeaderLevel(level uint) Option { return uintValue("--base-header-level", level) }

// ShiftHeadingLevelBy shifts every heading level by the given amount, which
// may be negative.
func ShiftHeadingLevelBy(amount int) Option {
	return valueOpt{"--shift-heading-level-by", strconv.Itoa(amount)}
}

// IndentedCodeClasses sets the classes for indented code blocks.
func IndentedCodeClasses(classes string) Option {
	return valueOpt{"--indented-code-classes", classes}
}

// ExternalFilter runs an external JSON filter executable between the reader
// and the writer. For in-process transformations use AddFilter instead.
func ExternalFilter(program string) Option { return valueOpt{"--filter", program} }

// LuaFilter runs a Lua filter between the reader and the writer.
func LuaFilter(script string) Option { return valueOpt{"--lua-filter", script} }

// FileScope parses each input file individually before combining.
func FileScope() Option { return flagOpt("--file-scope") }

// Normalize normalizes the document after reading.
func Normalize() Option { return flagOpt("--normalize") }

// PreserveTabs keeps tabs instead of converting them to spaces.
func PreserveTabs() Option { return flagOpt("--preserve-tabs") }

// TabStop sets the tab stop width.
func TabStop(width uint) Option { return uintValue("--tab-stop", width) }

// TrackChanges specifies how to treat insertions and deletions in docx
// input.
func TrackChanges(mode ChangeTracking) Option {
	return valueOpt{"--track-changes", string(mode)}
}

// ExtractMedia extracts embedded media to the given directory.
func ExtractMedia(dir string) Option { return valueOpt{"--extract-media", dir} }

// General writer options.

// Standalone produces a complete document with header and footer instead of
// a fragment.
func Standalone() Option { return flagOpt("--standalone") }

// Template uses the given file as a custom template for the document.
func Template(filename string) Option { return valueOpt{"--template", filename} }

// Meta sets a metadata field. An empty value sets the field to true.
func Meta(key, value string) Option { return pairOpt{"-M", keyValue(key, value)} }

// Variable sets a template variable. An empty value sets the variable to
// true.
func Variable(key, value string) Option { return pairOpt{"-V", keyValue(key, value)} }

// PrintDefaultTemplate prints the default template for the format to
// stdout. See also Pandoc.WriteDefaultTemplate.
func PrintDefaultTemplate(format OutputFormat) Option {
	return valueOpt{"--print-default-template", string(format)}
}

// PrintDefaultDataFile prints a default data file to stdout.
func PrintDefaultDataFile(file string) Option {
	return valueOpt{"--print-default-data-file", file}
}

// NoWrap disables line wrapping in the output.
func NoWrap() Option { return flagOpt("--no-wrap") }

// Columns sets the line length for wrapping.
func Columns(n uint) Option { return uintValue("--columns", n) }

// TableOfContents includes an automatically generated table of contents.
func TableOfContents() Option { return flagOpt("--table-of-contents") }

// TableOfContentsDepth sets the number of section levels in the table of
// contents.
func TableOfContentsDepth(depth uint) Option { return uintValue("--toc-depth", depth) }

// NoHighlight disables syntax highlighting of code blocks.
func NoHighlight() Option { return flagOpt("--no-highlight") }

// HighlightStyle sets the highlighting style, e.g. "pygments".
func HighlightStyle(style string) Option { return valueOpt{"--highlight-style", style} }

// IncludeInHeader includes the file verbatim in the document header.
func IncludeInHeader(filename string) Option {
	return valueOpt{"--include-in-header", filename}
}

// IncludeBeforeBody includes the file verbatim before the document body.
func IncludeBeforeBody(filename string) Option {
	return valueOpt{"--include-before-body", filename}
}

// IncludeAfterBody includes the file verbatim after the document body.
func IncludeAfterBody(filename string) Option {
	return valueOpt{"--include-after-body", filename}
}

// Options affecting specific writers.

// SelfContained produces HTML with no external dependencies.
func SelfContained() Option { return flagOpt("--self-contained") }

// Offline is a synonym for SelfContained kept for older pandoc versions.
func Offline() Option { return flagOpt("--offline") }

// HTML5 produces HTML5 output from the html writer.
func HTML5() Option { return flagOpt("--html5") }

// HTMLQTags uses <q> tags for quotes in HTML.
func HTMLQTags() Option { return flagOpt("--html-q-tags") }

// ASCII uses only ASCII characters in HTML output.
func ASCII() Option { return flagOpt("--ascii") }

// ReferenceLinks uses reference-style links instead of inline links in
// markdown output.
func ReferenceLinks() Option { return flagOpt("--reference-links") }

// AtxHeaders uses ATX-style headers in markdown output.
func AtxHeaders() Option { return flagOpt("--atx-headers") }

// TopLevelDivision treats top-level headings as the given division in
// LaTeX, ConTeXt, DocBook and TEI output.
func TopLevelDivision(division Division) Option {
	return valueOpt{"--top-level-division", string(division)}
}

// Chapters treats top-level headings as chapters.
//
// Deprecated: pandoc renamed the flag; use
// TopLevelDivision(DivisionChapter). This constructor renders the current
// spelling and exists only so existing callers keep working.
func Chapters() Option { return TopLevelDivision(DivisionChapter) }

// NumberSections numbers section headings.
func NumberSections() Option { return flagOpt("--number-sections") }

// NumberOffset offsets section numbering, one entry per heading level.
func NumberOffset(offsets ...uint) Option {
	parts := make([]string, len(offsets))
	for i, n := range offsets {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return valueOpt{"--number-offset", strings.Join(parts, ", ")}
}

// NoTexLigatures disables ligatures in LaTeX output.
func NoTexLigatures() Option { return flagOpt("--no-tex-ligatures") }

// Listings uses the listings package for LaTeX code blocks.
func Listings() Option { return flagOpt("--listings") }

// Incremental makes slide-show list items display incrementally.
func Incremental() Option { return flagOpt("--incremental") }

// SlideLevel sets the heading level that defines individual slides.
func SlideLevel(level uint) Option { return uintValue("--slide-level", level) }

// SectionDivs wraps sections in <div> (or <section>) tags.
func SectionDivs() Option { return flagOpt("--section-divs") }

// DefaultImageExtension sets the extension used for images without one.
func DefaultImageExtension(ext string) Option {
	return valueOpt{"--default-image-extension", ext}
}

// EmailObfuscation sets the method for obfuscating mailto links.
func EmailObfuscation(mode ObfuscationMode) Option {
	return valueOpt{"--email-obfuscation", string(mode)}
}

// IDPrefix prefixes all HTML identifiers to avoid clashes when embedding.
func IDPrefix(prefix string) Option { return valueOpt{"--id-prefix", prefix} }

// TitlePrefix prefixes the HTML title with the given string.
func TitlePrefix(prefix string) Option { return valueOpt{"--title-prefix", prefix} }

// CSS links the given stylesheet in HTML output.
func CSS(url string) Option { return valueOpt{"--css", url} }

// ReferenceDoc uses the given file as a style reference for docx and odt
// output.
func ReferenceDoc(filename string) Option { return valueOpt{"--reference-doc", filename} }

// ReferenceDocx uses the given docx file as a style reference.
//
// Deprecated: pandoc merged the flag into --reference-doc; use
// ReferenceDoc. This constructor renders the current spelling and exists
// only so existing callers keep working.
func ReferenceDocx(filename string) Option { return ReferenceDoc(filename) }

// EpubStylesheet uses the given CSS file in EPUB output.
func EpubStylesheet(filename string) Option { return valueOpt{"--epub-stylesheet", filename} }

// EpubCoverImage uses the given image as the EPUB cover.
func EpubCoverImage(filename string) Option { return valueOpt{"--epub-cover-image", filename} }

// EpubMetadata takes EPUB metadata from the given Dublin Core XML file.
func EpubMetadata(filename string) Option { return valueOpt{"--epub-metadata", filename} }

// EpubEmbedFont embeds the given font in the EPUB.
func EpubEmbedFont(filename string) Option { return valueOpt{"--epub-embed-font", filename} }

// EpubChapterLevel sets the heading level that splits EPUB chapters.
func EpubChapterLevel(level uint) Option { return uintValue("--epub-chapter-level", level) }

// PDFEngine selects the program used to produce PDF output.
func PDFEngine(program string) Option { return valueOpt{"--pdf-engine", program} }

// LatexEngine selects the LaTeX program used to produce PDF output.
//
// Deprecated: pandoc renamed the flag; use PDFEngine. This constructor
// renders the current spelling and exists only so existing callers keep
// working.
func LatexEngine(program string) Option { return PDFEngine(program) }

// PDFEngineOpt passes an extra option to the PDF engine.
func PDFEngineOpt(opt string) Option { return valueOpt{"--pdf-engine-opt", opt} }

// ResourcePath sets the directories searched for resources such as images,
// joined with the platform path-list delimiter.
func ResourcePath(dirs ...string) Option {
	return valueOpt{"--resource-path", strings.Join(dirs, string(os.PathListSeparator))}
}

// Citation rendering.

// Bibliography sets the bibliography database file.
func Bibliography(filename string) Option { return valueOpt{"--bibliography", filename} }

// CSL sets the citation style file.
func CSL(filename string) Option { return valueOpt{"--csl", filename} }

// CitationAbbreviations sets the citation abbreviations file.
func CitationAbbreviations(filename string) Option {
	return valueOpt{"--citation-abbreviations", filename}
}

// Natbib uses natbib for LaTeX citations.
func Natbib() Option { return flagOpt("--natbib") }

// Biblatex uses biblatex for LaTeX citations.
func Biblatex() Option { return flagOpt("--biblatex") }

// Math rendering in HTML. Each takes an optional URL; pass "" to use the
// pandoc default.

// LatexMathML renders TeX math with LaTeXMathML.
func LatexMathML(url string) Option { return urlOpt{"--latexmathml", url} }

// AsciiMathML renders TeX math with AsciiMathML.
func AsciiMathML(url string) Option { return urlOpt{"--asciimathml", url} }

// MathML converts TeX math to MathML.
func MathML(url string) Option { return urlOpt{"--mathml", url} }

// MimeTex renders TeX math with a mimetex CGI script.
func MimeTex(url string) Option { return urlOpt{"--mimetex", url} }

// WebTex renders TeX math as images via a web service.
func WebTex(url string) Option { return urlOpt{"--webtex", url} }

// JsMath renders TeX math with jsMath.
func JsMath(url string) Option { return urlOpt{"--jsmath", url} }

// MathJax renders TeX math with MathJax.
func MathJax(url string) Option { return urlOpt{"--mathjax", url} }

// Katex renders TeX math with KaTeX.
func Katex(url string) Option { return urlOpt{"--katex", url} }

// KatexStylesheet links the KaTeX stylesheet from the given URL.
func KatexStylesheet(url string) Option { return valueOpt{"--katex-stylesheet", url} }

// GladTex encloses TeX math in <eq> tags for processing by gladtex.
func GladTex() Option { return flagOpt("--gladtex") }

// Diagnostics.

// Trace enables tracing output from the readers.
func Trace() Option { return flagOpt("--trace") }

// DumpArgs prints the resolved command-line arguments and exits.
func DumpArgs() Option { return flagOpt("--dump-args") }

// IgnoreArgs ignores the remaining command-line arguments.
func IgnoreArgs() Option { return flagOpt("--ignore-args") }

// Verbose enables verbose debugging output.
func Verbose() Option { return flagOpt("--verbose") }

// RuntimeSystem passes resource limits to the Haskell runtime that hosts
// pandoc, bracketed between the +RTS and -RTS sentinels.
func RuntimeSystem(limits ...ResourceLimit) Option { return rtsOpt(limits) }
