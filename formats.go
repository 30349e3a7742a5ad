package pandoc

// Format tags are open enumerations: the constants below cover the formats
// pandoc ships with, but any string converts to InputFormat or OutputFormat,
// so new converter releases need no code change here.

// InputFormat names a format pandoc can read (the -f flag).
type InputFormat string

// Input formats understood by pandoc.
const (
	InputCommonmark     InputFormat = "commonmark"
	InputDocbook        InputFormat = "docbook"
	InputDocx           InputFormat = "docx"
	InputEpub           InputFormat = "epub"
	InputHaddock        InputFormat = "haddock"
	InputHTML           InputFormat = "html"
	InputJSON           InputFormat = "json"
	InputLatex          InputFormat = "latex"
	InputMarkdown       InputFormat = "markdown"
	InputMarkdownGithub InputFormat = "markdown_github"
	InputMarkdownMmd    InputFormat = "markdown_mmd"
	InputMarkdownPhpex  InputFormat = "markdown_phpextra"
	InputMarkdownStrict InputFormat = "markdown_strict"
	InputMediawiki      InputFormat = "mediawiki"
	InputNative         InputFormat = "native"
	InputOPML           InputFormat = "opml"
	InputOrg            InputFormat = "org"
	InputRst            InputFormat = "rst"
	InputT2T            InputFormat = "t2t"
	InputTextile        InputFormat = "textile"
	InputTwiki          InputFormat = "twiki"
)

// OutputFormat names a format pandoc can write (the -t flag).
type OutputFormat string

// Output formats understood by pandoc.
const (
	OutputAsciidoc       OutputFormat = "asciidoc"
	OutputBeamer         OutputFormat = "beamer"
	OutputCommonmark     OutputFormat = "commonmark"
	OutputContext        OutputFormat = "context"
	OutputDocbook        OutputFormat = "docbook"
	OutputDocx           OutputFormat = "docx"
	OutputDzslides       OutputFormat = "dzslides"
	OutputEpub           OutputFormat = "epub"
	OutputEpub3          OutputFormat = "epub3"
	OutputFb2            OutputFormat = "fb2"
	OutputHaddock        OutputFormat = "haddock"
	OutputHTML           OutputFormat = "html"
	OutputHTML5          OutputFormat = "html5"
	OutputIcml           OutputFormat = "icml"
	OutputJSON           OutputFormat = "json"
	OutputLatex          OutputFormat = "latex"
	OutputMan            OutputFormat = "man"
	OutputMarkdown       OutputFormat = "markdown"
	OutputMarkdownGithub OutputFormat = "markdown_github"
	OutputMarkdownMmd    OutputFormat = "markdown_mmd"
	OutputMarkdownPhpex  OutputFormat = "markdown_phpextra"
	OutputMarkdownStrict OutputFormat = "markdown_strict"
	OutputMediawiki      OutputFormat = "mediawiki"
	OutputNative         OutputFormat = "native"
	OutputODT            OutputFormat = "odt"
	OutputOpendocument   OutputFormat = "opendocument"
	OutputOPML           OutputFormat = "opml"
	OutputOrg            OutputFormat = "org"
	OutputPDF            OutputFormat = "pdf"
	OutputPlain          OutputFormat = "plain"
	OutputRevealjs       OutputFormat = "revealjs"
	OutputRst            OutputFormat = "rst"
	OutputRtf            OutputFormat = "rtf"
	OutputS5             OutputFormat = "s5"
	OutputSlideous       OutputFormat = "slideous"
	OutputSlidy          OutputFormat = "slidy"
	OutputTei            OutputFormat = "tei"
	OutputTexinfo        OutputFormat = "texinfo"
	OutputTextile        OutputFormat = "textile"
)

// binary reports whether captured stdout for this format must stay raw
// bytes instead of being decoded as UTF-8 text.
func (f OutputFormat) binary() bool {
	switch f {
	case OutputDocx, OutputODT, OutputEpub, OutputEpub3, OutputPDF:
		return true
	}
	return false
}

// Extension is a pandoc format extension, appended to a format tag as
// "+extension". Like the format tags, the set is open.
type Extension string

// Markdown extensions understood by pandoc.
const (
	ExtAbbreviations                  Extension = "abbreviations"
	ExtASCIIIdentifiers               Extension = "ascii_identifiers"
	ExtAutoIdentifiers                Extension = "auto_identifiers"
	ExtAutolinkBareURIs               Extension = "autolink_bare_uris"
	ExtBlankBeforeBlockquote          Extension = "blank_before_blockquote"
	ExtBlankBeforeHeader              Extension = "blank_before_header"
	ExtBracketedSpans                 Extension = "bracketed_spans"
	ExtCitations                      Extension = "citations"
	ExtDefinitionLists                Extension = "definition_lists"
	ExtEastAsianLineBreaks            Extension = "east_asian_line_breaks"
	ExtEmoji                          Extension = "emoji"
	ExtEscapedLineBreaks              Extension = "escaped_line_breaks"
	ExtExampleLists                   Extension = "example_lists"
	ExtFancyLists                     Extension = "fancy_lists"
	ExtFencedCodeAttributes           Extension = "fenced_code_attributes"
	ExtFencedCodeBlocks               Extension = "fenced_code_blocks"
	ExtFencedDivs                     Extension = "fenced_divs"
	ExtFootnotes                      Extension = "footnotes"
	ExtGridTables                     Extension = "grid_tables"
	ExtHardLineBreaks                 Extension = "hard_line_breaks"
	ExtHeaderAttributes               Extension = "header_attributes"
	ExtImplicitFigures                Extension = "implicit_figures"
	ExtImplicitHeaderReferences       Extension = "implicit_header_references"
	ExtInlineCodeAttributes           Extension = "inline_code_attributes"
	ExtInlineNotes                    Extension = "inline_notes"
	ExtIntrawordUnderscores           Extension = "intraword_underscores"
	ExtLineBlocks                     Extension = "line_blocks"
	ExtListsWithoutPrecedingBlankline Extension = "lists_without_preceding_blankline"
	ExtMarkdownAttribute              Extension = "markdown_attribute"
	ExtMarkdownInHTMLBlocks           Extension = "markdown_in_html_blocks"
	ExtMmdTitleBlock                  Extension = "mmd_title_block"
	ExtMultilineTables                Extension = "multiline_tables"
	ExtNativeDivs                     Extension = "native_divs"
	ExtNativeSpans                    Extension = "native_spans"
	ExtPandocTitleBlock               Extension = "pandoc_title_block"
	ExtPipeTables                     Extension = "pipe_tables"
	ExtRawAttribute                   Extension = "raw_attribute"
	ExtRawHTML                        Extension = "raw_html"
	ExtRawTex                         Extension = "raw_tex"
	ExtShortcutReferenceLinks         Extension = "shortcut_reference_links"
	ExtSimpleTables                   Extension = "simple_tables"
	ExtSmart                          Extension = "smart"
	ExtStartnum                       Extension = "startnum"
	ExtStrikeout                      Extension = "strikeout"
	ExtSubscript                      Extension = "subscript"
	ExtSuperscript                    Extension = "superscript"
	ExtTableCaptions                  Extension = "table_captions"
	ExtTexMathDollars                 Extension = "tex_math_dollars"
	ExtYamlMetadataBlock              Extension = "yaml_metadata_block"
)

// formatSpec pairs a format tag with its extension list for rendering as a
// single -f/-t value, e.g. "markdown+smart+emoji".
type formatSpec struct {
	name       string
	extensions []Extension
}

func (f *formatSpec) render() string {
	s := f.name
	for _, ext := range f.extensions {
		s += "+" + string(ext)
	}
	return s
}
