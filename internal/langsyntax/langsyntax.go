// Package langsyntax holds the static per-language comment/string syntax
// tables doto uses to classify bytes inside a source file. Profiles are
// built once at init time and looked up by file extension or basename,
// mirroring a fixed data-driven table rather than a parser.
package langsyntax

import (
	"path/filepath"
	"strings"
)

// StringDelim describes one kind of string literal opener.
type StringDelim struct {
	Token     string // opening (and closing) delimiter, e.g. `"`, `'''`
	Multiline bool   // may span multiple lines
	Escape    bool   // honors a backslash escape before the closing delimiter
}

// SyntaxSpec describes how to recognize comments and strings for one
// language family.
type SyntaxSpec struct {
	LineComment  string        // e.g. "//", "#", "--"; empty if none
	BlockComment *BlockComment // nil if the language has no block comments
	Strings      []StringDelim // tried in order; longer tokens should come first
	RawStrings   bool          // tokeniser also recognizes Rust-style r"…" / r#"…"# raw strings
}

// BlockComment describes a nestable-or-not delimited comment form.
type BlockComment struct {
	Open  string
	Close string
}

var (
	cStyleStrings = []StringDelim{
		{Token: `"`, Multiline: false, Escape: true},
		{Token: `'`, Multiline: false, Escape: true},
	}

	cStyleJSStrings = []StringDelim{
		{Token: "`", Multiline: true, Escape: true},
		{Token: `"`, Multiline: false, Escape: true},
		{Token: `'`, Multiline: false, Escape: true},
	}

	hashStrings = []StringDelim{
		{Token: `"`, Multiline: false, Escape: true},
		{Token: `'`, Multiline: false, Escape: true},
	}

	pyStrings = []StringDelim{
		{Token: `"""`, Multiline: true, Escape: true},
		{Token: `'''`, Multiline: true, Escape: true},
		{Token: `"`, Multiline: false, Escape: true},
		{Token: `'`, Multiline: false, Escape: true},
	}

	tomlStrings = []StringDelim{
		{Token: `"""`, Multiline: true, Escape: true},
		{Token: `'''`, Multiline: true, Escape: false},
		{Token: `"`, Multiline: false, Escape: true},
		{Token: `'`, Multiline: false, Escape: false},
	}

	shellStrings = []StringDelim{
		{Token: `"`, Multiline: false, Escape: true},
		{Token: `'`, Multiline: false, Escape: false},
	}

	// CStyle covers languages with `//` line comments, `/* */` block
	// comments, and double/single quoted strings: C, C++, Java, Kotlin,
	// Swift, C#, Scala, and Dart. Go uses CStyleGo.
	CStyle = SyntaxSpec{
		LineComment:  "//",
		BlockComment: &BlockComment{Open: "/*", Close: "*/"},
		Strings:      cStyleStrings,
	}

	// CStyleGo is CStyle plus Go's backtick raw string literal (a Strings
	// entry), which spans multiple lines and never honors backslash
	// escapes. RawStrings is also set, so r"…" sequences are read as
	// Rust-style raw strings.
	CStyleGo = SyntaxSpec{
		LineComment:  "//",
		BlockComment: &BlockComment{Open: "/*", Close: "*/"},
		Strings: append(append([]StringDelim{}, cStyleStrings...),
			StringDelim{Token: "`", Multiline: true, Escape: false}),
		RawStrings: true,
	}

	// CStyleRust is CStyle plus Rust's r#"..."# raw string form, handled
	// specially by the tokeniser when RawStrings is set (see
	// internal/commentscan); the Strings table still lists the plain
	// quote so non-raw Rust strings tokenise normally.
	CStyleRust = SyntaxSpec{
		LineComment:  "//",
		BlockComment: &BlockComment{Open: "/*", Close: "*/"},
		Strings:      cStyleStrings,
		RawStrings:   true,
	}

	// CStyleJS covers JavaScript/TypeScript: `//`, `/* */`, plus
	// multiline template literals in backticks.
	CStyleJS = SyntaxSpec{
		LineComment:  "//",
		BlockComment: &BlockComment{Open: "/*", Close: "*/"},
		Strings:      cStyleJSStrings,
	}

	// HashSimple covers languages with `#` line comments and no block
	// comments: Ruby, YAML, INI, .env, Makefiles.
	HashSimple = SyntaxSpec{
		LineComment: "#",
		Strings:     hashStrings,
	}

	// HashPy is Python: `#` line comments, triple-quoted multiline strings.
	HashPy = SyntaxSpec{
		LineComment: "#",
		Strings:     pyStrings,
	}

	// HashToml is TOML: `#` line comments, triple-quoted multiline
	// strings with single-quote literal (non-escaping) variants.
	HashToml = SyntaxSpec{
		LineComment: "#",
		Strings:     tomlStrings,
	}

	// HashShell is shell script syntax: `#` line comments, double-quoted
	// (escaping) and single-quoted (literal) strings.
	HashShell = SyntaxSpec{
		LineComment: "#",
		Strings:     shellStrings,
	}

	// Lua covers `--` line comments. The tokeniser tries the `--` line
	// comment before the `--[[` block opener, so a `--[[` comment is
	// reported as a line comment and the following lines of a
	// multi-line block are not treated as comment.
	Lua = SyntaxSpec{
		LineComment:  "--",
		BlockComment: &BlockComment{Open: "--[[", Close: "]]"},
		Strings:      cStyleStrings,
	}
)

// langEntry pairs a syntax profile with the canonical language tag doto
// reports for files matching it, so extensions that share a language
// (.cc/.cpp/.hpp, .yml/.yaml) collapse to one Language grouping/filter
// value instead of fragmenting by spelling.
type langEntry struct {
	Spec SyntaxSpec
	Tag  string
}

var extensionTable map[string]langEntry
var basenameTable map[string]langEntry

func init() {
	extensionTable = map[string]langEntry{
		".rs":    {CStyleRust, "rust"},
		".c":     {CStyle, "c"},
		".h":     {CStyle, "c"},
		".cc":    {CStyle, "cpp"},
		".cpp":   {CStyle, "cpp"},
		".hpp":   {CStyle, "cpp"},
		".java":  {CStyle, "java"},
		".kt":    {CStyle, "kotlin"},
		".kts":   {CStyle, "kotlin"},
		".swift": {CStyle, "swift"},
		".cs":    {CStyle, "csharp"},
		".scala": {CStyle, "scala"},
		".dart":  {CStyle, "dart"},
		".go":    {CStyleGo, "go"},

		".js":  {CStyleJS, "javascript"},
		".jsx": {CStyleJS, "javascript"},
		".ts":  {CStyleJS, "typescript"},
		".tsx": {CStyleJS, "typescript"},
		".mjs": {CStyleJS, "javascript"},
		".cjs": {CStyleJS, "javascript"},

		".py":  {HashPy, "python"},
		".pyw": {HashPy, "python"},

		".sh":   {HashShell, "shell"},
		".bash": {HashShell, "shell"},
		".zsh":  {HashShell, "shell"},

		".toml": {HashToml, "toml"},

		".rb":   {HashSimple, "ruby"},
		".yml":  {HashSimple, "yaml"},
		".yaml": {HashSimple, "yaml"},
		".ini":  {HashSimple, "ini"},
		".cfg":  {HashSimple, "ini"},
		".conf": {HashSimple, "ini"},
		".env":  {HashSimple, "dotenv"},
		".mk":   {HashSimple, "make"},

		".lua": {Lua, "lua"},
	}

	basenameTable = map[string]langEntry{
		"makefile":   {HashSimple, "make"},
		"dockerfile": {HashSimple, "dockerfile"},
	}
}

// ForPath returns the syntax profile for path and reports whether one is
// registered. Lookup tries the lowercased basename first (for
// extension-less files like Makefile/Dockerfile), then the lowercased
// extension.
func ForPath(path string) (SyntaxSpec, bool) {
	base := strings.ToLower(filepath.Base(path))
	if entry, ok := basenameTable[base]; ok {
		return entry.Spec, true
	}
	ext := strings.ToLower(filepath.Ext(path))
	entry, ok := extensionTable[ext]
	return entry.Spec, ok
}

// LanguageTag returns the canonical language identifier doto attaches to
// marks found in path (e.g. "rust", "go", "python"), looked up from the
// same basename/extension tables as ForPath so every extension for one
// language collapses to a single tag. Falls back to the lowercased
// extension (or basename) for paths with no registered syntax profile.
func LanguageTag(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if entry, ok := basenameTable[base]; ok {
		return entry.Tag
	}
	ext := strings.ToLower(filepath.Ext(path))
	if entry, ok := extensionTable[ext]; ok {
		return entry.Tag
	}
	if ext != "" {
		return strings.TrimPrefix(ext, ".")
	}
	return base
}
