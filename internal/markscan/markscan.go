// Package markscan finds mark tokens at the leading position of a
// comment range: the first non-decoration, non-whitespace run of text
// after the comment opener.
package markscan

import (
	"regexp"

	"github.com/utakotoba/doto/internal/langsyntax"
	"github.com/utakotoba/doto/internal/markkind"
)

// decorationBytes are single bytes commonly used to decorate a comment
// opener (Rust doc comments `///`/`//!`, JSDoc `/**`) that are skipped,
// at most one of them, before looking for the mark.
var decorationBytes = map[byte]bool{
	'/': true,
	'!': true,
	'*': true,
	'#': true,
}

// Find locates the leading-position mark, if any, within line[start:end]
// (a byte range already known to be inside a comment per commentscan),
// and returns its canonical kind and 1-based column. re is the
// configured detection regex (markkind.DefaultRegex if unset by the
// caller).
func Find(line []byte, start, end int, spec langsyntax.SyntaxSpec, re *regexp.Regexp) (kind string, column int, ok bool) {
	pos := skipOpener(line, start, end, spec)
	pos = skipLeading(line, pos, end)

	// The mark must be the leading token: the match has to start exactly
	// at pos, not merely appear somewhere later in the comment.
	region := line[pos:end]
	loc := re.FindIndex(region)
	if loc == nil || loc[0] != 0 {
		return "", 0, false
	}
	raw := string(region[loc[0]:loc[1]])
	name, normalized := markkind.Normalize(raw)
	if !normalized {
		return "", 0, false
	}
	return name, pos + loc[0] + 1, true
}

// skipOpener advances past the literal comment-opener token at the start
// of the range (line comment marker or block comment open), if present.
func skipOpener(line []byte, start, end int, spec langsyntax.SyntaxSpec) int {
	if spec.LineComment != "" && hasPrefixAt(line, start, end, spec.LineComment) {
		return start + len(spec.LineComment)
	}
	if spec.BlockComment != nil && hasPrefixAt(line, start, end, spec.BlockComment.Open) {
		return start + len(spec.BlockComment.Open)
	}
	return start
}

// skipLeading skips at most one decoration byte, then any run of ASCII
// whitespace, matching the "one decoration byte, then whitespace" rule.
func skipLeading(line []byte, pos, end int) int {
	if pos < end && decorationBytes[line[pos]] {
		pos++
	}
	for pos < end && isASCIISpace(line[pos]) {
		pos++
	}
	return pos
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func hasPrefixAt(line []byte, start, end int, token string) bool {
	if start+len(token) > end {
		return false
	}
	for i := 0; i < len(token); i++ {
		if line[start+i] != token[i] {
			return false
		}
	}
	return true
}
