// Package commentscan implements the per-line comment/string tokeniser:
// given a line of bytes, a carried-over BlockState, and a language's
// SyntaxSpec, it reports which byte ranges of the line are inside a
// comment, so mark detection only ever looks there.
package commentscan

import (
	"bytes"

	"github.com/utakotoba/doto/internal/langsyntax"
)

// BlockState carries tokeniser state across lines of the same file.
// A fresh state has no in-progress comment or string.
type BlockState struct {
	InBlock   bool // inside a block comment continued from a previous line
	InString  int  // index into SyntaxSpec.Strings of an in-progress multiline string, or -1
	Escape    bool // previous byte inside the in-progress string was an unconsumed backslash
	RawHashes int  // one more than the hash count of an in-progress Rust raw string (r"..." is 1, r#"..."# is 2), 0 if none
}

// NewBlockState returns a state representing "not inside anything".
func NewBlockState() BlockState {
	return BlockState{InString: -1}
}

// Range is a half-open [Start, End) byte range of line that lies inside
// a comment.
type Range struct {
	Start, End int
}

// FindCommentRanges scans line under spec, advancing state, and invokes
// onRange for every byte range that is inside a comment on this line.
// Ranges are reported in order and do not overlap.
func FindCommentRanges(line []byte, state *BlockState, spec langsyntax.SyntaxSpec, onRange func(start, end int)) {
	i := 0
	n := len(line)

	if state.InBlock {
		close := spec.BlockComment.Close
		if idx := bytes.Index(line, []byte(close)); idx >= 0 {
			onRange(0, idx+len(close))
			state.InBlock = false
			i = idx + len(close)
		} else {
			onRange(0, n)
			return
		}
	}

	if state.InString >= 0 {
		delim := spec.Strings[state.InString]
		consumed := resumeString(line[i:], delim, state)
		i += consumed
		if state.InString >= 0 {
			// still inside the string at end of line; nothing here is a comment
			return
		}
	}

	if state.RawHashes > 0 {
		i = skipRawString(line, i, state.RawHashes-1, state)
		if state.RawHashes > 0 {
			// still inside the raw string at end of line
			return
		}
	}

	for i < n {
		// raw string opener: r#"..."# or r"..."
		if spec.RawStrings && startsRawString(line, i) {
			hashes := countHashesAfterR(line, i)
			opener := 2 + hashes // 'r' + hashes + '"'
			i = skipRawString(line, i+opener, hashes, state)
			continue
		}

		if idx, delimIdx := matchStringStart(line, i, spec.Strings); idx == i {
			delim := spec.Strings[delimIdx]
			i += len(delim.Token)
			*state = BlockState{InString: delimIdx}
			consumed := resumeString(line[i:], delim, state)
			i += consumed
			if state.InString >= 0 {
				return
			}
			continue
		}

		if spec.LineComment != "" && hasPrefixAt(line, i, spec.LineComment) {
			onRange(i, n)
			return
		}

		if spec.BlockComment != nil && hasPrefixAt(line, i, spec.BlockComment.Open) {
			open := spec.BlockComment.Open
			close := spec.BlockComment.Close
			rest := line[i+len(open):]
			if idx := bytes.Index(rest, []byte(close)); idx >= 0 {
				end := i + len(open) + idx + len(close)
				onRange(i, end)
				i = end
				continue
			}
			onRange(i, n)
			state.InBlock = true
			return
		}

		i++
	}
}

// resumeString consumes bytes of buf that belong to an in-progress
// string, honoring escape and multiline rules, until the closing
// delimiter is found or buf is exhausted. It returns how many bytes of
// buf were consumed and clears state.InString once the string closes (or
// immediately, if the delimiter does not allow multiline continuation
// and we hit end of line without closing it).
func resumeString(buf []byte, delim langsyntax.StringDelim, state *BlockState) int {
	token := []byte(delim.Token)
	j := 0
	for j < len(buf) {
		if state.Escape {
			state.Escape = false
			j++
			continue
		}
		if delim.Escape && buf[j] == '\\' {
			state.Escape = true
			j++
			continue
		}
		if bytes.HasPrefix(buf[j:], token) {
			state.InString = -1
			state.Escape = false
			return j + len(token)
		}
		j++
	}
	if !delim.Multiline {
		state.InString = -1
		state.Escape = false
	}
	return j
}

func matchStringStart(line []byte, pos int, delims []langsyntax.StringDelim) (int, int) {
	for idx, d := range delims {
		if hasPrefixAt(line, pos, d.Token) {
			return pos, idx
		}
	}
	return -1, -1
}

func hasPrefixAt(line []byte, pos int, token string) bool {
	if pos+len(token) > len(line) {
		return false
	}
	return bytes.Equal(line[pos:pos+len(token)], []byte(token))
}

func startsRawString(line []byte, pos int) bool {
	if pos >= len(line) || line[pos] != 'r' {
		return false
	}
	j := pos + 1
	for j < len(line) && line[j] == '#' {
		j++
	}
	return j < len(line) && line[j] == '"'
}

func countHashesAfterR(line []byte, pos int) int {
	j := pos + 1
	count := 0
	for j < len(line) && line[j] == '#' {
		count++
		j++
	}
	return count
}

// skipRawString scans forward from start (just past the opening quote)
// for the matching `"` followed by `hashes` `#` characters, reporting a
// comment-free region (raw strings are never comments). If the closer is
// not found on this line, it consumes the remainder of the line and
// records hashes+1 in state.RawHashes (raw strings are tracked there,
// not as InString), so FindCommentRanges resumes the same closer search
// at the start of the next line.
func skipRawString(line []byte, start int, hashes int, state *BlockState) int {
	closer := append([]byte{'"'}, bytes.Repeat([]byte{'#'}, hashes)...)
	if idx := bytes.Index(line[start:], closer); idx >= 0 {
		state.RawHashes = 0
		return start + idx + len(closer)
	}
	state.RawHashes = hashes + 1
	return len(line)
}
