package commentscan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utakotoba/doto/internal/commentscan"
	"github.com/utakotoba/doto/internal/langsyntax"
)

func collectRanges(line []byte, state *commentscan.BlockState, spec langsyntax.SyntaxSpec) [][2]int {
	var ranges [][2]int
	commentscan.FindCommentRanges(line, state, spec, func(s, e int) {
		ranges = append(ranges, [2]int{s, e})
	})
	return ranges
}

func TestLineCommentIsFound(t *testing.T) {
	state := commentscan.NewBlockState()
	line := []byte(`fmt.Println("x") // TODO: one`)
	ranges := collectRanges(line, &state, langsyntax.CStyleGo)
	assert.Len(t, ranges, 1)
	assert.Equal(t, len(line), ranges[0][1])
}

func TestMarkerInsideStringIsNotAComment(t *testing.T) {
	state := commentscan.NewBlockState()
	line := []byte(`msg := "TODO: not a real marker"`)
	ranges := collectRanges(line, &state, langsyntax.CStyleGo)
	assert.Empty(t, ranges)
}

func TestBlockCommentSpanningLines(t *testing.T) {
	spec := langsyntax.CStyle
	state := commentscan.NewBlockState()

	first := []byte(`/* start of block`)
	ranges := collectRanges(first, &state, spec)
	assert.Len(t, ranges, 1)
	assert.True(t, state.InBlock)

	second := []byte(`still inside TODO: two */ code()`)
	ranges = collectRanges(second, &state, spec)
	assert.False(t, state.InBlock)
	assert.Len(t, ranges, 1)
	assert.Equal(t, 0, ranges[0][0])
}

func TestRustRawStringSkipsInnerQuote(t *testing.T) {
	spec := langsyntax.CStyleRust
	state := commentscan.NewBlockState()
	line := []byte(`let s = r#"contains a " quote"#; // TODO: after`)
	ranges := collectRanges(line, &state, spec)
	assert.Len(t, ranges, 1)
	// the comment should start at the real "//", not at the inner quote
	assert.Equal(t, strings.Index(string(line), "//"), ranges[0][0])
}
