package markscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utakotoba/doto/internal/langsyntax"
	"github.com/utakotoba/doto/internal/markkind"
	"github.com/utakotoba/doto/internal/markscan"
)

func TestFindLeadingMark(t *testing.T) {
	line := []byte(`// TODO: fix this`)
	kind, col, ok := markscan.Find(line, 0, len(line), langsyntax.CStyleGo, markkind.DefaultRegex)
	assert.True(t, ok)
	assert.Equal(t, markkind.Todo, kind)
	assert.Equal(t, 4, col)
}

func TestFindSkipsDocCommentDecoration(t *testing.T) {
	line := []byte(`/// TODO: rust doc comment`)
	kind, _, ok := markscan.Find(line, 0, len(line), langsyntax.CStyleRust, markkind.DefaultRegex)
	assert.True(t, ok)
	assert.Equal(t, markkind.Todo, kind)
}

func TestFindRejectsNonLeadingWord(t *testing.T) {
	line := []byte(`// this mentions TODO later, not at the start`)
	_, _, ok := markscan.Find(line, 0, len(line), langsyntax.CStyleGo, markkind.DefaultRegex)
	assert.False(t, ok)
}

func TestFindRejectsUnnormalizedWord(t *testing.T) {
	line := []byte(`// XXX something`)
	_, _, ok := markscan.Find(line, 0, len(line), langsyntax.CStyleGo, markkind.DefaultRegex)
	assert.False(t, ok)
}
