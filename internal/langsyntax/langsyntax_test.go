package langsyntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utakotoba/doto/internal/langsyntax"
)

func TestForPathExtensions(t *testing.T) {
	spec, ok := langsyntax.ForPath("main.go")
	assert.True(t, ok)
	assert.True(t, spec.RawStrings)
	assert.Equal(t, "//", spec.LineComment)

	spec, ok = langsyntax.ForPath("lib.rs")
	assert.True(t, ok)
	assert.True(t, spec.RawStrings)

	spec, ok = langsyntax.ForPath("script.py")
	assert.True(t, ok)
	assert.Equal(t, "#", spec.LineComment)
	assert.Nil(t, spec.BlockComment)

	_, ok = langsyntax.ForPath("image.png")
	assert.False(t, ok)
}

func TestForPathBasenames(t *testing.T) {
	_, ok := langsyntax.ForPath("Makefile")
	assert.True(t, ok)

	_, ok = langsyntax.ForPath("Dockerfile")
	assert.True(t, ok)
}

func TestLanguageTag(t *testing.T) {
	assert.Equal(t, "go", langsyntax.LanguageTag("main.go"))
	assert.Equal(t, "rust", langsyntax.LanguageTag("lib.rs"))
	assert.Equal(t, "make", langsyntax.LanguageTag("Makefile"))
}

func TestLanguageTagCollapsesEquivalentExtensions(t *testing.T) {
	assert.Equal(t, "cpp", langsyntax.LanguageTag("a.cc"))
	assert.Equal(t, "cpp", langsyntax.LanguageTag("a.cpp"))
	assert.Equal(t, "cpp", langsyntax.LanguageTag("a.hpp"))
	assert.Equal(t, "yaml", langsyntax.LanguageTag("a.yml"))
	assert.Equal(t, "yaml", langsyntax.LanguageTag("a.yaml"))
	assert.Equal(t, "ini", langsyntax.LanguageTag("a.cfg"))
	assert.Equal(t, "ini", langsyntax.LanguageTag("a.conf"))
}

func TestLanguageTagFallsBackForUnregisteredExtension(t *testing.T) {
	assert.Equal(t, "png", langsyntax.LanguageTag("image.png"))
}
