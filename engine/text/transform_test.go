package text

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/npillmayer/textarea/engine/content"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello World", Capitalize("hello world"))
	assert.Equal(t, "Hello\nWorld\r\nAgain", Capitalize("hello\nworld\r\nagain"))
	assert.Equal(t, "  Two  Spaces", Capitalize("  two  spaces"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "McDonald", Capitalize("mcDonald"))
	for _, s := range []string{"hello world", "über\tall", "x\n\ny", "ärger  über  öl"} {
		once := Capitalize(s)
		assert.Equal(t, once, Capitalize(once), "capitalize should be idempotent for %q", s)
	}
}

func TestTransform(t *testing.T) {
	assert.Equal(t, "CAFÉ", Transform("café", "uppercase", language.English))
	assert.Equal(t, "CAFÉ", Transform("café", " UpperCase", language.Und))
	assert.Equal(t, "café", Transform("CAFÉ", "lowercase", language.English))
	assert.Equal(t, "Hello World", Transform("hello world", "capitalize", language.English))
	assert.Equal(t, "hello", Transform("hello", "none", language.English))
	assert.Equal(t, "hello", Transform("hello", "", language.English))
	assert.Equal(t, "İSTANBUL", Transform("istanbul", "uppercase", language.Turkish))
	assert.Equal(t, "One Two", Transform("one two", TransformCapitalize, language.Und))
	assert.Equal(t, "ONE", Transform("one", TransformUppercase, language.Und))
	assert.Equal(t, "one", Transform("ONE", TransformLowercase, language.Und))
}

func TestSplitChars(t *testing.T) {
	for _, r := range []rune{' ', '\r', '\n'} {
		assert.True(t, IsSplitChar(r))
	}
	for _, r := range []rune{'\t', 'a', ' ', '-'} {
		assert.False(t, IsSplitChar(r))
	}
	assert.True(t, IsLineBreak('\r'))
	assert.False(t, IsLineBreak(' '))
}

func TestPrepare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.text")
	defer teardown()
	//
	c := content.NewText("", content.ComputedStyle{content.TextTransform: "uppercase"}, nil)
	assert.Equal(t, " ", Prepare(c, language.English))
	assert.Equal(t, "", c.Text(), "node must not be modified")
	assert.Equal(t, " ", Prepare(nil, language.English))
	//
	c = content.NewText("café", content.ComputedStyle{content.TextTransform: "uppercase"}, nil)
	assert.Equal(t, "CAFÉ", Prepare(c, language.English))
	//
	c = content.NewText("\u0644\u0627", nil, nil)
	assert.Equal(t, "\uFEFB", Prepare(c, language.Arabic))
	//
	c = content.NewText("bad \xff utf8", nil, nil)
	assert.Equal(t, "bad \xff utf8", Prepare(c, language.English))
}
