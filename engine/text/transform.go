package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/textarea/engine/content"
	"github.com/npillmayer/textarea/engine/text/arabic"
)

// Values of property 'text-transform'.
const (
	TransformUppercase  = "uppercase"
	TransformLowercase  = "lowercase"
	TransformCapitalize = "capitalize"
)

// splitChars are the word boundaries for capitalization and the break
// opportunities for line breaking. The set must not be modified.
var splitChars = hashset.New(' ', '\r', '\n')

// IsSplitChar returns true for characters which separate words.
func IsSplitChar(r rune) bool {
	return splitChars.Contains(r)
}

// IsLineBreak returns true for characters which force a line break.
func IsLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// Transform applies a case transform to a string. transformType is one of
// "uppercase", "lowercase" or "capitalize", ignoring case. Other values
// leave s unchanged. Upper- and lowercasing follow the rules of language
// lang.
func Transform(s string, transformType string, lang language.Tag) string {
	switch strings.ToLower(strings.TrimSpace(transformType)) {
	case TransformUppercase:
		return cases.Upper(lang).String(s)
	case TransformLowercase:
		return cases.Lower(lang).String(s)
	case TransformCapitalize:
		return Capitalize(s)
	}
	return s
}

// Capitalize upper-cases the first character of every word. Words are
// separated by space, carriage return or line feed. All other characters
// remain unchanged, therefore Capitalize(Capitalize(s)) == Capitalize(s).
func Capitalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	capitalizeNext := true
	for _, r := range s {
		if IsSplitChar(r) {
			capitalizeNext = true
			b.WriteRune(r)
			continue
		}
		if capitalizeNext {
			r = unicode.ToUpper(r)
			capitalizeNext = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Prepare returns the text of a content node, ready to be broken into lines.
// The node itself is left untouched.
//
// Empty text results in a single space, without transform. Otherwise the text
// is normalized to NFC, transformed according to property 'text-transform'
// and then shaped for Arabic letter joining. Failed shaping is not an error:
// the text is used unshaped.
func Prepare(c *content.TextContent, lang language.Tag) string {
	if c == nil || c.Text() == "" {
		return " "
	}
	s := c.Text()
	if utf8.ValidString(s) {
		s = norm.NFC.String(s)
	}
	s = Transform(s, c.ComputedStyle().Get(content.TextTransform), lang)
	shaped, err := arabic.ShapeOrKeep(s)
	if err != nil {
		tracer().Infof("text left unshaped: %v", err)
	}
	return shaped
}
