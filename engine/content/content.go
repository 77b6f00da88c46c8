package content

import "strings"

// Property is a style property name, as used in CSS.
type Property string

// Properties relevant for laying out text.
const (
	Direction       Property = "direction"
	FontFamily      Property = "font-family"
	FontSize        Property = "font-size"
	FontStyle       Property = "font-style"
	FontWeight      Property = "font-weight"
	LetterSpacing   Property = "letter-spacing"
	WordSpacing     Property = "word-spacing"
	TextLinethrough Property = "text-linethrough"
	TextOverline    Property = "text-overline"
	TextUnderline   Property = "text-underline"
	TextAlign       Property = "text-align"
	TextTransform   Property = "text-transform"
	Color           Property = "color"
	Language        Property = "lang" // BCP 47 tag, as the HTML attribute
)

// ComputedStyle maps style properties to values. Missing properties have
// an empty value.
type ComputedStyle map[Property]string

// Get returns the value of a property, with surrounding white space removed.
// It is safe to call Get on a nil style.
func (cs ComputedStyle) Get(p Property) string {
	if cs == nil {
		return ""
	}
	return strings.TrimSpace(cs[p])
}

// IsSet returns true if a property has a non-empty value.
func (cs ComputedStyle) IsSet(p Property) bool {
	return cs.Get(p) != ""
}

// Is compares a property value to a keyword, ignoring case.
func (cs ComputedStyle) Is(p Property, keyword string) bool {
	return strings.EqualFold(cs.Get(p), keyword)
}

// Hyperlink marks text as the anchor of a link.
type Hyperlink struct {
	Target string
}

// TextContent is a text node of the content tree.
type TextContent struct {
	text      string
	computed  ComputedStyle
	specified ComputedStyle
	hyperlink *Hyperlink
}

// NewText creates a text node. `computed` is the style computed for the node,
// including inherited properties. `specified` holds the properties set on the
// node itself; it may be nil.
func NewText(text string, computed, specified ComputedStyle) *TextContent {
	return &TextContent{
		text:      text,
		computed:  computed,
		specified: specified,
	}
}

// Text returns the text of a node.
func (c *TextContent) Text() string {
	return c.text
}

// SetText replaces the text of a node.
func (c *TextContent) SetText(text string) {
	c.text = text
}

// ComputedStyle returns the computed style of a node. It is never nil.
func (c *TextContent) ComputedStyle() ComputedStyle {
	if c.computed == nil {
		return ComputedStyle{}
	}
	return c.computed
}

// Style returns the style properties set on the node itself. It is never nil.
func (c *TextContent) Style() ComputedStyle {
	if c.specified == nil {
		return ComputedStyle{}
	}
	return c.specified
}

// Hyperlink returns the link the text is the anchor of, or nil.
func (c *TextContent) Hyperlink() *Hyperlink {
	return c.hyperlink
}

// SetHyperlink makes a text node the anchor of a link. A nil link removes
// a link.
func (c *TextContent) SetHyperlink(link *Hyperlink) {
	c.hyperlink = link
}
