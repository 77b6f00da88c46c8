package style

import (
	"image/color"

	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/core/parameters"
	"github.com/npillmayer/textarea/engine/content"
	"github.com/npillmayer/textarea/engine/glyphing"
)

// TextStyle is the style of a run of text. It is derived once per content
// node and never changed afterwards.
type TextStyle struct {
	Font          glyphing.Metrics
	Direction     glyphing.Direction
	FontSize      dimen.Dimen
	LetterSpacing dimen.Dimen
	WordSpacing   dimen.Dimen
	LineThrough   bool
	OverLine      bool
	UnderLine     bool
	Align         string
	Color         color.Color
}

// Spacing returns letter- and word-spacing of a style, for measuring text.
func (st TextStyle) Spacing() glyphing.Spacing {
	return glyphing.Spacing{Letter: st.LetterSpacing, Word: st.WordSpacing}
}

// DefaultLinkColor is the color of link anchors if neither the node nor the
// layout registers tell otherwise.
var DefaultLinkColor color.Color = color.RGBA{0, 0, 0xff, 0xff}

// Resolve derives the text style of a content node. `font` is the font the
// text will be set in. `regs` may be nil.
//
// Missing or malformed properties resolve to zero values. Text of a link
// anchor is always underlined. Its color is the link color unless the node
// itself sets a color.
func Resolve(c *content.TextContent, font glyphing.Metrics, regs *parameters.LayoutRegisters) TextStyle {
	st := TextStyle{Font: font, Color: color.Black}
	if c == nil {
		return st
	}
	cs := c.ComputedStyle()
	if cs.Is(content.Direction, "rtl") {
		st.Direction = glyphing.RightToLeft
	}
	st.FontSize = dimenProperty(cs, content.FontSize)
	st.LetterSpacing = dimenProperty(cs, content.LetterSpacing)
	st.WordSpacing = dimenProperty(cs, content.WordSpacing)
	st.LineThrough = cs.Is(content.TextLinethrough, "line-through")
	st.OverLine = cs.Is(content.TextOverline, "overline")
	st.UnderLine = cs.Is(content.TextUnderline, "underline") || c.Hyperlink() != nil
	st.Align = cs.Get(content.TextAlign)
	st.Color = textColor(c, regs)
	return st
}

// textColor prefers a usable color set on the node itself. Anchors then take
// the link color, other nodes fall back to the inherited color.
func textColor(c *content.TextContent, regs *parameters.LayoutRegisters) color.Color {
	if col, ok := Property(c.Style().Get(content.Color)).ParseColor(); ok {
		return col
	}
	if c.Hyperlink() != nil {
		return linkColor(regs)
	}
	if col, ok := Property(c.ComputedStyle().Get(content.Color)).ParseColor(); ok {
		return col
	}
	return color.Black
}

func linkColor(regs *parameters.LayoutRegisters) color.Color {
	if regs != nil {
		if c := regs.S(parameters.P_LINKCOLOR); c != "" {
			return Property(c).Color()
		}
	}
	return DefaultLinkColor
}

func dimenProperty(cs content.ComputedStyle, p content.Property) dimen.Dimen {
	v := cs.Get(p)
	if v == "" || v == "normal" {
		return 0
	}
	d, percent, err := dimen.ParseDimen(v)
	if err != nil || percent {
		tracer().Debugf("cannot interpret %s = %q, using 0", p, v)
		return 0
	}
	return d
}
