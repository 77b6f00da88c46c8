package layout

import (
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/core/font/fontregistry"
	"github.com/npillmayer/textarea/core/parameters"
	"github.com/npillmayer/textarea/engine/content"
	"github.com/npillmayer/textarea/engine/glyphing"
)

// FontManager provides font metrics for layout.
// fontregistry.Registry is the default implementation.
type FontManager interface {
	FontMetrics(fontregistry.Descriptor) (glyphing.Metrics, error)
}

// Context carries the collaborators of a layout pass.
type Context struct {
	Fonts     FontManager
	Registers *parameters.LayoutRegisters
}

// NewContext creates a layout context. If fonts is nil, the global font
// registry is used. If regs is nil, default parameters are used.
func NewContext(fonts FontManager, regs *parameters.LayoutRegisters) *Context {
	if fonts == nil {
		fonts = fontregistry.GlobalRegistry()
	}
	if regs == nil {
		regs = parameters.NewLayoutRegisters()
	}
	return &Context{Fonts: fonts, Registers: regs}
}

// fontFor derives the font to look up for a content node. Properties not
// set for the node are taken from the layout parameters.
func (ctx *Context) fontFor(cs content.ComputedStyle) fontregistry.Descriptor {
	desc := fontregistry.Descriptor{
		Family: cs.Get(content.FontFamily),
		Style:  fontregistry.StyleFromCSS(cs.Get(content.FontStyle)),
		Weight: fontregistry.WeightFromCSS(cs.Get(content.FontWeight)),
	}
	if desc.Family == "" {
		desc.Family = ctx.Registers.S(parameters.P_FONTFAMILY)
	}
	if sz := cs.Get(content.FontSize); sz != "" {
		if d, pcnt, err := dimen.ParseDimen(sz); err == nil && !pcnt && d > 0 {
			desc.Size = d
		} else {
			tracer().Debugf("font size %q not usable", sz)
		}
	}
	if desc.Size == 0 {
		desc.Size = ctx.Registers.D(parameters.P_FONTSIZE)
	}
	return desc
}
