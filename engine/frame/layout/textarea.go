package layout

import (
	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/core/parameters"
	"github.com/npillmayer/textarea/engine/content"
	"github.com/npillmayer/textarea/engine/frame/area"
	"github.com/npillmayer/textarea/engine/frame/compose"
	"github.com/npillmayer/textarea/engine/glyphing"
	"github.com/npillmayer/textarea/engine/style"
	"github.com/npillmayer/textarea/engine/text"
)

// Compositor produces text areas. compose.TextCompositor is the only
// implementation outside of tests.
type Compositor interface {
	HasNextArea() bool
	NextArea(maxWidth dimen.Dimen) (*area.TextArea, error)
	SetNewLineStatus(bool)
}

// TextAreaLayout lays out the text of a single content node.
type TextAreaLayout struct {
	parent  area.Container
	ctx     *Context
	content *content.TextContent
	style   style.TextStyle
	comp    Compositor
	areas   int // areas placed
	breaks  int // explicit line breaks
}

// NewTextAreaLayout prepares the layout of content node c into container
// parent.
//
// The text of c is transformed and shaped, and written back to c. Empty text
// is replaced by a single space. The compositor is told whether the text
// starts a new line, depending on the content of parent and of the line it
// belongs to.
//
// Case transforms follow the language of the node, given by property "lang",
// or the language of the layout parameters.
//
// ctx may be nil, resulting in a default context. A font which cannot be
// provided results in an error with code core.EFONT.
func NewTextAreaLayout(parent area.Container, ctx *Context, c *content.TextContent) (*TextAreaLayout, error) {
	if c == nil {
		return nil, core.Error(core.EINVALID, "text layout requires a content node")
	}
	if parent == nil {
		return nil, core.Error(core.EINVALID, "text layout requires a parent container")
	}
	if ctx == nil || ctx.Fonts == nil || ctx.Registers == nil {
		var fonts FontManager
		var regs *parameters.LayoutRegisters
		if ctx != nil {
			fonts, regs = ctx.Fonts, ctx.Registers
		}
		ctx = NewContext(fonts, regs)
	}
	l := &TextAreaLayout{parent: parent, ctx: ctx, content: c}
	ctx.Registers.Begingroup() // parameters set by the node are valid for the node only
	defer ctx.Registers.Endgroup()
	if lang := c.ComputedStyle().Get(content.Language); lang != "" {
		ctx.Registers.Push(parameters.P_LANGUAGE, lang)
	}
	prepared := text.Prepare(c, ctx.Registers.Language())
	c.SetText(prepared)
	desc := ctx.fontFor(c.ComputedStyle())
	font, err := ctx.Fonts.FontMetrics(desc)
	if err != nil {
		return nil, core.WrapError(err, core.EFONT, "no font for %s at %s", desc.Family, desc.Size)
	}
	l.style = style.Resolve(c, font, ctx.Registers)
	if l.style.FontSize == 0 {
		l.style.FontSize = desc.Size
	}
	if !c.ComputedStyle().IsSet(content.Direction) {
		l.style.Direction = glyphing.DirectionFromBidi(ctx.Registers.Direction())
	}
	comp := compose.New(prepared, l.style)
	comp.SetNewLineStatus(area.StartsNewLine(parent))
	l.comp = comp
	return l, nil
}

// Style returns the resolved style of the text.
func (l *TextAreaLayout) Style() style.TextStyle {
	return l.style
}

// Layout places all text of the content node into the parent container.
//
// Every area is appended exactly once and in order. After an area carrying
// an explicit line break, the current line is ended.
func (l *TextAreaLayout) Layout() error {
	if err := l.Initialize(); err != nil {
		return err
	}
	for l.comp.HasNextArea() {
		ta, err := l.comp.NextArea(l.FreeSpace())
		if err != nil {
			tracer().Errorf("layout of text aborted: %v", err)
			return err
		}
		if ta == nil {
			continue
		}
		if err = l.AddTextArea(ta); err != nil {
			return err
		}
		l.comp.SetNewLineStatus(false)
		if ta.LineBreak {
			if err = l.NewLine(); err != nil {
				return err
			}
			l.comp.SetNewLineStatus(true)
		}
	}
	return l.Close()
}

// Initialize is called before any area is produced.
func (l *TextAreaLayout) Initialize() error {
	if l.comp == nil {
		return core.Error(core.EINTERNAL, "text layout has not been set up")
	}
	l.areas, l.breaks = 0, 0
	tracer().Debugf("layout of %q starts", l.content.Text())
	return nil
}

// Close is called after all areas have been placed.
func (l *TextAreaLayout) Close() error {
	tracer().Debugf("layout of text placed %d areas, %d line breaks", l.areas, l.breaks)
	return nil
}

// FreeSpace returns the width left on the current line of the parent.
func (l *TextAreaLayout) FreeSpace() dimen.Dimen {
	return l.parent.CurrentMaxContentWidth()
}

// AddTextArea appends a text area to the parent.
func (l *TextAreaLayout) AddTextArea(ta *area.TextArea) error {
	if err := l.parent.Add(ta); err != nil {
		return err
	}
	l.areas++
	return nil
}

// NewLine ends the current line of the parent.
func (l *TextAreaLayout) NewLine() error {
	if err := l.parent.EndLine(); err != nil {
		return err
	}
	l.breaks++
	return nil
}
