package area

import (
	"strings"

	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/engine/glyphing"
)

// --- Lines -----------------------------------------------------------------

// LineArea is a line of a block.
//
// The current line of a block is a single LineArea which persists across
// line ends: ending a line moves its content to a new, finished LineArea of
// the block and leaves the current line empty.
type LineArea struct {
	box
	block    *BlockArea
	children []Area
	number   int  // 1-based
	finished bool // finished lines do not accept new content
}

// Number returns the 1-based number of a line within its block.
func (l *LineArea) Number() int {
	return l.number
}

// Children returns the areas of a line, in order of appending.
func (l *LineArea) Children() []Area {
	return l.children
}

// Width returns the sum of the widths of the areas of a line.
func (l *LineArea) Width() dimen.Dimen {
	return sumWidths(l.children)
}

// Height is the distance between the highest ascent and the lowest descent
// of the areas of a line.
func (l *LineArea) Height() dimen.Dimen {
	a, d := verticalExtent(l.children)
	return a + d
}

// Baseline is the highest ascent of the areas of a line.
func (l *LineArea) Baseline() dimen.Dimen {
	a, _ := verticalExtent(l.children)
	return a
}

// IsEmpty is true if no visible content has been placed on a line.
func (l *LineArea) IsEmpty() bool {
	return allEmpty(l.children)
}

// NearestLine returns the line itself.
func (l *LineArea) NearestLine() *LineArea {
	return l
}

// CurrentMaxContentWidth returns the width left on a line. It never
// increases until the line is ended, and it is never negative.
func (l *LineArea) CurrentMaxContentWidth() dimen.Dimen {
	if l.block == nil {
		return dimen.Infinity
	}
	free := l.block.contentWidth - l.Width()
	if free < 0 {
		return 0
	}
	return free
}

// Add appends an area to a line. If the line already holds visible content
// and the area is wider than the remaining width, the line is ended first and
// the area starts the next line.
func (l *LineArea) Add(child Area) error {
	if err := checkChild(l, child); err != nil {
		return err
	}
	if l.finished {
		return core.Error(core.EINVALID, "line %d is finished", l.number)
	}
	if err := l.wrapFor(child); err != nil {
		return err
	}
	l.children = append(l.children, child)
	child.setParent(l)
	tracer().Debugf("line %d: added %v, %.2f left", l.number, child, l.CurrentMaxContentWidth().Points())
	return nil
}

func (l *LineArea) wrapFor(child Area) error {
	if !l.IsEmpty() && child.Width() > l.CurrentMaxContentWidth() {
		tracer().Debugf("line %d: %.2f do not fit, wrapping", l.number, child.Width().Points())
		return l.EndLine()
	}
	return nil
}

// EndLine finishes the content of a line and starts a new one. Inline
// containers which are still open continue on the new line.
func (l *LineArea) EndLine() error {
	if l.finished {
		return core.Error(core.EINVALID, "line %d is already finished", l.number)
	}
	if l.block == nil {
		return core.Error(core.EINTERNAL, "line is not part of a block")
	}
	done := &LineArea{block: l.block, number: l.number, finished: true}
	var carry []Area
	for _, c := range l.children {
		if ic, ok := c.(*InlineContainerArea); ok && !ic.closed {
			frag := ic.split(done)
			done.children = append(done.children, frag)
			frag.setParent(done)
			carry = append(carry, ic)
			continue
		}
		done.children = append(done.children, c)
		c.setParent(done)
	}
	l.children = carry
	l.number++
	l.block.finishLine(done)
	return nil
}

// Align positions the areas of a line horizontally. align is one of "left",
// "right", "center", "start" or "end"; other values are treated as "start".
// For right-to-left text, areas are placed from right to left and "start"
// means the right edge.
func (l *LineArea) Align(align string, dir glyphing.Direction) {
	width := l.Width()
	var free dimen.Dimen
	if l.block != nil && l.block.contentWidth > width {
		free = l.block.contentWidth - width
	}
	var x dimen.Dimen
	switch strings.ToLower(align) {
	case "left":
		x = 0
	case "right":
		x = free
	case "center":
		x = free / 2
	case "end":
		if dir == glyphing.LeftToRight {
			x = free
		}
	default:
		if dir == glyphing.RightToLeft {
			x = free
		}
	}
	baseline := l.Baseline()
	place := func(a Area) {
		a.setPosition(dimen.Point{X: x, Y: baseline - a.Baseline()})
		x = dimen.Add(x, a.Width())
	}
	if dir == glyphing.RightToLeft {
		for i := len(l.children) - 1; i >= 0; i-- {
			place(l.children[i])
		}
	} else {
		for _, c := range l.children {
			place(c)
		}
	}
	for _, c := range l.children {
		if ic, ok := c.(*InlineContainerArea); ok {
			ic.arrange(dir)
		}
	}
}

// --- Blocks ----------------------------------------------------------------

// BlockArea is the root of an area tree. It stacks lines of a fixed content
// width.
//
// A block is a container itself: adding to a block adds to its current line.
type BlockArea struct {
	box
	contentWidth dimen.Dimen
	Alignment    string             // horizontal alignment of finished lines
	Direction    glyphing.Direction // direction of finished lines
	lines        []*LineArea        // finished lines
	current      *LineArea
	height       dimen.Dimen
}

// NewBlockArea creates a block with a given content width. A width of zero
// or less is treated as infinite.
func NewBlockArea(contentWidth dimen.Dimen) *BlockArea {
	if contentWidth <= 0 {
		contentWidth = dimen.Infinity
	}
	b := &BlockArea{contentWidth: contentWidth}
	b.current = &LineArea{block: b, number: 1}
	b.current.setParent(b)
	return b
}

// ContentWidth returns the width available for every line of a block.
func (b *BlockArea) ContentWidth() dimen.Dimen {
	return b.contentWidth
}

// CurrentLine returns the line content is currently appended to.
func (b *BlockArea) CurrentLine() *LineArea {
	return b.current
}

// Lines returns the finished lines of a block.
func (b *BlockArea) Lines() []*LineArea {
	return b.lines
}

// Close finishes the current line, unless it is empty and has no height.
func (b *BlockArea) Close() error {
	if b.current.IsEmpty() && b.current.Height() == 0 {
		return nil
	}
	return b.current.EndLine()
}

func (b *BlockArea) finishLine(l *LineArea) {
	l.setParent(b)
	l.Align(b.Alignment, b.Direction)
	p := l.Position()
	p.Y = b.height
	l.setPosition(p)
	b.height = dimen.Add(b.height, l.Height())
	b.lines = append(b.lines, l)
	tracer().Debugf("block: finished line %d with %d areas", l.number, len(l.children))
}

// Children returns the finished lines of a block.
func (b *BlockArea) Children() []Area {
	children := make([]Area, len(b.lines))
	for i, l := range b.lines {
		children[i] = l
	}
	return children
}

// Add appends an area to the current line.
func (b *BlockArea) Add(child Area) error {
	return b.current.Add(child)
}

// NearestLine returns the current line.
func (b *BlockArea) NearestLine() *LineArea {
	return b.current
}

// CurrentMaxContentWidth returns the width left on the current line.
func (b *BlockArea) CurrentMaxContentWidth() dimen.Dimen {
	return b.current.CurrentMaxContentWidth()
}

// EndLine ends the current line.
func (b *BlockArea) EndLine() error {
	return b.current.EndLine()
}

// Width returns the content width of a block.
func (b *BlockArea) Width() dimen.Dimen {
	return b.contentWidth
}

// Height returns the sum of the heights of the finished lines.
func (b *BlockArea) Height() dimen.Dimen {
	return b.height
}

// Baseline returns the baseline of the first line of a block.
func (b *BlockArea) Baseline() dimen.Dimen {
	if len(b.lines) == 0 {
		return 0
	}
	return b.lines[0].Baseline()
}

// IsEmpty is true if no line of a block holds visible content.
func (b *BlockArea) IsEmpty() bool {
	for _, l := range b.lines {
		if !l.IsEmpty() {
			return false
		}
	}
	return b.current.IsEmpty()
}

var _ Container = &BlockArea{}
var _ Container = &LineArea{}
