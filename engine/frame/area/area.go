package area

import (
	"fmt"

	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/engine/style"
)

// Area is a positioned box.
type Area interface {
	Parent() Container
	Position() dimen.Point // top left corner, relative to the parent
	Width() dimen.Dimen
	Height() dimen.Dimen
	Baseline() dimen.Dimen // distance from the top to the baseline
	IsEmpty() bool         // true if the area holds no visible content
	setParent(Container)
	setPosition(dimen.Point)
}

// Container is an area which holds other areas.
type Container interface {
	Area
	// Add appends an area. The area must not have been added anywhere else.
	Add(Area) error
	Children() []Area
	// NearestLine returns the line the container contributes to, or nil.
	NearestLine() *LineArea
	// CurrentMaxContentWidth is the width remaining on the current line.
	CurrentMaxContentWidth() dimen.Dimen
	// EndLine ends the current line and starts a new one.
	EndLine() error
}

// --- Common base -----------------------------------------------------------

type box struct {
	parent Container
	pos    dimen.Point
}

func (b *box) Parent() Container {
	return b.parent
}

func (b *box) Position() dimen.Point {
	return b.pos
}

func (b *box) setParent(c Container) {
	b.parent = c
}

func (b *box) setPosition(p dimen.Point) {
	b.pos = p
}

func checkChild(c Container, child Area) error {
	if child == nil {
		return core.Error(core.EINVALID, "cannot add null area")
	}
	if child.Parent() != nil {
		return core.Error(core.EINVALID, "area already has a parent")
	}
	if child == Area(c) {
		return core.Error(core.EINVALID, "area cannot contain itself")
	}
	return nil
}

func sumWidths(children []Area) dimen.Dimen {
	var w dimen.Dimen
	for _, c := range children {
		w = dimen.Add(w, c.Width())
	}
	return w
}

// verticalExtent returns the maximum ascent and descent of a list of areas.
func verticalExtent(children []Area) (ascent, descent dimen.Dimen) {
	for _, c := range children {
		ascent = dimen.Max(ascent, c.Baseline())
		descent = dimen.Max(descent, c.Height()-c.Baseline())
	}
	return
}

func allEmpty(children []Area) bool {
	for _, c := range children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// --- Text areas ------------------------------------------------------------

// TextArea is a measured run of text.
type TextArea struct {
	box
	Text      string // visible text
	Offset    int    // start position in the buffer of the producing compositor, in runes
	Length    int    // number of runes consumed from the buffer, including hanging spaces and breaks
	LineBreak bool   // area ends with an explicit line break
	Style     style.TextStyle
	width     dimen.Dimen
	height    dimen.Dimen
	baseline  dimen.Dimen
}

// NewTextArea creates a text area from a measured run of text.
func NewTextArea(text string, width, height, baseline dimen.Dimen, st style.TextStyle) *TextArea {
	return &TextArea{
		Text:     text,
		Style:    st,
		width:    width,
		height:   height,
		baseline: baseline,
	}
}

// Width returns the measured width of the text.
func (ta *TextArea) Width() dimen.Dimen {
	return ta.width
}

// Height returns the line height of the font of the text.
func (ta *TextArea) Height() dimen.Dimen {
	return ta.height
}

// Baseline returns the ascent of the font of the text.
func (ta *TextArea) Baseline() dimen.Dimen {
	return ta.baseline
}

// IsEmpty is true for areas without text, i.e. for bare line breaks.
func (ta *TextArea) IsEmpty() bool {
	return ta.Text == ""
}

func (ta *TextArea) String() string {
	brk := ""
	if ta.LineBreak {
		brk = "⏎"
	}
	return fmt.Sprintf("[%q%s w=%.2f]", ta.Text, brk, ta.width.Points())
}

var _ Area = &TextArea{}

// --- Starting lines --------------------------------------------------------

// StartsNewLine returns true if content appended to c would be the first
// visible content of a line.
//
// Containers between c and its nearest line which already hold content decide
// for false. Otherwise the emptiness of the line decides. A container which
// is not connected to a line will report true.
func StartsNewLine(c Container) bool {
	if c == nil {
		tracer().Errorf("new-line status requested for null container")
		return true
	}
	line := c.NearestLine()
	if line == nil {
		tracer().Errorf("container is not part of a line, assuming start of line")
		return true
	}
	for a := Area(c); a != nil; a = a.Parent() {
		if a == Area(line) {
			break
		}
		if _, isBlock := a.(*BlockArea); isBlock {
			break
		}
		if !a.IsEmpty() {
			return false
		}
	}
	return line.IsEmpty()
}
