package area

import (
	"fmt"

	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/engine/glyphing"
)

// InlineContainerArea groups areas within a line, e.g. for a styled span
// of text.
//
// An inline container is open until Close is called. An open container whose
// line ends is split: a closed fragment holding the content so far is left
// on the finished line, and the container itself continues on the next line.
type InlineContainerArea struct {
	box
	Name     string // for debugging
	children []Area
	line     *LineArea // resolved when attached
	closed   bool
}

// NewInlineContainer creates an open inline container.
func NewInlineContainer(name string) *InlineContainerArea {
	return &InlineContainerArea{Name: name}
}

// Close closes an inline container. Closed containers do not accept new
// areas and do not continue on a new line.
func (ic *InlineContainerArea) Close() {
	ic.closed = true
}

// IsClosed returns true if an inline container has been closed.
func (ic *InlineContainerArea) IsClosed() bool {
	return ic.closed
}

func (ic *InlineContainerArea) setParent(c Container) {
	ic.parent = c
	ic.line = nil
	if c != nil {
		ic.line = c.NearestLine()
	}
	for _, ch := range ic.children {
		if sub, ok := ch.(*InlineContainerArea); ok {
			sub.setParent(ic)
		}
	}
}

// Children returns the areas of an inline container.
func (ic *InlineContainerArea) Children() []Area {
	return ic.children
}

// Width returns the sum of the widths of the areas in the container.
func (ic *InlineContainerArea) Width() dimen.Dimen {
	return sumWidths(ic.children)
}

// Height is the distance between the highest ascent and the lowest descent
// of the areas in the container.
func (ic *InlineContainerArea) Height() dimen.Dimen {
	a, d := verticalExtent(ic.children)
	return a + d
}

// Baseline is the highest ascent of the areas in the container.
func (ic *InlineContainerArea) Baseline() dimen.Dimen {
	a, _ := verticalExtent(ic.children)
	return a
}

// IsEmpty is true if the container holds no visible content.
func (ic *InlineContainerArea) IsEmpty() bool {
	return allEmpty(ic.children)
}

// NearestLine returns the line the container has been attached to, or nil
// if the container is not (yet) part of a line.
func (ic *InlineContainerArea) NearestLine() *LineArea {
	return ic.line
}

// CurrentMaxContentWidth returns the width left on the enclosing line.
// A container outside of a line is not constrained.
func (ic *InlineContainerArea) CurrentMaxContentWidth() dimen.Dimen {
	if ic.line == nil {
		return dimen.Infinity
	}
	return ic.line.CurrentMaxContentWidth()
}

// Add appends an area to the container. If the enclosing line already holds
// visible content and the area does not fit, the line is ended first.
func (ic *InlineContainerArea) Add(child Area) error {
	if err := checkChild(ic, child); err != nil {
		return err
	}
	if ic.closed {
		return core.Error(core.EINVALID, "inline container %s is closed", ic.Name)
	}
	if ic.line != nil {
		if err := ic.line.wrapFor(child); err != nil {
			return err
		}
	}
	ic.children = append(ic.children, child)
	child.setParent(ic)
	return nil
}

// EndLine ends the enclosing line.
func (ic *InlineContainerArea) EndLine() error {
	if ic.line == nil {
		return core.Error(core.EINTERNAL, "inline container %s is not part of a line", ic.Name)
	}
	return ic.line.EndLine()
}

// split moves the content of an open container to a closed fragment, which
// is returned. Open inline children are split recursively and stay with the
// container.
func (ic *InlineContainerArea) split(done *LineArea) *InlineContainerArea {
	frag := &InlineContainerArea{Name: ic.Name, closed: true, line: done}
	var carry []Area
	for _, c := range ic.children {
		if sub, ok := c.(*InlineContainerArea); ok && !sub.closed {
			subfrag := sub.split(done)
			frag.children = append(frag.children, subfrag)
			subfrag.parent = frag
			carry = append(carry, sub)
			continue
		}
		frag.children = append(frag.children, c)
		c.setParent(frag)
	}
	ic.children = carry
	return frag
}

// arrange positions the children of a container relative to the container.
func (ic *InlineContainerArea) arrange(dir glyphing.Direction) {
	baseline := ic.Baseline()
	var x dimen.Dimen
	place := func(a Area) {
		a.setPosition(dimen.Point{X: x, Y: baseline - a.Baseline()})
		x = dimen.Add(x, a.Width())
		if sub, ok := a.(*InlineContainerArea); ok {
			sub.arrange(dir)
		}
	}
	if dir == glyphing.RightToLeft {
		for i := len(ic.children) - 1; i >= 0; i-- {
			place(ic.children[i])
		}
	} else {
		for _, c := range ic.children {
			place(c)
		}
	}
}

func (ic *InlineContainerArea) String() string {
	return fmt.Sprintf("[%s: %d areas w=%.2f]", ic.Name, len(ic.children), ic.Width().Points())
}

var _ Container = &InlineContainerArea{}
