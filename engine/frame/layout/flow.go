package layout

import (
	"github.com/npillmayer/cords"

	"github.com/npillmayer/textarea/engine/content"
	"github.com/npillmayer/textarea/engine/frame/area"
)

// LayoutSequence lays out a sequence of text nodes, one after the other,
// into the same container. Every node gets its own text layout. The first
// error aborts the sequence.
func LayoutSequence(parent area.Container, ctx *Context, seq cords.Cord) error {
	return content.EachNode(seq, func(c *content.TextContent) error {
		l, err := NewTextAreaLayout(parent, ctx, c)
		if err != nil {
			return err
		}
		return l.Layout()
	})
}
