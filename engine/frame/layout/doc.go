/*
Package layout lays out the text of a content node into an area tree.

A TextAreaLayout connects a content node with the container its text flows
into. It prepares the text, resolves font and style, and then repeatedly asks
a compositor for the next text area fitting the width left in the container.
Explicit line breaks end the current line of the container.

Overview

	parent := area.NewBlockArea(60 * dimen.BP)
	ctx := layout.NewContext(fontregistry.GlobalRegistry(), regs)
	l, err := layout.NewTextAreaLayout(parent, ctx, node)
	...
	err = l.Layout()

An error aborts the layout of a node. Areas placed before the error remain
valid.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textarea.frame'.
func tracer() tracing.Trace {
	return tracing.Select("textarea.frame")
}
