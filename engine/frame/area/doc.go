/*
Package area implements the tree of positioned boxes produced by text layout.

Layout may be understood as the process of placing boxes within larger
boxes. The smallest type of box here is a text area, i.e. a measured run of
text. Text areas are placed into lines, possibly nested in inline containers
(think of a CSS span), and lines are stacked within a block.

A block manages exactly one current line. Areas are appended to the current
line from left to right, until either the line is ended explicitly or an
area does not fit into the remaining width of a non-empty line. Ending a
line freezes its content as a finished line of the block and resets the
available width to the full content width of the block. Inline containers
which are still open when their line ends are split: the content placed so
far stays with the finished line, and the container continues on the next
line.

Every area except the root block has exactly one parent. Parent references
are set when an area is appended and are never owned by the child.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package area

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textarea.frame'.
func tracer() tracing.Trace {
	return tracing.Select("textarea.frame")
}
