/*
Package compose breaks the text of a content node into text areas.

A TextCompositor owns the prepared text of one content node. Each call to
NextArea consumes as many words as fit into a given width and returns them
as a measured text area. Break opportunities are spaces and explicit line
breaks (LF, CR or CR+LF). A word is never split: if the first word of an
area does not fit, it overflows.

Compositors are not safe for concurrent use. Every content node gets its
own compositor, which is discarded after the text has been consumed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compose

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textarea.compose'.
func tracer() tracing.Trace {
	return tracing.Select("textarea.compose")
}
