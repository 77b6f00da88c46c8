/*
Package glyphing measures text.

The layout core does not position single glyphs. It needs to know how wide
a run of text will be when set in a given font, and how tall a line of that
font is. Metrics is the interface for font/metrics providers, Measure
computes the width of a run, including letter- and word-spacing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textarea.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("textarea.glyphs")
}
