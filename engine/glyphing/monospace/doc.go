/*
Package monospace implements font metrics for monospace output.

Every narrow character advances by one em, wide (East Asian) characters
advance by two em, and non-spacing marks do not advance at all. This is
what fixed-width output devices do, and it makes layout results easy to
predict, which is why the layout tests lean on it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textarea.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("textarea.glyphs")
}
