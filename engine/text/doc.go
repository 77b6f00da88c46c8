/*
Package text prepares the text of content nodes for measurement.

Preparation applies a case transform, as requested by the 'text-transform'
property, followed by Arabic letter joining (see package arabic). Empty
text is replaced by a single space, so that every text node has at least
one measurable unit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'textarea.text'.
func tracer() tracing.Trace {
	return tracing.Select("textarea.text")
}
