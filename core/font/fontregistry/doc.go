/*
Package fontregistry manages a registry for loaded fonts.

The registry is the font manager of a layout context. It may be shared
between layout passes running in parallel; access is synchronized
internally.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textarea.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textarea.fonts")
}
