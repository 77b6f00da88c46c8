/*
Package style resolves the flat style of a text run from the computed style
of a content node.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'textarea.style'.
func tracer() tracing.Trace {
	return tracing.Select("textarea.style")
}
