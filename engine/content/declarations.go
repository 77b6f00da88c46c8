package content

import (
	"strings"

	"github.com/aymerick/douceur/parser"

	"github.com/npillmayer/textarea/core"
)

// StyleFromDeclarations creates a style from CSS declarations, as found in
// an HTML style attribute:
//
//     font-family: Gentium; text-transform: uppercase
//
// Property names are lower-cased, later declarations override earlier ones.
// No cascading takes place, i.e. the result is taken as computed style as is.
func StyleFromDeclarations(css string) (ComputedStyle, error) {
	decls, err := parser.ParseDeclarations(css)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse style %q", css)
	}
	cs := make(ComputedStyle, len(decls))
	for _, d := range decls {
		cs[Property(strings.ToLower(d.Property))] = d.Value
	}
	return cs, nil
}
