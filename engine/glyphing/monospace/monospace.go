package monospace

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"

	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/engine/glyphing"
)

type msmetrics struct {
	em      dimen.Dimen
	ascent  dimen.Dimen
	descent dimen.Dimen
	context *uax11.Context
}

// Metrics creates font metrics for monospace typesetting.
// An em-dimension may be given which will then be used as the advance of
// narrow characters. If is is zero, it will be set to 10pt.
// The line height is 6/5 em, split into ascent and descent at 4:1.
func Metrics(em dimen.Dimen) glyphing.Metrics {
	if em == 0 {
		em = 10 * dimen.PT
	}
	ms := &msmetrics{
		em:      em,
		ascent:  em * 24 / 25,
		descent: em * 6 / 25,
		context: uax11.LatinContext,
	}
	grapheme.SetupGraphemeClasses()
	tracer().Debugf("monospace metrics with em=%s", em)
	return ms
}

// Advance returns the horizontal advance of a rune, depending on its UAX#11
// width category.
func (ms *msmetrics) Advance(r rune) (dimen.Dimen, error) {
	if r == '\n' || r == '\r' || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
		return 0, nil
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	w := uax11.Width(buf[:n], ms.context) // in ens, i.e. 1 for narrow characters
	return dimen.Dimen(w) * ms.em, nil
}

func (ms *msmetrics) Ascent() dimen.Dimen {
	return ms.ascent
}

func (ms *msmetrics) Descent() dimen.Dimen {
	return ms.descent
}
