package glyphing

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
)

// Direction is the direction to set text in.
type Direction int

// Direction to set text in.
const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// DirectionFromBidi converts a bidi paragraph direction. Mixed and neutral
// directions resolve to left-to-right.
func DirectionFromBidi(d bidi.Direction) Direction {
	if d == bidi.RightToLeft {
		return RightToLeft
	}
	return LeftToRight
}

// Metrics is the interface of font/metrics providers. A Metrics value
// represents a font at a given size.
//
// Implementations must be safe for concurrent reads.
type Metrics interface {
	Advance(r rune) (dimen.Dimen, error) // horizontal advance of the glyph for r
	Ascent() dimen.Dimen                 // distance from baseline to top of line
	Descent() dimen.Dimen                // distance from baseline to bottom of line
}

// LineHeight returns ascent + descent of a font.
func LineHeight(m Metrics) dimen.Dimen {
	return m.Ascent() + m.Descent()
}

// Spacing holds additional space to insert between letters and words.
type Spacing struct {
	Letter dimen.Dimen // added after each grapheme cluster
	Word   dimen.Dimen // added for each space character
}

// Measure returns the width of a run of text, set in the font of m.
// Letter spacing is added once per grapheme cluster, word spacing once per
// space character (U+0020).
//
// Errors from the metrics provider are wrapped with error code core.EFONT.
func Measure(m Metrics, text string, spacing Spacing) (dimen.Dimen, error) {
	if m == nil {
		return 0, core.Error(core.EINVALID, "cannot measure text without font metrics")
	}
	var w dimen.Dimen
	for _, r := range text {
		adv, err := m.Advance(r)
		if err != nil {
			return 0, core.WrapError(err, core.EFONT, "cannot measure %q", r)
		}
		w = dimen.Add(w, adv)
		if r == ' ' {
			w = dimen.Add(w, spacing.Word)
		}
	}
	if spacing.Letter != 0 {
		w = dimen.Add(w, dimen.Dimen(GraphemeCount(text))*spacing.Letter)
	}
	return w, nil
}

var graphemeClassesSetup sync.Once

// GraphemeCount returns the number of user perceived characters of a text.
func GraphemeCount(text string) int {
	if text == "" {
		return 0
	}
	graphemeClassesSetup.Do(grapheme.SetupGraphemeClasses)
	onGraphemes := grapheme.NewBreaker(1)
	seg := segment.NewSegmenter(onGraphemes)
	seg.Init(strings.NewReader(text))
	n := 0
	for seg.Next() {
		n++
	}
	if err := seg.Err(); err != nil || n == 0 {
		tracer().Errorf("grapheme segmentation failed, counting runes: %v", err)
		return utf8.RuneCountInString(text)
	}
	return n
}
