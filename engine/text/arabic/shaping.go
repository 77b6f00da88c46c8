package arabic

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// joiningType is the Unicode joining type of a character.
type joiningType uint8

const (
	nonJoining   joiningType = iota // U
	rightJoining                    // R: joins with the preceding letter only
	dualJoining                     // D
	joinCausing                     // C: tatweel
	transparent                     // T: marks
)

// forms holds presentation forms in the order isolated, final, initial, medial.
// Zero entries denote forms which do not exist.
type forms [4]rune

const (
	isolated = iota
	final
	initial
	medial
)

// letters maps Arabic letters U+0621…U+064A to their presentation forms.
var letters = map[rune]forms{
	0x0621: {0xFE80, 0, 0, 0},
	0x0622: {0xFE81, 0xFE82, 0, 0},
	0x0623: {0xFE83, 0xFE84, 0, 0},
	0x0624: {0xFE85, 0xFE86, 0, 0},
	0x0625: {0xFE87, 0xFE88, 0, 0},
	0x0626: {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C},
	0x0627: {0xFE8D, 0xFE8E, 0, 0},
	0x0628: {0xFE8F, 0xFE90, 0xFE91, 0xFE92},
	0x0629: {0xFE93, 0xFE94, 0, 0},
	0x062A: {0xFE95, 0xFE96, 0xFE97, 0xFE98},
	0x062B: {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C},
	0x062C: {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0},
	0x062D: {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4},
	0x062E: {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8},
	0x062F: {0xFEA9, 0xFEAA, 0, 0},
	0x0630: {0xFEAB, 0xFEAC, 0, 0},
	0x0631: {0xFEAD, 0xFEAE, 0, 0},
	0x0632: {0xFEAF, 0xFEB0, 0, 0},
	0x0633: {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4},
	0x0634: {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8},
	0x0635: {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC},
	0x0636: {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0},
	0x0637: {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4},
	0x0638: {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8},
	0x0639: {0xFEC9, 0xFECA, 0xFECB, 0xFECC},
	0x063A: {0xFECD, 0xFECE, 0xFECF, 0xFED0},
	0x0641: {0xFED1, 0xFED2, 0xFED3, 0xFED4},
	0x0642: {0xFED5, 0xFED6, 0xFED7, 0xFED8},
	0x0643: {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC},
	0x0644: {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0},
	0x0645: {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4},
	0x0646: {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8},
	0x0647: {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC},
	0x0648: {0xFEED, 0xFEEE, 0, 0},
	0x0649: {0xFEEF, 0xFEF0, 0, 0},
	0x064A: {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4},
}

const (
	lam     = 0x0644
	tatweel = 0x0640
)

// lamAlef maps alef variants to the isolated form of the lam-alef ligature.
// The final form is the isolated form + 1.
var lamAlef = map[rune]rune{
	0x0622: 0xFEF5,
	0x0623: 0xFEF7,
	0x0625: 0xFEF9,
	0x0627: 0xFEFB,
}

func joining(r rune) joiningType {
	if r == tatweel || r == 0x200D { // ZWJ
		return joinCausing
	}
	if f, ok := letters[r]; ok {
		if f[initial] != 0 {
			return dualJoining
		}
		if f[final] != 0 {
			return rightJoining
		}
		return nonJoining
	}
	if r == 0x0670 || unicode.Is(unicode.Mn, r) {
		return transparent
	}
	return nonJoining
}

// joinsRight is true if r connects to a following letter.
func (jt joiningType) joinsRight() bool {
	return jt == dualJoining || jt == joinCausing
}

// joinsLeft is true if r connects to a preceding letter.
func (jt joiningType) joinsLeft() bool {
	return jt == dualJoining || jt == rightJoining || jt == joinCausing
}

// ShapingError is returned for input which cannot be shaped.
type ShapingError struct {
	Offset int // byte offset of the offending input
}

func (e *ShapingError) Error() string {
	return fmt.Sprintf("arabic shaping: invalid UTF-8 at byte offset %d", e.Offset)
}

// Shape replaces Arabic letters by their contextual presentation forms.
// Input which is not valid UTF-8 results in a *ShapingError.
func Shape(s string) (string, error) {
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && w <= 1 {
			return s, &ShapingError{Offset: i}
		}
		i += w
	}
	if !needsShaping(s) {
		return s, nil
	}
	runes := []rune(s)
	types := make([]joiningType, len(runes))
	for i, r := range runes {
		types[i] = joining(r)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		f, isLetter := letters[r]
		if !isLetter {
			b.WriteRune(r)
			continue
		}
		prev := neighbour(types, i, -1)
		connectsBefore := prev >= 0 && types[prev].joinsRight() && types[i].joinsLeft()
		if r == lam {
			if j := neighbour(types, i, +1); j >= 0 && j == i+1 {
				if lig, ok := lamAlef[runes[j]]; ok {
					if connectsBefore {
						lig++
					}
					b.WriteRune(lig)
					i = j
					continue
				}
			}
		}
		next := neighbour(types, i, +1)
		connectsAfter := next >= 0 && types[i].joinsRight() && types[next].joinsLeft()
		b.WriteRune(selectForm(f, connectsBefore, connectsAfter))
	}
	return b.String(), nil
}

// ShapeOrKeep shapes s. If s cannot be shaped, s is returned unchanged,
// together with the reason.
func ShapeOrKeep(s string) (string, error) {
	shaped, err := Shape(s)
	if err != nil {
		return s, err
	}
	return shaped, nil
}

func needsShaping(s string) bool {
	for _, r := range s {
		if _, ok := letters[r]; ok {
			return true
		}
	}
	return false
}

// neighbour finds the next non-transparent character from position i in
// direction dir. It returns -1 if there is none.
func neighbour(types []joiningType, i int, dir int) int {
	for j := i + dir; j >= 0 && j < len(types); j += dir {
		if types[j] != transparent {
			return j
		}
	}
	return -1
}

func selectForm(f forms, before, after bool) rune {
	var r rune
	switch {
	case before && after:
		r = f[medial]
	case before:
		r = f[final]
	case after:
		r = f[initial]
	}
	if r == 0 {
		r = f[isolated]
	}
	return r
}
