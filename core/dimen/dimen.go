// Package dimen implements dimensions and units.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"golang.org/x/image/math/fixed"
)

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // "pixels", we lay out at 72 dpi
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Infinity is the largest possible dimension
const Infinity Dimen = math.MaxInt32

// ErrFormat is returned for strings which cannot be parsed as a dimension.
var ErrFormat = errors.New("format error parsing dimension")

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// FromFixed converts a 26.6 fixed point value, as used by golang.org/x/image/font,
// into a dimension. Faces are expected to be prepared at 72 dpi, so a
// font unit pixel equals a big point.
func FromFixed(f fixed.Int26_6) Dimen {
	return Dimen(int64(f) * int64(BP) / 64)
}

// Fixed converts a dimension to a 26.6 fixed point value.
func (d Dimen) Fixed() fixed.Int26_6 {
	return fixed.Int26_6(int64(d) * 64 / int64(BP))
}

// Point is a point on a page.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]*\.?[0-9]+)(%|[cminpxtcsb]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true.
// A number without unit is interpreted as scaled points.
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, ErrFormat
	}
	scale := SP
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = PT
		case "mm", "MM":
			scale = MM
		case "bp", "px", "BP", "PX":
			scale = BP
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "sp", "SP", "":
			scale = SP
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, ErrFormat
		}
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, ErrFormat
	}
	return Dimen(math.Round(n * float64(scale))), ispcnt, nil
}

// ---------------------------------------------------------------------------

// Add returns a+b. Sums exceeding Infinity are clamped to Infinity, sums
// below -Infinity to -Infinity.
func Add(a, b Dimen) Dimen {
	sum := int64(a) + int64(b)
	switch {
	case sum > int64(Infinity):
		return Infinity
	case sum < -int64(Infinity):
		return -Infinity
	}
	return Dimen(sum)
}

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
