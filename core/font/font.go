/*
Package font is for typeface and font handling.

We stick to the following definitions:

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font in a certain size.
The name is reminiscend on the wooden boxes of typesetters in the
aera of metal type. An example is "Helvetica regular 11pt".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

A typecase is what the layout core measures text with: it reports glyph
advances and the vertical extent of lines.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"fmt"
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
)

// tracer traces with key 'textarea.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("textarea.fonts")
}

// ScalableFont is an unsized font, loaded from a font file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a font at a given size. TypeCase implements the metrics
// interface of package glyphing.
//
// Go font faces are not safe for concurrent use, so access to the face
// is serialized.
type TypeCase struct {
	sync.Mutex
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               dimen.Dimen
	ascent, descent    dimen.Dimen
}

// LoadOpenTypeFont loads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses the binary data of an OpenType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EFONT, "cannot parse font")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase creates a typecase from a scalable font, at a given font size.
// Font sizes outside of 1pt…1000pt are clamped to 10pt.
func (sf *ScalableFont) PrepareCase(fontsize dimen.Dimen) (*TypeCase, error) {
	if fontsize < dimen.BP || fontsize > 1000*dimen.BP {
		tracer().Errorf("font size must be 1pt < size < 1000pt, is %.2f (set to 10pt)", fontsize.Points())
		fontsize = 10 * dimen.BP
	}
	options := &opentype.FaceOptions{
		Size:    fontsize.Points(),
		DPI:     72,
		Hinting: xfont.HintingNone,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, core.WrapError(err, core.EFONT, "cannot prepare %s at %.2fpt", sf.Fontname, fontsize.Points())
	}
	typecase := NewTypeCase(f, fontsize)
	typecase.scalableFontParent = sf
	return typecase, nil
}

// NewTypeCase wraps a Go font face as a typecase. The face is expected
// to be set up at 72 dpi.
func NewTypeCase(face xfont.Face, fontsize dimen.Dimen) *TypeCase {
	tc := &TypeCase{face: face, size: fontsize}
	if face != nil {
		m := face.Metrics()
		tc.ascent = dimen.FromFixed(m.Ascent)
		tc.descent = dimen.FromFixed(m.Descent)
	}
	return tc
}

// ScalableFontParent returns the font a typecase has been prepared from.
// May be nil for typecases created from arbitrary faces.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Size returns the font size of the typecase.
func (tc *TypeCase) Size() dimen.Dimen {
	return tc.size
}

// Advance returns the horizontal advance of the glyph for r.
// If the font does not contain a glyph for r, the advance of the replacement
// character (or '?') is returned.
func (tc *TypeCase) Advance(r rune) (dimen.Dimen, error) {
	if tc == nil || tc.face == nil {
		return 0, core.Error(core.EFONT, "typecase has no font face")
	}
	tc.Lock()
	defer tc.Unlock()
	if adv, ok := tc.face.GlyphAdvance(r); ok {
		return dimen.FromFixed(adv), nil
	}
	for _, replacement := range []rune{'\uFFFD', '?'} {
		if adv, ok := tc.face.GlyphAdvance(replacement); ok {
			tracer().Debugf("font has no glyph for %q, using %q", r, replacement)
			return dimen.FromFixed(adv), nil
		}
	}
	return 0, core.Error(core.EFONT, "font %s has no glyph for %q", tc.name(), r)
}

// Ascent returns the distance from the baseline to the top of a line.
func (tc *TypeCase) Ascent() dimen.Dimen {
	return tc.ascent
}

// Descent returns the distance from the baseline to the bottom of a line.
func (tc *TypeCase) Descent() dimen.Dimen {
	return tc.descent
}

func (tc *TypeCase) name() string {
	if tc.scalableFontParent != nil {
		return tc.scalableFontParent.Fontname
	}
	return fmt.Sprintf("face@%.2fpt", tc.size.Points())
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}
