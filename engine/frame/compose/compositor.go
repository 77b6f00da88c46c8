package compose

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/engine/frame/area"
	"github.com/npillmayer/textarea/engine/glyphing"
	"github.com/npillmayer/textarea/engine/style"
	"github.com/npillmayer/textarea/engine/text"
)

// TextCompositor produces text areas from the text of a content node.
type TextCompositor struct {
	text     []rune
	cursor   int // next unconsumed position in text
	newLine  bool
	produced int // number of areas returned so far
	endedAt  int // cursor position of the last line end signalled, or -1
	style    style.TextStyle
}

// New creates a compositor for a text, to be set in style st. The compositor
// takes ownership of the text.
//
// A new compositor assumes that its text starts a new line. Use
// SetNewLineStatus to change this.
func New(txt string, st style.TextStyle) *TextCompositor {
	return &TextCompositor{
		text:    []rune(txt),
		newLine: true,
		endedAt: -1,
		style:   st,
	}
}

// HasNextArea returns true while unconsumed text remains.
func (tc *TextCompositor) HasNextArea() bool {
	return tc.cursor < len(tc.text)
}

// SetNewLineStatus tells the compositor whether the next area starts a line.
// At the start of a line spaces are suppressed.
func (tc *TextCompositor) SetNewLineStatus(isNewLine bool) {
	tc.newLine = isNewLine
}

// NewLineStatus returns true if the next area will start a line.
func (tc *TextCompositor) NewLineStatus() bool {
	return tc.newLine
}

// NextArea consumes text fitting into maxWidth and returns it as a text area.
//
// Words are collected while they fit. Spaces following the last word are
// consumed with it, but count for the width of the area only as far as they
// fit. If the first word is wider than maxWidth, it is returned anyway. An
// explicit line break following the words is consumed, too, and flags the
// area with LineBreak. A line break at the start of the remaining text
// results in an empty area flagged with LineBreak, having the height of the
// font.
//
// If the next word does not fit into maxWidth and the current line already
// holds content, NextArea returns an empty area flagged with LineBreak, ending
// the line. Spaces in front of the word are consumed with it, hanging at the
// end of the line. The word itself will then be measured against the width of
// the next line.
//
// If only spaces remain at the start of a line, these are consumed and NextArea
// returns nil. This is not true for a text consisting of spaces only, which
// will always result in an area.
//
// Errors are returned if the text cannot be measured. They are fatal for the
// layout of the text.
func (tc *TextCompositor) NextArea(maxWidth dimen.Dimen) (*area.TextArea, error) {
	if !tc.HasNextArea() {
		return nil, nil
	}
	start := tc.cursor
	if tc.newLine {
		start = tc.skipSpaces(start)
		if start == len(tc.text) {
			if tc.produced > 0 {
				tracer().Debugf("consumed trailing spaces at start of line")
				tc.cursor = start
				return nil, nil
			}
			start = tc.cursor // text of spaces only
		}
	}
	if end, ok := tc.lineBreakAt(start); ok {
		tracer().Debugf("explicit line break at %d", start)
		ta := tc.newArea("", 0, start, end)
		ta.LineBreak = true
		return ta, nil
	}
	r, err := tc.collect(start, maxWidth)
	if err != nil {
		return nil, err
	}
	if r.lineEnd {
		tracer().Debugf("line is full at %d", start)
		ta := tc.newArea("", 0, start, r.consumed)
		ta.LineBreak = true
		tc.endedAt = tc.cursor
		return ta, nil
	}
	end := r.consumed
	brk := false
	if e, ok := tc.lineBreakAt(end); ok {
		end, brk = e, true
	}
	ta := tc.newArea(string(tc.text[start:r.visible]), r.width, start, end)
	ta.LineBreak = brk
	tracer().Debugf("next area = %v", ta)
	return ta, nil
}

// run is the result of collecting words.
type run struct {
	visible  int         // end of visible text
	consumed int         // end of consumed text, including hanging spaces
	width    dimen.Dimen // width of the visible text
	lineEnd  bool        // nothing fits, the line has to be ended
}

// collect gathers words plus following spaces, starting at position start.
// The first word is always taken, unless it does not fit on a line which
// already holds content.
func (tc *TextCompositor) collect(start int, maxWidth dimen.Dimen) (run, error) {
	r := run{visible: start, consumed: start}
	words := 0
	for pos := start; ; {
		spaceEnd := tc.skipSpaces(pos)
		wordEnd := tc.skipWord(spaceEnd)
		if wordEnd == spaceEnd { // no more words before a break or the end of text
			w, err := tc.measure(pos, spaceEnd)
			if err != nil {
				return r, err
			}
			if words == 0 || dimen.Add(r.width, w) <= maxWidth {
				r.visible, r.width = spaceEnd, dimen.Add(r.width, w)
			}
			r.consumed = spaceEnd
			return r, nil
		}
		w, err := tc.measure(pos, wordEnd)
		if err != nil {
			return r, err
		}
		if words > 0 && dimen.Add(r.width, w) > maxWidth {
			// spaces in front of the word not taken are trailing spaces of this area
			ws, err := tc.measure(pos, spaceEnd)
			if err != nil {
				return r, err
			}
			if dimen.Add(r.width, ws) <= maxWidth {
				r.visible, r.width = spaceEnd, dimen.Add(r.width, ws)
			}
			r.consumed = spaceEnd
			return r, nil
		}
		if words == 0 && w > maxWidth {
			if !tc.newLine && tc.endedAt != start {
				r.consumed, r.lineEnd = spaceEnd, true
				return r, nil
			}
			tracer().Debugf("word %q overflows width %.2f", string(tc.text[pos:wordEnd]), maxWidth.Points())
		}
		r.visible, r.consumed, r.width = wordEnd, wordEnd, dimen.Add(r.width, w)
		words++
		pos = wordEnd
	}
}

func (tc *TextCompositor) newArea(s string, w dimen.Dimen, start, end int) *area.TextArea {
	var h, b dimen.Dimen
	if tc.style.Font != nil {
		h, b = glyphing.LineHeight(tc.style.Font), tc.style.Font.Ascent()
	}
	ta := area.NewTextArea(s, w, h, b, tc.style)
	ta.Offset, ta.Length = start, end-start
	tc.cursor = end
	tc.produced++
	return ta
}

func (tc *TextCompositor) measure(from, to int) (dimen.Dimen, error) {
	if from == to {
		return 0, nil
	}
	return glyphing.Measure(tc.style.Font, string(tc.text[from:to]), tc.style.Spacing())
}

// skipSpaces returns the position of the first non-space at or after pos.
func (tc *TextCompositor) skipSpaces(pos int) int {
	for pos < len(tc.text) && tc.text[pos] == ' ' {
		pos++
	}
	return pos
}

// skipWord returns the position of the first split character at or after pos.
func (tc *TextCompositor) skipWord(pos int) int {
	for pos < len(tc.text) && !text.IsSplitChar(tc.text[pos]) {
		pos++
	}
	return pos
}

// lineBreakAt checks for an explicit line break at pos and returns the
// position after it. CR+LF counts as a single line break.
func (tc *TextCompositor) lineBreakAt(pos int) (int, bool) {
	if pos >= len(tc.text) || !text.IsLineBreak(tc.text[pos]) {
		return pos, false
	}
	if tc.text[pos] == '\r' && pos+1 < len(tc.text) && tc.text[pos+1] == '\n' {
		return pos + 2, true
	}
	return pos + 1, true
}
