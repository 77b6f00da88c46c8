/*
Package parameters holds the global layout configuration of a layout context.

Parameters live in registers which may be grouped, i.e., a group may
temporarily shadow parameter values, which are restored at the end of
the group.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/textarea/core/dimen"
)

// tracer traces with key 'textarea.core'.
func tracer() tracing.Trace {
	return tracing.Select("textarea.core")
}

// LayoutParameter is a key for a layout register.
type LayoutParameter int

const (
	none LayoutParameter = iota
	P_LANGUAGE
	P_TEXTDIRECTION
	P_LINKCOLOR
	P_FONTFAMILY
	P_FONTSIZE
	P_STOPPER
)

// Configuration keys read by FromConfiguration.
const (
	ConfLanguage  = "layout.language"
	ConfDirection = "layout.direction"
	ConfLinkColor = "layout.linkcolor"
	ConfFont      = "layout.font"
	ConfFontSize  = "layout.fontsize"
)

type parameterGroup struct {
	params map[LayoutParameter]interface{}
	level  int
	next   *parameterGroup
}

// LayoutRegisters holds the parameters for a layout pass.
type LayoutRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *parameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewLayoutRegisters creates a set of registers with default values.
func NewLayoutRegisters() *LayoutRegisters {
	regs := &LayoutRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "en"                  // a string
	p[P_TEXTDIRECTION] = bidi.LeftToRight // bidi.Direction
	p[P_LINKCOLOR] = "blue"               // CSS color name or #rrggbb
	p[P_FONTFAMILY] = "fallback"          // a string
	p[P_FONTSIZE] = 10 * dimen.PT         // dimension
}

// FromConfiguration creates layout registers, overriding defaults with values
// found in a configuration. Values which cannot be interpreted are ignored.
func FromConfiguration(conf schuko.Configuration) *LayoutRegisters {
	regs := NewLayoutRegisters()
	if conf == nil {
		return regs
	}
	if l := conf.GetString(ConfLanguage); l != "" {
		if _, err := language.Parse(l); err != nil {
			tracer().Errorf("configured language %q not recognized: %v", l, err)
		} else {
			regs.base[P_LANGUAGE] = l
		}
	}
	switch strings.ToLower(conf.GetString(ConfDirection)) {
	case "rtl":
		regs.base[P_TEXTDIRECTION] = bidi.RightToLeft
	case "ltr":
		regs.base[P_TEXTDIRECTION] = bidi.LeftToRight
	}
	if c := conf.GetString(ConfLinkColor); c != "" {
		regs.base[P_LINKCOLOR] = c
	}
	if f := conf.GetString(ConfFont); f != "" {
		regs.base[P_FONTFAMILY] = f
	}
	if s := conf.GetString(ConfFontSize); s != "" {
		if d, pcnt, err := dimen.ParseDimen(s); err == nil && !pcnt && d > 0 {
			regs.base[P_FONTSIZE] = d
		} else {
			tracer().Errorf("configured font size %q not usable", s)
		}
	}
	return regs
}

// Begingroup opens a group of parameter values.
func (regs *LayoutRegisters) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes a group, restoring the values valid before the group
// was opened.
func (regs *LayoutRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// Push sets a parameter value for the current group.
func (regs *LayoutRegisters) Push(key LayoutParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *parameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &parameterGroup{
				params: make(map[LayoutParameter]interface{}),
				level:  regs.grouplevel,
				next:   regs.groups,
			}
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

// Get returns the value of a parameter, as valid in the current group.
func (regs *LayoutRegisters) Get(key LayoutParameter) interface{} {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of layout parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// S returns a string parameter.
func (regs *LayoutRegisters) S(key LayoutParameter) string {
	if s, ok := regs.Get(key).(string); ok {
		return s
	}
	return ""
}

// D returns a dimension parameter.
func (regs *LayoutRegisters) D(key LayoutParameter) dimen.Dimen {
	if d, ok := regs.Get(key).(dimen.Dimen); ok {
		return d
	}
	return 0
}

// Language returns the language tag for case mapping.
func (regs *LayoutRegisters) Language() language.Tag {
	tag, err := language.Parse(regs.S(P_LANGUAGE))
	if err != nil {
		return language.Und
	}
	return tag
}

// Direction returns the default text direction.
func (regs *LayoutRegisters) Direction() bidi.Direction {
	if d, ok := regs.Get(P_TEXTDIRECTION).(bidi.Direction); ok {
		return d
	}
	return bidi.LeftToRight
}
