package fontregistry

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"

	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/core/font"
	"github.com/npillmayer/textarea/engine/glyphing"
)

// Descriptor describes a font to look up.
type Descriptor struct {
	Family string
	Style  xfont.Style
	Weight xfont.Weight
	Size   dimen.Dimen
}

// Registry is a type for holding information about loaded fonts for a
// typesetter.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
	lookup    func(string) (string, error) // find a font file by name
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry. Fonts not stored explicitly will be
// searched for among the system fonts.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
		lookup:    findfont.Find,
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// TypeCase returns a concrete typecase with a given font and size.
// If a suitable typecase has already been cached, TypeCase will return the cached
// typecase. If a suitable font has previously been stored under key
// `normalizedName`, a typecase will be derived from this font.
//
// If no typecase can be produced, TypeCase will derive one from a system-wide
// fallback font and return it, together with an error of code core.EMISSING.
func (fr *Registry) TypeCase(normalizedName string, size dimen.Dimen) (*font.TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", normalizedName, size.Points())
	tname := appendSize(normalizedName, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Debugf("registry found font %s", tname)
		return t, nil
	}
	f, ok := fr.fonts[normalizedName]
	if !ok {
		f = fr.findSystemFont(normalizedName)
	}
	if f != nil {
		t, err := f.PrepareCase(size)
		if err != nil {
			return nil, err
		}
		tracer().Infof("font registry has font %s, caches at %.2f", normalizedName, size.Points())
		fr.typecases[tname] = t
		return t, nil
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := core.Error(core.EMISSING, "font %s not found in registry", normalizedName)
	//
	// store typecase from fallback font, if not present yet, and return it
	fname := "fallback"
	tname = appendSize(fname, size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	fallback := font.FallbackFont()
	t, ferr := fallback.PrepareCase(size)
	if ferr != nil {
		return nil, ferr
	}
	tracer().Infof("font registry caches fallback font %s at %.2f", fname, size.Points())
	fr.fonts[fname] = fallback
	fr.typecases[tname] = t
	return t, err
}

// FontMetrics returns the metrics of a font, suitable for measuring text.
// Fonts which cannot be found are substituted by the fallback font. An error
// is returned only if no metrics at all can be produced.
func (fr *Registry) FontMetrics(desc Descriptor) (glyphing.Metrics, error) {
	name := NormalizeFontname(desc.Family, desc.Style, desc.Weight)
	t, err := fr.TypeCase(name, desc.Size)
	if t == nil {
		return nil, err
	}
	if err != nil {
		tracer().Infof("substituting fallback font: %s", core.UserMessage(err))
	}
	return t, nil
}

// findSystemFont tries to locate a font file for a normalized name among
// the system fonts. The caller must hold the lock.
func (fr *Registry) findSystemFont(normalizedName string) *font.ScalableFont {
	if fr.lookup == nil || normalizedName == "" || normalizedName == "fallback" {
		return nil
	}
	for _, candidate := range fontfileCandidates(normalizedName) {
		fpath, err := fr.lookup(candidate)
		if err != nil {
			continue
		}
		f, err := font.LoadOpenTypeFont(fpath)
		if err != nil {
			tracer().Errorf("cannot load system font %s: %v", fpath, err)
			continue
		}
		tracer().Infof("registry loaded system font %s for %s", fpath, normalizedName)
		fr.fonts[normalizedName] = f
		return f
	}
	return nil
}

func fontfileCandidates(normalizedName string) []string {
	family := strings.SplitN(normalizedName, "-", 2)[0]
	return []string{
		normalizedName + ".ttf",
		normalizedName + ".otf",
		family + ".ttf",
		family + ".otf",
	}
}

// LogFontList is a helper function to dump the list of known fonts and typecases
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for k := range fr.typecases {
		tracer().Infof("typecase [%s]", k)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname creates a registry key from a font name and variant.
func NormalizeFontname(fname string, style xfont.Style, weight xfont.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if ext := path.Ext(fname); ext == ".ttf" || ext == ".otf" {
		fname = fname[:len(fname)-len(ext)]
	}
	fname = strings.ToLower(fname)
	if fname == "" {
		fname = "fallback"
	}
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		fname += "-italic"
	}
	switch weight {
	case xfont.WeightLight, xfont.WeightExtraLight, xfont.WeightThin:
		fname += "-light"
	case xfont.WeightBold, xfont.WeightExtraBold, xfont.WeightSemiBold, xfont.WeightBlack:
		fname += "-bold"
	}
	return fname
}

func appendSize(fname string, size dimen.Dimen) string {
	return fmt.Sprintf("%s-%.2f", fname, size.Points())
}

// StyleFromCSS interprets a CSS font-style value.
func StyleFromCSS(value string) xfont.Style {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "italic":
		return xfont.StyleItalic
	case "oblique":
		return xfont.StyleOblique
	}
	return xfont.StyleNormal
}

// WeightFromCSS interprets a CSS font-weight value, either numeric or one of
// the keywords 'normal' and 'bold'.
func WeightFromCSS(value string) xfont.Weight {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "bold", "bolder":
		return xfont.WeightBold
	case "lighter":
		return xfont.WeightLight
	case "", "normal":
		return xfont.WeightNormal
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 100 || n > 900 {
		return xfont.WeightNormal
	}
	return xfont.Weight(n/100 - 4)
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}
