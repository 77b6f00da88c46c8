package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/engine/glyphing"
)

var _ glyphing.Metrics = &TypeCase{}

func TestBasicFaceTypeCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.fonts")
	defer teardown()
	//
	tc := NewTypeCase(basicfont.Face7x13, 13*dimen.BP)
	adv, err := tc.Advance('a')
	assert.NoError(t, err)
	assert.Equal(t, 7*dimen.BP, adv)
	assert.Equal(t, 11*dimen.BP, tc.Ascent())
	assert.Equal(t, 2*dimen.BP, tc.Descent())
	w, err := glyphing.Measure(tc, "Hello", glyphing.Spacing{})
	assert.NoError(t, err)
	assert.Equal(t, 35*dimen.BP, w)
}

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f == nil || f.SFNT == nil {
		t.Fatalf("fallback font should always be present")
	}
	tc, err := f.PrepareCase(12 * dimen.BP)
	assert.NoError(t, err)
	assert.Equal(t, f, tc.ScalableFontParent())
	wide, _ := tc.Advance('W')
	narrow, _ := tc.Advance('i')
	assert.Greater(t, int(wide), int(narrow))
	assert.Greater(t, int(tc.Ascent()), 0)
}

func TestTypeCaseWithoutFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.fonts")
	defer teardown()
	//
	tc := NewTypeCase(nil, 10*dimen.BP)
	_, err := tc.Advance('x')
	assert.Equal(t, core.EFONT, core.Code(err))
}

func TestLoadMissingFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.fonts")
	defer teardown()
	//
	_, err := LoadOpenTypeFont("/no/such/font.ttf")
	assert.Equal(t, core.EMISSING, core.Code(err))
}
