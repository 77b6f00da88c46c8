package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"

	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/core/parameters"
	"github.com/npillmayer/textarea/engine/content"
	"github.com/npillmayer/textarea/engine/glyphing"
	"github.com/npillmayer/textarea/engine/glyphing/monospace"
)

func TestResolveDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.style")
	defer teardown()
	//
	font := monospace.Metrics(10 * dimen.BP)
	st := Resolve(content.NewText("x", nil, nil), font, nil)
	assert.Equal(t, glyphing.LeftToRight, st.Direction)
	assert.False(t, st.UnderLine)
	assert.False(t, st.LineThrough)
	assert.Equal(t, dimen.Dimen(0), st.LetterSpacing)
	assert.Equal(t, color.Black, st.Color)
	assert.Equal(t, font, st.Font)
}

func TestResolveProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.style")
	defer teardown()
	//
	cs := content.ComputedStyle{
		content.Direction:       "RTL",
		content.FontSize:        "12pt",
		content.LetterSpacing:   "1bp",
		content.WordSpacing:     "garbage",
		content.TextLinethrough: "line-through",
		content.TextAlign:       "center",
		content.Color:           "red",
	}
	st := Resolve(content.NewText("x", cs, nil), nil, nil)
	assert.Equal(t, glyphing.RightToLeft, st.Direction)
	assert.Equal(t, 12*dimen.PT, st.FontSize)
	assert.Equal(t, dimen.BP, st.LetterSpacing)
	assert.Equal(t, dimen.Dimen(0), st.WordSpacing)
	assert.True(t, st.LineThrough)
	assert.Equal(t, "center", st.Align)
	assert.Equal(t, colornames.Red, st.Color)
	assert.Equal(t, glyphing.Spacing{Letter: dimen.BP}, st.Spacing())
}

func TestHyperlinkStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.style")
	defer teardown()
	//
	cs := content.ComputedStyle{content.Color: "green"}
	c := content.NewText("link", cs, nil)
	c.SetHyperlink(&content.Hyperlink{Target: "#top"})
	st := Resolve(c, nil, nil)
	assert.True(t, st.UnderLine)
	assert.Equal(t, DefaultLinkColor, st.Color)
	//
	regs := parameters.NewLayoutRegisters()
	regs.Push(parameters.P_LINKCOLOR, "#800080")
	st = Resolve(c, nil, regs)
	assert.Equal(t, color.RGBA{0x80, 0, 0x80, 0xff}, st.Color)
	//
	c = content.NewText("link", cs, content.ComputedStyle{content.Color: "#f00"})
	c.SetHyperlink(&content.Hyperlink{})
	st = Resolve(c, nil, regs)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, st.Color)
	assert.True(t, st.UnderLine)
}

func TestColorProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.style")
	defer teardown()
	//
	assert.Equal(t, colornames.Cornflowerblue, Property(" CornflowerBlue ").Color())
	assert.Equal(t, color.RGBA{0x12, 0x34, 0x56, 0xff}, Property("#123456").Color())
	assert.Equal(t, color.Black, Property("#12").Color())
	assert.Equal(t, color.Black, Property("no-such-color").Color())
}

func TestUnusableColorFallsThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.style")
	defer teardown()
	//
	cs := content.ComputedStyle{content.Color: "green"}
	c := content.NewText("x", cs, content.ComputedStyle{content.Color: "no-such-color"})
	st := Resolve(c, nil, nil)
	assert.Equal(t, colornames.Green, st.Color)
	//
	c.SetHyperlink(&content.Hyperlink{})
	st = Resolve(c, nil, nil)
	assert.Equal(t, DefaultLinkColor, st.Color)
	//
	c = content.NewText("x", content.ComputedStyle{content.Color: "#12"}, nil)
	st = Resolve(c, nil, nil)
	assert.Equal(t, color.Black, st.Color)
	//
	_, ok := Property("#12").ParseColor()
	assert.False(t, ok)
}
