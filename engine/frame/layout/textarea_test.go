package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/core/font/fontregistry"
	"github.com/npillmayer/textarea/core/parameters"
	"github.com/npillmayer/textarea/engine/content"
	"github.com/npillmayer/textarea/engine/frame/area"
	"github.com/npillmayer/textarea/engine/frame/compose"
	"github.com/npillmayer/textarea/engine/glyphing"
	"github.com/npillmayer/textarea/engine/glyphing/monospace"
)

// --- Test doubles ----------------------------------------------------------

// monoFonts hands out 10bp monospace metrics for every font request.
type monoFonts struct {
	requests []fontregistry.Descriptor
	metrics  glyphing.Metrics
	err      error
}

func (mf *monoFonts) FontMetrics(desc fontregistry.Descriptor) (glyphing.Metrics, error) {
	mf.requests = append(mf.requests, desc)
	if mf.err != nil {
		return nil, mf.err
	}
	if mf.metrics != nil {
		return mf.metrics, nil
	}
	return monospace.Metrics(10 * dimen.BP), nil
}

// brokenMetrics fails for the letter 'x'.
type brokenMetrics struct {
	glyphing.Metrics
}

func (bm brokenMetrics) Advance(r rune) (dimen.Dimen, error) {
	if r == 'x' {
		return 0, fmt.Errorf("no glyph for %q", r)
	}
	return bm.Metrics.Advance(r)
}

// recorder is a block which logs calls of the layout driver.
type recorder struct {
	*area.BlockArea
	log *[]string
}

func (r recorder) Add(a area.Area) error {
	if ta, ok := a.(*area.TextArea); ok {
		*r.log = append(*r.log, fmt.Sprintf("add %q", ta.Text))
	}
	return r.BlockArea.Add(a)
}

func (r recorder) EndLine() error {
	*r.log = append(*r.log, "endline")
	return r.BlockArea.EndLine()
}

type recordingCompositor struct {
	Compositor
	log *[]string
}

func (rc recordingCompositor) SetNewLineStatus(isNewLine bool) {
	*rc.log = append(*rc.log, fmt.Sprintf("newline=%v", isNewLine))
	rc.Compositor.SetNewLineStatus(isNewLine)
}

func setup(t *testing.T, width dimen.Dimen, txt string, cs content.ComputedStyle) (*TextAreaLayout, *area.BlockArea, *[]string) {
	block := area.NewBlockArea(width)
	log := &[]string{}
	c := content.NewText(txt, cs, nil)
	l, err := NewTextAreaLayout(recorder{BlockArea: block, log: log}, NewContext(&monoFonts{}, nil), c)
	if err != nil {
		t.Fatalf("cannot create text layout: %v", err)
	}
	l.comp = recordingCompositor{Compositor: l.comp, log: log}
	return l, block, log
}

// joinedLines returns the text of every line of a block.
func joinedLines(block *area.BlockArea) []string {
	var lines []string
	for _, texts := range lineTexts(block) {
		lines = append(lines, strings.Join(texts, ""))
	}
	return lines
}

func lineTexts(block *area.BlockArea) [][]string {
	var lines [][]string
	for _, l := range block.Lines() {
		var texts []string
		for _, c := range l.Children() {
			texts = append(texts, c.(*area.TextArea).Text)
		}
		lines = append(lines, texts)
	}
	return lines
}

// --- Tests -----------------------------------------------------------------

func TestHelloWorldLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	l, block, log := setup(t, 500*dimen.BP, "Hello\nWorld", nil)
	assert.NoError(t, l.Layout())
	assert.Equal(t, []string{
		`add "Hello"`, "newline=false", "endline", "newline=true",
		`add "World"`, "newline=false",
	}, *log)
	assert.NoError(t, block.Close())
	assert.Equal(t, [][]string{{"Hello"}, {"World"}}, lineTexts(block))
	assert.Equal(t, 2, l.areas)
	assert.Equal(t, 1, l.breaks)
}

func TestBreakAccounting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	for _, input := range []string{
		"no break at all",
		"one\ntwo\r\nthree\rfour",
		"\n\n\n",
		"trailing break\n",
		"   \n  spaces \n   ",
	} {
		l, _, log := setup(t, 60*dimen.BP, input, nil)
		assert.NoError(t, l.Layout())
		endlines, breakAreas := 0, 0
		for i, entry := range *log {
			switch entry {
			case "endline":
				endlines++
				assert.Equal(t, "newline=false", (*log)[i-1], "endline must follow a placed area")
			case "newline=true":
				assert.Equal(t, "endline", (*log)[i-1], "new line status only after a break")
			}
		}
		for _, line := range l.parent.(recorder).Lines() {
			for _, c := range line.Children() {
				if c.(*area.TextArea).LineBreak {
					breakAreas++
				}
			}
		}
		for _, c := range l.parent.(recorder).CurrentLine().Children() {
			if c.(*area.TextArea).LineBreak {
				breakAreas++
			}
		}
		assert.Equal(t, breakAreas, endlines, "input %q", input)
		assert.Equal(t, l.breaks, endlines)
	}
}

func TestEveryAreaIsFollowedByStatusFalse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	l, _, log := setup(t, 50*dimen.BP, "aa bb cc dd", nil)
	assert.NoError(t, l.Layout())
	adds := 0
	for i, entry := range *log {
		if len(entry) > 3 && entry[:3] == "add" {
			adds++
			assert.Equal(t, "newline=false", (*log)[i+1])
		}
	}
	assert.Equal(t, 3, adds)
}

func TestWrapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	l, block, _ := setup(t, 50*dimen.BP, "aa bb cc dd", nil)
	assert.NoError(t, l.Layout())
	assert.NoError(t, block.Close())
	assert.Equal(t, [][]string{{"aa bb", ""}, {"cc dd"}}, lineTexts(block))
	for _, line := range block.Lines() {
		assert.LessOrEqual(t, int64(line.Width()), int64(50*dimen.BP))
	}
}

func TestWrappingKeepsSpacesBetweenWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	l, block, _ := setup(t, 100*dimen.BP, "aaaa bbbb cccc dddd eeee", nil)
	assert.NoError(t, l.Layout())
	assert.NoError(t, block.Close())
	assert.Equal(t, []string{"aaaa bbbb ", "cccc dddd ", "eeee"}, joinedLines(block))
	//
	block = area.NewBlockArea(50 * dimen.BP)
	seq, err := content.NewSequence(
		content.NewText("aaaa", nil, nil),
		content.NewText(" bbbb cc", nil, nil),
	)
	assert.NoError(t, err)
	assert.NoError(t, LayoutSequence(block, NewContext(&monoFonts{}, nil), seq))
	assert.NoError(t, block.Close())
	assert.Equal(t, []string{"aaaa", "bbbb ", "cc"}, joinedLines(block))
}

func TestEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	block := area.NewBlockArea(100 * dimen.BP)
	c := content.NewText("", content.ComputedStyle{content.TextTransform: "uppercase"}, nil)
	l, err := NewTextAreaLayout(block, NewContext(&monoFonts{}, nil), c)
	assert.NoError(t, err)
	assert.Equal(t, " ", c.Text())
	assert.NoError(t, l.Layout())
	assert.NoError(t, block.Close())
	assert.Equal(t, [][]string{{" "}}, lineTexts(block))
}

func TestUppercaseText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	block := area.NewBlockArea(100 * dimen.BP)
	c := content.NewText("café", content.ComputedStyle{content.TextTransform: "uppercase"}, nil)
	l, err := NewTextAreaLayout(block, NewContext(&monoFonts{}, nil), c)
	assert.NoError(t, err)
	assert.Equal(t, "CAFÉ", c.Text())
	assert.NoError(t, l.Layout())
	assert.Equal(t, "CAFÉ", block.CurrentLine().Children()[0].(*area.TextArea).Text)
}

func TestOverflowingFirstWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	l, block, _ := setup(t, 30*dimen.BP, "Extraordinary things", nil)
	assert.NoError(t, l.Layout())
	assert.NoError(t, block.Close())
	assert.Equal(t, [][]string{{"Extraordinary", ""}, {"things"}}, lineTexts(block))
}

func TestInitialNewLineStatus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	block := area.NewBlockArea(200 * dimen.BP)
	fonts := &monoFonts{}
	first, err := NewTextAreaLayout(block, NewContext(fonts, nil), content.NewText("Hello", nil, nil))
	assert.NoError(t, err)
	assert.True(t, first.comp.(*compose.TextCompositor).NewLineStatus())
	assert.NoError(t, first.Layout())
	//
	span := area.NewInlineContainer("span")
	assert.NoError(t, block.Add(span))
	second, err := NewTextAreaLayout(span, NewContext(fonts, nil), content.NewText(" world", nil, nil))
	assert.NoError(t, err)
	assert.False(t, second.comp.(*compose.TextCompositor).NewLineStatus())
	assert.NoError(t, second.Layout())
	assert.Equal(t, " world", span.Children()[0].(*area.TextArea).Text)
	//
	detached := area.NewInlineContainer("detached")
	third, err := NewTextAreaLayout(detached, NewContext(fonts, nil), content.NewText(" x", nil, nil))
	assert.NoError(t, err)
	assert.True(t, third.comp.(*compose.TextCompositor).NewLineStatus())
}

func TestFontLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	fonts := &monoFonts{}
	regs := parameters.NewLayoutRegisters()
	regs.Push(parameters.P_FONTFAMILY, "Gentium")
	regs.Push(parameters.P_TEXTDIRECTION, bidi.RightToLeft)
	ctx := NewContext(fonts, regs)
	block := area.NewBlockArea(100 * dimen.BP)
	cs := content.ComputedStyle{content.FontSize: "12pt", content.FontWeight: "bold"}
	l, err := NewTextAreaLayout(block, ctx, content.NewText("a", cs, nil))
	assert.NoError(t, err)
	if assert.Len(t, fonts.requests, 1) {
		assert.Equal(t, "Gentium", fonts.requests[0].Family)
		assert.Equal(t, 12*dimen.PT, fonts.requests[0].Size)
		assert.Equal(t, xfont.WeightBold, fonts.requests[0].Weight)
	}
	assert.Equal(t, glyphing.RightToLeft, l.Style().Direction)
	//
	_, err = NewTextAreaLayout(block, ctx, content.NewText("b", content.ComputedStyle{content.Direction: "ltr"}, nil))
	assert.NoError(t, err)
	assert.Equal(t, 10*dimen.PT, fonts.requests[1].Size)
}

func TestMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	fonts := &monoFonts{err: core.Error(core.EMISSING, "no fonts at all")}
	block := area.NewBlockArea(100 * dimen.BP)
	_, err := NewTextAreaLayout(block, NewContext(fonts, nil), content.NewText("a", nil, nil))
	assert.Equal(t, core.EFONT, core.Code(err))
}

func TestInvalidArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	block := area.NewBlockArea(100 * dimen.BP)
	_, err := NewTextAreaLayout(block, nil, nil)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = NewTextAreaLayout(nil, nil, content.NewText("a", nil, nil))
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestPartialOutputOnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	fonts := &monoFonts{metrics: brokenMetrics{monospace.Metrics(10 * dimen.BP)}}
	block := area.NewBlockArea(100 * dimen.BP)
	l, err := NewTextAreaLayout(block, NewContext(fonts, nil), content.NewText("ab\nxy", nil, nil))
	assert.NoError(t, err)
	err = l.Layout()
	assert.Equal(t, core.EFONT, core.Code(err))
	assert.Equal(t, [][]string{{"ab"}}, lineTexts(block))
}

func TestSequenceFlowsIntoOneLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	block := area.NewBlockArea(200 * dimen.BP)
	seq, err := content.NewSequence(
		content.NewText("Hello ", nil, nil),
		content.NewText(" big", content.ComputedStyle{content.TextTransform: "uppercase"}, nil),
		content.NewText(" world\nbye", nil, nil),
	)
	assert.NoError(t, err)
	assert.NoError(t, LayoutSequence(block, NewContext(&monoFonts{}, nil), seq))
	assert.NoError(t, block.Close())
	assert.Equal(t, [][]string{{"Hello ", " BIG", " world"}, {"bye"}}, lineTexts(block))
}

func TestSequenceWithEmptyNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	block := area.NewBlockArea(100 * dimen.BP)
	empty := content.NewText("", nil, nil)
	seq, err := content.NewSequence(content.NewText("a", nil, nil), empty, content.NewText("b", nil, nil))
	assert.NoError(t, err)
	assert.NoError(t, LayoutSequence(block, NewContext(&monoFonts{}, nil), seq))
	assert.NoError(t, block.Close())
	assert.Equal(t, [][]string{{"a", " ", "b"}}, lineTexts(block))
	assert.Equal(t, " ", empty.Text())
}

func TestNodeLanguageIsScopedToNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textarea.frame")
	defer teardown()
	//
	regs := parameters.NewLayoutRegisters()
	ctx := NewContext(&monoFonts{}, regs)
	upper := content.ComputedStyle{content.TextTransform: "uppercase"}
	turkish := content.ComputedStyle{content.TextTransform: "uppercase", content.Language: "tr"}
	nodes := []*content.TextContent{
		content.NewText("i", upper, nil),
		content.NewText("i", turkish, nil),
		content.NewText("i", upper, nil),
	}
	seq, err := content.NewSequence(nodes...)
	assert.NoError(t, err)
	block := area.NewBlockArea(100 * dimen.BP)
	assert.NoError(t, LayoutSequence(block, ctx, seq))
	assert.Equal(t, "I", nodes[0].Text())
	assert.Equal(t, "İ", nodes[1].Text())
	assert.Equal(t, "I", nodes[2].Text())
	assert.Equal(t, "en", regs.S(parameters.P_LANGUAGE))
}
