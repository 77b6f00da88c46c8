/*
Command arealayout lays out text into lines of a given width and prints
the resulting lines.

	arealayout -width 60bp -mono "Hello World|, and good bye"
	arealayout -style "font-family: Gentium; font-weight: bold" "Hello World"

Text given on the command line is split at '|' into separate text nodes,
flowing into the same block. The escape sequence '\n' denotes a line break.
Without text arguments, arealayout starts an interactive session, laying out
each line entered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/npillmayer/textarea/core"
	"github.com/npillmayer/textarea/core/dimen"
	"github.com/npillmayer/textarea/core/font"
	"github.com/npillmayer/textarea/core/font/fontregistry"
	"github.com/npillmayer/textarea/core/parameters"
	"github.com/npillmayer/textarea/engine/content"
	"github.com/npillmayer/textarea/engine/frame/area"
	"github.com/npillmayer/textarea/engine/frame/layout"
	"github.com/npillmayer/textarea/engine/glyphing"
	"github.com/npillmayer/textarea/engine/glyphing/monospace"
)

// tracer traces with key 'textarea.frame'
func tracer() tracing.Trace {
	return tracing.Select("textarea.frame")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	width := flag.String("width", "200bp", "Width of lines")
	fontname := flag.String("font", "", "Font family to look up")
	fontfile := flag.String("fontfile", "", "Font file to load")
	fontsize := flag.String("size", "10bp", "Font size")
	mono := flag.Bool("mono", false, "Use monospace metrics")
	transform := flag.String("transform", "", "Text transform [uppercase|lowercase|capitalize]")
	align := flag.String("align", "", "Alignment of lines [left|right|center]")
	lang := flag.String("lang", "en", "Language of the text")
	dir := flag.String("dir", "ltr", "Text direction [ltr|rtl]")
	css := flag.String("style", "", "CSS declarations for the text, e.g. \"font-style: italic\"")
	flag.Parse()

	// set up logging and layout parameters
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.textarea.frame":   *tlevel,
		"trace.textarea.compose": *tlevel,
		"trace.textarea.fonts":   *tlevel,
		parameters.ConfLanguage:  *lang,
		parameters.ConfDirection: *dir,
		parameters.ConfFont:      *fontname,
		parameters.ConfFontSize:  *fontsize,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	regs := parameters.FromConfiguration(conf)

	w, pcnt, err := dimen.ParseDimen(*width)
	if err != nil || pcnt {
		pterm.Error.Printf("cannot use width %q\n", *width)
		os.Exit(2)
	}
	cs, err := content.StyleFromDeclarations(*css)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	fonts, err := setupFonts(*fontfile, *mono, regs)
	if err != nil {
		core.UserError(err)
		os.Exit(3)
	}
	if registry, ok := fonts.(*fontregistry.Registry); ok && strings.EqualFold(*tlevel, "Debug") {
		registry.LogFontList()
	}
	p := &printer{
		ctx:       layout.NewContext(fonts, regs),
		width:     w,
		style:     cs,
		transform: *transform,
		align:     *align,
		direction: glyphing.DirectionFromBidi(regs.Direction()),
	}
	if flag.NArg() > 0 {
		if err := p.layout(strings.Join(flag.Args(), " ")); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
		return
	}
	repl(p)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupFonts creates the font manager for layout.
func setupFonts(fontfile string, mono bool, regs *parameters.LayoutRegisters) (layout.FontManager, error) {
	if mono {
		return monoFonts{}, nil
	}
	registry := fontregistry.GlobalRegistry()
	if fontfile != "" {
		f, err := font.LoadOpenTypeFont(fontfile)
		if err != nil {
			return nil, err
		}
		style, weight := fontregistry.GuessStyleAndWeight(fontfile)
		name := regs.S(parameters.P_FONTFAMILY)
		registry.StoreFont(fontregistry.NormalizeFontname(name, style, weight), f)
		pterm.Info.Printf("loaded font %s as %s\n", f.Fontname, name)
	}
	return registry, nil
}

// monoFonts provides monospace metrics for every font.
type monoFonts struct{}

func (monoFonts) FontMetrics(desc fontregistry.Descriptor) (glyphing.Metrics, error) {
	return monospace.Metrics(desc.Size), nil
}

// printer lays out text and prints the resulting lines.
type printer struct {
	ctx       *layout.Context
	width     dimen.Dimen
	style     content.ComputedStyle // from option -style
	transform string
	align     string
	direction glyphing.Direction
}

func (p *printer) layout(input string) error {
	input = strings.ReplaceAll(input, `\n`, "\n")
	var nodes []*content.TextContent
	for _, run := range strings.Split(input, "|") {
		cs := content.ComputedStyle{}
		for prop, value := range p.style {
			cs[prop] = value
		}
		if p.transform != "" {
			cs[content.TextTransform] = p.transform
		}
		nodes = append(nodes, content.NewText(run, cs, nil))
	}
	block := area.NewBlockArea(p.width)
	block.Alignment = p.align
	block.Direction = p.direction
	if len(nodes) == 1 {
		l, err := layout.NewTextAreaLayout(block, p.ctx, nodes[0])
		if err != nil {
			return err
		}
		if err = l.Layout(); err != nil {
			return err
		}
	} else {
		seq, err := content.NewSequence(nodes...)
		if err != nil {
			return err
		}
		if err = layout.LayoutSequence(block, p.ctx, seq); err != nil {
			return err
		}
	}
	if err := block.Close(); err != nil {
		return err
	}
	p.print(block)
	return nil
}

func (p *printer) print(block *area.BlockArea) {
	data := pterm.TableData{{"#", "x", "width", "text"}}
	for _, line := range block.Lines() {
		var b strings.Builder
		var x dimen.Dimen
		for i, c := range line.Children() {
			if i == 0 {
				x = c.Position().X
			}
			if ta, ok := c.(*area.TextArea); ok {
				b.WriteString(ta.Text)
				if ta.LineBreak {
					b.WriteString("⏎")
				}
			}
		}
		data = append(data, []string{
			fmt.Sprintf("%d", line.Number()),
			fmt.Sprintf("%.2f", x.Points()),
			fmt.Sprintf("%.2f", line.Width().Points()),
			fmt.Sprintf("%q", b.String()),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
	pterm.Info.Printf("%d lines, height %.2fbp, width %.2fbp\n",
		len(block.Lines()), block.Height().Points(), p.width.Points())
}

func repl(p *printer) {
	rl, err := readline.New("layout > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	defer rl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if err := p.layout(line); err != nil {
			pterm.Error.Println(core.UserMessage(err))
		}
	}
	pterm.Info.Println("Good bye!")
}
