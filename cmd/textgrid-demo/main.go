// Command textgrid-demo renders a catalog of attributed lines against a
// real terminal: overlapping spans, tab expansion, UTF-8 width
// compression, horizontal scrolling, word wrap, and the full role table.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/textgrid/attrline"
	"github.com/lixenwraith/textgrid/config"
	"github.com/lixenwraith/textgrid/palette"
	"github.com/lixenwraith/textgrid/render"
	"github.com/lixenwraith/textgrid/terminal"
)

var configFlag = flag.String("config", "", "Path to YAML config (default-colors, dim-text)")

func main() {
	flag.Parse()

	cfg := config.Config{}
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "textgrid-demo: %v\n", err)
			os.Exit(1)
		}
	}

	table, err := palette.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgrid-demo: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgrid-demo: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "textgrid-demo: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if rendering panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ntextgrid-demo crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	surf := terminal.NewTcellSurface(screen)
	styles := render.NewStyles(surf, table)
	styles.Init(cfg)

	scroll := 0
	for {
		draw(surf, styles, table, scroll)
		surf.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			surf.Resize()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
				if scroll > 0 {
					scroll--
				}
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
				scroll++
			}
		}
	}
}

func draw(surf *terminal.TcellSurface, styles *render.Styles, table *palette.Table, scroll int) {
	width, height := surf.Size()
	y := 0
	line := func(l *attrline.Line, base render.Role) {
		if y < height-1 {
			styles.DrawLine(surf, y, 0, l, attrline.NewRange(scroll, scroll+width), base)
			y++
		}
	}

	line(attrline.New("textgrid demo - q quits, h/l scroll"), render.RoleViewStatus)
	line(attrline.New(""), render.RoleText)

	// Overlapping spans: background color under a reversed region
	overlap := attrline.New("overlapping spans: background plus reverse video")
	overlap.WithSpan(attrline.BackgroundSpan(attrline.NewRange(19, 29), 1))
	overlap.WithSpan(attrline.StyleSpan(attrline.NewRange(24, 41), terminal.Style{Attr: terminal.AttrReverse}))
	line(overlap, render.RoleText)

	// Tab expansion and UTF-8 column compression
	tabs := attrline.New("col0\tcol8\tcol16 éèê end")
	tabs.WithSpan(attrline.ForegroundSpan(attrline.NewRange(5, 9), 6))
	line(tabs, render.RoleText)

	// Glyph override
	gutter := attrline.New("  marker line")
	gutter.WithSpan(attrline.GraphicSpan(attrline.NewRange(0, 1), '>'))
	line(gutter, render.RoleText)

	// Open-ended span to the window edge
	open := attrline.New("open-ended highlight ")
	open.WithSpan(attrline.StyleSpan(attrline.OpenRange(0), terminal.Style{Attr: terminal.AttrUnderline}))
	line(open, render.RoleText)

	// Word wrap with hanging indent, one rendered row per segment
	wrapped := attrline.New("wrap: ")
	wrapped.Insert(len(wrapped.Text), attrline.New(
		"the quick brown fox jumps over the lazy dog while the rain in spain stays mainly in the plain"),
		&attrline.WrapSettings{Width: 40, Indent: 6})
	for seg := range wrapped.SplitLines() {
		line(seg, render.RoleComment)
	}

	// Role sampler
	for _, r := range []render.Role{
		render.RoleOK, render.RoleWarning, render.RoleError,
		render.RoleKeyword, render.RoleString, render.RoleVariable,
		render.RoleDiffAdd, render.RoleDiffDelete,
		render.RoleLowThreshold, render.RoleMedThreshold, render.RoleHighThreshold,
	} {
		line(attrline.New("role: "+r.String()), r)
	}

	// Gradient block
	grad := attrline.New("")
	for i := 0; i < styles.GradientSize(); i++ {
		grad.Append(attrline.New("█"))
	}
	line(grad, render.RoleText)
	gl := y - 1
	for i := 0; i < styles.GradientSize() && i < width; i++ {
		cells := surf.ReadCells(gl, i, 1)
		if len(cells) == 1 {
			cells[0].Pair = styles.GradientPair(i)
			surf.WriteCells(gl, i, cells)
		}
	}

	// Matched color swatch via the palette
	swatch := attrline.New("nearest(#ff8700) on the xterm palette")
	if rgb, err := table.Parse("#ff8700"); err == nil {
		swatch.WithSpan(attrline.StyleSpan(attrline.NewRange(0, len(swatch.Text)),
			terminal.Style{Pair: styles.EnsurePair(rgb, palette.EmptyRGB)}))
	}
	line(swatch, render.RoleText)

	for y < height-1 {
		line(attrline.New(""), render.RoleText)
	}

	status := fmt.Sprintf(" scroll=%d  width=%d  pairs<=%d ", scroll, width, surf.MaxColorPairs())
	status = runewidth.Truncate(status, width, "~")
	styles.DrawLine(surf, height-1, 0, attrline.New(status),
		attrline.NewRange(0, width), render.RoleStatus)
}
