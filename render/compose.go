package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/lixenwraith/textgrid/attrline"
	"github.com/lixenwraith/textgrid/terminal"
)

// adjustment records how far display columns drift from byte offsets at a
// given origin: a tab pushes later columns right, UTF-8 continuation
// bytes pull them left.
type adjustment struct {
	origin int
	delta  int
}

// tabStop is the fixed tab width of the expansion pass.
const tabStop = 8

// DrawLine renders the display window [window.Start, window.End) of an
// attributed line at row y of the surface, starting at column x. The
// window is expressed in display columns of the expanded text, so
// window.Start > 0 scrolls the line horizontally.
//
// Rendering is layered: the base role paints every cell first, then spans
// apply in stable-sorted order (glyph overrides, foreground/background
// accumulation, style merges), and finally any accumulated colors are
// materialized over the whole window through the canonical ANSI pair
// block. That last pass only touches the color component, so style bits
// merged earlier survive.
func (s *Styles) DrawLine(surf terminal.Surface, y, x int, line *attrline.Line, window attrline.Range, base Role) {
	if window.End < 0 || window.End < window.Start {
		panic(fmt.Sprintf("render: invalid line window [%d,%d)", window.Start, window.End))
	}
	lineWidth := window.Length()

	// Expansion pass: tabs to the next multiple-of-8 column, '\r'
	// dropped, '\n' to a space, multi-byte UTF-8 re-emitted verbatim
	// with a negative column adjustment per continuation byte.
	text := line.Text
	expanded := make([]byte, 0, len(text))
	var adjustments []adjustment

	for lpc := 0; lpc < len(text); lpc++ {
		expStart := len(expanded)
		ch := text[lpc]

		switch ch {
		case '\t':
			for {
				expanded = append(expanded, ' ')
				if len(expanded)%tabStop == 0 {
					break
				}
			}
			adjustments = append(adjustments, adjustment{lpc, len(expanded) - expStart - 1})

		case '\r':
			// dropped

		case '\n':
			expanded = append(expanded, ' ')

		default:
			expanded = append(expanded, ch)
			offset := 0
			switch {
			case ch&0xf8 == 0xf0:
				offset = -3
			case ch&0xf0 == 0xe0:
				offset = -2
			case ch&0xe0 == 0xc0:
				offset = -1
			}
			if offset != 0 {
				adjustments = append(adjustments, adjustment{lpc, offset})
				for ; offset != 0 && lpc+1 < len(text); lpc, offset = lpc+1, offset+1 {
					expanded = append(expanded, text[lpc+1])
				}
			}
		}
	}

	// Base paint: the base role's style across the whole window, padded
	// with blanks past the end of the text. One codepoint is one column.
	baseStyle := s.RoleAttrs(base)
	runes := []rune(string(expanded))

	surf.MoveCursor(y, x)
	written := 0
	if window.Start < len(runes) {
		visEnd := len(runes)
		if visEnd > window.End {
			visEnd = window.End
		}
		surf.WriteText(baseStyle, string(runes[window.Start:visEnd]))
		written = visEnd - window.Start
	}
	if written < lineWidth {
		surf.HLine(baseStyle, ' ', lineWidth-written)
	}

	// Span resolution, in stable-sorted order.
	var fg, bg []uint8
	hasFg, hasBg := false, false

	for _, sp := range sortSpans(line.Spans) {
		switch sp.Kind {
		case attrline.KindStyle, attrline.KindGraphic,
			attrline.KindForeground, attrline.KindBackground:
		default:
			// Transported for other collaborators, not rendered.
			continue
		}

		if sp.Range.Start < 0 {
			panic(fmt.Sprintf("render: span with negative start %d", sp.Range.Start))
		}

		// Byte offsets to display columns.
		ar := sp.Range
		for _, adj := range adjustments {
			if adj.origin < sp.Range.Start {
				ar.Start += adj.delta
			}
		}
		if ar.End != attrline.Open {
			for _, adj := range adjustments {
				if adj.origin < sp.Range.End {
					ar.End += adj.delta
				}
			}
		}

		// Clip into window-relative columns.
		ar.Start -= window.Start
		if ar.Start < 0 {
			ar.Start = 0
		}
		if ar.End == attrline.Open {
			ar.End = window.Start + lineWidth
		}
		ar.End -= window.Start
		if ar.End > lineWidth {
			ar.End = lineWidth
		}
		if ar.End < ar.Start {
			ar.End = ar.Start
		}

		switch sp.Kind {
		case attrline.KindGraphic:
			// Glyph override, everything else untouched.
			for i := ar.Start; i < ar.End; i++ {
				cells := surf.ReadCells(y, x+i, 1)
				if len(cells) == 0 {
					continue
				}
				cells[0].Rune = sp.Ch
				surf.WriteCells(y, x+i, cells)
			}

		case attrline.KindForeground:
			if fg == nil {
				fg = make([]uint8, lineWidth)
				for i := range fg {
					fg[i] = colorWhite
				}
			}
			for i := ar.Start; i < ar.End; i++ {
				fg[i] = sp.Color
			}
			hasFg = true

		case attrline.KindBackground:
			if bg == nil {
				bg = make([]uint8, lineWidth) // zero value: black
			}
			for i := ar.Start; i < ar.End; i++ {
				bg[i] = sp.Color
			}
			hasBg = true

		case attrline.KindStyle:
			if ar.End <= ar.Start {
				continue
			}
			attrs := sp.Style.Attr
			pair := sp.Style.Pair
			if attrs == 0 && pair <= 0 {
				continue
			}

			cells := surf.ReadCells(y, x+ar.Start, ar.Length())
			for i := range cells {
				cells[i].Attr = terminal.MergeAttrs(cells[i].Attr, attrs)
				if pair > 0 {
					cells[i].Pair = pair
				}
			}
			surf.WriteCells(y, x+ar.Start, cells)
		}
	}

	// Color materialization: one pass over the whole window, overwriting
	// only the color component. Runs last, so it wins over per-span pairs
	// on any column both paths touched.
	if hasFg || hasBg {
		if fg == nil {
			fg = make([]uint8, lineWidth)
			for i := range fg {
				fg[i] = colorWhite
			}
		}
		if bg == nil {
			bg = make([]uint8, lineWidth)
		}

		cells := surf.ReadCells(y, x, lineWidth)
		for i := range cells {
			cells[i].Pair = AnsiPairIndex(fg[i], bg[i])
		}
		surf.WriteCells(y, x, cells)
	}
}

// sortSpans returns a stable-sorted copy ordered by range start, then end
// with open ends last; ties keep their original encounter order.
func sortSpans(spans []attrline.Span) []attrline.Span {
	out := make([]attrline.Span, len(spans))
	copy(out, spans)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Range, out[j].Range
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		ae, be := a.End, b.End
		if ae == attrline.Open {
			ae = math.MaxInt
		}
		if be == attrline.Open {
			be = math.MaxInt
		}
		return ae < be
	})
	return out
}
