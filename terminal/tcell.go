package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// TcellSurface adapts a tcell.Screen to the Surface interface. It keeps a
// shadow cell buffer so ReadCells returns exactly what the compositor
// wrote, independent of what tcell has flushed to the real terminal.
type TcellSurface struct {
	screen tcell.Screen

	width  int
	height int
	cells  []Cell // row-major: cells[row*width+col]
	pairs  map[int]PairColors

	curRow int
	curCol int
}

// NewTcellSurface wraps an initialized tcell screen.
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	s := &TcellSurface{
		screen: screen,
		pairs:  make(map[int]PairColors),
	}
	w, h := screen.Size()
	s.resize(w, h)
	return s
}

func (s *TcellSurface) resize(w, h int) {
	s.width = w
	s.height = h
	s.cells = make([]Cell, w*h)
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' '}
	}
}

// Resize must be called after the screen reports a resize event.
func (s *TcellSurface) Resize() {
	w, h := s.screen.Size()
	s.resize(w, h)
}

// Show flushes pending updates to the terminal.
func (s *TcellSurface) Show() {
	s.screen.Show()
}

// Size returns the surface dimensions.
func (s *TcellSurface) Size() (int, int) {
	return s.width, s.height
}

// MoveCursor positions the write cursor
func (s *TcellSurface) MoveCursor(row, col int) {
	s.curRow = row
	s.curCol = col
}

// WriteText writes one cell per rune at the cursor, advancing it
func (s *TcellSurface) WriteText(st Style, text string) {
	for _, r := range text {
		s.put(s.curRow, s.curCol, Cell{Rune: r, Attr: st.Attr, Pair: st.Pair})
		s.curCol++
	}
}

// HLine writes ch count times from the cursor without moving it
func (s *TcellSurface) HLine(st Style, ch rune, count int) {
	for i := 0; i < count; i++ {
		s.put(s.curRow, s.curCol+i, Cell{Rune: ch, Attr: st.Attr, Pair: st.Pair})
	}
}

func (s *TcellSurface) put(row, col int, c Cell) {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return
	}
	s.cells[row*s.width+col] = c
	s.screen.SetContent(col, row, c.Rune, nil, s.styleFor(c))
}

// ReadCells returns a copy of count cells from the shadow buffer
func (s *TcellSurface) ReadCells(row, col, count int) []Cell {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return nil
	}
	if col+count > s.width {
		count = s.width - col
	}
	out := make([]Cell, count)
	copy(out, s.cells[row*s.width+col:row*s.width+col+count])
	return out
}

// WriteCells stores cells and forwards them to the screen
func (s *TcellSurface) WriteCells(row, col int, cells []Cell) {
	for i, c := range cells {
		s.put(row, col+i, c)
	}
}

// SetPair defines the colors of a color pair
func (s *TcellSurface) SetPair(pair, fg, bg int) {
	s.pairs[pair] = PairColors{Fg: fg, Bg: bg}
}

// SupportsColor reports whether the terminal can display color
func (s *TcellSurface) SupportsColor() bool {
	return s.screen.Colors() > 0
}

// MaxColorPairs returns the usable pair-table size for this terminal
func (s *TcellSurface) MaxColorPairs() int {
	if s.screen.Colors() >= 256 {
		return 65536
	}
	return 64
}

// MaxColors returns the terminal color count, capped at the palette size
func (s *TcellSurface) MaxColors() int {
	colors := s.screen.Colors()
	if colors > 256 {
		colors = 256
	}
	return colors
}

// styleFor translates a cell into a tcell style by looking its pair up in
// the pair table.
func (s *TcellSurface) styleFor(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if pc, ok := s.pairs[c.Pair]; ok && c.Pair != 0 {
		st = st.Foreground(paletteColor(pc.Fg)).Background(paletteColor(pc.Bg))
	}
	a := c.Attr
	st = st.Bold(a&AttrBold != 0).
		Dim(a&AttrDim != 0).
		Italic(a&AttrItalic != 0).
		Underline(a&AttrUnderline != 0).
		Blink(a&AttrBlink != 0).
		Reverse(a&AttrReverse != 0)
	return st
}

func paletteColor(idx int) tcell.Color {
	if idx < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(idx)
}
