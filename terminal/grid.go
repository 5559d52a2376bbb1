package terminal

// PairColors records the foreground/background of a defined color pair.
// -1 means the terminal default.
type PairColors struct {
	Fg, Bg int
}

// Grid is an in-memory Surface. It backs tests and headless rendering and
// doubles as documentation for how a real surface is expected to behave.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
	pairs  map[int]PairColors

	colors   int
	maxPairs int

	curRow int
	curCol int
}

// NewGrid creates a grid of blank cells with 256-color capability.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			cells[y][x] = Cell{Rune: ' '}
		}
	}
	return &Grid{
		width:    width,
		height:   height,
		cells:    cells,
		pairs:    make(map[int]PairColors),
		colors:   256,
		maxPairs: 65536,
	}
}

// SetCapability overrides the advertised color capability. colors == 0
// models a monochrome terminal.
func (g *Grid) SetCapability(colors, maxPairs int) {
	g.colors = colors
	g.maxPairs = maxPairs
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// MoveCursor positions the write cursor
func (g *Grid) MoveCursor(row, col int) {
	g.curRow = row
	g.curCol = col
}

// WriteText writes one cell per rune at the cursor, advancing it
func (g *Grid) WriteText(st Style, text string) {
	for _, r := range text {
		g.put(r, st)
		g.curCol++
	}
}

// HLine writes ch count times from the cursor without moving it
func (g *Grid) HLine(st Style, ch rune, count int) {
	col := g.curCol
	for i := 0; i < count; i++ {
		g.curCol = col + i
		g.put(ch, st)
	}
	g.curCol = col
}

func (g *Grid) put(r rune, st Style) {
	if g.curRow < 0 || g.curRow >= g.height || g.curCol < 0 || g.curCol >= g.width {
		return
	}
	g.cells[g.curRow][g.curCol] = Cell{Rune: r, Attr: st.Attr, Pair: st.Pair}
}

// ReadCells returns a copy of count cells, truncated at the row boundary
func (g *Grid) ReadCells(row, col, count int) []Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return nil
	}
	if col+count > g.width {
		count = g.width - col
	}
	out := make([]Cell, count)
	copy(out, g.cells[row][col:col+count])
	return out
}

// WriteCells stores cells, truncated at the row boundary
func (g *Grid) WriteCells(row, col int, cells []Cell) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return
	}
	n := len(cells)
	if col+n > g.width {
		n = g.width - col
	}
	copy(g.cells[row][col:col+n], cells[:n])
}

// SetPair defines the colors of a color pair
func (g *Grid) SetPair(pair, fg, bg int) {
	g.pairs[pair] = PairColors{Fg: fg, Bg: bg}
}

// PairColors returns the colors a pair was defined with
func (g *Grid) PairColors(pair int) (PairColors, bool) {
	pc, ok := g.pairs[pair]
	return pc, ok
}

// SupportsColor reports whether the grid advertises color capability
func (g *Grid) SupportsColor() bool {
	return g.colors > 0
}

// MaxColorPairs returns the advertised pair-table size
func (g *Grid) MaxColorPairs() int {
	return g.maxPairs
}

// MaxColors returns the advertised color count
func (g *Grid) MaxColors() int {
	return g.colors
}

// Cell returns the cell at (row, col)
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// RowText returns the runes of a row as a string, for test assertions
func (g *Grid) RowText(row int) string {
	if row < 0 || row >= g.height {
		return ""
	}
	rs := make([]rune, g.width)
	for x := 0; x < g.width; x++ {
		rs[x] = g.cells[row][x].Rune
	}
	return string(rs)
}
