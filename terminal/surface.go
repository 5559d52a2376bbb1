package terminal

// Surface provides row-oriented cell access to a character grid. It is the
// single boundary between the rendering core and whatever actually puts
// glyphs on screen; Grid implements it in memory and TcellSurface drives a
// real terminal.
//
// All coordinates are 0-indexed (row, column). Implementations are not
// required to be safe for concurrent use; a line render is one logical
// transaction against its row.
type Surface interface {
	// MoveCursor positions the write cursor.
	MoveCursor(row, col int)

	// WriteText writes text at the cursor with the given style, one cell
	// per rune, advancing the cursor.
	WriteText(st Style, text string)

	// HLine writes ch count times starting at the cursor without moving it.
	HLine(st Style, ch rune, count int)

	// ReadCells returns a copy of count cells starting at (row, col),
	// truncated at the row boundary.
	ReadCells(row, col, count int) []Cell

	// WriteCells stores cells starting at (row, col), truncated at the
	// row boundary.
	WriteCells(row, col int, cells []Cell)

	// SetPair defines the colors of a color pair. A color of -1 selects
	// the terminal default.
	SetPair(pair, fg, bg int)

	// SupportsColor reports whether the surface can display color at all.
	SupportsColor() bool

	// MaxColorPairs returns the size of the color-pair table.
	MaxColorPairs() int

	// MaxColors returns the number of distinct colors available.
	MaxColors() int
}
