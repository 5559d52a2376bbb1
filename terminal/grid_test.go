package terminal

import "testing"

func TestGridWriteText(t *testing.T) {
	g := NewGrid(10, 2)
	g.MoveCursor(0, 2)
	g.WriteText(Style{Attr: AttrBold, Pair: 3}, "hi")

	if got := g.RowText(0); got != "  hi      " {
		t.Errorf("RowText = %q", got)
	}
	c, ok := g.Cell(0, 2)
	if !ok || c.Rune != 'h' || c.Attr != AttrBold || c.Pair != 3 {
		t.Errorf("cell = %+v", c)
	}
	// Cursor advanced past the text
	g.WriteText(Style{}, "!")
	if got := g.RowText(0); got != "  hi!     " {
		t.Errorf("RowText after append = %q", got)
	}
}

func TestGridHLineKeepsCursor(t *testing.T) {
	g := NewGrid(10, 1)
	g.MoveCursor(0, 3)
	g.HLine(Style{Pair: 1}, '-', 4)

	if got := g.RowText(0); got != "   ----   " {
		t.Errorf("RowText = %q", got)
	}
	g.WriteText(Style{}, "x")
	if got := g.RowText(0); got != "   x---   " {
		t.Errorf("HLine moved the cursor: %q", got)
	}
}

func TestGridReadWriteCells(t *testing.T) {
	g := NewGrid(5, 2)
	g.MoveCursor(1, 0)
	g.WriteText(Style{Pair: 2}, "abcde")

	cells := g.ReadCells(1, 3, 10)
	if len(cells) != 2 {
		t.Fatalf("ReadCells returned %d cells, want truncation to 2", len(cells))
	}
	if cells[0].Rune != 'd' || cells[1].Rune != 'e' {
		t.Errorf("cells = %+v", cells)
	}

	// Mutating the copy does not touch the grid
	cells[0].Rune = 'Z'
	if c, _ := g.Cell(1, 3); c.Rune != 'd' {
		t.Error("ReadCells aliases grid storage")
	}

	cells[1].Rune = 'Y'
	g.WriteCells(1, 3, cells)
	if got := g.RowText(1); got != "abcZY" {
		t.Errorf("RowText = %q", got)
	}

	// Writes past the row edge truncate
	g.WriteCells(1, 4, []Cell{{Rune: '1'}, {Rune: '2'}})
	if got := g.RowText(1); got != "abcZ1" {
		t.Errorf("RowText after edge write = %q", got)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	if cells := g.ReadCells(-1, 0, 1); cells != nil {
		t.Errorf("ReadCells off-grid = %v", cells)
	}
	if cells := g.ReadCells(0, 5, 1); cells != nil {
		t.Errorf("ReadCells past row = %v", cells)
	}
	if _, ok := g.Cell(3, 0); ok {
		t.Error("Cell accepted out-of-range row")
	}
	// Silently ignored
	g.MoveCursor(10, 10)
	g.WriteText(Style{}, "x")
}

func TestGridPairs(t *testing.T) {
	g := NewGrid(1, 1)
	g.SetPair(57, 7, 1)

	pc, ok := g.PairColors(57)
	if !ok || pc != (PairColors{Fg: 7, Bg: 1}) {
		t.Errorf("PairColors = %+v, %v", pc, ok)
	}
	if _, ok := g.PairColors(58); ok {
		t.Error("undefined pair reported as defined")
	}
}

func TestGridCapability(t *testing.T) {
	g := NewGrid(1, 1)
	if !g.SupportsColor() || g.MaxColors() != 256 || g.MaxColorPairs() != 65536 {
		t.Errorf("default capability: colors=%d pairs=%d", g.MaxColors(), g.MaxColorPairs())
	}

	g.SetCapability(0, 0)
	if g.SupportsColor() {
		t.Error("monochrome grid still advertises color")
	}

	g.SetCapability(8, 64)
	if !g.SupportsColor() || g.MaxColors() != 8 || g.MaxColorPairs() != 64 {
		t.Errorf("limited capability: colors=%d pairs=%d", g.MaxColors(), g.MaxColorPairs())
	}
}
