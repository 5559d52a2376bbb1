// Package palette holds the 256-entry xterm reference palette and the
// color matching used to approximate arbitrary colors onto it.
//
// The table is built once from embedded reference records and never
// mutated afterwards; share one *Table across every component that needs
// it.
package palette

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed xterm_palette.json
var xtermPaletteJSON []byte

// Entry is one reference palette record with its Lab form cached for
// distance comparisons.
type Entry struct {
	ID   uint8
	Name string
	RGB  RGB
	Lab  Lab
}

// Table is the immutable reference palette.
type Table struct {
	entries []Entry
	byName  map[string]int // first occurrence wins for duplicate names
}

type rawEntry struct {
	ColorID int    `json:"colorId"`
	Name    string `json:"name"`
	RGB     struct {
		R uint8 `json:"r"`
		G uint8 `json:"g"`
		B uint8 `json:"b"`
	} `json:"rgb"`
}

// Load materializes the embedded reference records into a Table.
func Load() (*Table, error) {
	var raw []rawEntry
	if err := json.Unmarshal(xtermPaletteJSON, &raw); err != nil {
		return nil, fmt.Errorf("palette: decode reference data: %w", err)
	}

	t := &Table{
		entries: make([]Entry, 0, len(raw)),
		byName:  make(map[string]int, len(raw)),
	}
	for _, r := range raw {
		rgb := NewRGB(r.RGB.R, r.RGB.G, r.RGB.B)
		e := Entry{
			ID:   uint8(r.ColorID),
			Name: r.Name,
			RGB:  rgb,
			Lab:  rgb.Lab(),
		}
		if _, dup := t.byName[e.Name]; !dup {
			t.byName[e.Name] = len(t.entries)
		}
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns the record at table position i.
func (t *Table) Entry(i int) Entry {
	return t.entries[i]
}

// Match returns the id of the palette entry perceptually closest to the
// given Lab color. Linear scan in table order; only a strictly smaller
// distance replaces the best candidate, so the first of any tied minima
// wins.
func (t *Table) Match(to Lab) uint8 {
	best := -1
	bestDelta := 0.0
	for i := range t.entries {
		delta := to.DeltaE(t.entries[i].Lab)
		if best == -1 || delta < bestDelta {
			best = i
			bestDelta = delta
		}
	}
	return t.entries[best].ID
}

// Nearest returns the id of the palette entry closest to an RGB color.
// No caching; every resolution is a fresh scan.
func (t *Table) Nearest(c RGB) uint8 {
	return t.Match(c.Lab())
}

// ParseError reports a color string that could not be understood.
type ParseError struct {
	Input string
	Hint  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown color %q; %s", e.Input, e.Hint)
}

// Parse accepts "#rgb" (each digit duplicated into a full byte),
// "#rrggbb", or an exact palette entry name. Name lookup is
// case-sensitive; the first table entry wins when names repeat.
func (t *Table) Parse(s string) (RGB, error) {
	if strings.HasPrefix(s, "#") {
		switch len(s) {
		case 4:
			r, okR := hexNibble(s[1])
			g, okG := hexNibble(s[2])
			b, okB := hexNibble(s[3])
			if okR && okG && okB {
				return NewRGB(r|r<<4, g|g<<4, b|b<<4), nil
			}
		case 7:
			r, okR := hexPair(s[1], s[2])
			g, okG := hexPair(s[3], s[4])
			b, okB := hexPair(s[5], s[6])
			if okR && okG && okB {
				return NewRGB(r, g, b), nil
			}
		}
		return RGB{}, &ParseError{Input: s, Hint: "hex colors are #rgb or #rrggbb"}
	}

	if i, ok := t.byName[s]; ok {
		return t.entries[i].RGB, nil
	}
	return RGB{}, &ParseError{
		Input: s,
		Hint:  "see https://jonasjacek.github.io/colors/ for the supported color names",
	}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func hexPair(hi, lo byte) (uint8, bool) {
	h, okH := hexNibble(hi)
	l, okL := hexNibble(lo)
	return h<<4 | l, okH && okL
}
