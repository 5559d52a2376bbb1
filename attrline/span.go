package attrline

import (
	"github.com/lixenwraith/textgrid/terminal"
)

// Kind tags the rendering intention a span carries.
type Kind uint8

const (
	KindStyle      Kind = iota // attribute bits, optionally with a color pair
	KindGraphic                // literal glyph override
	KindForeground             // foreground color index
	KindBackground             // background color index
	KindCustom                 // opaque payload, ignored by the compositor
)

// Span is a tagged interval of a line's text carrying one rendering
// intention. Ranges are always byte offsets into the owning line's text,
// never display columns.
type Span struct {
	Range Range
	Kind  Kind

	Style terminal.Style // KindStyle
	Ch    rune           // KindGraphic
	Color uint8          // KindForeground, KindBackground

	Tag   string // KindCustom payload identifier
	Value any    // KindCustom payload
}

// StyleSpan builds a span that merges attribute bits into the covered cells.
func StyleSpan(r Range, st terminal.Style) Span {
	return Span{Range: r, Kind: KindStyle, Style: st}
}

// GraphicSpan builds a span that overwrites covered cells with a glyph.
func GraphicSpan(r Range, ch rune) Span {
	return Span{Range: r, Kind: KindGraphic, Ch: ch}
}

// ForegroundSpan builds a span that colors the foreground of covered cells.
func ForegroundSpan(r Range, color uint8) Span {
	return Span{Range: r, Kind: KindForeground, Color: color}
}

// BackgroundSpan builds a span that colors the background of covered cells.
func BackgroundSpan(r Range, color uint8) Span {
	return Span{Range: r, Kind: KindBackground, Color: color}
}

// CustomSpan builds a span the renderer transports but never interprets.
func CustomSpan(r Range, tag string, value any) Span {
	return Span{Range: r, Kind: KindCustom, Tag: tag, Value: value}
}

// ShiftSpans relocates every span bound at or past threshold by delta.
// Open ends stay open.
func ShiftSpans(spans []Span, threshold, delta int) {
	for i := range spans {
		spans[i].Range.Shift(threshold, delta)
	}
}
