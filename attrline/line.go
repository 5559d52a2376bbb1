// Package attrline models a logical line of text annotated with overlapping
// style, color, and glyph intentions. Span positions are byte offsets and
// stay consistent through every splice, wrap, and slice operation.
package attrline

import (
	"fmt"
	"iter"
	"strings"
)

// Line is raw text plus an unordered bag of attribute spans.
type Line struct {
	Text  string
	Spans []Span
}

// New creates a line without spans.
func New(text string) *Line {
	return &Line{Text: text}
}

// WithSpan appends a span and returns the line for chaining.
func (l *Line) WithSpan(sp Span) *Line {
	l.Spans = append(l.Spans, sp)
	return l
}

// Append splices other onto the end of the line.
func (l *Line) Append(other *Line) *Line {
	return l.Insert(len(l.Text), other, nil)
}

// Insert splices other's text into the line at byte offset index. Existing
// spans at or after index move right by the inserted length; incoming spans
// are re-based by +index, with open ends resolved to the end of the
// inserted text. When ws is non-nil and the result exceeds the wrap width,
// the line is re-flowed starting at the insertion point.
func (l *Line) Insert(index int, other *Line, ws *WrapSettings) *Line {
	if index < 0 || index > len(l.Text) {
		panic(fmt.Sprintf("attrline: insert index %d out of range [0,%d]", index, len(l.Text)))
	}

	if index < len(l.Text) {
		ShiftSpans(l.Spans, index, len(other.Text))
	}
	l.Text = l.Text[:index] + other.Text + l.Text[index:]

	for _, sp := range other.Spans {
		sp.Range.Shift(0, index)
		if sp.Range.IsOpen() {
			sp.Range.End = index + len(other.Text)
		}
		l.Spans = append(l.Spans, sp)
	}

	if ws != nil && len(l.Text) > ws.Width {
		l.rewrap(index, ws)
	}
	return l
}

// insertRun splices count copies of ch at index, relocating spans.
func (l *Line) insertRun(index, count int, ch byte) *Line {
	ShiftSpans(l.Spans, index, count)
	l.Text = l.Text[:index] + strings.Repeat(string(ch), count) + l.Text[index:]
	return l
}

// erase removes count bytes at start, relocating spans.
func (l *Line) erase(start, count int) *Line {
	l.Text = l.Text[:start] + l.Text[start+count:]
	ShiftSpans(l.Spans, start, -count)
	return l
}

// Subline returns a new line holding the byte slice [start, start+length)
// with every span clipped to the slice and re-based to slice-relative
// offsets. Spans wholly outside the slice are dropped. A negative length
// means "to the end".
func (l *Line) Subline(start, length int) *Line {
	if length < 0 {
		length = len(l.Text) - start
	}
	clip := NewRange(start, start+length)
	out := &Line{Text: l.Text[start : start+length]}

	for _, sp := range l.Spans {
		if !clip.Intersects(sp.Range) {
			continue
		}
		sp.Range = clip.Intersection(sp.Range)
		sp.Range.Shift(clip.Start, -clip.Start)
		if sp.Range.End > len(out.Text) {
			panic(fmt.Sprintf("attrline: clipped span end %d exceeds subline length %d",
				sp.Range.End, len(out.Text)))
		}
		out.Spans = append(out.Spans, sp)
	}
	return out
}

// SplitLines yields one line per newline-delimited segment, in order. The
// sequence is lazy and restartable; the receiver is never modified.
func (l *Line) SplitLines() iter.Seq[*Line] {
	return func(yield func(*Line) bool) {
		pos := 0
		for {
			next := strings.IndexByte(l.Text[pos:], '\n')
			if next < 0 {
				break
			}
			if !yield(l.Subline(pos, next)) {
				return
			}
			pos += next + 1
		}
		yield(l.Subline(pos, -1))
	}
}
