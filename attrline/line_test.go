package attrline

import (
	"strings"
	"testing"

	"github.com/lixenwraith/textgrid/terminal"
)

func revStyle() terminal.Style {
	return terminal.Style{Attr: terminal.AttrReverse}
}

func TestInsertShiftsExistingSpans(t *testing.T) {
	l := New("hello world")
	l.WithSpan(StyleSpan(NewRange(0, 5), revStyle()))  // "hello"
	l.WithSpan(StyleSpan(NewRange(6, 11), revStyle())) // "world"

	l.Insert(6, New("brave "), nil)

	if l.Text != "hello brave world" {
		t.Fatalf("Text = %q, want %q", l.Text, "hello brave world")
	}
	if got := l.Spans[0].Range; got != NewRange(0, 5) {
		t.Errorf("span before insertion point moved: %v", got)
	}
	if got := l.Spans[1].Range; got != NewRange(12, 17) {
		t.Errorf("span after insertion point = %v, want [12,17)", got)
	}
}

func TestInsertRebasesIncomingSpans(t *testing.T) {
	other := New("warn")
	other.WithSpan(StyleSpan(NewRange(0, 4), revStyle()))
	other.WithSpan(StyleSpan(OpenRange(1), revStyle()))

	l := New("level: ")
	l.Insert(7, other, nil)

	if l.Text != "level: warn" {
		t.Fatalf("Text = %q", l.Text)
	}
	if got := l.Spans[0].Range; got != NewRange(7, 11) {
		t.Errorf("incoming span = %v, want [7,11)", got)
	}
	// Open ends resolve to the end of the inserted text
	if got := l.Spans[1].Range; got != NewRange(8, 11) {
		t.Errorf("open incoming span = %v, want [8,11)", got)
	}
}

func TestInsertShiftInvariant(t *testing.T) {
	l := New("0123456789")
	spans := []Range{
		NewRange(0, 3),
		NewRange(2, 7),
		NewRange(5, 10),
		OpenRange(8),
	}
	for _, r := range spans {
		l.WithSpan(StyleSpan(r, revStyle()))
	}

	const idx = 5
	other := New("abc")
	l.Insert(idx, other, nil)

	for i, orig := range spans {
		got := l.Spans[i].Range
		want := orig
		if orig.Start >= idx {
			want.Start += len(other.Text)
		}
		if orig.End != Open && orig.End >= idx {
			want.End += len(other.Text)
		}
		if got != want {
			t.Errorf("span %d: %v after insert, want %v", i, got, want)
		}
	}
}

func TestSublineClipsAndRebases(t *testing.T) {
	l := New("abcdefghij")
	l.WithSpan(StyleSpan(NewRange(0, 4), revStyle()))  // partially before
	l.WithSpan(StyleSpan(NewRange(3, 7), revStyle()))  // fully inside
	l.WithSpan(StyleSpan(NewRange(8, 10), revStyle())) // after the slice
	l.WithSpan(StyleSpan(OpenRange(5), revStyle()))    // open end

	sub := l.Subline(2, 5) // "cdefg"

	if sub.Text != "cdefg" {
		t.Fatalf("Text = %q, want %q", sub.Text, "cdefg")
	}
	for i, sp := range sub.Spans {
		if sp.Range.Start < 0 || sp.Range.End < sp.Range.Start || sp.Range.End > len(sub.Text) {
			t.Errorf("span %d out of bounds: %v", i, sp.Range)
		}
	}

	want := []Range{
		NewRange(0, 2), // [0,4) clipped to [2,4), rebased
		NewRange(1, 5), // [3,7) clipped to [3,7), rebased
		NewRange(3, 5), // open span from 5, resolved to the slice end
	}
	if len(sub.Spans) != len(want) {
		t.Fatalf("got %d spans, want %d", len(sub.Spans), len(want))
	}
	for i, w := range want {
		if sub.Spans[i].Range != w {
			t.Errorf("span %d = %v, want %v", i, sub.Spans[i].Range, w)
		}
	}
}

func TestSublineDropsMisses(t *testing.T) {
	l := New("abcdefghij")
	l.WithSpan(StyleSpan(NewRange(0, 2), revStyle()))
	l.WithSpan(StyleSpan(NewRange(8, 10), revStyle()))

	sub := l.Subline(3, 4)
	if len(sub.Spans) != 0 {
		t.Errorf("expected no spans, got %v", sub.Spans)
	}
}

func TestSplitLinesRejoin(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"No newline", "single"},
		{"Trailing newline", "first\nsecond\n"},
		{"Interior newlines", "a\nbb\nccc"},
		{"Empty segments", "\n\n"},
		{"Empty line", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.text)

			var parts []string
			for seg := range l.SplitLines() {
				parts = append(parts, seg.Text)
			}
			if got := strings.Join(parts, "\n"); got != tt.text {
				t.Errorf("rejoined = %q, want %q", got, tt.text)
			}
			if got := strings.Count(tt.text, "\n") + 1; len(parts) != got {
				t.Errorf("got %d segments, want %d", len(parts), got)
			}
		})
	}
}

func TestSplitLinesRestartable(t *testing.T) {
	l := New("one\ntwo\nthree")
	l.WithSpan(StyleSpan(NewRange(4, 7), revStyle())) // "two"

	for pass := 0; pass < 2; pass++ {
		var segs []*Line
		for seg := range l.SplitLines() {
			segs = append(segs, seg)
		}
		if len(segs) != 3 {
			t.Fatalf("pass %d: got %d segments", pass, len(segs))
		}
		if len(segs[1].Spans) != 1 || segs[1].Spans[0].Range != NewRange(0, 3) {
			t.Errorf("pass %d: middle segment spans = %v", pass, segs[1].Spans)
		}
	}
	if l.Text != "one\ntwo\nthree" {
		t.Errorf("original modified: %q", l.Text)
	}
}

func TestSplitLinesEarlyStop(t *testing.T) {
	l := New("a\nb\nc")
	count := 0
	for range l.SplitLines() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("stopped after %d segments, want 2", count)
	}
}

func TestCustomSpanTransported(t *testing.T) {
	l := New("payload")
	l.WithSpan(CustomSpan(NewRange(0, 7), "link", "https://example.com"))

	sub := l.Subline(0, 7)
	if len(sub.Spans) != 1 {
		t.Fatalf("custom span dropped")
	}
	sp := sub.Spans[0]
	if sp.Kind != KindCustom || sp.Tag != "link" || sp.Value != "https://example.com" {
		t.Errorf("custom span mangled: %+v", sp)
	}
}

func TestAppend(t *testing.T) {
	l := New("ab")
	other := New("cd")
	other.WithSpan(StyleSpan(OpenRange(0), revStyle()))

	l.Append(other)

	if l.Text != "abcd" {
		t.Fatalf("Text = %q", l.Text)
	}
	if got := l.Spans[0].Range; got != NewRange(2, 4) {
		t.Errorf("appended span = %v, want [2,4)", got)
	}
}
