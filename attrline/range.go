package attrline

// Open marks a range end that extends to the end of whatever the range is
// applied against. It is resolved lazily, at composition or clipping time.
const Open = -1

// Range is a half-open [Start, End) interval in byte offsets.
type Range struct {
	Start int
	End   int // Open means "to the end"
}

// NewRange returns a concrete half-open range.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// OpenRange returns a range from start with an unresolved end.
func OpenRange(start int) Range {
	return Range{Start: start, End: Open}
}

// Length returns End - Start. Undefined for open ranges until resolved.
func (r Range) Length() int {
	return r.End - r.Start
}

// IsOpen reports whether the end is the Open sentinel.
func (r Range) IsOpen() bool {
	return r.End == Open
}

// Contains reports whether pos falls inside the range, treating an Open
// end as +infinity.
func (r Range) Contains(pos int) bool {
	return r.Start <= pos && (r.IsOpen() || pos < r.End)
}

// Intersects reports whether two ranges overlap.
func (r Range) Intersects(other Range) bool {
	return r.Contains(other.Start) || other.Contains(r.Start)
}

// Intersection returns the clipped overlap of two ranges. An Open end
// resolves to the other operand's end; the result is open only when both
// operands are open.
func (r Range) Intersection(other Range) Range {
	start := max(r.Start, other.Start)
	var end int
	switch {
	case r.IsOpen() && other.IsOpen():
		end = Open
	case r.IsOpen():
		end = other.End
	case other.IsOpen():
		end = r.End
	default:
		end = min(r.End, other.End)
	}
	return Range{Start: start, End: end}
}

// Shift adds delta to each bound that is at or past threshold. The Open
// sentinel is never shifted, so open-ended spans stay open when text moves
// under them.
func (r *Range) Shift(threshold, delta int) *Range {
	if r.Start >= threshold {
		r.Start += delta
	}
	if r.End != Open && r.End >= threshold {
		r.End += delta
	}
	return r
}
