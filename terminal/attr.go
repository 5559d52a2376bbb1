package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Style pairs attribute bits with a color-pair handle.
// Pair 0 is the terminal's default foreground/background pair.
type Style struct {
	Attr Attr
	Pair int
}

// Cell represents a single terminal cell
type Cell struct {
	Rune rune
	Attr Attr
	Pair int
}

// MergeAttrs folds the attributes of an incoming span into the attributes
// already present on a cell. Reverse video cancels when both sides request
// it, so stacked highlights stay readable:
//
//	existing | incoming | merged
//	---------+----------+-------
//	-        | -        | -
//	REV      | -        | REV
//	-        | REV      | REV
//	REV      | REV      | -
//
// All other bits OR together.
func MergeAttrs(existing, incoming Attr) Attr {
	merged := existing | incoming
	if existing&AttrReverse != 0 && incoming&AttrReverse != 0 {
		merged &^= AttrReverse
	}
	return merged
}
