package attrline

import "math"

// WrapSettings controls word-wrap insertion: lines are kept at or under
// Width display columns, with continuation lines indented by Indent spaces.
type WrapSettings struct {
	Width  int
	Indent int
}

// isTokenByte matches the characters a word token may contain.
func isTokenByte(b byte) bool {
	return isAlnum(b) || b == ',' || b == '_' || b == '.' || b == ';'
}

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// rewrap re-flows the line from the insertion point, inserting newline plus
// indent wherever the current line runs out of columns. Tokens scan forward
// over word characters with a break-after point at a mid-token '-' or '.';
// a token that cannot fit on the remaining columns wraps before the token
// unless the line is already freshly wrapped, in which case it is consumed
// as-is and may overflow (an unsplittable token). Filler after a token is
// consumed until content resumes or the line fills, and runs of spaces left
// directly after a fresh indent are deleted. Spans ride along via ShiftSpans
// on every insertion and erasure.
func (l *Line) rewrap(index int, ws *WrapSettings) {
	startPos := index
	lineStart := 0
	if i := lastNewline(l.Text, startPos); i >= 0 {
		lineStart = i + 1
	}

	lineLen := startPos - lineStart
	usable := ws.Width - ws.Indent
	avail := ws.Width - lineLen
	if avail < 0 {
		avail = 0
	}
	if avail == 0 {
		avail = math.MaxInt
	}

	for startPos < len(l.Text) {
		// Find the end of a word or a break-after point.
		lpc := startPos
		for lpc < len(l.Text) && isTokenByte(l.Text[lpc]) {
			if l.Text[lpc] == '-' || l.Text[lpc] == '.' {
				lpc++
				break
			}
			lpc++
		}

		if avail != usable && lpc-startPos > avail {
			// The token cannot fit and we are not on a fresh wrapped
			// line: wrap before it.
			l.insertRun(startPos, 1, '\n')
			l.insertRun(startPos+1, ws.Indent, ' ')
			startPos += 1 + ws.Indent
			avail = usable
			continue
		}

		// The token fits; consume it, then trailing filler.
		avail -= lpc - startPos
		for lpc < len(l.Text) && avail != 0 {
			if l.Text[lpc] == '\n' {
				l.insertRun(lpc+1, ws.Indent, ' ')
				avail = usable
				lpc += 1 + ws.Indent
				break
			}
			if isAlnum(l.Text[lpc]) || l.Text[lpc] == '_' {
				break
			}
			avail--
			lpc++
		}
		startPos = lpc

		if avail == 0 {
			// Line filled mid-filler: wrap here and drop any literal
			// spaces that would land right after the indent.
			l.insertRun(startPos, 1, '\n')
			l.insertRun(startPos+1, ws.Indent, ' ')
			startPos += 1 + ws.Indent
			avail = usable

			skip := startPos
			for skip < len(l.Text) && l.Text[skip] == ' ' {
				skip++
			}
			if skip != startPos {
				l.erase(startPos, skip-startPos)
			}
		}
	}
}

// lastNewline finds the last '\n' at or before pos.
func lastNewline(s string, pos int) int {
	if pos >= len(s) {
		pos = len(s) - 1
	}
	for i := pos; i >= 0; i-- {
		if s[i] == '\n' {
			return i
		}
	}
	return -1
}
