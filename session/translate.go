package session

import "github.com/iw2rmb/caret/buffer"

// Origin is the document (line, column) shown at screen (0, 0).
type Origin struct {
	Line   int
	Column int
}

// Carry selects how a column past the end of its line is resolved.
type Carry uint8

const (
	// CarryAcross moves the overflow onto the next line, counting the newline
	// as one position. Used for single steps (arrow right, insert advance).
	CarryAcross Carry = iota
	// ClampToLine pins the column to the end of the target line. Used for
	// absolute targets (mouse clicks, vertical movement).
	ClampToLine
)

// Resolution is a requested screen position resolved against the document.
type Resolution struct {
	// Doc is the resolved position in document lines.
	Doc buffer.Pos
	// Screen is Doc relative to the viewport origin.
	Screen buffer.Pos
	// Offset is the linear offset of Doc.
	Offset int
}

// Resolve maps a requested screen position to a legal document position and
// its linear offset.
//
// A negative column always carries back onto the previous line; column -1
// lands at the end of that line. At the first line it clamps to column 0.
// A column past the end of the line either carries forward (CarryAcross) or
// clamps (ClampToLine); on the last line it always clamps.
func Resolve(lines [][]rune, origin Origin, col, row int, mode Carry) Resolution {
	if len(lines) == 0 {
		lines = [][]rune{nil}
	}
	last := len(lines) - 1

	row = clamp(row+origin.Line, 0, last)
	col += origin.Column

	switch {
	case col < 0:
		if row == 0 {
			col = 0
			break
		}
		row--
		col = max(len(lines[row])+col+1, 0)
	case col > len(lines[row]):
		if row == last || mode == ClampToLine {
			col = len(lines[row])
			break
		}
		row++
		col -= len(lines[row-1]) + 1
		if col < 0 || col > len(lines[row]) {
			col = 0
		}
	}

	doc := buffer.Pos{Row: row, Col: col}
	return Resolution{
		Doc:    doc,
		Screen: buffer.Pos{Row: row - origin.Line, Col: col - origin.Column},
		Offset: buffer.OffsetOf(lines, doc),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
