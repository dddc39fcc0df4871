package buffer

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// PosFromOffset decodes a linear offset into its (row, col) in the line view.
// Each newline occupies exactly one offset.
func (b *Buffer) PosFromOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, len(b.content), p.ClampMode)
	if !ok {
		return Pos{}, false
	}

	row, lineStart := 0, 0
	for i := 0; i < off; i++ {
		if b.content[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	return Pos{Row: row, Col: off - lineStart}, true
}

// OffsetFromPos encodes pos as a linear offset.
func (b *Buffer) OffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	lines := b.Lines()
	lineLen := func(row int) int { return len(lines[row]) }

	switch p.ClampMode {
	case OffsetError:
		if ClampPos(pos, len(lines), lineLen) != pos {
			return 0, false
		}
	case OffsetClamp:
		pos = ClampPos(pos, len(lines), lineLen)
	default:
		return 0, false
	}
	return OffsetOf(lines, pos), true
}

// OffsetOf sums the lengths of all lines before pos.Row, plus one newline
// each, and adds pos.Col. pos must already be within lines.
func OffsetOf(lines [][]rune, pos Pos) int {
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += len(lines[row]) + 1
	}
	return off + pos.Col
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}
