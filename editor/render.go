package editor

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/caret/session"
)

// screen is the session Display backed by a rendered frame.
//
// Every Repaint redraws the whole text; there is no dirty-region tracking.
type screen struct {
	style  Style
	origin session.Origin

	width      int
	showCursor bool

	text     string
	col, row int
	dirty    bool

	frame string
}

func newScreen(style Style, origin session.Origin) *screen {
	return &screen{style: style, origin: origin, showCursor: true}
}

func (s *screen) SetCursor(col, row int) {
	if s.col == col && s.row == row {
		return
	}
	s.col, s.row = col, row
	s.dirty = true
}

func (s *screen) Repaint(text string) {
	s.text = text
	s.dirty = true
}

func (s *screen) Dirty() bool { return s.dirty }

func (s *screen) Refresh() {
	s.frame = s.render()
	s.dirty = false
}

func (s *screen) Frame() string { return s.frame }

func (s *screen) setWidth(w int) {
	if w == s.width {
		return
	}
	s.width = w
	s.dirty = true
}

func (s *screen) setShowCursor(on bool) {
	if on == s.showCursor {
		return
	}
	s.showCursor = on
	s.dirty = true
}

func (s *screen) render() string {
	lines := strings.Split(s.text, "\n")
	if s.origin.Line > 0 {
		lines = lines[min(s.origin.Line, len(lines)):]
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		rs := []rune(line)
		if s.origin.Column > 0 {
			rs = rs[min(s.origin.Column, len(rs)):]
		}
		cursorCol := -1
		if s.showCursor && row == s.row && s.col >= 0 {
			cursorCol = s.col
		}
		out = append(out, s.renderLine(rs, cursorCol))
	}
	return strings.Join(out, "\n")
}

// columnAt maps terminal cell x on screen row to a rune column. Cells past
// the end of the line count one column each so the session can clamp them.
func (s *screen) columnAt(x, row int) int {
	if x < 0 || row < 0 {
		return x
	}
	lines := strings.Split(s.text, "\n")
	line := s.origin.Line + row
	if line >= len(lines) {
		return x
	}
	rs := []rune(lines[line])
	if s.origin.Column > 0 {
		rs = rs[min(s.origin.Column, len(rs)):]
	}

	used := 0
	for i, r := range rs {
		w := runewidth.RuneWidth(displayRune(r))
		if x < used+w {
			return i
		}
		used += w
	}
	return len(rs) + x - used
}

func (s *screen) renderLine(rs []rune, cursorCol int) string {
	cells := make([]rune, 0, len(rs)+1)
	for _, r := range rs {
		cells = append(cells, displayRune(r))
	}
	if cursorCol == len(cells) {
		// cursor sits after the last rune
		cells = append(cells, ' ')
	}
	cells = fitWidth(cells, s.width)

	if cursorCol < 0 || cursorCol >= len(cells) {
		return s.renderText(cells)
	}

	var sb strings.Builder
	sb.WriteString(s.renderText(cells[:cursorCol]))
	sb.WriteString(s.style.Cursor.Render(string(cells[cursorCol])))
	sb.WriteString(s.renderText(cells[cursorCol+1:]))
	return sb.String()
}

func (s *screen) renderText(cells []rune) string {
	if len(cells) == 0 {
		return ""
	}
	return s.style.Text.Render(string(cells))
}

// fitWidth drops the runes that would not fit in width terminal cells.
// A width <= 0 means unbounded.
func fitWidth(cells []rune, width int) []rune {
	if width <= 0 {
		return cells
	}
	used := 0
	for i, r := range cells {
		used += runewidth.RuneWidth(r)
		if used > width {
			return cells[:i]
		}
	}
	return cells
}

func displayRune(r rune) rune {
	if r == '\t' || unicode.IsControl(r) {
		return ' '
	}
	return r
}
