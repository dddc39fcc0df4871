package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/session"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused {
		return m, nil
	}

	// Only left button presses move the cursor.
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		return m, nil
	}
	row := msg.Y + m.viewport.YOffset
	return m.handle(session.Click(m.scr.columnAt(msg.X, row), row))
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
