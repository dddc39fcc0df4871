package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/session"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.cfg.KeyMap.Quit) {
		return m, tea.Quit
	}
	if !m.focused {
		return m, nil
	}

	// Pasted text is typed rune by rune and never triggers bindings.
	if msg.Type == tea.KeyRunes && msg.Paste {
		return m.typeRunes(msg.Runes)
	}
	return m.handle(classifyKey(m.cfg.KeyMap, msg))
}

func (m Model) typeRunes(rs []rune) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range rs {
		if r == '\r' {
			continue
		}
		m, cmd = m.handle(session.Char(r))
	}
	return m, cmd
}

// classifyKey turns a terminal key message into a session event.
func classifyKey(km KeyMap, msg tea.KeyMsg) session.Event {
	switch {
	case key.Matches(msg, km.Left):
		return session.Key(session.ArrowLeft)
	case key.Matches(msg, km.Right):
		return session.Key(session.ArrowRight)
	case key.Matches(msg, km.Up):
		return session.Key(session.ArrowUp)
	case key.Matches(msg, km.Down):
		return session.Key(session.ArrowDown)
	case key.Matches(msg, km.Backspace):
		return session.Key(session.Backspace)
	case key.Matches(msg, km.Delete):
		return session.Key(session.Delete)
	case key.Matches(msg, km.Enter):
		return session.Char('\n')
	case key.Matches(msg, km.Tab):
		return session.Char('\t')
	case key.Matches(msg, km.Escape):
		return session.Key(session.Escape)
	}

	switch msg.Type {
	case tea.KeySpace:
		return session.Char(' ')
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return session.Char(msg.Runes[0])
		}
	}
	return session.Event{Kind: session.Other, Raw: msg.String()}
}
