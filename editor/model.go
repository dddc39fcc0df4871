package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/buffer"
	"github.com/iw2rmb/caret/session"
)

// Model is a Bubble Tea component that feeds terminal input to a session and
// renders it.
type Model struct {
	cfg  Config
	sess *session.Session
	scr  *screen

	focused bool

	viewport viewport.Model

	// escSeq invalidates escape timeouts scheduled before the latest event.
	escSeq int
}

// escapeTimeoutMsg is the empty poll that follows a pending Escape.
type escapeTimeoutMsg struct{ seq int }

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	scr := newScreen(cfg.Style, cfg.Origin)
	m := Model{
		cfg:      cfg,
		scr:      scr,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.sess = session.New(cfg.Text, scr,
		session.WithOrigin(cfg.Origin),
		session.WithLogger(cfg.Logger),
	)
	m.flush()
	return m
}

func (m Model) Session() *session.Session { return m.sess }

// Cursor returns the cursor's screen position.
func (m Model) Cursor() buffer.Pos { return m.sess.Screen() }

func (m Model) Offset() int { return m.sess.Offset() }

func (m Model) Text() string { return m.sess.Text() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.scr.setWidth(width)

	m.flush()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.scr.setShowCursor(true)
		m.flush()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.scr.setShowCursor(false)
		m.flush()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case escapeTimeoutMsg:
		if msg.seq != m.escSeq || !m.sess.Pending() {
			return m, nil
		}
		return m.handle(session.Key(session.NoEvent))
	default:
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m Model) handle(ev session.Event) (Model, tea.Cmd) {
	out := m.sess.Handle(ev)
	m.flush()

	if out.Changed && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.sess))
	}
	if out.Quit {
		return m, tea.Quit
	}
	if !m.sess.Pending() {
		return m, nil
	}

	m.escSeq++
	seq := m.escSeq
	return m, tea.Tick(m.cfg.EscapeDelay, func(time.Time) tea.Msg {
		return escapeTimeoutMsg{seq: seq}
	})
}

// flush refreshes the screen when the session left it dirty and hands the
// full frame to the viewport.
func (m *Model) flush() {
	if !m.scr.Dirty() {
		return
	}
	m.scr.Refresh()
	m.viewport.SetContent(m.scr.Frame())
	m.followCursor()
}

func (m *Model) followCursor() {
	row := m.sess.Screen().Row
	h := m.visibleRowCount()
	if h <= 0 || row < 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
