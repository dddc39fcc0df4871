package session

import (
	"errors"
	"io"
	"log"

	"github.com/iw2rmb/caret/buffer"
)

// Session owns one buffer and one cursor and applies input events to them.
//
// The cursor offset and its screen position always agree under Resolve.
// A Session is single-threaded and not safe for concurrent use.
type Session struct {
	buf     *buffer.Buffer
	display Display
	origin  Origin
	logger  *log.Logger

	offset int
	screen buffer.Pos

	esc EscapeDecoder
}

type Option func(*Session)

// WithOrigin sets the viewport origin used for every translation.
func WithOrigin(o Origin) Option {
	return func(s *Session) { s.origin = o }
}

// WithLogger routes session diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Outcome reports the effect of one handled event.
type Outcome struct {
	Screen  buffer.Pos
	Offset  int
	Changed bool
	Quit    bool
}

// New creates a session over text with the cursor at offset 0. d may be nil.
func New(text string, d Display, opts ...Option) *Session {
	if d == nil {
		d = nopDisplay{}
	}
	s := &Session{
		buf:     buffer.New(text),
		display: d,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.display.Repaint(s.buf.Text())
	s.Jump(0, 0)
	return s
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Text() string { return s.buf.Text() }

func (s *Session) Offset() int { return s.offset }

// Screen returns the cursor position relative to the viewport origin.
func (s *Session) Screen() buffer.Pos { return s.screen }

func (s *Session) Origin() Origin { return s.origin }

// Pending reports whether an escape sequence is being decoded.
func (s *Session) Pending() bool { return s.esc.State() != Idle }

// Move resolves a stepped screen position, carrying across line boundaries.
func (s *Session) Move(col, row int) {
	s.apply(Resolve(s.buf.Lines(), s.origin, col, row, CarryAcross))
}

// Jump resolves an absolute screen position, clamping to the target line.
func (s *Session) Jump(col, row int) {
	s.apply(Resolve(s.buf.Lines(), s.origin, col, row, ClampToLine))
}

func (s *Session) apply(res Resolution) {
	s.offset = res.Offset
	s.screen = res.Screen
	s.display.SetCursor(res.Screen.Col, res.Screen.Row)
}

// InsertAtCursor inserts r at the cursor and advances past it. A newline
// advances to the start of the new line.
func (s *Session) InsertAtCursor(r rune) {
	s.buf.Insert(s.offset, r)
	s.display.Repaint(s.buf.Text())
	s.Move(s.screen.Col+1, s.screen.Row)
}

// DeleteBeforeCursor steps the cursor back and removes the rune it lands on.
// It does nothing at the start of the buffer.
func (s *Session) DeleteBeforeCursor() bool {
	prev := s.offset
	s.Move(s.screen.Col-1, s.screen.Row)
	if s.offset == prev {
		return false
	}
	return s.deleteAt(s.offset)
}

// DeleteAtCursor removes the rune under the cursor. It does nothing at the end
// of the buffer.
func (s *Session) DeleteAtCursor() bool {
	return s.deleteAt(s.offset)
}

func (s *Session) deleteAt(off int) bool {
	if _, err := s.buf.Delete(off); err != nil {
		if !errors.Is(err, buffer.ErrOutOfRange) {
			panic(err)
		}
		s.logger.Printf("delete ignored: %v", err)
		return false
	}
	s.display.Repaint(s.buf.Text())
	s.display.SetCursor(s.screen.Col, s.screen.Row)
	return true
}

// Handle applies one input event.
func (s *Session) Handle(ev Event) Outcome {
	ev, action := s.esc.Feed(ev)
	switch action {
	case Terminate:
		s.logger.Printf("escape with no designator, ending session")
		return s.outcome(false, true)
	case Consume:
		return s.outcome(false, false)
	}

	changed := false
	switch ev.Kind {
	case Character:
		s.InsertAtCursor(ev.Rune)
		changed = true
	case Backspace:
		changed = s.DeleteBeforeCursor()
	case Delete:
		changed = s.DeleteAtCursor()
	case ArrowLeft:
		s.Move(s.screen.Col-1, s.screen.Row)
	case ArrowRight:
		s.Move(s.screen.Col+1, s.screen.Row)
	case ArrowUp:
		s.Jump(s.screen.Col, s.screen.Row-1)
	case ArrowDown:
		s.Jump(s.screen.Col, s.screen.Row+1)
	case MouseClick:
		s.Jump(ev.Col, ev.Row)
	case Other:
		s.logger.Printf("ignored input %s", ev)
	}
	return s.outcome(changed, false)
}

func (s *Session) outcome(changed, quit bool) Outcome {
	return Outcome{
		Screen:  s.screen,
		Offset:  s.offset,
		Changed: changed,
		Quit:    quit,
	}
}
