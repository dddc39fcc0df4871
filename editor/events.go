package editor

import (
	"github.com/iw2rmb/caret/buffer"
	"github.com/iw2rmb/caret/session"
)

type ChangeEvent struct {
	Version uint64
	Offset  int
	// Cursor is the screen position of the cursor.
	Cursor buffer.Pos

	// v0: simplest payload; host can diff if needed.
	Text string
}

func buildChangeEvent(s *session.Session) ChangeEvent {
	return ChangeEvent{
		Version: s.Buffer().Version(),
		Offset:  s.Offset(),
		Cursor:  s.Screen(),
		Text:    s.Text(),
	}
}
