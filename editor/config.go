package editor

import (
	"log"
	"time"

	"github.com/iw2rmb/caret/session"
)

const defaultEscapeDelay = 100 * time.Millisecond

// Config configures the editor Model.
type Config struct {
	// Initial text for the session buffer.
	Text string

	// Document position shown at the top-left cell.
	Origin session.Origin

	Style  Style
	KeyMap KeyMap

	// How long a lone Escape waits for a designator before it ends the
	// session. Zero means 100ms.
	EscapeDelay time.Duration

	// Called after every event that changed the buffer.
	OnChange func(ChangeEvent)

	// Receives session diagnostics. Nil discards them.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.EscapeDelay <= 0 {
		c.EscapeDelay = defaultEscapeDelay
	}
	return c
}
