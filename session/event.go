package session

import "fmt"

// EventKind classifies one input event.
type EventKind uint8

const (
	// NoEvent means a poll returned nothing.
	NoEvent EventKind = iota
	Character
	Backspace
	Delete
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	MouseClick
	Escape
	Other
)

var eventKindNames = [...]string{
	NoEvent:    "none",
	Character:  "char",
	Backspace:  "backspace",
	Delete:     "delete",
	ArrowUp:    "up",
	ArrowDown:  "down",
	ArrowLeft:  "left",
	ArrowRight: "right",
	MouseClick: "click",
	Escape:     "esc",
	Other:      "other",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a classified input event.
//
// Rune is set for Character, Col/Row for MouseClick, Raw for Other.
type Event struct {
	Kind EventKind
	Rune rune
	Col  int
	Row  int
	Raw  string
}

func (e Event) String() string {
	switch e.Kind {
	case Character:
		return fmt.Sprintf("char(%q)", e.Rune)
	case MouseClick:
		return fmt.Sprintf("click(%d,%d)", e.Col, e.Row)
	case Other:
		return fmt.Sprintf("other(%q)", e.Raw)
	default:
		return e.Kind.String()
	}
}

func Char(r rune) Event { return Event{Kind: Character, Rune: r} }

func Click(col, row int) Event { return Event{Kind: MouseClick, Col: col, Row: row} }

// Key returns an event carrying no payload.
func Key(k EventKind) Event { return Event{Kind: k} }

// Source yields input events one at a time. ok is false once the stream is
// exhausted.
type Source interface {
	Next() (ev Event, ok bool)
}

// Script is a Source replaying a fixed event list.
type Script []Event

func (s *Script) Next() (Event, bool) {
	if len(*s) == 0 {
		return Event{}, false
	}
	ev := (*s)[0]
	*s = (*s)[1:]
	return ev, true
}

// Typed returns one Character event per rune of text.
func Typed(text string) []Event {
	out := make([]Event, 0, len(text))
	for _, r := range text {
		out = append(out, Char(r))
	}
	return out
}
