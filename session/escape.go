package session

// EscapeState is the state of the escape sequence decoder.
type EscapeState uint8

const (
	Idle EscapeState = iota
	// PendingEscape follows an Escape event and waits for one designator.
	PendingEscape
	// PendingSequence follows ESC '[' or ESC 'O' and waits for a final rune.
	PendingSequence
)

// EscapeAction tells the caller what to do with a fed event.
type EscapeAction uint8

const (
	// Pass means the returned event should be handled normally.
	Pass EscapeAction = iota
	// Consume means the event was absorbed by the decoder.
	Consume
	// Terminate means a lone Escape ended the input.
	Terminate
)

// EscapeDecoder turns Escape-prefixed event runs into movement events.
//
// The zero value is ready to use.
type EscapeDecoder struct {
	state EscapeState
}

func (d *EscapeDecoder) State() EscapeState { return d.state }

func (d *EscapeDecoder) Reset() { d.state = Idle }

// Feed advances the decoder with ev.
func (d *EscapeDecoder) Feed(ev Event) (Event, EscapeAction) {
	switch d.state {
	case PendingEscape:
		switch {
		case ev.Kind == NoEvent:
			d.state = Idle
			return ev, Terminate
		case ev.Kind == Character && (ev.Rune == '[' || ev.Rune == 'O'):
			d.state = PendingSequence
			return ev, Consume
		case ev.Kind == Escape:
			return ev, Consume
		default:
			d.state = Idle
			return ev, Pass
		}

	case PendingSequence:
		if ev.Kind == Escape {
			// A new escape abandons the partial sequence and starts over.
			d.state = PendingEscape
			return ev, Consume
		}
		if ev.Kind != Character {
			d.state = Idle
			if ev.Kind == NoEvent {
				return ev, Consume
			}
			return ev, Pass
		}
		if isSequenceParam(ev.Rune) {
			return ev, Consume
		}
		d.state = Idle
		if k, ok := arrowFinals[ev.Rune]; ok {
			return Key(k), Pass
		}
		return ev, Consume

	default:
		if ev.Kind == Escape {
			d.state = PendingEscape
			return ev, Consume
		}
		return ev, Pass
	}
}

var arrowFinals = map[rune]EventKind{
	'A': ArrowUp,
	'B': ArrowDown,
	'C': ArrowRight,
	'D': ArrowLeft,
}

func isSequenceParam(r rune) bool {
	return (r >= '0' && r <= '9') || r == ';'
}
