package session

// Run drives s from src until an event ends the session or src is exhausted.
//
// Each event is fully handled and the display refreshed, when dirty, before
// the next one is read. Exhaustion is delivered once as NoEvent so that a
// trailing lone Escape still terminates.
func Run(s *Session, src Source) {
	for {
		ev, ok := src.Next()
		if !ok {
			ev = Event{Kind: NoEvent}
		}
		out := s.Handle(ev)
		if s.display.Dirty() {
			s.display.Refresh()
		}
		if out.Quit || !ok {
			return
		}
	}
}
