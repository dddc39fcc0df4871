package session

// Display is the rendering sink driven by a Session.
//
// The host owns the display; a Session only holds the handle and must not
// outlive it.
type Display interface {
	// SetCursor positions the visible cursor at screen coordinates.
	SetCursor(col, row int)
	// Repaint replaces the visible content with the full text.
	Repaint(text string)
	// Dirty reports whether a Refresh is needed.
	Dirty() bool
	// Refresh flushes pending changes to the terminal.
	Refresh()
}

type nopDisplay struct{}

func (nopDisplay) SetCursor(int, int) {}
func (nopDisplay) Repaint(string)     {}
func (nopDisplay) Dirty() bool        { return false }
func (nopDisplay) Refresh()           {}
