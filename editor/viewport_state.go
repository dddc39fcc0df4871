package editor

import "github.com/iw2rmb/caret/session"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// Origin is the document position mapped to screen (0, 0).
	Origin session.Origin
	// TopRow is the screen row rendered at viewport row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// Width is the number of cells rendered per row; 0 means unbounded.
	Width int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := m.viewport.YOffset
	if top < 0 {
		top = 0
	}
	return ViewportState{
		Origin:      m.sess.Origin(),
		TopRow:      top,
		VisibleRows: m.visibleRowCount(),
		Width:       m.scr.width,
	}
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
