package editor

import (
	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/wrap"
)

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopScreenRow is the screen row rendered at viewport row 0.
	TopScreenRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// ScreenRows is the total number of screen rows after folding and
	// wrapping.
	ScreenRows int
	// LeftCellOffset is the horizontal cell offset in WrapNone mode.
	LeftCellOffset int
	WrapMode       wrap.Mode
	WrapWidth      int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	cfg := m.mapper().Config()
	st := ViewportState{
		TopScreenRow: max(m.viewport.YOffset, 0),
		VisibleRows:  m.visibleRowCount(),
		ScreenRows:   m.mapper().ScreenLength(),
		WrapMode:     cfg.WrapMode,
	}
	if cfg.WrapMode == wrap.WrapNone {
		st.LeftCellOffset = max(m.xOffset, 0)
	} else {
		st.WrapWidth = cfg.WrapWidth
	}
	return st
}

// ScreenToDoc maps viewport-local screen coordinates to a document position.
//
// Coordinates use terminal cells relative to the editor viewport.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	return (&m).screenToDocPos(x, y)
}

// DocToScreen maps a document position to viewport-local screen coordinates.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) DocToScreen(p buffer.Pos) (x, y int, ok bool) {
	return (&m).docToScreenPos(p)
}
