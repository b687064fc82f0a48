package editor

import (
	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/fold"
)

// ChangeEvent describes the editor state after an update that edited the
// text or moved the cursor.
type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	// ScreenCursor is the cursor in screen coordinates.
	ScreenCursor buffer.Pos
	// Folds is the number of top-level folds.
	Folds int

	// Change is the last buffer change, when the version moved.
	Change    buffer.Change
	HasChange bool
}

func (m Model) changeEvent() ChangeEvent {
	buf := m.sess.Buffer()
	ev := ChangeEvent{
		Version:      buf.Version(),
		Cursor:       m.cursor,
		ScreenCursor: m.mapper().DocumentToScreen(m.cursor.Row, m.cursor.Col),
		Folds:        m.sess.Folds().Len(),
	}
	if c, ok := buf.LastChange(); ok && c.VersionAfter == ev.Version {
		ev.Change, ev.HasChange = c, true
	}
	return ev
}

// foldUnderCursor returns the fold whose placeholder the cursor sits on.
func (m Model) foldUnderCursor() *fold.Fold {
	f := m.sess.Folds().At(m.cursor.Row, m.cursor.Col, fold.SideAfter)
	if f == nil || f.Start() != m.cursor {
		return nil
	}
	return f
}
