package editor

import (
	"github.com/iw2rmb/foldwrap/fold"
	"github.com/iw2rmb/foldwrap/wrap"
)

// Config configures the editor Model.
type Config struct {
	// Initial text.
	Text string

	// Layout options, forwarded to the session.
	TabWidth    int
	WrapMode    wrap.Mode
	RangeFinder fold.RangeFinder

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// FoldPreviewRows caps the rows shown in the popup that previews a fold
	// under the cursor. Zero uses 5; negative disables the popup.
	FoldPreviewRows int

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap       KeyMap
	ScrollPolicy ScrollPolicy
	ReadOnly     bool

	Clipboard Clipboard

	// OnChange is called after an update that changed the text or moved the
	// cursor.
	OnChange func(ChangeEvent)
}

// ScrollPolicy decides whether the viewport may scroll away from the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll without moving the
	// cursor.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores the mouse wheel; only cursor movement
	// scrolls.
	ScrollFollowCursorOnly
)

const defaultFoldPreviewRows = 5

func (c Config) foldPreviewRows() int {
	if c.FoldPreviewRows == 0 {
		return defaultFoldPreviewRows
	}
	return c.FoldPreviewRows
}

func (c Config) withDefaults() Config {
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
