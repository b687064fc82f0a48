package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding
	DocStart, DocEnd      key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	ToggleFold key.Binding
	FoldAll    key.Binding
	UnfoldAll  key.Binding
	CycleWrap  key.Binding

	Copy, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Home and End move within the screen row, not the document row.
		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "row start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "row end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		// Function keys are not reliable everywhere; alt fallbacks are.
		ToggleFold: key.NewBinding(key.WithKeys("f2", "alt+l"), key.WithHelp("f2/alt+l", "toggle fold")),
		FoldAll:    key.NewBinding(key.WithKeys("alt+0"), key.WithHelp("alt+0", "fold all")),
		UnfoldAll:  key.NewBinding(key.WithKeys("alt+)", "alt+u"), key.WithHelp("alt+u", "unfold all")),
		CycleWrap:  key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("alt+z", "cycle wrap mode")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy row")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp returns the bindings shown in a compact help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleFold, k.FoldAll, k.UnfoldAll, k.CycleWrap}
}
