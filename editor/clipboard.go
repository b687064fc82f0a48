package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors are ignored; a failing clipboard never breaks editing.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
