// Package editor provides a Bubble Tea text editor component with code
// folding and soft wrapping.
//
// The component keeps its cursor in document coordinates and renders through
// a session.Session: every screen row is looked up in the session's screen
// mapper, so folds collapse rows and wrapping splits them without the editor
// tracking layout itself.
package editor
