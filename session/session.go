// Package session ties a document buffer, its folds and the screen mapper
// together and keeps them consistent across edits.
package session

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/foldwrap/buffer"
	"github.com/iw2rmb/foldwrap/fold"
	"github.com/iw2rmb/foldwrap/screen"
	"github.com/iw2rmb/foldwrap/wrap"
)

// Config configures a Session. Zero values fall back to the defaults of the
// screen package.
type Config struct {
	Text string

	TabWidth  int
	WrapMode  wrap.Mode
	WrapWidth int
	WrapMin   int
	WrapMax   int
	Tokenizer wrap.Tokenizer

	// RangeFinder locates foldable ranges for ToggleFold and FoldAll.
	// Defaults to brackets, then indentation.
	RangeFinder fold.RangeFinder

	// OnFoldChange is called after a fold is added or removed outside of an
	// edit.
	OnFoldChange func(fold.Change)
}

// Session owns one document and its layout.
//
// Edits must go through the Session (or through its Buffer, which notifies
// the Session) so that folds and screen caches follow the text. A Session is
// not safe for concurrent use.
type Session struct {
	buf    *buffer.Buffer
	folds  *fold.Set
	screen *screen.Mapper

	onFoldChange func(fold.Change)
	removed      []*fold.Fold
	unsubscribe  func()
}

func New(cfg Config) *Session {
	finder := cfg.RangeFinder
	if finder == nil {
		finder = fold.FirstOf(fold.BracketFinder{}, fold.IndentFinder{})
	}

	s := &Session{
		buf:          buffer.New(cfg.Text),
		onFoldChange: cfg.OnFoldChange,
	}
	s.folds = fold.New(s.buf, fold.WithRangeFinder(finder), fold.WithChangeHook(s.foldChanged))
	s.screen = screen.New(s.buf, s.folds, screen.Config{
		TabWidth:  cfg.TabWidth,
		WrapMode:  cfg.WrapMode,
		WrapWidth: cfg.WrapWidth,
		WrapMin:   cfg.WrapMin,
		WrapMax:   cfg.WrapMax,
		Tokenizer: cfg.Tokenizer,
	})
	s.unsubscribe = s.buf.Subscribe(s.applyDelta)
	return s
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }
func (s *Session) Folds() *fold.Set { return s.folds }
func (s *Session) Screen() *screen.Mapper { return s.screen }

// Close detaches the Session from its buffer. Later buffer edits are no
// longer tracked.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Session) applyDelta(d buffer.Delta) {
	removed := s.folds.ApplyDelta(d)
	s.screen.ApplyDelta(d, removed)
	s.removed = append(s.removed, removed...)
}

func (s *Session) foldChanged(c fold.Change) {
	s.screen.Invalidate(c.FirstRow, c.LastRow)
	if s.onFoldChange != nil {
		s.onFoldChange(c)
	}
}

// takeRemoved returns the folds dropped since the last call.
func (s *Session) takeRemoved() []*fold.Fold {
	out := s.removed
	s.removed = nil
	return out
}

// Insert inserts text at p. It returns the position after the inserted text
// and the folds the edit removed.
func (s *Session) Insert(p buffer.Pos, text string) (buffer.Pos, []*fold.Fold) {
	s.removed = nil
	end := s.buf.Insert(p, text)
	return end, s.takeRemoved()
}

// Remove deletes r. It returns the removed text and the folds the edit
// removed.
func (s *Session) Remove(r buffer.Range) (string, []*fold.Fold) {
	s.removed = nil
	text := s.buf.Remove(r)
	return text, s.takeRemoved()
}

// Replace replaces r with text.
func (s *Session) Replace(r buffer.Range, text string) (buffer.Pos, []*fold.Fold) {
	s.removed = nil
	end := s.buf.Replace(r, text)
	return end, s.takeRemoved()
}

// Apply applies edits in order and returns every fold they removed.
func (s *Session) Apply(edits ...buffer.TextEdit) []*fold.Fold {
	s.removed = nil
	s.buf.Apply(edits...)
	return s.takeRemoved()
}

// SetText replaces the whole document. All folds are dropped.
func (s *Session) SetText(text string) {
	s.folds.RemoveAll()
	s.buf.Replace(buffer.Range{End: s.buf.EndPos()}, text)
	s.removed = nil
	s.screen.Reset()
}

// RestoreFolds re-adds folds an edit removed, once the edit has been undone.
// Folds that no longer fit the text are skipped and reported in the error.
func (s *Session) RestoreFolds(folds []*fold.Fold) error {
	var errs []error
	for _, f := range folds {
		if _, err := s.folds.AddFold(f); err != nil {
			errs = append(errs, fmt.Errorf("restore %v: %w", f, err))
		}
	}
	return errors.Join(errs...)
}

// ToggleFold expands the fold at p, or folds the range the RangeFinder
// reports for p's row. It reports whether anything changed.
func (s *Session) ToggleFold(p buffer.Pos) bool {
	p = s.buf.ClampPos(p)
	if f := s.folds.At(p.Row, p.Col, fold.SideAny); f != nil {
		return s.folds.Expand(f)
	}

	finder := s.folds.RangeFinder()
	if finder == nil {
		return false
	}
	r, ok := finder.FoldRange(s.buf, p.Row)
	if !ok {
		return false
	}
	_, err := s.folds.Add(fold.DefaultPlaceholder, r)
	return err == nil
}

// FoldAll folds every range the RangeFinder finds.
func (s *Session) FoldAll() []*fold.Fold {
	return s.folds.FoldAll(0, 0, 0)
}

// UnfoldAll removes every fold, nested ones included.
func (s *Session) UnfoldAll() []*fold.Fold {
	return s.folds.RemoveAll()
}
