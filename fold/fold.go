package fold

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/foldwrap/buffer"
)

// ID identifies a fold within a Set. Detached folds have ID 0.
type ID uint64

// Fold is a collapsed document range shown as Placeholder.
type Fold struct {
	id          ID
	rng         buffer.Range
	placeholder string
	group       GroupID

	// subFolds are sorted, disjoint and relative to rng.Start.
	subFolds []*Fold

	// CollapseChildren is the depth to which nested ranges are folded again
	// when the fold is expanded. Zero leaves them open.
	CollapseChildren int
}

// NewFold returns a detached fold. Validation happens when it is added to a
// Set.
func NewFold(placeholder string, r buffer.Range) *Fold {
	return &Fold{rng: buffer.NormalizeRange(r), placeholder: placeholder}
}

func (f *Fold) ID() ID { return f.id }

// Range returns the folded range. For a sub-fold it is relative to the start
// of the parent: rows count from the parent's start row, and columns on that
// first row count from the parent's start column.
func (f *Fold) Range() buffer.Range { return f.rng }

func (f *Fold) Start() buffer.Pos { return f.rng.Start }
func (f *Fold) End() buffer.Pos { return f.rng.End }
func (f *Fold) Placeholder() string { return f.placeholder }
func (f *Fold) IsSameRow() bool { return !f.rng.IsMultiLine() }
func (f *Fold) Group() GroupID { return f.group }
func (f *Fold) attached() bool { return f.group != 0 }
func (f *Fold) placeholderLen() int { return len([]rune(f.placeholder)) }
func (f *Fold) setRange(r buffer.Range) { f.rng = r }

func (f *Fold) String() string {
	return fmt.Sprintf("%q %v", f.placeholder, f.rng)
}

// SubFolds returns the ranges of the direct sub-folds in document
// coordinates.
func (f *Fold) SubFolds() []buffer.Range {
	out := make([]buffer.Range, 0, len(f.subFolds))
	for _, sub := range f.subFolds {
		out = append(out, restoreRange(sub.rng, f.rng.Start))
	}
	return out
}

// Clone returns a detached deep copy of f.
func (f *Fold) Clone() *Fold {
	out := &Fold{
		rng:              f.rng,
		placeholder:      f.placeholder,
		CollapseChildren: f.CollapseChildren,
	}
	for _, sub := range f.subFolds {
		out.subFolds = append(out.subFolds, sub.Clone())
	}
	return out
}

func validPlaceholder(p string) bool {
	return p != "" && !strings.ContainsAny(p, "\r\n")
}

func validWidth(r buffer.Range) bool {
	return r.Start.Row < r.End.Row || (r.Start.Row == r.End.Row && r.Start.Col <= r.End.Col-2)
}

// addSubFold nests sub under f. sub.rng must be in the same coordinate space
// as f.rng. It returns the fold that ends up holding the range: sub itself or
// an identical existing sub-fold.
func (f *Fold) addSubFold(sub *Fold) (*Fold, error) {
	if sub.rng == f.rng {
		return f, nil
	}
	if !f.rng.ContainsRange(sub.rng) {
		return nil, fmt.Errorf("%w: %v outside %v", ErrFoldIntersects, sub.rng, f.rng)
	}

	local := consumeRange(sub.rng, f.rng.Start)

	i := 0
	for i < len(f.subFolds) && buffer.Relate(f.subFolds[i].rng, local) == buffer.Before {
		i++
	}
	j := i
	for j < len(f.subFolds) {
		c := f.subFolds[j]
		if buffer.Relate(c.rng, local) != buffer.Overlapping {
			break
		}
		if c.rng.ContainsRange(local) {
			if j != i {
				return nil, fmt.Errorf("%w: %v", ErrFoldIntersects, sub.rng)
			}
			sub.rng = local
			return c.addSubFold(sub)
		}
		if !local.ContainsRange(c.rng) {
			return nil, fmt.Errorf("%w: %v and %v", ErrFoldIntersects, sub.rng, restoreRange(c.rng, f.rng.Start))
		}
		j++
	}

	// Sub-folds swallowed by sub move under it.
	consumed := f.subFolds[i:j]
	sub.rng = local
	sub.group = 0
	for _, c := range consumed {
		c.rng = consumeRange(c.rng, local.Start)
		sub.subFolds = append(sub.subFolds, c)
	}

	next := make([]*Fold, 0, len(f.subFolds)-len(consumed)+1)
	next = append(next, f.subFolds[:i]...)
	next = append(next, sub)
	next = append(next, f.subFolds[j:]...)
	f.subFolds = next
	return sub, nil
}

func consumePoint(p, anchor buffer.Pos) buffer.Pos {
	p.Row -= anchor.Row
	if p.Row == 0 {
		p.Col -= anchor.Col
	}
	return p
}

func restorePoint(p, anchor buffer.Pos) buffer.Pos {
	if p.Row == 0 {
		p.Col += anchor.Col
	}
	p.Row += anchor.Row
	return p
}

func consumeRange(r buffer.Range, anchor buffer.Pos) buffer.Range {
	return buffer.Range{Start: consumePoint(r.Start, anchor), End: consumePoint(r.End, anchor)}
}

func restoreRange(r buffer.Range, anchor buffer.Pos) buffer.Range {
	return buffer.Range{Start: restorePoint(r.Start, anchor), End: restorePoint(r.End, anchor)}
}
