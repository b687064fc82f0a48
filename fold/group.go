package fold

import (
	"fmt"
	"sort"

	"github.com/iw2rmb/foldwrap/buffer"
)

// GroupID identifies a group within a Set. It stays the same while the group
// exists, including across edits that shift it.
type GroupID uint64

// Group is a run of folds rendered on a single screen row. Each fold starts
// on the row where the previous one ends.
type Group struct {
	id    GroupID
	folds []*Fold
	start buffer.Pos
	end   buffer.Pos
}

func (g *Group) ID() GroupID { return g.id }
func (g *Group) Start() buffer.Pos { return g.start }
func (g *Group) End() buffer.Pos { return g.end }
func (g *Group) Range() buffer.Range { return buffer.Range{Start: g.start, End: g.end} }
func (g *Group) Len() int { return len(g.folds) }

// Folds returns the folds of g in document order.
func (g *Group) Folds() []*Fold {
	return append([]*Fold(nil), g.folds...)
}

func (g *Group) ContainsRow(row int) bool {
	return row >= g.start.Row && row <= g.end.Row
}

func (g *Group) String() string {
	return fmt.Sprintf("group#%d %v (%d folds)", g.id, g.Range(), len(g.folds))
}

// Piece is one step of Walk: either document text on Row in [From, To) or a
// fold whose placeholder replaces its range.
type Piece struct {
	Fold *Fold
	Row  int
	From int
	To   int
}

// Walk visits the display line of g up to end: text before each fold, then
// the fold itself. It stops early when fn returns true, or after the fold
// containing end. end must lie on a row the display line shows.
func (g *Group) Walk(end buffer.Pos, fn func(Piece) (stop bool)) {
	lastEnd := 0
	for _, f := range g.folds {
		if buffer.ComparePos(end, f.rng.Start) <= 0 {
			fn(Piece{Row: end.Row, From: lastEnd, To: end.Col})
			return
		}
		if fn(Piece{Row: f.rng.Start.Row, From: lastEnd, To: f.rng.Start.Col}) {
			return
		}
		if fn(Piece{Fold: f, Row: f.rng.Start.Row, From: f.rng.Start.Col, To: f.rng.Start.Col}) {
			return
		}
		if buffer.ComparePos(end, f.rng.End) <= 0 {
			return
		}
		lastEnd = f.rng.End.Col
	}
	fn(Piece{Row: end.Row, From: lastEnd, To: end.Col})
}

// IdxToPosition maps a rune offset into the display line of g back to a
// document position. Offsets inside a placeholder map to the fold's start.
func (g *Group) IdxToPosition(idx int) buffer.Pos {
	lastEnd := 0
	for _, f := range g.folds {
		idx -= f.rng.Start.Col - lastEnd
		if idx < 0 {
			return buffer.Pos{Row: f.rng.Start.Row, Col: f.rng.Start.Col + idx}
		}
		idx -= f.placeholderLen()
		if idx < 0 {
			return f.rng.Start
		}
		lastEnd = f.rng.End.Col
	}
	return buffer.Pos{Row: g.end.Row, Col: g.end.Col + idx}
}

func (g *Group) updateBounds() {
	if len(g.folds) == 0 {
		return
	}
	g.start = g.folds[0].rng.Start
	g.end = g.folds[len(g.folds)-1].rng.End
}

// insertFold places f among the folds of g in document order. f must touch
// the rows of g and must not overlap any of its folds.
func (g *Group) insertFold(f *Fold) {
	if len(g.folds) > 0 && (f.rng.Start.Row > g.end.Row || f.rng.End.Row < g.start.Row) {
		panic(fmt.Sprintf("fold: %v does not touch the rows of %v", f, g))
	}
	i := sort.Search(len(g.folds), func(i int) bool {
		return buffer.ComparePos(g.folds[i].rng.Start, f.rng.Start) >= 0
	})
	if (i > 0 && buffer.ComparePos(g.folds[i-1].rng.End, f.rng.Start) > 0) ||
		(i < len(g.folds) && buffer.ComparePos(f.rng.End, g.folds[i].rng.Start) > 0) {
		panic(fmt.Sprintf("fold: %v overlaps a fold of %v", f, g))
	}
	g.folds = append(g.folds, nil)
	copy(g.folds[i+1:], g.folds[i:])
	g.folds[i] = f
	f.group = g.id
	g.updateBounds()
}

// removeFold drops f from g and reports whether it was there.
func (g *Group) removeFold(f *Fold) bool {
	for i, c := range g.folds {
		if c == f {
			g.folds = append(g.folds[:i:i], g.folds[i+1:]...)
			g.updateBounds()
			return true
		}
	}
	return false
}

// foldAt returns the fold of g containing p, or nil.
func (g *Group) foldAt(p buffer.Pos, side Side) *Fold {
	for _, f := range g.folds {
		if !f.rng.Contains(p) {
			continue
		}
		if side == SideAfter && f.rng.IsEnd(p) {
			continue
		}
		if side == SideBefore && f.rng.IsStart(p) {
			continue
		}
		return f
	}
	return nil
}
