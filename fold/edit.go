package fold

import "github.com/iw2rmb/foldwrap/buffer"

// ApplyDelta moves folds to follow a document change that has already been
// applied, and returns the folds the change destroyed.
//
// A removal destroys every fold it overlaps. An insertion destroys the fold
// strictly containing its start; text inserted at a fold's start pushes the
// fold along, text inserted at its end does not. Groups are split or merged
// so that each still covers exactly one screen row. The change hook is not
// called: the caller invalidates layout for the rows the change touched and
// the ranges of the returned folds.
func (s *Set) ApplyDelta(d buffer.Delta) []*Fold {
	s.updating = true
	defer func() { s.updating = false }()

	r := d.Range
	var removed []*Fold
	switch d.Action {
	case buffer.DeltaInsert:
		removed = s.InRange(buffer.Range{Start: r.Start, End: r.Start})
	case buffer.DeltaRemove:
		removed = s.InRange(r)
	}
	for _, f := range removed {
		s.remove(f)
	}
	if r.IsEmpty() {
		return removed
	}

	for _, g := range s.groups[s.firstGroupFrom(r.Start.Row):] {
		if buffer.ComparePos(g.end, r.Start) < 0 {
			continue
		}
		for _, f := range g.folds {
			if d.Action == buffer.DeltaInsert {
				f.rng.Start = shiftForInsert(f.rng.Start, r, false)
				f.rng.End = shiftForInsert(f.rng.End, r, true)
			} else {
				f.rng.Start = shiftForRemove(f.rng.Start, r)
				f.rng.End = shiftForRemove(f.rng.End, r)
			}
		}
		g.updateBounds()
	}
	if r.IsMultiLine() {
		s.relink()
	}
	return removed
}

// shiftForInsert maps p across an insertion of r. A fold end sitting exactly
// at the insertion point stays put.
func shiftForInsert(p buffer.Pos, r buffer.Range, isEnd bool) buffer.Pos {
	c := buffer.ComparePos(p, r.Start)
	if c < 0 || (c == 0 && isEnd) {
		return p
	}
	if p.Row == r.Start.Row {
		return buffer.Pos{Row: r.End.Row, Col: r.End.Col + p.Col - r.Start.Col}
	}
	return buffer.Pos{Row: p.Row + r.End.Row - r.Start.Row, Col: p.Col}
}

// shiftForRemove maps p across the removal of r. p never lies inside r.
func shiftForRemove(p buffer.Pos, r buffer.Range) buffer.Pos {
	if buffer.ComparePos(p, r.End) < 0 {
		return p
	}
	if p.Row == r.End.Row {
		return buffer.Pos{Row: r.Start.Row, Col: r.Start.Col + p.Col - r.End.Col}
	}
	return buffer.Pos{Row: p.Row - (r.End.Row - r.Start.Row), Col: p.Col}
}

// relink splits groups whose chain of rows broke and merges neighbours that
// now share a row.
func (s *Set) relink() {
	out := make([]*Group, 0, len(s.groups))
	for _, g := range s.groups {
		for _, p := range s.splitChain(g) {
			if n := len(out); n > 0 && out[n-1].end.Row >= p.start.Row {
				s.merge(out[n-1], p)
				continue
			}
			out = append(out, p)
		}
	}
	s.groups = out
}
