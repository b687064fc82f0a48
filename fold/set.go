package fold

import (
	"fmt"
	"sort"

	"github.com/iw2rmb/foldwrap/buffer"
)

// Lines is the read-only view of the document a Set needs.
type Lines interface {
	LineCount() int
	LineLen(row int) int
	Line(row int) string
}

// Side picks between a fold ending and a fold starting at the same point.
type Side int8

const (
	// SideBefore ignores a fold that starts exactly at the point.
	SideBefore Side = -1
	// SideAny accepts any fold containing the point, ends included.
	SideAny Side = 0
	// SideAfter ignores a fold that ends exactly at the point.
	SideAfter Side = 1
)

// ChangeAction is the kind of a Change.
type ChangeAction uint8

const (
	Added ChangeAction = iota
	Removed
)

func (a ChangeAction) String() string {
	if a == Removed {
		return "removed"
	}
	return "added"
}

// Change reports a top-level fold added to or removed from a Set. FirstRow
// and LastRow span the rows whose screen layout changed.
type Change struct {
	Action   ChangeAction
	Fold     *Fold
	FirstRow int
	LastRow  int
}

type Option func(*Set)

// WithChangeHook registers fn for every fold added or removed outside of
// ApplyDelta.
func WithChangeHook(fn func(Change)) Option {
	return func(s *Set) { s.hook = fn }
}

// WithRangeFinder sets the finder FoldAll and Expand use to locate foldable
// ranges.
func WithRangeFinder(rf RangeFinder) Option {
	return func(s *Set) { s.finder = rf }
}

// Set holds the folds of one document, grouped by screen row.
type Set struct {
	doc    Lines
	groups []*Group
	byID   map[GroupID]*Group

	nextFold  ID
	nextGroup GroupID

	hook     func(Change)
	finder   RangeFinder
	updating bool
}

func New(doc Lines, opts ...Option) *Set {
	s := &Set{
		doc:  doc,
		byID: make(map[GroupID]*Group),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetChangeHook replaces the change hook.
func (s *Set) SetChangeHook(fn func(Change)) { s.hook = fn }

// SetRangeFinder replaces the range finder.
func (s *Set) SetRangeFinder(rf RangeFinder) { s.finder = rf }

func (s *Set) RangeFinder() RangeFinder { return s.finder }

// Len returns the number of top-level folds.
func (s *Set) Len() int {
	n := 0
	for _, g := range s.groups {
		n += len(g.folds)
	}
	return n
}

// Add folds r behind placeholder. See AddFold, which also covers ranges
// nested inside an existing fold.
func (s *Set) Add(placeholder string, r buffer.Range) (*Fold, error) {
	return s.AddFold(NewFold(placeholder, r))
}

// AddFold adds a detached fold.
//
// The range is clipped to the document and must span at least two columns.
// A range inside an existing fold becomes a sub-fold of it, and existing folds
// inside the range become sub-folds of f. Adding a range that equals an
// existing fold returns the existing fold.
//
// When the range nests inside an existing fold the returned fold is a
// sub-fold of it: it belongs to no group, and its Range is relative to the
// parent's start until the parent is expanded. A range that partially overlaps a
// fold is rejected with ErrFoldIntersects.
func (s *Set) AddFold(f *Fold) (*Fold, error) {
	if f.attached() {
		return nil, fmt.Errorf("%w: %v", ErrFoldAttached, f)
	}
	if !validPlaceholder(f.placeholder) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlaceholder, f.placeholder)
	}
	f.setRange(buffer.NormalizeRange(buffer.ClampRange(f.rng, s.doc.LineCount(), s.doc.LineLen)))
	if !validWidth(f.rng) {
		return nil, fmt.Errorf("%w: %v", ErrRangeTooNarrow, f.rng)
	}

	start, end := f.rng.Start, f.rng.End
	startFold := s.At(start.Row, start.Col, SideAfter)
	endFold := s.At(end.Row, end.Col, SideBefore)
	if startFold != nil && startFold == endFold {
		if startFold.rng == f.rng {
			return startFold, nil
		}
		sub, err := startFold.addSubFold(f)
		if err != nil {
			return nil, err
		}
		s.assignIDs(sub)
		return sub, nil
	}
	if (startFold != nil && !startFold.rng.IsStart(start)) || (endFold != nil && !endFold.rng.IsEnd(end)) {
		return nil, fmt.Errorf("%w: %v", ErrFoldIntersects, f.rng)
	}

	inner := s.InRange(f.rng)
	for _, c := range inner {
		s.remove(c)
	}
	for _, c := range inner {
		if _, err := f.addSubFold(c); err != nil {
			panic(fmt.Sprintf("fold: re-parenting %v under %v: %v", c, f, err))
		}
	}

	s.assignIDs(f)
	g := s.place(f)
	s.emit(Change{Action: Added, Fold: f, FirstRow: g.start.Row, LastRow: g.end.Row})
	return f, nil
}

func (s *Set) assignIDs(f *Fold) {
	if f.id == 0 {
		s.nextFold++
		f.id = s.nextFold
	}
	for _, sub := range f.subFolds {
		s.assignIDs(sub)
	}
}

// place puts a top-level fold into the group whose rows it touches, merging
// groups the fold bridges, or into a new group.
func (s *Set) place(f *Fold) *Group {
	i := sort.Search(len(s.groups), func(i int) bool {
		return s.groups[i].end.Row >= f.rng.Start.Row
	})
	if i == len(s.groups) || s.groups[i].start.Row > f.rng.End.Row {
		g := s.newGroup()
		g.insertFold(f)
		s.groups = append(s.groups, nil)
		copy(s.groups[i+1:], s.groups[i:])
		s.groups[i] = g
		return g
	}

	g := s.groups[i]
	g.insertFold(f)
	for i+1 < len(s.groups) && s.groups[i+1].start.Row <= g.end.Row {
		s.merge(g, s.groups[i+1])
		s.groups = append(s.groups[:i+1], s.groups[i+2:]...)
	}
	return g
}

func (s *Set) newGroup() *Group {
	s.nextGroup++
	g := &Group{id: s.nextGroup}
	s.byID[g.id] = g
	return g
}

// merge moves the folds of next to the end of g. The caller drops next from
// s.groups.
func (s *Set) merge(g, next *Group) {
	for _, f := range next.folds {
		f.group = g.id
	}
	g.folds = append(g.folds, next.folds...)
	g.updateBounds()
	delete(s.byID, next.id)
}

// Remove removes f and the sub-folds it holds. It reports whether f was a
// top-level fold of s.
func (s *Set) Remove(f *Fold) bool {
	if f == nil {
		return false
	}
	g := s.byID[f.group]
	if g == nil {
		return false
	}
	first, last := g.start.Row, g.end.Row
	if !s.remove(f) {
		return false
	}
	s.emit(Change{Action: Removed, Fold: f, FirstRow: first, LastRow: last})
	return true
}

// RemoveFolds removes each fold in folds.
func (s *Set) RemoveFolds(folds []*Fold) {
	for _, f := range append([]*Fold(nil), folds...) {
		s.Remove(f)
	}
}

func (s *Set) remove(f *Fold) bool {
	g := s.byID[f.group]
	if g == nil || !g.removeFold(f) {
		return false
	}
	f.group = 0

	i := s.groupIndex(g)
	if len(g.folds) == 0 {
		delete(s.byID, g.id)
		s.groups = append(s.groups[:i], s.groups[i+1:]...)
		return true
	}
	// Removing a multi-row fold from the middle breaks the chain.
	parts := s.splitChain(g)
	if len(parts) > 1 {
		next := make([]*Group, 0, len(s.groups)+len(parts)-1)
		next = append(next, s.groups[:i]...)
		next = append(next, parts...)
		next = append(next, s.groups[i+1:]...)
		s.groups = next
	}
	return true
}

// splitChain cuts g wherever a fold does not start on the row the previous
// one ended on. The first part keeps g's identity.
func (s *Set) splitChain(g *Group) []*Group {
	parts := []*Group{g}
	cur := g
	folds := g.folds
	cut := 0
	for i := 1; i < len(folds); i++ {
		if folds[i].rng.Start.Row == folds[i-1].rng.End.Row {
			continue
		}
		if cur == g {
			g.folds = folds[cut:i:i]
		} else {
			cur.folds = append([]*Fold(nil), folds[cut:i]...)
		}
		cur.updateBounds()
		cur = s.newGroup()
		parts = append(parts, cur)
		cut = i
	}
	if cur != g {
		cur.folds = append([]*Fold(nil), folds[cut:]...)
		cur.updateBounds()
	}
	for _, p := range parts[1:] {
		for _, f := range p.folds {
			f.group = p.id
		}
	}
	return parts
}

func (s *Set) groupIndex(g *Group) int {
	i := sort.Search(len(s.groups), func(i int) bool {
		return s.groups[i].end.Row >= g.start.Row
	})
	if i < len(s.groups) && s.groups[i] == g {
		return i
	}
	for i, c := range s.groups {
		if c == g {
			return i
		}
	}
	panic(fmt.Sprintf("fold: %v is not in the set", g))
}

// Expand removes f and restores its sub-folds as top-level folds. When
// f.CollapseChildren is positive and a RangeFinder is set, the rows inside f
// are folded again to depth CollapseChildren-1.
func (s *Set) Expand(f *Fold) bool {
	if !s.Remove(f) {
		return false
	}
	subs := f.subFolds
	f.subFolds = nil
	for _, sub := range subs {
		sub.rng = restoreRange(sub.rng, f.rng.Start)
		sub.group = 0
		if _, err := s.AddFold(sub); err != nil {
			panic(fmt.Sprintf("fold: restoring %v from %v: %v", sub, f, err))
		}
	}
	if f.CollapseChildren > 0 {
		s.FoldAll(f.rng.Start.Row+1, f.rng.End.Row, f.CollapseChildren-1)
	}
	return true
}

// ExpandFolds expands each fold in folds.
func (s *Set) ExpandFolds(folds []*Fold) {
	for _, f := range append([]*Fold(nil), folds...) {
		s.Expand(f)
	}
}

// At returns the top-level fold containing (row, col), or nil.
func (s *Set) At(row, col int, side Side) *Fold {
	g := s.GroupAt(row)
	if g == nil {
		return nil
	}
	return g.foldAt(buffer.Pos{Row: row, Col: col}, side)
}

// InRange returns the top-level folds that overlap r. Folds that only touch
// r at an endpoint are not included; an empty r finds the fold strictly
// containing it.
func (s *Set) InRange(r buffer.Range) []*Fold {
	r = buffer.NormalizeRange(r)
	var out []*Fold
	for _, g := range s.groups[s.firstGroupFrom(r.Start.Row):] {
		switch buffer.Relate(g.Range(), r) {
		case buffer.Before:
			continue
		case buffer.After:
			return out
		}
		for _, f := range g.folds {
			rel := buffer.Relate(f.rng, r)
			if rel == buffer.After {
				break
			}
			if rel == buffer.Overlapping {
				out = append(out, f)
			}
		}
	}
	return out
}

// InRangeList concatenates InRange over rs.
func (s *Set) InRangeList(rs []buffer.Range) []*Fold {
	var out []*Fold
	for _, r := range rs {
		out = append(out, s.InRange(r)...)
	}
	return out
}

// All returns every top-level fold in document order.
func (s *Set) All() []*Fold {
	out := make([]*Fold, 0, s.Len())
	for _, g := range s.groups {
		out = append(out, g.folds...)
	}
	return out
}

// CloneFolds returns detached deep copies of every top-level fold.
func (s *Set) CloneFolds() []*Fold {
	all := s.All()
	out := make([]*Fold, 0, len(all))
	for _, f := range all {
		out = append(out, f.Clone())
	}
	return out
}

// Groups returns the groups in document order.
func (s *Set) Groups() []*Group {
	return append([]*Group(nil), s.groups...)
}

// GroupByID resolves a fold's owning group.
func (s *Set) GroupByID(id GroupID) *Group {
	return s.byID[id]
}

// GroupAt returns the group whose rows include row, or nil.
func (s *Set) GroupAt(row int) *Group {
	g := s.NextGroup(row)
	if g == nil || g.start.Row > row {
		return nil
	}
	return g
}

// firstGroupFrom returns the index of the first group ending on or after row.
func (s *Set) firstGroupFrom(row int) int {
	return sort.Search(len(s.groups), func(i int) bool {
		return s.groups[i].end.Row >= row
	})
}

// NextGroup returns the first group ending on or after row, or nil.
func (s *Set) NextGroup(row int) *Group {
	i := s.firstGroupFrom(row)
	if i == len(s.groups) {
		return nil
	}
	return s.groups[i]
}

// FoldedRowCount returns how many rows in [first, last] start a screen line,
// that is, rows not hidden inside a group.
func (s *Set) FoldedRowCount(first, last int) int {
	if last < first {
		return 0
	}
	count := last - first + 1
	for g := s.NextGroup(first); g != nil && g.start.Row < last; g = s.NextGroup(g.end.Row + 1) {
		lo := max(g.start.Row+1, first)
		hi := min(g.end.Row, last)
		if hi >= lo {
			count -= hi - lo + 1
		}
	}
	return count
}

func (s *Set) IsRowFolded(row int) bool {
	return s.GroupAt(row) != nil
}

// RowFoldStart returns the first row of the group containing row, or row.
func (s *Set) RowFoldStart(row int) int {
	if g := s.GroupAt(row); g != nil {
		return g.start.Row
	}
	return row
}

// RowFoldEnd returns the last row of the group containing row, or row.
func (s *Set) RowFoldEnd(row int) int {
	if g := s.GroupAt(row); g != nil {
		return g.end.Row
	}
	return row
}

// Unfold opens every fold overlapping r. With expandInner the folds are
// removed along with everything nested in them; otherwise they are expanded
// repeatedly until no fold overlaps r. It returns the folds found first.
func (s *Set) Unfold(r buffer.Range, expandInner bool) []*Fold {
	folds := s.InRange(r)
	if expandInner {
		s.RemoveFolds(folds)
		return folds
	}
	for sub := folds; len(sub) > 0; sub = s.InRange(r) {
		s.ExpandFolds(sub)
	}
	return folds
}

// UnfoldRow opens the folds overlapping row.
func (s *Set) UnfoldRow(row int, expandInner bool) []*Fold {
	return s.Unfold(buffer.Range{
		Start: buffer.Pos{Row: row},
		End:   buffer.Pos{Row: row, Col: s.doc.LineLen(row)},
	}, expandInner)
}

// RemoveAll removes every fold and returns the top-level ones.
func (s *Set) RemoveAll() []*Fold {
	folds := s.All()
	s.RemoveFolds(folds)
	return folds
}

// ExpandAll expands every top-level fold by one level.
func (s *Set) ExpandAll() {
	s.ExpandFolds(s.All())
}

// FoldAll folds every multi-row range the RangeFinder reports between
// startRow and endRow, outermost first. endRow <= 0 means the end of the
// document. New folds get CollapseChildren = depth.
func (s *Set) FoldAll(startRow, endRow, depth int) []*Fold {
	if s.finder == nil {
		return nil
	}
	if endRow <= 0 || endRow > s.doc.LineCount() {
		endRow = s.doc.LineCount()
	}
	startRow = max(startRow, 0)

	var added []*Fold
	for row := startRow; row < endRow; row++ {
		r, ok := s.finder.FoldRange(s.doc, row)
		if !ok || !r.IsMultiLine() || r.End.Row > endRow || r.Start.Row < startRow {
			continue
		}
		row = r.End.Row
		f, err := s.Add(DefaultPlaceholder, r)
		if err != nil {
			continue
		}
		f.CollapseChildren = depth
		added = append(added, f)
	}
	return added
}

// DisplayLine returns the text shown on the screen row of g: document text
// with each fold replaced by its placeholder.
func (s *Set) DisplayLine(g *Group) string {
	return s.DisplayLineRange(g, buffer.Pos{Row: g.start.Row}, buffer.Pos{Row: g.end.Row, Col: s.doc.LineLen(g.end.Row)})
}

// DisplayLineRange returns the part of the display line of g between the
// document positions from and to.
func (s *Set) DisplayLineRange(g *Group, from, to buffer.Pos) string {
	var out []rune
	g.Walk(to, func(p Piece) bool {
		if p.Row < from.Row {
			return false
		}
		lastCol := p.From
		if p.Row == from.Row {
			if p.To < from.Col {
				return false
			}
			lastCol = max(from.Col, lastCol)
		}
		if p.Fold != nil {
			out = append(out, []rune(p.Fold.placeholder)...)
			return false
		}
		line := []rune(s.doc.Line(p.Row))
		lo := min(max(lastCol, 0), len(line))
		hi := min(max(p.To, lo), len(line))
		out = append(out, line[lo:hi]...)
		return false
	})
	return string(out)
}

// FoldStringAt returns the unfolded text around (row, col) on the display
// line of its group: the whole segment between the neighbouring folds, only
// the part before the point (SideBefore) or only the part after it
// (SideAfter). It returns false when row is not folded or the point lies
// inside a fold.
func (s *Set) FoldStringAt(row, col int, side Side) (string, bool) {
	g := s.GroupAt(row)
	if g == nil {
		return "", false
	}
	p := buffer.Pos{Row: row, Col: col}

	segRow, from, to := g.start.Row, 0, -1
	for _, f := range g.folds {
		if buffer.ComparePos(p, f.rng.Start) < 0 {
			segRow, to = f.rng.Start.Row, f.rng.Start.Col
			break
		}
		if buffer.ComparePos(p, f.rng.End) < 0 {
			return "", false
		}
		segRow, from = f.rng.End.Row, f.rng.End.Col
	}
	if segRow != row {
		return "", false
	}

	line := []rune(s.doc.Line(segRow))
	if to < 0 || to > len(line) {
		to = len(line)
	}
	from = min(from, to)
	col = min(max(col, from), to)
	switch side {
	case SideBefore:
		return string(line[from:col]), true
	case SideAfter:
		return string(line[col:to]), true
	default:
		return string(line[from:to]), true
	}
}

func (s *Set) emit(c Change) {
	if s.updating || s.hook == nil {
		return
	}
	s.hook(c)
}
