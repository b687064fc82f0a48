package buffer

import "fmt"

// Pos points into the document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Range spans [Start, End] in document coordinates. Start <= End in document
// order.
type Range struct {
	Start Pos
	End   Pos
}

func (r Range) String() string {
	return fmt.Sprintf("[%v -> %v]", r.Start, r.End)
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) IsMultiLine() bool {
	return r.Start.Row != r.End.Row
}

// Contains reports whether p lies in r, both ends included.
func (r Range) Contains(p Pos) bool {
	return ComparePos(r.Start, p) <= 0 && ComparePos(p, r.End) <= 0
}

// ContainsRange reports whether o lies in r, both ends included.
func (r Range) ContainsRange(o Range) bool {
	return r.Contains(o.Start) && r.Contains(o.End)
}

func (r Range) IsStart(p Pos) bool { return r.Start == p }

func (r Range) IsEnd(p Pos) bool { return r.End == p }

// Relation places one range relative to another.
type Relation int8

const (
	// Before means the range ends at or before the other range starts.
	Before Relation = iota - 1
	// Overlapping means the ranges share at least one interior point.
	Overlapping
	// After means the range starts at or after the other range ends.
	After
)

func (rel Relation) String() string {
	switch rel {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "overlapping"
	}
}

// Relate places a relative to b. Ranges that only touch at an endpoint do
// not overlap, so an empty b overlaps a only when it lies strictly inside a.
func Relate(a, b Range) Relation {
	if ComparePos(a.End, b.Start) <= 0 {
		return Before
	}
	if ComparePos(a.Start, b.End) >= 0 {
		return After
	}
	return Overlapping
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of logical lines (rows).
// - lineLen(row) returns the rune length of the given row.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
