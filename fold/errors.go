package fold

import "errors"

var (
	ErrRangeTooNarrow     = errors.New("fold: range must span at least two columns")
	ErrInvalidPlaceholder = errors.New("fold: placeholder must be non-empty and single-line")
	ErrFoldIntersects     = errors.New("fold: range intersects an existing fold")
	ErrFoldAttached       = errors.New("fold: fold already belongs to a set")
)
