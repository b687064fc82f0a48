// Package fold keeps track of collapsed document ranges.
//
// A Fold hides a range of the document behind a single-line placeholder. Folds
// that collapse onto the same screen row form a Group: within a group every
// fold starts on the row where the previous one ends, and no two groups share
// a row. Folds nested inside a fold are kept as its sub-folds, stored relative
// to the fold's start, and come back when the fold is expanded.
//
// A Set is not safe for concurrent use.
package fold
