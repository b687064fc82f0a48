// Package buffer implements the rune-accurate document model that the fold
// and screen packages read from.
//
// Coordinates are 0-based (Row, Col) in runes. Ranges are ordered pairs of
// positions in document coordinates with Start <= End.
//
// Every mutation is reported to subscribers as one or more Deltas. A Delta is
// either an insertion (Range spans the inserted text after the edit) or a
// removal (Range spans the removed text before the edit).
package buffer
