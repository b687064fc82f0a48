// Package screen maps between document and screen coordinates.
//
// A document row is shown on one or more screen rows: soft wrapping breaks a
// long row into several, and a fold group collapses several document rows
// onto one display line. Mapper caches the wrap splits of every row and a
// table of (document row, screen row) checkpoints so that conversions do not
// rescan the document from the top.
package screen
