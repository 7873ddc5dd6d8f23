package models

import "strings"

// Grid is an immutable snapshot of one worksheet's visible contents,
// rows by columns. Rows may be ragged: spreadsheet backends trim
// trailing empty cells, so always access cells through Cell.
type Grid [][]string

// Cell returns the cell at (row, col) or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Row returns the row slice, or nil when out of range.
func (g Grid) Row(row int) []string {
	if row < 0 || row >= len(g) {
		return nil
	}
	return g[row]
}

// RowText joins all non-empty cells of a row with single spaces.
func (g Grid) RowText(row int) string {
	r := g.Row(row)
	if r == nil {
		return ""
	}
	parts := make([]string, 0, len(r))
	for _, c := range r {
		c = strings.TrimSpace(c)
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// NumRows returns the number of rows in the snapshot.
func (g Grid) NumRows() int {
	return len(g)
}
