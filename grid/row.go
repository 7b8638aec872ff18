// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/row.go
// Summary: Row storage for the cell buffer, including the forced-wrap flag.

package grid

import "github.com/mattn/go-runewidth"

// Row is one physical line of the buffer: a fixed-width run of cells
// plus a flag recording whether the line break at its end was forced
// by running out of columns rather than by an explicit newline.
type Row struct {
	cells      []Cell
	wrapForced bool
}

func newRow(width int) *Row {
	r := &Row{cells: make([]Cell, width)}
	r.reset()
	return r
}

// reset blanks the row so it can be recycled as a fresh line.
func (r *Row) reset() {
	for i := range r.cells {
		r.cells[i] = blankCell()
	}
	r.wrapForced = false
}

// Width returns the number of columns in the row.
func (r *Row) Width() int { return len(r.cells) }

// Cell returns the cell at the given column. Out-of-range columns
// yield a blank cell.
func (r *Row) Cell(col int) Cell {
	if col < 0 || col >= len(r.cells) {
		return blankCell()
	}
	return r.cells[col]
}

// Cells returns a copy of the row's cells.
func (r *Row) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// WrapForced reports whether this row ends in a forced wrap.
func (r *Row) WrapForced() bool { return r.wrapForced }

// SetWrapForced marks or clears the forced-wrap flag.
func (r *Row) SetWrapForced(forced bool) { r.wrapForced = forced }

// writeAt places a single character unit at the given column with the
// given pen, returning how many cells it consumed. A wide rune needs
// two columns and is placed together with its spacer cell or not at
// all; zero is returned when the unit does not fit.
func (r *Row) writeAt(col int, ch rune, pen Attributes) int {
	if col < 0 || col >= len(r.cells) {
		return 0
	}
	cw := runeCellWidth(ch)
	if col+cw > len(r.cells) {
		return 0
	}
	r.cells[col] = Cell{Rune: ch, FG: pen.FG, BG: pen.BG, Attr: pen.Attr, Wide: cw == 2}
	if cw == 2 {
		r.cells[col+1] = Cell{Rune: 0, FG: pen.FG, BG: pen.BG, Attr: pen.Attr, Wide: true}
	}
	return cw
}

// lastNonBlank returns the column of the last cell holding content, or
// -1 for a fully blank row.
func (r *Row) lastNonBlank() int {
	for col := len(r.cells) - 1; col >= 0; col-- {
		c := r.cells[col]
		if c.Rune != ' ' && c.Rune != 0 {
			return col
		}
		if c.FG != DefaultFG || c.BG != DefaultBG || c.Attr != 0 {
			return col
		}
	}
	return -1
}

// runeCellWidth returns how many columns a rune occupies. Control and
// zero-width runes still consume one column here: by the time a rune
// reaches the buffer the dispatcher has already routed controls away.
func runeCellWidth(ch rune) int {
	w := runewidth.RuneWidth(ch)
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}
