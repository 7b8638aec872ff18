// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/reflow.go
// Summary: Reflow transfers buffer content across geometries on resize.
//
// Rows chained by the forced-wrap flag are merged into width-independent
// logical lines and re-wrapped at the target width; rows broken by an
// explicit newline keep their break. Truncation when the target is too
// small happens through the target's own ring eviction, oldest content
// first, and is silent: reflow never fails.

package grid

// reflowCell is one rewrappable unit: a lead cell (spacer cells of
// wide runes are skipped while collecting and recreated on write).
type reflowCell struct {
	cell Cell
	// cursorHere marks the unit the old cursor sat on.
	cursorHere bool
	// viewTopHere marks the first unit of the old viewport's top row.
	viewTopHere bool
}

// Reflow re-lays-out the content of old into target, which has
// already been allocated with the new geometry. The cursor is
// relocated to keep its place in the text. The returned depth is the
// index of the last surviving scrollback row above the old viewport's
// content, -1 when none survived; callers place the new mutable
// viewport immediately below it, at row depth+1.
func Reflow(old, target *Buffer, oldViewport Viewport) int {
	lastRow := old.lastContentRow()
	cursorPos := old.Cursor().Position()
	if cursorPos.Row > lastRow {
		lastRow = cursorPos.Row
	}

	w := writerState{buf: target, viewTopRow: -1, cursorPos: Coord{Col: -1, Row: -1}}

	for y := 0; y <= lastRow; {
		line, next := collectLogicalLine(old, y, lastRow, cursorPos, oldViewport.Top())
		w.writeLine(line, next > lastRow)
		y = next
	}

	// The old viewport top can sit below the last content row (blank
	// tail). Preserve the blank distance under the transferred text.
	if w.viewTopRow < 0 {
		w.viewTopRow = w.row + (oldViewport.Top() - lastRow - 1)
		if lastRow < 0 {
			w.viewTopRow = 0
		}
	}
	if w.viewTopRow < 0 {
		w.viewTopRow = 0
	}

	// Cursor fallback for a cursor parked on blank rows beyond content.
	if w.cursorPos.Row < 0 {
		col := cursorPos.Col
		if col >= target.Size().Width() {
			col = target.Size().Width() - 1
		}
		row := w.row
		if lastRow >= 0 && cursorPos.Row > lastRow {
			row += cursorPos.Row - lastRow - 1
		}
		if row >= target.Size().Height() {
			row = target.Size().Height() - 1
		}
		w.cursorPos = Coord{Col: col, Row: row}
	}
	target.Cursor().SetPosition(w.cursorPos)

	return w.viewTopRow - 1
}

// collectLogicalLine gathers the logical line starting at row y,
// following forced-wrap chains, and returns it along with the first
// row after the line.
func collectLogicalLine(b *Buffer, y, lastRow int, cursorPos Coord, viewTop int) ([]reflowCell, int) {
	var line []reflowCell
	for {
		row := b.RowAt(y)
		end := row.lastNonBlank() + 1
		if row.WrapForced() && y < lastRow {
			// Wrapped rows keep their full width so rewrap can rejoin
			// the split exactly.
			end = row.Width()
		}
		if cursorPos.Row == y && cursorPos.Col+1 > end {
			end = cursorPos.Col + 1
			if end > row.Width() {
				end = row.Width()
			}
		}
		for col := 0; col < end; col++ {
			c := row.Cell(col)
			if c.Wide && c.Rune == 0 {
				continue // spacer of the preceding wide rune
			}
			line = append(line, reflowCell{
				cell:        c,
				cursorHere:  cursorPos.Row == y && cursorPos.Col == col,
				viewTopHere: viewTop == y && col == 0,
			})
		}
		if viewTop == y && end == 0 {
			// Blank viewport-top row: still anchors the new viewport.
			line = append(line, reflowCell{cell: blankCell(), viewTopHere: true})
		}
		if !row.WrapForced() || y >= lastRow {
			return line, y + 1
		}
		y++
	}
}

// writerState streams cells into the target buffer with wrapping and
// ring eviction, tracking where the recorded anchors land.
type writerState struct {
	buf        *Buffer
	col, row   int
	viewTopRow int
	cursorPos  Coord
}

func (w *writerState) writeLine(line []reflowCell, last bool) {
	width := w.buf.Size().Width()
	for _, u := range line {
		cw := runeCellWidth(u.cell.Rune)
		if w.col+cw > width {
			w.buf.RowAt(w.row).SetWrapForced(true)
			w.advanceRow()
		}
		if u.viewTopHere && w.viewTopRow < 0 {
			w.viewTopRow = w.row
		}
		if u.cursorHere {
			w.cursorPos = Coord{Col: w.col, Row: w.row}
		}
		pen := Attributes{FG: u.cell.FG, BG: u.cell.BG, Attr: u.cell.Attr}
		n := w.buf.RowAt(w.row).writeAt(w.col, u.cell.Rune, pen)
		if n == 0 {
			// A fresh row always has room; only a degenerate 1-column
			// target with a wide rune lands here. Drop the unit.
			continue
		}
		w.col += n
	}
	if !last {
		w.advanceRow()
	}
}

// advanceRow moves the write position to column 0 of the next row,
// evicting through the ring when the target is full. Evictions shift
// every recorded landing up by one; content pushed above row 0 is
// truncated, which the contract allows.
func (w *writerState) advanceRow() {
	w.col = 0
	w.row++
	height := w.buf.Size().Height()
	for w.row >= height {
		w.buf.IncrementCircularBuffer()
		w.row--
		if w.viewTopRow >= 0 {
			w.viewTopRow--
			if w.viewTopRow < 0 {
				w.viewTopRow = 0
			}
		}
		if w.cursorPos.Row > 0 {
			w.cursorPos.Row--
		}
	}
}
