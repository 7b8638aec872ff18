// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/write.go
// Summary: The write path: decoded text in, cursor/viewport mutation out.

package term

import "github.com/framegrace/termgrid/grid"

// Write feeds decoded output from the connected process into the
// terminal. The dispatcher collaborator splits it into print runs and
// control operations and calls back into the core primitives. The
// whole call mutates under the exclusive lock: a lock-respecting
// reader sees either all of a batch or none of it.
func (t *Terminal) Write(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.buffer == nil {
		return
	}
	// Snap-on-input: new output always becomes visible again.
	if t.snapOnInput && t.scrollOffset != 0 {
		t.scrollOffset = 0
		t.notifyScrollEvent()
	}
	t.dispatcher.ProcessString(text, termOps{t})
}

// writeToBuffer is the hot loop: it advances the cursor through a
// printable run one character unit at a time. A unit that does not
// fit on the cursor's row wraps: column 0, next row, forced-wrap mark
// on the row the cursor was on, and the same unit is retried. The
// retry progresses because a fresh row has full width; a unit too
// wide for even a full-width row is dropped instead of retried.
// Cursor redraws are deferred for the whole run.
func (t *Terminal) writeToBuffer(run string) {
	cursor := t.buffer.Cursor()

	cursor.StartDeferDrawing()
	defer cursor.EndDeferDrawing()

	units := []rune(run)
	for i := 0; i < len(units); {
		posBefore := cursor.Position()
		proposed := posBefore

		cells, consumed := t.buffer.Write(units[i:i+1], t.buffer.CurrentAttributes())
		if consumed > 0 {
			proposed.Col += cells
			i += consumed
		} else if posBefore.Col == 0 {
			// Zero consumed at column 0 means even a fresh full-width
			// row cannot hold this unit (a wide rune on a one-column
			// terminal). Retrying would never progress; drop the unit.
			i++
			continue
		} else {
			// Row full. Behave as if "\r\n" had been seen and retry
			// the same unit; i is intentionally not advanced.
			proposed.Col = 0
			proposed.Row++
			if row := t.buffer.RowAt(posBefore.Row); row != nil {
				row.SetWrapForced(true)
			}
		}

		t.adjustCursorPosition(proposed)
	}
}

// adjustCursorPosition moves the cursor to the proposed position,
// cycling the circular buffer once per row the position overshoots
// the buffer by — that is how "scrolling" the live region is
// realized. If the cursor ends up below the mutable viewport, the
// viewport slides down just enough to re-include it. Either effect
// triggers one full redraw and one scroll notification.
func (t *Terminal) adjustCursorPosition(proposed grid.Coord) {
	cursor := t.buffer.Cursor()
	bufferSize := t.buffer.Size()
	notifyScroll := false

	newRows := proposed.Row - bufferSize.Height() + 1
	if newRows > 0 {
		for dy := 0; dy < newRows; dy++ {
			t.buffer.IncrementCircularBuffer()
			proposed.Row--
		}
		notifyScroll = true
	}

	cursor.SetPosition(proposed)

	after := cursor.Position()
	if after.Row > t.mutableViewport.BottomInclusive() {
		newViewTop := after.Row - (t.mutableViewport.Height() - 1)
		if newViewTop < 0 {
			newViewTop = 0
		}
		if newViewTop != t.mutableViewport.Top() {
			w, h := t.mutableViewport.Dimensions()
			t.mutableViewport = grid.ViewFromDimensions(grid.Coord{Row: newViewTop}, w, h)
			notifyScroll = true
		}
	}

	if notifyScroll {
		t.triggerRedrawAll()
		t.notifyScrollEvent()
	}
}

// --- Control primitives driven by the dispatcher ---

func (t *Terminal) lineFeed() {
	pos := t.buffer.Cursor().Position()
	t.adjustCursorPosition(grid.Coord{Col: pos.Col, Row: pos.Row + 1})
}

func (t *Terminal) carriageReturn() {
	pos := t.buffer.Cursor().Position()
	t.adjustCursorPosition(grid.Coord{Col: 0, Row: pos.Row})
}

func (t *Terminal) backspace() {
	pos := t.buffer.Cursor().Position()
	if pos.Col > 0 {
		pos.Col--
	}
	t.adjustCursorPosition(pos)
}

// horizontalTab advances to the next 8-column tab stop, clamped to the
// last column.
func (t *Terminal) horizontalTab() {
	pos := t.buffer.Cursor().Position()
	width := t.buffer.Size().Width()
	next := (pos.Col/8 + 1) * 8
	if next > width-1 {
		next = width - 1
	}
	t.adjustCursorPosition(grid.Coord{Col: next, Row: pos.Row})
}
