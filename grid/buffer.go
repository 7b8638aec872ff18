// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/buffer.go
// Summary: Buffer is the fixed-capacity circular row store plus cursor.
//
// The buffer behaves as a ring: logical row 0 is the oldest retained
// row, logical row Height()-1 the newest. IncrementCircularBuffer
// rotates the ring base, which evicts the oldest row and recycles its
// storage as a fresh blank row at the bottom — all existing logical
// row indices shift down by one. Row content is never moved in memory.

package grid

import "fmt"

// EvictHandler receives a copy of each row evicted by
// IncrementCircularBuffer, in eviction order. Single slot,
// replace-on-set.
type EvictHandler func(cells []Cell, wrapForced bool)

// Buffer is the owned, fixed-capacity circular sequence of rows the
// terminal writes into. Capacity = viewport height + scrollback depth.
type Buffer struct {
	rows []*Row
	base int // physical index of logical row 0

	width  int
	height int

	cursor *Cursor
	pen    Attributes

	// evictions counts IncrementCircularBuffer calls over the buffer's
	// lifetime; each one turned a live row into permanent scrollback.
	evictions int64

	onEvict EvictHandler
}

// NewBuffer allocates a buffer of the given dimensions. Dimensions
// must be positive; the error stands in for allocation failure and is
// surfaced by the resize/create entry points.
func NewBuffer(width, height int, pen Attributes, cursorHeight int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid: invalid buffer size %dx%d", width, height)
	}
	b := &Buffer{
		rows:   make([]*Row, height),
		width:  width,
		height: height,
		cursor: newCursor(cursorHeight),
		pen:    pen,
	}
	for i := range b.rows {
		b.rows[i] = newRow(width)
	}
	return b, nil
}

// Size returns a viewport spanning the whole buffer.
func (b *Buffer) Size() Viewport {
	return ViewFromDimensions(Coord{}, b.width, b.height)
}

// Cursor returns mutable access to the buffer's cursor.
func (b *Buffer) Cursor() *Cursor { return b.cursor }

// CurrentAttributes returns the pen applied to new cells.
func (b *Buffer) CurrentAttributes() Attributes { return b.pen }

// SetCurrentAttributes replaces the pen.
func (b *Buffer) SetCurrentAttributes(pen Attributes) { b.pen = pen }

// SetEvictHandler installs the eviction hook. Replace-on-set; pass nil
// to clear.
func (b *Buffer) SetEvictHandler(fn EvictHandler) { b.onEvict = fn }

// Evictions returns the cumulative number of rows evicted into
// scrollback over the buffer's lifetime.
func (b *Buffer) Evictions() int64 { return b.evictions }

// RowAt returns the row at the given logical offset, or nil when the
// offset is out of range.
func (b *Buffer) RowAt(offset int) *Row {
	if offset < 0 || offset >= b.height {
		return nil
	}
	return b.rows[(b.base+offset)%b.height]
}

// Write places as many whole character units as fit on the cursor's
// row, starting at the cursor's column, using the given pen. It
// returns the cells and input units consumed. A zero unitsConsumed
// means the row had no room for the next unit: the caller must wrap
// to a fresh row and retry, never drop input.
//
// The cursor is not advanced here; advancing (and the eviction it can
// trigger) is the orchestrator's job.
func (b *Buffer) Write(units []rune, pen Attributes) (cellsConsumed, unitsConsumed int) {
	pos := b.cursor.Position()
	row := b.RowAt(pos.Row)
	if row == nil {
		return 0, 0
	}
	col := pos.Col
	for _, ch := range units {
		n := row.writeAt(col, ch, pen)
		if n == 0 {
			break
		}
		col += n
		cellsConsumed += n
		unitsConsumed++
	}
	return cellsConsumed, unitsConsumed
}

// IncrementCircularBuffer evicts the logically-oldest row and appends
// a recycled blank row at the bottom of the live region. O(1): only
// the base offset moves. The evicted content is reported through the
// evict hook before the row storage is reused.
func (b *Buffer) IncrementCircularBuffer() {
	evicted := b.rows[b.base]
	if b.onEvict != nil {
		b.onEvict(evicted.Cells(), evicted.WrapForced())
	}
	evicted.reset()
	b.base = (b.base + 1) % b.height
	b.evictions++

	// Keep the cursor in bounds: eviction shifts every logical index
	// down by one.
	pos := b.cursor.Position()
	if pos.Row > 0 {
		pos.Row--
		b.cursor.SetPosition(pos)
	}
}

// lastContentRow returns the highest logical row holding content or a
// forced wrap, or -1 for an empty buffer.
func (b *Buffer) lastContentRow() int {
	for y := b.height - 1; y >= 0; y-- {
		row := b.RowAt(y)
		if row.lastNonBlank() >= 0 || row.WrapForced() {
			return y
		}
	}
	return -1
}
