// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/resize.go
// Summary: User-driven resize: wholesale buffer replacement via reflow.

package term

import (
	"errors"

	"github.com/framegrace/termgrid/grid"
)

// errNotCreated is returned when entry points run before Create.
var errNotCreated = errors.New("term: terminal not created")

// ResizeStatus reports the outcome of UserResize.
type ResizeStatus int

const (
	// ResizeOK means the terminal took the new geometry.
	ResizeOK ResizeStatus = iota
	// ResizeNoop means the requested size matched the current one.
	ResizeNoop
	// ResizeFailed means the new buffer could not be allocated; the
	// terminal is exactly as it was.
	ResizeFailed
)

func (s ResizeStatus) String() string {
	switch s {
	case ResizeOK:
		return "ok"
	case ResizeNoop:
		return "noop"
	case ResizeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UserResize resizes the terminal as the result of user interaction.
// The old buffer is reflowed into a freshly allocated one of the new
// geometry and the handles are swapped atomically under the exclusive
// lock; a failure before the swap leaves every field untouched.
// Resizing always snaps the view back to the live tail.
func (t *Terminal) UserResize(cols, rows int) (ResizeStatus, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	oldW, oldH := t.mutableViewport.Dimensions()
	if t.buffer != nil && cols == oldW && rows == oldH {
		return ResizeNoop, nil
	}
	if t.buffer == nil {
		return ResizeFailed, errNotCreated
	}

	newBuffer, err := grid.NewBuffer(cols, rows+t.scrollbackLines, t.buffer.CurrentAttributes(), DefaultCursorHeight)
	if err != nil {
		return ResizeFailed, err
	}

	scrollbackDepth := grid.Reflow(t.buffer, newBuffer, t.mutableViewport)
	t.debugf("resize %dx%d -> %dx%d, surviving scrollback depth %d", oldW, oldH, cols, rows, scrollbackDepth)

	newTop := scrollbackDepth + 1
	if max := newBuffer.Size().Height() - rows; newTop > max {
		newTop = max
	}
	if newTop < 0 {
		newTop = 0
	}

	cursorStyle := t.buffer.Cursor().Style()
	cursorVisible := t.buffer.Cursor().IsVisible()

	// Point of no return: from here on only the swap happens.
	t.mutableViewport = grid.ViewFromDimensions(grid.Coord{Row: newTop}, cols, rows)
	t.buffer = newBuffer
	t.buffer.Cursor().SetStyle(cursorStyle)
	t.buffer.Cursor().SetVisible(cursorVisible)
	// Truncation during reflow is silent; only rows evicted by live
	// output from now on reach the hook.
	t.buffer.SetEvictHandler(t.pfnRowEvicted)

	t.scrollOffset = 0
	t.notifyScrollEvent()

	return ResizeOK, nil
}
