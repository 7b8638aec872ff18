// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/scroll.go
// Summary: User scrolling and the snap-on-input policy.
//
// The scroll state machine lives in two fields: the mutable viewport
// top T and the scroll offset O (>= 0). The visible top is
// max(0, T-O). Cursor-follow moves T and leaves O alone; only new
// input resets O.

package term

// UserScrollViewport scrolls the visible viewport so its top is at
// the given absolute buffer row. Rows at or below the live top pin
// the offset to zero. Idempotent for a fixed target row.
func (t *Terminal) UserScrollViewport(viewTop int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.buffer == nil {
		return
	}

	clampedTop := viewTop
	if clampedTop < 0 {
		clampedTop = 0
	}
	delta := t.mutableViewport.Top() - clampedTop
	if delta < 0 {
		delta = 0
	}
	t.scrollOffset = delta
	t.triggerRedrawAll()
}

// TrySnapOnInput resets the scroll offset to zero when the
// snap-on-input policy is enabled and the view is scrolled back.
// Fires exactly one scroll notification when it acts.
func (t *Terminal) TrySnapOnInput() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snapOnInput && t.scrollOffset != 0 {
		t.scrollOffset = 0
		t.notifyScrollEvent()
	}
}
