// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"testing"

	"github.com/framegrace/termgrid/grid"
)

func TestResizeNoopForSameDimensions(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 3, 2)

	status, err := terminal.UserResize(10, 3)

	if status != ResizeNoop || err != nil {
		t.Errorf("expected (noop, nil), got (%s, %v)", status, err)
	}
}

func TestResizeBeforeCreateFails(t *testing.T) {
	terminal := NewTerminal()

	status, err := terminal.UserResize(80, 24)

	if status != ResizeFailed {
		t.Errorf("expected failed status, got %s", status)
	}
	if err == nil {
		t.Errorf("expected an error before Create")
	}
}

func TestResizeFailureLeavesStateUntouched(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 3, 2)
	terminal.Write("hello")

	status, err := terminal.UserResize(0, 3)

	if status != ResizeFailed || err == nil {
		t.Fatalf("expected allocation failure, got (%s, %v)", status, err)
	}
	if got := visibleText(terminal)[0]; got != "hello" {
		t.Errorf("expected content untouched after failure, got %q", got)
	}
	if pos := terminal.CursorPosition(); pos != (grid.Coord{Col: 5}) {
		t.Errorf("expected cursor untouched at (5,0), got %+v", pos)
	}
}

func TestResizeWidenRejoinsWrappedLine(t *testing.T) {
	terminal, _ := newTestTerminal(t, 6, 3, 2)
	terminal.Write("abcdefgh")
	if pos := terminal.CursorPosition(); pos != (grid.Coord{Col: 2, Row: 1}) {
		t.Fatalf("setup: expected cursor at (2,1), got %+v", pos)
	}

	status, err := terminal.UserResize(10, 3)

	if status != ResizeOK || err != nil {
		t.Fatalf("expected (ok, nil), got (%s, %v)", status, err)
	}
	if got := visibleText(terminal)[0]; got != "abcdefgh" {
		t.Errorf("expected rejoined line %q, got %q", "abcdefgh", got)
	}
	if pos := terminal.CursorPosition(); pos != (grid.Coord{Col: 8}) {
		t.Errorf("expected cursor at (8,0), got %+v", pos)
	}
	if got := terminal.ViewStartIndex(); got != 0 {
		t.Errorf("expected viewport top 0, got %d", got)
	}
}

func TestResizeNarrowRewrapsLine(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 3, 2)
	terminal.Write("abcdefgh")

	status, err := terminal.UserResize(5, 3)

	if status != ResizeOK || err != nil {
		t.Fatalf("expected (ok, nil), got (%s, %v)", status, err)
	}
	rows := visibleText(terminal)
	if rows[0] != "abcde" || rows[1] != "fgh" {
		t.Errorf("expected rewrapped [abcde fgh], got %q", rows)
	}
	// The cursor sat one past 'h' and keeps that place in the text.
	if pos := terminal.CursorPosition(); pos != (grid.Coord{Col: 3, Row: 1}) {
		t.Errorf("expected cursor at (3,1), got %+v", pos)
	}
}

func TestResizePreservesScrollback(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 2, 3)
	terminal.Write("one\r\ntwo\r\nthree\r\nfour")

	status, err := terminal.UserResize(10, 3)

	if status != ResizeOK || err != nil {
		t.Fatalf("expected (ok, nil), got (%s, %v)", status, err)
	}
	// The two rows above the old viewport survive as scrollback.
	if got := terminal.ViewStartIndex(); got != 2 {
		t.Errorf("expected viewport top 2, got %d", got)
	}
	rows := visibleText(terminal)
	if rows[0] != "three" || rows[1] != "four" {
		t.Errorf("expected [three four ...] visible, got %q", rows)
	}
	terminal.UserScrollViewport(0)
	rows = visibleText(terminal)
	if rows[0] != "one" || rows[1] != "two" {
		t.Errorf("expected scrollback [one two ...], got %q", rows)
	}
}

func TestResizeSnapsViewToTail(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 2, 3)
	terminal.Write("one\r\ntwo\r\nthree\r\nfour")
	terminal.UserScrollViewport(0)

	if _, err := terminal.UserResize(12, 2); err != nil {
		t.Fatalf("resize: %v", err)
	}

	if got, top := terminal.GetScrollOffset(), terminal.ViewStartIndex(); got != top {
		t.Errorf("expected view pinned to live top %d, got %d", top, got)
	}
}

func TestResizePreservesCursorAppearance(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 3, 2)
	terminal.SetCursorVisible(false)
	terminal.mu.Lock()
	terminal.buffer.Cursor().SetStyle(grid.CursorStyle{Shape: grid.CursorShapeUnderscore, Height: 50})
	terminal.mu.Unlock()

	if _, err := terminal.UserResize(12, 3); err != nil {
		t.Fatalf("resize: %v", err)
	}

	if terminal.CursorVisible() {
		t.Errorf("expected cursor visibility carried across resize")
	}
	terminal.mu.RLock()
	style := terminal.buffer.Cursor().Style()
	terminal.mu.RUnlock()
	if style.Shape != grid.CursorShapeUnderscore || style.Height != 50 {
		t.Errorf("expected cursor style carried across resize, got %+v", style)
	}
}

func TestResizeReinstallsEvictionHook(t *testing.T) {
	terminal := NewTerminal()
	var evictions int
	terminal.SetRowEvictedCallback(func([]grid.Cell, bool) { evictions++ })
	if err := terminal.Create(10, 1, 0, &fakeTarget{}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := terminal.UserResize(12, 1); err != nil {
		t.Fatalf("resize: %v", err)
	}

	terminal.Write("line one\r\nline two")
	if evictions != 1 {
		t.Errorf("expected the hook live on the new buffer, got %d evictions", evictions)
	}
}
