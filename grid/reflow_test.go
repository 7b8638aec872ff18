// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import "testing"

func TestReflowSplitsLineWhenNarrowing(t *testing.T) {
	old := mustBuffer(t, 10, 5)
	fillRow(t, old, 0, "abcdefghij")
	old.Cursor().SetPosition(Coord{})
	target := mustBuffer(t, 5, 5)

	depth := Reflow(old, target, ViewFromDimensions(Coord{}, 10, 5))

	if depth != -1 {
		t.Errorf("expected no surviving scrollback, got depth %d", depth)
	}
	if got := rowText(target.RowAt(0)); got != "abcde" {
		t.Errorf("expected row 0 %q, got %q", "abcde", got)
	}
	if !target.RowAt(0).WrapForced() {
		t.Errorf("expected forced wrap on the split row")
	}
	if got := rowText(target.RowAt(1)); got != "fghij" {
		t.Errorf("expected row 1 %q, got %q", "fghij", got)
	}
	if target.RowAt(1).WrapForced() {
		t.Errorf("continuation row must not carry a wrap flag")
	}
	if pos := target.Cursor().Position(); pos != (Coord{}) {
		t.Errorf("expected cursor at origin, got %+v", pos)
	}
}

func TestReflowRejoinsWrappedLineWhenWidening(t *testing.T) {
	old := mustBuffer(t, 5, 5)
	fillRow(t, old, 0, "abcde")
	old.RowAt(0).SetWrapForced(true)
	fillRow(t, old, 1, "fgh")
	old.Cursor().SetPosition(Coord{Col: 2, Row: 1}) // on 'h'
	target := mustBuffer(t, 10, 5)

	depth := Reflow(old, target, ViewFromDimensions(Coord{}, 5, 5))

	if depth != -1 {
		t.Errorf("expected no surviving scrollback, got depth %d", depth)
	}
	if got := rowText(target.RowAt(0)); got != "abcdefgh" {
		t.Errorf("expected rejoined row %q, got %q", "abcdefgh", got)
	}
	if target.RowAt(0).WrapForced() {
		t.Errorf("rejoined row must not keep the wrap flag")
	}
	if pos := target.Cursor().Position(); pos != (Coord{Col: 7, Row: 0}) {
		t.Errorf("expected cursor to follow 'h' to (7,0), got %+v", pos)
	}
}

func TestReflowRoundTripRestoresLayout(t *testing.T) {
	a := mustBuffer(t, 6, 4)
	fillRow(t, a, 0, "abcdef")
	a.RowAt(0).SetWrapForced(true)
	fillRow(t, a, 1, "gh")
	a.Cursor().SetPosition(Coord{Col: 1, Row: 1})

	wide := mustBuffer(t, 12, 4)
	Reflow(a, wide, ViewFromDimensions(Coord{}, 6, 4))

	back := mustBuffer(t, 6, 4)
	Reflow(wide, back, ViewFromDimensions(Coord{}, 12, 4))

	for y := 0; y < 2; y++ {
		want := rowText(a.RowAt(y))
		if got := rowText(back.RowAt(y)); got != want {
			t.Errorf("row %d: expected %q after round trip, got %q", y, want, got)
		}
		if got := back.RowAt(y).WrapForced(); got != a.RowAt(y).WrapForced() {
			t.Errorf("row %d: wrap flag changed across round trip", y)
		}
	}
	if pos := back.Cursor().Position(); pos != (Coord{Col: 1, Row: 1}) {
		t.Errorf("expected cursor restored to (1,1), got %+v", pos)
	}
}

func TestReflowTruncatesOldestWhenTargetTooSmall(t *testing.T) {
	old := mustBuffer(t, 3, 4)
	fillRow(t, old, 0, "aaa")
	fillRow(t, old, 1, "bbb")
	fillRow(t, old, 2, "ccc")
	fillRow(t, old, 3, "ddd")
	old.Cursor().SetPosition(Coord{Row: 3})
	target := mustBuffer(t, 3, 2)

	depth := Reflow(old, target, ViewFromDimensions(Coord{Row: 2}, 3, 2))

	// Oldest content is silently truncated through the target's ring.
	if target.Evictions() != 2 {
		t.Errorf("expected 2 evictions, got %d", target.Evictions())
	}
	if got := rowText(target.RowAt(0)); got != "ccc" {
		t.Errorf("expected row 0 %q, got %q", "ccc", got)
	}
	if got := rowText(target.RowAt(1)); got != "ddd" {
		t.Errorf("expected row 1 %q, got %q", "ddd", got)
	}
	if depth != -1 {
		t.Errorf("expected depth -1 after truncation, got %d", depth)
	}
	if pos := target.Cursor().Position(); pos != (Coord{Row: 1}) {
		t.Errorf("expected cursor at (0,1), got %+v", pos)
	}
}

func TestReflowKeepsScrollbackAboveViewport(t *testing.T) {
	old := mustBuffer(t, 3, 4)
	fillRow(t, old, 0, "aaa")
	fillRow(t, old, 1, "bbb")
	fillRow(t, old, 2, "ccc")
	fillRow(t, old, 3, "ddd")
	old.Cursor().SetPosition(Coord{Row: 3})
	target := mustBuffer(t, 3, 6)

	depth := Reflow(old, target, ViewFromDimensions(Coord{Row: 2}, 3, 2))

	// Rows above the old viewport survive as scrollback; the viewport
	// anchor ("ccc") sits right below them.
	if depth != 1 {
		t.Errorf("expected scrollback depth 1, got %d", depth)
	}
	if got := rowText(target.RowAt(2)); got != "ccc" {
		t.Errorf("expected anchor row %q at index 2, got %q", "ccc", got)
	}
	if pos := target.Cursor().Position(); pos != (Coord{Row: 3}) {
		t.Errorf("expected cursor at (0,3), got %+v", pos)
	}
}

func TestReflowCursorOnBlankRowBeyondContent(t *testing.T) {
	old := mustBuffer(t, 5, 5)
	fillRow(t, old, 0, "ab")
	old.Cursor().SetPosition(Coord{Row: 2})
	target := mustBuffer(t, 5, 5)

	Reflow(old, target, ViewFromDimensions(Coord{}, 5, 5))

	if pos := target.Cursor().Position(); pos != (Coord{Row: 2}) {
		t.Errorf("expected blank-row cursor preserved at (0,2), got %+v", pos)
	}
}

func TestReflowKeepsWideRunesAtomic(t *testing.T) {
	old := mustBuffer(t, 4, 3)
	fillRow(t, old, 0, "a世b")
	old.Cursor().SetPosition(Coord{})
	target := mustBuffer(t, 3, 3)

	Reflow(old, target, ViewFromDimensions(Coord{}, 4, 3))

	if got := rowText(target.RowAt(0)); got != "a世" {
		t.Errorf("expected row 0 %q, got %q", "a世", got)
	}
	if !target.RowAt(0).WrapForced() {
		t.Errorf("expected forced wrap before the unsplittable unit")
	}
	lead := target.RowAt(0).Cell(1)
	spacer := target.RowAt(0).Cell(2)
	if lead.Rune != '世' || !lead.Wide || spacer.Rune != 0 || !spacer.Wide {
		t.Errorf("wide rune split across cells incorrectly: %+v / %+v", lead, spacer)
	}
	if got := rowText(target.RowAt(1)); got != "b" {
		t.Errorf("expected row 1 %q, got %q", "b", got)
	}
}
