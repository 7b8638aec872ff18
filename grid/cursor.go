// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/cursor.go
// Summary: Cursor state owned by the cell buffer.

package grid

// CursorShape enumerates the supported cursor shapes.
type CursorShape int

const (
	CursorShapeVerticalBar CursorShape = iota
	CursorShapeUnderscore
	CursorShapeFilledBox
	CursorShapeEmptyBox
	CursorShapeLegacy
)

// CursorStyle bundles the renderer-facing cursor appearance.
type CursorStyle struct {
	Shape  CursorShape
	Height int // percentage of the cell height, legacy/vintage style
	Color  Color
}

// Cursor tracks the buffer's write position. It is exclusively owned
// by a Buffer and relocated (never recreated) during reflow.
type Cursor struct {
	pos        Coord
	visible    bool
	deferDepth int
	style      CursorStyle
}

func newCursor(height int) *Cursor {
	return &Cursor{
		visible: true,
		style:   CursorStyle{Shape: CursorShapeVerticalBar, Height: height},
	}
}

// Position returns the cursor position in buffer space.
func (c *Cursor) Position() Coord { return c.pos }

// SetPosition moves the cursor. Callers are responsible for keeping
// the position inside buffer bounds; Buffer.adjust paths guarantee it.
func (c *Cursor) SetPosition(pos Coord) { c.pos = pos }

// IsVisible reports whether the cursor should be drawn.
func (c *Cursor) IsVisible() bool { return c.visible }

// SetVisible sets cursor visibility.
func (c *Cursor) SetVisible(visible bool) { c.visible = visible }

// StartDeferDrawing suppresses cursor redraws until the matching
// EndDeferDrawing. Scopes nest; drawing resumes when the depth
// returns to zero. This is purely a redraw-cost contract: batched
// writes must not pay a cursor redraw per character.
func (c *Cursor) StartDeferDrawing() { c.deferDepth++ }

// EndDeferDrawing closes one defer scope.
func (c *Cursor) EndDeferDrawing() {
	if c.deferDepth > 0 {
		c.deferDepth--
	}
}

// DrawingDeferred reports whether cursor redraws are suppressed.
func (c *Cursor) DrawingDeferred() bool { return c.deferDepth > 0 }

// Style returns the cursor appearance.
func (c *Cursor) Style() CursorStyle { return c.style }

// SetStyle replaces the cursor appearance.
func (c *Cursor) SetStyle(style CursorStyle) { c.style = style }
