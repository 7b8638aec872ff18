// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/geometry.go
// Summary: Coord and Viewport value types for buffer-space geometry.

package grid

// Coord is a position in buffer space. Row 0 is the oldest row
// currently retained in the buffer.
type Coord struct {
	Col int
	Row int
}

// Viewport describes the rectangular row window [top, top+height) of
// the buffer. Viewport values are read-only snapshots: callers build a
// new one and reassign instead of mutating.
type Viewport struct {
	top    int
	width  int
	height int
}

// ViewFromDimensions builds a viewport from an origin and a size.
func ViewFromDimensions(origin Coord, width, height int) Viewport {
	return Viewport{top: origin.Row, width: width, height: height}
}

// Top returns the first row covered by the viewport.
func (v Viewport) Top() int { return v.top }

// BottomInclusive returns the last row covered by the viewport.
func (v Viewport) BottomInclusive() int { return v.top + v.height - 1 }

// BottomExclusive returns one past the last covered row.
func (v Viewport) BottomExclusive() int { return v.top + v.height }

// Width returns the viewport width in columns.
func (v Viewport) Width() int { return v.width }

// Height returns the viewport height in rows.
func (v Viewport) Height() int { return v.height }

// Dimensions returns the width and height of the viewport.
func (v Viewport) Dimensions() (width, height int) {
	return v.width, v.height
}
