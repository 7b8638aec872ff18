// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/palette.go
// Summary: Default 256-entry color table (Campbell scheme + xterm ramp).

package term

import "github.com/framegrace/termgrid/grid"

// PaletteSize is the number of entries in the terminal's color table.
const PaletteSize = 256

// DefaultPalette returns the default color table: the Campbell scheme
// for the first 16 entries, then the standard xterm 6x6x6 color cube
// and grayscale ramp.
func DefaultPalette() [PaletteSize]grid.Color {
	var p [PaletteSize]grid.Color

	// Campbell scheme.
	p[0] = grid.RGB(0x0C, 0x0C, 0x0C)  // Black
	p[1] = grid.RGB(0xC5, 0x0F, 0x1F)  // Red
	p[2] = grid.RGB(0x13, 0xA1, 0x0E)  // Green
	p[3] = grid.RGB(0xC1, 0x9C, 0x00)  // Yellow
	p[4] = grid.RGB(0x00, 0x37, 0xDA)  // Blue
	p[5] = grid.RGB(0x88, 0x17, 0x98)  // Magenta
	p[6] = grid.RGB(0x3A, 0x96, 0xDD)  // Cyan
	p[7] = grid.RGB(0xCC, 0xCC, 0xCC)  // White
	p[8] = grid.RGB(0x76, 0x76, 0x76)  // Bright Black
	p[9] = grid.RGB(0xE7, 0x48, 0x56)  // Bright Red
	p[10] = grid.RGB(0x16, 0xC6, 0x0C) // Bright Green
	p[11] = grid.RGB(0xF9, 0xF1, 0xA5) // Bright Yellow
	p[12] = grid.RGB(0x3B, 0x78, 0xFF) // Bright Blue
	p[13] = grid.RGB(0xB4, 0x00, 0x9E) // Bright Magenta
	p[14] = grid.RGB(0x61, 0xD6, 0xD6) // Bright Cyan
	p[15] = grid.RGB(0xF2, 0xF2, 0xF2) // Bright White

	// 6x6x6 color cube.
	levels := []uint8{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = grid.RGB(levels[r], levels[g], levels[b])
				i++
			}
		}
	}

	// Grayscale ramp.
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p[i] = grid.RGB(gray, gray, gray)
		i++
	}

	return p
}
