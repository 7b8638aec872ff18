// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/cell.go
// Summary: Cell, Color and Attribute value types for the terminal grid.
// Usage: Shared by the buffer, the orchestrator and renderers.
// Notes: Keeps the cell model independent of any rendering backend.

package grid

// Attribute is a bit set of per-cell display attributes.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrUnderline
	AttrReverse
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if a&AttrReverse != 0 {
		parts = append(parts, "reverse")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // Default terminal color
	ColorModeStandard                  // The basic 16 ANSI colors
	ColorMode256                       // 256-color palette
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Holds the color code for Standard (0-15) and 256-mode (0-255)
	R, G, B uint8 // Holds the values for RGB mode
}

// RGB builds a true-color Color value.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, R: r, G: g, B: b}
}

// Cell represents a single character cell in the buffer.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Attr Attribute
	// Wide is true for the lead cell of a 2-column character and for
	// the spacer cell that follows it (the spacer has Rune 0).
	Wide bool
}

// Attributes is the pen state applied to newly written cells.
type Attributes struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// Predefined default colors for convenience.
var (
	DefaultFG = Color{Mode: ColorModeDefault}
	DefaultBG = Color{Mode: ColorModeDefault}
)

// blankCell is what erased or never-written positions contain.
func blankCell() Cell {
	return Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG}
}
