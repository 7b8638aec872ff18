// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON-backed terminal settings with defaults.

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/framegrace/termgrid/grid"
)

// Settings holds everything the terminal is parameterized by at
// creation and on settings reload. Zero values are filled in from
// Default when loading.
type Settings struct {
	InitialCols int `json:"initialCols"`
	InitialRows int `json:"initialRows"`

	// HistorySize is the scrollback depth in rows. Negative values
	// (historically "infinite") clamp to zero.
	HistorySize int `json:"historySize"`

	SnapOnInput    *bool  `json:"snapOnInput,omitempty"`
	WordDelimiters string `json:"wordDelimiters"`

	// Colors are "#RRGGBB" strings in JSON.
	DefaultForeground string     `json:"defaultForeground"`
	DefaultBackground string     `json:"defaultBackground"`
	ColorScheme       [16]string `json:"colorScheme"`

	CursorShape  string `json:"cursorShape"` // bar, underscore, filledBox, emptyBox, vintage
	CursorHeight int    `json:"cursorHeight"`

	StartingTitle            string `json:"startingTitle"`
	SuppressApplicationTitle bool   `json:"suppressApplicationTitle"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	snap := true
	return Settings{
		InitialCols:       80,
		InitialRows:       24,
		HistorySize:       9001,
		SnapOnInput:       &snap,
		WordDelimiters:    " ./\\()\"'-:,.;<>~!@#$%^&*|+=[]{}~?│",
		DefaultForeground: "#CCCCCC",
		DefaultBackground: "#0C0C0C",
		CursorShape:       "bar",
		CursorHeight:      12,
	}
}

// Load reads settings from a JSON file. Absent fields keep their
// defaults; a missing or unreadable file yields the defaults with a
// logged notice rather than an error the caller must handle twice.
func Load(path string) Settings {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config: failed to read %s: %v", path, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("config: failed to parse %s: %v, using defaults", path, err)
		return Default()
	}
	s.applyDefaults()
	return s
}

// applyDefaults fills fields an explicit file left empty.
func (s *Settings) applyDefaults() {
	d := Default()
	if s.InitialCols <= 0 {
		s.InitialCols = d.InitialCols
	}
	if s.InitialRows <= 0 {
		s.InitialRows = d.InitialRows
	}
	if s.HistorySize < 0 {
		s.HistorySize = 0
	}
	if s.SnapOnInput == nil {
		s.SnapOnInput = d.SnapOnInput
	}
	if s.WordDelimiters == "" {
		s.WordDelimiters = d.WordDelimiters
	}
	if s.DefaultForeground == "" {
		s.DefaultForeground = d.DefaultForeground
	}
	if s.DefaultBackground == "" {
		s.DefaultBackground = d.DefaultBackground
	}
	if s.CursorShape == "" {
		s.CursorShape = d.CursorShape
	}
	if s.CursorHeight <= 0 {
		s.CursorHeight = d.CursorHeight
	}
}

// SnapEnabled returns the snap-on-input policy value.
func (s Settings) SnapEnabled() bool {
	return s.SnapOnInput == nil || *s.SnapOnInput
}

// ForegroundColor returns the parsed default foreground.
func (s Settings) ForegroundColor() grid.Color {
	return parseColor(s.DefaultForeground, grid.RGB(0xCC, 0xCC, 0xCC))
}

// BackgroundColor returns the parsed default background.
func (s Settings) BackgroundColor() grid.Color {
	return parseColor(s.DefaultBackground, grid.RGB(0x0C, 0x0C, 0x0C))
}

// SchemeColor returns the parsed color-scheme entry i, or ok=false
// when the entry is unset so the palette default stands.
func (s Settings) SchemeColor(i int) (grid.Color, bool) {
	if i < 0 || i >= len(s.ColorScheme) || s.ColorScheme[i] == "" {
		return grid.Color{}, false
	}
	return parseColor(s.ColorScheme[i], grid.Color{}), true
}

// parseColor parses "#RRGGBB". Malformed values fall back with a log
// notice; a bad color is never fatal.
func parseColor(hex string, fallback grid.Color) grid.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		log.Printf("config: bad color %q: %v", hex, err)
		return fallback
	}
	return grid.RGB(r, g, b)
}
