// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/settings.go
// Summary: Applying config.Settings to a Terminal.

package term

import (
	"github.com/framegrace/termgrid/config"
	"github.com/framegrace/termgrid/grid"
)

// CreateFromSettings sizes the terminal from a settings object and
// applies the remaining values.
func (t *Terminal) CreateFromSettings(s config.Settings, renderTarget RenderTarget) error {
	history := s.HistorySize
	if history < 0 {
		history = 0
	}
	if err := t.Create(s.InitialCols, s.InitialRows, history, renderTarget); err != nil {
		return err
	}

	t.UpdateSettings(s)

	t.mu.Lock()
	if t.suppressApplicationTitle {
		t.title = t.startingTitle
	}
	t.mu.Unlock()

	return nil
}

// UpdateSettings applies new settings values to a live terminal.
// Geometry is not touched here; that is UserResize's job.
func (t *Terminal) UpdateSettings(s config.Settings) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.defaultFG = s.ForegroundColor()
	t.defaultBG = s.BackgroundColor()

	for i := 0; i < 16; i++ {
		if c, ok := s.SchemeColor(i); ok {
			t.colorTable[i] = c
		}
	}

	t.snapOnInput = s.SnapEnabled()
	t.wordDelimiters = s.WordDelimiters
	t.startingTitle = s.StartingTitle
	t.suppressApplicationTitle = s.SuppressApplicationTitle

	if t.buffer != nil {
		t.buffer.Cursor().SetStyle(grid.CursorStyle{
			Shape:  cursorShapeFromName(s.CursorShape),
			Height: s.CursorHeight,
		})
		pen := t.buffer.CurrentAttributes()
		pen.FG = t.defaultFG
		pen.BG = t.defaultBG
		t.buffer.SetCurrentAttributes(pen)
	}

	if t.pfnBackgroundColorChanged != nil {
		t.pfnBackgroundColorChanged(t.defaultBG)
	}
}

func cursorShapeFromName(name string) grid.CursorShape {
	switch name {
	case "underscore":
		return grid.CursorShapeUnderscore
	case "filledBox":
		return grid.CursorShapeFilledBox
	case "emptyBox":
		return grid.CursorShapeEmptyBox
	case "vintage":
		return grid.CursorShapeLegacy
	default:
		return grid.CursorShapeVerticalBar
	}
}
