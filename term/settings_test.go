// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"testing"

	"github.com/framegrace/termgrid/config"
	"github.com/framegrace/termgrid/grid"
)

func TestCreateFromSettings(t *testing.T) {
	s := config.Default()
	s.InitialCols = 40
	s.InitialRows = 10
	s.HistorySize = 5

	terminal := NewTerminal()
	if err := terminal.CreateFromSettings(s, &fakeTarget{}); err != nil {
		t.Fatalf("CreateFromSettings: %v", err)
	}

	snapshot := terminal.Snapshot()
	if len(snapshot) != 10 || len(snapshot[0]) != 40 {
		t.Errorf("expected 40x10 snapshot, got %dx%d", len(snapshot[0]), len(snapshot))
	}
}

func TestCreateFromSettingsClampsInfiniteHistory(t *testing.T) {
	s := config.Default()
	s.InitialCols = 10
	s.InitialRows = 2
	s.HistorySize = -1

	terminal := NewTerminal()
	var evictions int
	terminal.SetRowEvictedCallback(func([]grid.Cell, bool) { evictions++ })
	if err := terminal.CreateFromSettings(s, &fakeTarget{}); err != nil {
		t.Fatalf("CreateFromSettings: %v", err)
	}

	terminal.Write("one\r\ntwo\r\nthree")

	if evictions != 1 {
		t.Errorf("expected negative history clamped to zero, got %d evictions", evictions)
	}
}

func TestUpdateSettingsAppliesScheme(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 3, 0)

	s := config.Default()
	s.ColorScheme[1] = "#FF0000"
	terminal.UpdateSettings(s)

	if got := terminal.ColorTableEntry(1); got != grid.RGB(0xFF, 0, 0) {
		t.Errorf("expected scheme override, got %+v", got)
	}
	// Unset entries keep the palette default.
	if got := terminal.ColorTableEntry(2); got != grid.RGB(0x13, 0xA1, 0x0E) {
		t.Errorf("expected palette default retained, got %+v", got)
	}
}

func TestUpdateSettingsSnapPolicy(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 2, 3)
	terminal.Write("one\r\ntwo\r\nthree\r\nfour")

	snap := false
	s := config.Default()
	s.SnapOnInput = &snap
	terminal.UpdateSettings(s)

	terminal.UserScrollViewport(0)
	terminal.TrySnapOnInput()

	if got := terminal.GetScrollOffset(); got != 0 {
		t.Errorf("expected snap disabled, got visible top %d", got)
	}
}

func TestUpdateSettingsChangesPen(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 3, 0)

	s := config.Default()
	s.DefaultForeground = "#112233"
	terminal.UpdateSettings(s)
	terminal.Write("x")

	cell := terminal.Snapshot()[0][0]
	if cell.FG != grid.RGB(0x11, 0x22, 0x33) {
		t.Errorf("expected new default foreground on written cells, got %+v", cell.FG)
	}
}

func TestUpdateSettingsFiresBackgroundCallback(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 3, 0)
	var observed grid.Color
	terminal.SetBackgroundCallback(func(c grid.Color) { observed = c })

	s := config.Default()
	s.DefaultBackground = "#445566"
	terminal.UpdateSettings(s)

	if observed != grid.RGB(0x44, 0x55, 0x66) {
		t.Errorf("expected background callback with new color, got %+v", observed)
	}
}

func TestUpdateSettingsCursorShape(t *testing.T) {
	terminal, _ := newTestTerminal(t, 10, 3, 0)

	s := config.Default()
	s.CursorShape = "underscore"
	s.CursorHeight = 25
	terminal.UpdateSettings(s)

	terminal.mu.RLock()
	style := terminal.buffer.Cursor().Style()
	terminal.mu.RUnlock()
	if style.Shape != grid.CursorShapeUnderscore || style.Height != 25 {
		t.Errorf("expected underscore cursor at height 25, got %+v", style)
	}
}
