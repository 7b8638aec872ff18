// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrace/termgrid/grid"
)

func TestDefaults(t *testing.T) {
	s := Default()
	if s.InitialCols != 80 || s.InitialRows != 24 {
		t.Errorf("expected 80x24, got %dx%d", s.InitialCols, s.InitialRows)
	}
	if s.HistorySize != 9001 {
		t.Errorf("expected history 9001, got %d", s.HistorySize)
	}
	if !s.SnapEnabled() {
		t.Errorf("expected snap-on-input enabled by default")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "absent.json"))
	if s.InitialCols != 80 || s.HistorySize != 9001 {
		t.Errorf("expected defaults for a missing file, got %+v", s)
	}
}

func TestLoadAppliesFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	data := `{
		"initialCols": 120,
		"historySize": 500,
		"snapOnInput": false,
		"defaultForeground": "#AABBCC",
		"colorScheme": ["#000000", "#FF0000"],
		"cursorShape": "vintage",
		"suppressApplicationTitle": true
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	s := Load(path)

	if s.InitialCols != 120 {
		t.Errorf("expected 120 columns, got %d", s.InitialCols)
	}
	if s.InitialRows != 24 {
		t.Errorf("expected absent rows to keep the default, got %d", s.InitialRows)
	}
	if s.HistorySize != 500 {
		t.Errorf("expected history 500, got %d", s.HistorySize)
	}
	if s.SnapEnabled() {
		t.Errorf("expected snap disabled")
	}
	if got := s.ForegroundColor(); got != grid.RGB(0xAA, 0xBB, 0xCC) {
		t.Errorf("expected parsed foreground, got %+v", got)
	}
	if !s.SuppressApplicationTitle {
		t.Errorf("expected title suppression enabled")
	}
}

func TestLoadMalformedFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	s := Load(path)

	if s.InitialCols != 80 || s.HistorySize != 9001 {
		t.Errorf("expected defaults for a malformed file, got %+v", s)
	}
}

func TestNegativeHistoryClampsToZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"historySize": -1}`), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	if s := Load(path); s.HistorySize != 0 {
		t.Errorf("expected negative history clamped to 0, got %d", s.HistorySize)
	}
}

func TestSchemeColor(t *testing.T) {
	s := Default()
	if _, ok := s.SchemeColor(3); ok {
		t.Errorf("expected unset scheme entry to report ok=false")
	}
	s.ColorScheme[3] = "#010203"
	c, ok := s.SchemeColor(3)
	if !ok || c != grid.RGB(1, 2, 3) {
		t.Errorf("expected parsed scheme entry, got (%+v, %v)", c, ok)
	}
	if _, ok := s.SchemeColor(99); ok {
		t.Errorf("expected out-of-range index to report ok=false")
	}
}

func TestParseColorFallback(t *testing.T) {
	fallback := grid.RGB(9, 9, 9)
	if got := parseColor("not-a-color", fallback); got != fallback {
		t.Errorf("expected fallback for malformed color, got %+v", got)
	}
	if got := parseColor("#0C0C0C", fallback); got != grid.RGB(0x0C, 0x0C, 0x0C) {
		t.Errorf("expected parsed color, got %+v", got)
	}
}
