// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/encoder.go
// Summary: VTKeyEncoder, the default key-to-VT-bytes collaborator.

package term

import "github.com/gdamore/tcell/v2"

// VTKeyEncoder translates key events into VT escape sequences and
// delivers them through a sink (normally the terminal's write-input
// callback, ending up at the connected process).
type VTKeyEncoder struct {
	sink          func(string)
	appCursorKeys bool
}

// NewVTKeyEncoder builds an encoder that writes encodings to sink.
func NewVTKeyEncoder(sink func(string)) *VTKeyEncoder {
	return &VTKeyEncoder{sink: sink}
}

// SetApplicationCursorKeys switches between normal (CSI) and
// application (SS3) encodings for the cursor keys.
func (e *VTKeyEncoder) SetApplicationCursorKeys(enabled bool) {
	e.appCursorKeys = enabled
}

// HandleKey encodes a key chord, reporting whether bytes were
// produced.
func (e *VTKeyEncoder) HandleKey(ev KeyEvent) bool {
	var seq string

	switch ev.Key {
	case tcell.KeyUp:
		seq = e.cursorSeq("A")
	case tcell.KeyDown:
		seq = e.cursorSeq("B")
	case tcell.KeyRight:
		seq = e.cursorSeq("C")
	case tcell.KeyLeft:
		seq = e.cursorSeq("D")
	case tcell.KeyHome:
		seq = "\x1b[H"
	case tcell.KeyEnd:
		seq = "\x1b[F"
	case tcell.KeyInsert:
		seq = "\x1b[2~"
	case tcell.KeyDelete:
		seq = "\x1b[3~"
	case tcell.KeyPgUp:
		seq = "\x1b[5~"
	case tcell.KeyPgDn:
		seq = "\x1b[6~"
	case tcell.KeyF1:
		seq = "\x1bOP"
	case tcell.KeyF2:
		seq = "\x1bOQ"
	case tcell.KeyF3:
		seq = "\x1bOR"
	case tcell.KeyF4:
		seq = "\x1bOS"
	case tcell.KeyF5:
		seq = "\x1b[15~"
	case tcell.KeyF6:
		seq = "\x1b[17~"
	case tcell.KeyF7:
		seq = "\x1b[18~"
	case tcell.KeyF8:
		seq = "\x1b[19~"
	case tcell.KeyF9:
		seq = "\x1b[20~"
	case tcell.KeyF10:
		seq = "\x1b[21~"
	case tcell.KeyF11:
		seq = "\x1b[23~"
	case tcell.KeyF12:
		seq = "\x1b[24~"
	case tcell.KeyEnter:
		seq = "\r"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		seq = "\b"
	case tcell.KeyTab:
		seq = "\t"
	case tcell.KeyEscape:
		seq = "\x1b"
	default:
		// Plain runes travel the char-event path; only chords carrying
		// Alt or Ctrl are encoded from a key event.
		if ev.Rune == 0 {
			return false
		}
		if ev.Mod&tcell.ModCtrl != 0 && ev.Rune == ' ' {
			// Ctrl+Space transmits NUL.
			seq = "\x00"
		} else if ev.Mod&tcell.ModAlt != 0 {
			seq = "\x1b" + string(ev.Rune)
		} else if ev.Mod&tcell.ModCtrl != 0 {
			seq = string(ev.Rune)
		} else {
			return false
		}
	}

	if seq == "" {
		return false
	}
	if e.sink != nil {
		e.sink(seq)
	}
	return true
}

// HandleChar encodes a plain typed character.
func (e *VTKeyEncoder) HandleChar(ch rune) bool {
	if ch == 0 {
		return false
	}
	if e.sink != nil {
		e.sink(string(ch))
	}
	return true
}

func (e *VTKeyEncoder) cursorSeq(letter string) string {
	if e.appCursorKeys {
		return "\x1bO" + letter
	}
	return "\x1b[" + letter
}
