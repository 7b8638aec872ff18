// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/input.go
// Summary: Key-event translation ahead of the key-encoding collaborator.
//
// A small set of chords must be resolved to a literal character here,
// before the encoder sees the event: Escape, Ctrl+Space, Ctrl+H, and
// Alt chords (except Alt+Space, which belongs to the window system).
// Everything else flows through untouched.

package term

import "github.com/gdamore/tcell/v2"

// KeyEvent is the decoded key chord handed to the key encoder.
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// KeyEncoder is the external collaborator that turns key events into
// outbound protocol bytes. HandleKey/HandleChar report whether an
// encoding was produced.
type KeyEncoder interface {
	HandleKey(ev KeyEvent) bool
	HandleChar(ch rune) bool
}

// CharResolver resolves a key chord to the character it would type on
// the current platform/layout. Resolution may fail; that is never
// fatal and simply yields "no character".
type CharResolver interface {
	Resolve(key tcell.Key, r rune, mod tcell.ModMask) (rune, bool)
}

// defaultCharResolver trusts the rune already carried by the event,
// which is what terminal screen libraries deliver on all platforms.
type defaultCharResolver struct{}

func (defaultCharResolver) Resolve(_ tcell.Key, r rune, _ tcell.ModMask) (rune, bool) {
	if r == 0 {
		return 0, false
	}
	return r, true
}

// SendKeyEvent sends a key chord to the terminal. The terminal
// resolves the chords it must handle manually, then asks the encoder
// to translate. It returns true when the event was both manually
// resolved and translated — fully handled, so the caller must not
// also dispatch a raw character event for it.
func (t *Terminal) SendKeyEvent(key tcell.Key, r rune, mod tcell.ModMask) bool {
	t.TrySnapOnInput()

	var ch rune

	// Alt chords require the literal character in the event. Alt+Space
	// stays with the window system (menu chord) and is never resolved.
	if mod&tcell.ModAlt != 0 && !isSpaceChord(key, r) {
		if resolved, ok := t.resolveChar(key, r, mod); ok {
			ch = resolved
		}
	}

	if mod&tcell.ModCtrl != 0 {
		switch {
		case key == tcell.KeyCtrlH || r == 'h' || r == 'H':
			// Ctrl+H is Backspace; the encoder needs the literal
			// backspace character to translate it correctly.
			ch = 0x08
		case isSpaceChord(key, r):
			// Ctrl+Space likewise needs the literal space.
			ch = ' '
		}
	}

	// Escape is resolved here and translated by the encoder.
	if key == tcell.KeyEscape {
		ch = 0x1b
	}

	manuallyHandled := ch != 0

	ev := KeyEvent{Key: key, Rune: r, Mod: mod}
	if manuallyHandled {
		ev.Rune = ch
	}

	t.mu.RLock()
	enc := t.input
	t.mu.RUnlock()
	translated := enc.HandleKey(ev)

	return translated && manuallyHandled
}

// SendCharEvent sends a plain typed character to the encoder,
// reporting whether it produced an outbound encoding.
func (t *Terminal) SendCharEvent(ch rune) bool {
	t.mu.RLock()
	enc := t.input
	t.mu.RUnlock()
	return enc.HandleChar(ch)
}

func (t *Terminal) resolveChar(key tcell.Key, r rune, mod tcell.ModMask) (rune, bool) {
	t.mu.RLock()
	resolver := t.charResolver
	t.mu.RUnlock()
	return resolver.Resolve(key, r, mod)
}

func isSpaceChord(key tcell.Key, r rune) bool {
	return r == ' ' || key == tcell.KeyCtrlSpace
}
