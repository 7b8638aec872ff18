// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/dispatch.go
// Summary: Dispatcher collaborator interface and the default C0 router.
//
// The escape-sequence state machine proper is an external
// collaborator: this module defines the surface it drives and ships a
// plain-text default that understands C0 controls only. A richer
// implementation (CSI/OSC decoding) plugs in through SetDispatcher.

package term

import "github.com/framegrace/termgrid/grid"

// Primitives is the callback surface a dispatcher drives. Every call
// happens under the terminal's exclusive lock, inside a Write.
type Primitives interface {
	// PrintString writes a run of printable text at the cursor,
	// wrapping and scrolling as needed.
	PrintString(run string)

	LineFeed()
	CarriageReturn()
	Backspace()
	HorizontalTab()
	Bell()

	// SetAttributes replaces the pen applied to new cells.
	SetAttributes(pen grid.Attributes)
	// CurrentAttributes returns the active pen.
	CurrentAttributes() grid.Attributes
	// SetTitle applies an application title change.
	SetTitle(title string)
}

// Dispatcher decodes a chunk of process output into operations
// against the primitives. Implementations are synchronous and are
// called with the terminal lock held; they must not call back into
// the terminal's public entry points.
type Dispatcher interface {
	ProcessString(text string, ops Primitives)
}

// termOps adapts the Terminal's unexported mutation helpers to the
// Primitives surface without widening the public API.
type termOps struct {
	t *Terminal
}

func (o termOps) PrintString(run string) { o.t.writeToBuffer(run) }
func (o termOps) LineFeed()              { o.t.lineFeed() }
func (o termOps) CarriageReturn()        { o.t.carriageReturn() }
func (o termOps) Backspace()             { o.t.backspace() }
func (o termOps) HorizontalTab()         { o.t.horizontalTab() }
func (o termOps) Bell()                  {}
func (o termOps) SetTitle(title string)  { o.t.setTitle(title) }
func (o termOps) CurrentAttributes() grid.Attributes {
	return o.t.buffer.CurrentAttributes()
}
func (o termOps) SetAttributes(pen grid.Attributes) {
	o.t.buffer.SetCurrentAttributes(pen)
}

// TextDispatcher is the default dispatcher: printable runs and C0
// controls. Unknown control bytes are dropped, matching the behavior
// of feeding a terminal plain text.
type TextDispatcher struct{}

// NewTextDispatcher builds the default dispatcher.
func NewTextDispatcher() *TextDispatcher { return &TextDispatcher{} }

// ProcessString splits text into maximal printable runs handed to
// PrintString and individual control operations.
func (d *TextDispatcher) ProcessString(text string, ops Primitives) {
	runStart := -1
	flush := func(end int) {
		if runStart >= 0 {
			ops.PrintString(text[runStart:end])
			runStart = -1
		}
	}

	for i, r := range text {
		if r >= 0x20 && r != 0x7f {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
		switch r {
		case '\n':
			ops.LineFeed()
		case '\r':
			ops.CarriageReturn()
		case '\b':
			ops.Backspace()
		case '\t':
			ops.HorizontalTab()
		case 0x07:
			ops.Bell()
		}
	}
	flush(len(text))
}
