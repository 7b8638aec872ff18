// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/terminal.go
// Summary: Terminal is the orchestrator owning buffer, viewport and scroll state.
//
// One Terminal owns exactly one grid.Buffer (swapped wholesale on
// resize, never aliased), the mutable viewport, the scroll offset and
// the single-slot callbacks. A single reader/writer lock guards all
// of it: the write path, snap-on-input, explicit scrolls and resize
// take it exclusively, queries take it shared. The core runs no
// goroutines of its own; producers and consumers call in.

package term

import (
	"log"
	"sync"

	"github.com/framegrace/termgrid/grid"
)

// RenderTarget is the rendering collaborator. Notifications are
// best-effort: a failing or absent renderer never corrupts state.
type RenderTarget interface {
	TriggerRedrawAll()
}

// DefaultCursorHeight is the legacy cursor height percentage applied
// at creation.
const DefaultCursorHeight = 12

// Terminal is the scrollback-backed terminal model.
type Terminal struct {
	mu sync.RWMutex

	buffer          *grid.Buffer
	mutableViewport grid.Viewport
	scrollbackLines int

	// scrollOffset is how far the visible viewport is pulled back from
	// the live bottom. 0 means pinned to the tail.
	scrollOffset int

	snapOnInput    bool
	defaultFG      grid.Color
	defaultBG      grid.Color
	colorTable     [PaletteSize]grid.Color
	wordDelimiters string

	title                    string
	startingTitle            string
	suppressApplicationTitle bool

	renderTarget RenderTarget
	dispatcher   Dispatcher
	input        KeyEncoder
	charResolver CharResolver

	pfnWriteInput             func(string)
	pfnTitleChanged           func(string)
	pfnScrollPositionChanged  func(visibleTop, visibleHeight, totalBufferHeight int)
	pfnBackgroundColorChanged func(grid.Color)
	pfnRowEvicted             grid.EvictHandler

	debugLog func(format string, args ...interface{})
}

// NewTerminal builds an unsized terminal. Call Create (or
// CreateFromSettings) before writing to it.
func NewTerminal() *Terminal {
	t := &Terminal{
		snapOnInput: true,
		defaultFG:   grid.RGB(255, 255, 255),
		defaultBG:   grid.RGB(0, 0, 0),
		colorTable:  DefaultPalette(),
	}
	t.dispatcher = NewTextDispatcher()
	t.input = NewVTKeyEncoder(t.sendInput)
	t.charResolver = defaultCharResolver{}
	return t
}

// Create sizes the terminal and allocates its buffer. scrollbackLines
// below zero is treated as zero. The error stands in for allocation
// failure; construction failure leaves the terminal unsized.
func (t *Terminal) Create(cols, rows, scrollbackLines int, renderTarget RenderTarget) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if scrollbackLines < 0 {
		scrollbackLines = 0
	}
	pen := grid.Attributes{FG: t.defaultFG, BG: t.defaultBG}
	buffer, err := grid.NewBuffer(cols, rows+scrollbackLines, pen, DefaultCursorHeight)
	if err != nil {
		return err
	}
	t.buffer = buffer
	t.buffer.SetEvictHandler(t.pfnRowEvicted)
	t.mutableViewport = grid.ViewFromDimensions(grid.Coord{}, cols, rows)
	t.scrollbackLines = scrollbackLines
	t.scrollOffset = 0
	t.renderTarget = renderTarget
	return nil
}

// SetDispatcher replaces the parser/dispatcher collaborator feeding
// decoded operations into the core. Replace-on-set.
func (t *Terminal) SetDispatcher(d Dispatcher) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if d != nil {
		t.dispatcher = d
	}
}

// SetKeyEncoder replaces the key-encoding collaborator.
func (t *Terminal) SetKeyEncoder(enc KeyEncoder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if enc != nil {
		t.input = enc
	}
}

// SetCharResolver replaces the platform character resolver used for
// Alt chords.
func (t *Terminal) SetCharResolver(r CharResolver) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r != nil {
		t.charResolver = r
	}
}

// SetDebugLog installs an optional tracing function.
func (t *Terminal) SetDebugLog(fn func(format string, args ...interface{})) {
	t.debugLog = fn
}

// --- Callback registration (single slot, replace-on-set) ---

// SetWriteInputCallback registers the sink for outbound bytes to the
// connected process.
func (t *Terminal) SetWriteInputCallback(fn func(string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pfnWriteInput = fn
}

// SetTitleChangedCallback registers the title listener.
func (t *Terminal) SetTitleChangedCallback(fn func(string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pfnTitleChanged = fn
}

// SetScrollPositionChangedCallback registers the scroll listener. It
// receives (visibleTop, visibleHeight, totalBufferHeight).
func (t *Terminal) SetScrollPositionChangedCallback(fn func(visibleTop, visibleHeight, totalBufferHeight int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pfnScrollPositionChanged = fn
}

// SetBackgroundCallback registers the background-color listener.
func (t *Terminal) SetBackgroundCallback(fn func(grid.Color)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pfnBackgroundColorChanged = fn
}

// SetRowEvictedCallback registers the scrollback eviction hook. Each
// row cycled out of the live region by the circular buffer is reported
// once, in order. Used by external persistence such as
// history.Archive; the core itself stays in-memory.
func (t *Terminal) SetRowEvictedCallback(fn grid.EvictHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pfnRowEvicted = fn
	if t.buffer != nil {
		t.buffer.SetEvictHandler(fn)
	}
}

// --- Read surface (shared lock) ---

// GetBufferHeight returns the bottom-exclusive row of the mutable
// viewport, which is the height of the addressable text region.
func (t *Terminal) GetBufferHeight() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mutableViewport.BottomExclusive()
}

// ViewStartIndex returns the mutable viewport's top row. It is also
// the current length of the scrollback region.
func (t *Terminal) ViewStartIndex() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mutableViewport.Top()
}

// ViewEndIndex returns the mutable viewport's bottom row, inclusive.
func (t *Terminal) ViewEndIndex() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mutableViewport.BottomInclusive()
}

// GetScrollOffset returns the first visible buffer row, accounting for
// user scrollback.
func (t *Terminal) GetScrollOffset() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.visibleStartIndex()
}

// VisibleViewport returns the viewport actually rendered: the mutable
// viewport shifted up by the scroll offset.
func (t *Terminal) VisibleViewport() grid.Viewport {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.visibleViewport()
}

// CursorPosition returns the cursor position in buffer space.
func (t *Terminal) CursorPosition() grid.Coord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.buffer == nil {
		return grid.Coord{}
	}
	return t.buffer.Cursor().Position()
}

// CursorVisible reports whether the cursor should be drawn.
func (t *Terminal) CursorVisible() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.buffer == nil {
		return false
	}
	return t.buffer.Cursor().IsVisible()
}

// SetCursorVisible sets cursor visibility.
func (t *Terminal) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.buffer != nil {
		t.buffer.Cursor().SetVisible(visible)
	}
}

// Title returns the current terminal title.
func (t *Terminal) Title() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.title
}

// ColorTableEntry returns the palette color at the given index.
func (t *Terminal) ColorTableEntry(i int) grid.Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i < 0 || i >= len(t.colorTable) {
		return grid.Color{}
	}
	return t.colorTable[i]
}

// Snapshot copies the rows of the visible viewport for rendering.
// The copy keeps render work outside the lock scope.
func (t *Terminal) Snapshot() [][]grid.Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.buffer == nil {
		return nil
	}
	visible := t.visibleViewport()
	rows := make([][]grid.Cell, visible.Height())
	for y := 0; y < visible.Height(); y++ {
		row := t.buffer.RowAt(visible.Top() + y)
		if row == nil {
			rows[y] = make([]grid.Cell, visible.Width())
			continue
		}
		rows[y] = row.Cells()
	}
	return rows
}

// --- Internal helpers (caller holds the lock) ---

func (t *Terminal) visibleStartIndex() int {
	start := t.mutableViewport.Top() - t.scrollOffset
	if start < 0 {
		return 0
	}
	return start
}

func (t *Terminal) visibleViewport() grid.Viewport {
	w, h := t.mutableViewport.Dimensions()
	return grid.ViewFromDimensions(grid.Coord{Row: t.visibleStartIndex()}, w, h)
}

// notifyScrollEvent reports the visible geometry to the scroll
// listener. Notification failures are swallowed and logged: a broken
// listener must never corrupt or abort buffer state.
func (t *Terminal) notifyScrollEvent() {
	defer swallowPanic("scroll notification")
	if t.pfnScrollPositionChanged == nil {
		return
	}
	visible := t.visibleViewport()
	t.pfnScrollPositionChanged(visible.Top(), visible.Height(), t.mutableViewport.BottomExclusive())
}

func (t *Terminal) triggerRedrawAll() {
	defer swallowPanic("redraw trigger")
	if t.renderTarget != nil {
		t.renderTarget.TriggerRedrawAll()
	}
}

// sendInput forwards encoded key bytes to the write-input callback.
func (t *Terminal) sendInput(s string) {
	if t.pfnWriteInput != nil {
		t.pfnWriteInput(s)
	}
}

// setTitle applies a title change unless the starting title is pinned.
func (t *Terminal) setTitle(title string) {
	if t.suppressApplicationTitle {
		return
	}
	t.title = title
	if t.pfnTitleChanged != nil {
		t.pfnTitleChanged(title)
	}
}

func (t *Terminal) debugf(format string, args ...interface{}) {
	if t.debugLog != nil {
		t.debugLog(format, args...)
	}
}

// swallowPanic keeps listener and renderer failures away from buffer
// state. Use as: defer swallowPanic("scroll notification").
func swallowPanic(where string) {
	if r := recover(); r != nil {
		log.Printf("term: %s failed: %v", where, r)
	}
}
