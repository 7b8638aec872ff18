// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/termgrid/session.go
// Summary: The interactive pty session behind the root command.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
	xterm "golang.org/x/term"

	"github.com/framegrace/termgrid/config"
	"github.com/framegrace/termgrid/grid"
	"github.com/framegrace/termgrid/history"
	"github.com/framegrace/termgrid/term"
)

// screenTarget forwards redraw requests into the session's refresh
// channel without blocking the write path.
type screenTarget struct {
	refresh chan bool
}

func (s *screenTarget) TriggerRedrawAll() {
	select {
	case s.refresh <- true:
	default:
	}
}

func runSession() error {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("termgrid needs an interactive terminal on stdin")
	}

	settings := config.Default()
	if flagConfig != "" {
		settings = config.Load(flagConfig)
	}
	if flagHistory >= 0 {
		settings.HistorySize = flagHistory
	}

	command := flagCommand
	if command == "" {
		command = os.Getenv("SHELL")
	}
	if command == "" {
		command = "/bin/sh"
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	settings.InitialCols = cols
	settings.InitialRows = rows

	target := &screenTarget{refresh: make(chan bool, 1)}
	terminal := term.NewTerminal()
	if err := terminal.CreateFromSettings(settings, target); err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	if flagDebug != "" {
		f, err := os.OpenFile(flagDebug, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger := log.New(f, "", log.LstdFlags|log.Lmicroseconds)
		terminal.SetDebugLog(logger.Printf)
	}

	if flagArchive != "" {
		arch, err := history.Open(flagArchive)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer arch.Close()
		terminal.SetRowEvictedCallback(arch.HandleEvicted)
	}

	cmd := exec.Command(command)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	terminal.SetWriteInputCallback(func(s string) {
		ptmx.Write([]byte(s))
	})
	terminal.SetTitleChangedCallback(func(title string) {
		screen.SetTitle(title)
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		reader := bufio.NewReader(ptmx)
		for {
			r, _, err := reader.ReadRune()
			if err != nil {
				if err != io.EOF {
					log.Printf("pty read: %v", err)
				}
				return
			}
			terminal.Write(string(r))
			target.TriggerRedrawAll()
		}
	}()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	draw(screen, terminal, settings)

	for {
		select {
		case <-done:
			return cmd.Wait()
		case <-target.refresh:
			draw(screen, terminal, settings)
		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventResize:
				newCols, newRows := tev.Size()
				if _, err := terminal.UserResize(newCols, newRows); err != nil {
					log.Printf("resize: %v", err)
				}
				pty.Setsize(ptmx, &pty.Winsize{
					Rows: uint16(newRows),
					Cols: uint16(newCols),
				})
				screen.Sync()
				draw(screen, terminal, settings)
			case *tcell.EventKey:
				if handleKey(terminal, tev) {
					return nil
				}
				draw(screen, terminal, settings)
			}
		}
	}
}

// handleKey routes one key event. Returns true when the session should
// end.
func handleKey(terminal *term.Terminal, ev *tcell.EventKey) bool {
	key, r, mod := ev.Key(), ev.Rune(), ev.Modifiers()

	if key == tcell.KeyCtrlQ {
		return true
	}

	// Shift+PgUp/PgDn move the visible viewport through scrollback
	// instead of reaching the hosted shell.
	if mod&tcell.ModShift != 0 {
		page := terminal.VisibleViewport().Height()
		switch key {
		case tcell.KeyPgUp:
			terminal.UserScrollViewport(terminal.GetScrollOffset() - page)
			return false
		case tcell.KeyPgDn:
			terminal.UserScrollViewport(terminal.GetScrollOffset() + page)
			return false
		}
	}

	if terminal.SendKeyEvent(key, r, mod) {
		return false
	}
	// Unhandled rune keys fall through as plain character input.
	if key == tcell.KeyRune && r != 0 {
		terminal.SendCharEvent(r)
	}
	return false
}

func draw(screen tcell.Screen, terminal *term.Terminal, settings config.Settings) {
	rows := terminal.Snapshot()
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			cell := row[x]
			if cell.Wide && cell.Rune == 0 {
				continue
			}
			ch := cell.Rune
			if ch == 0 {
				ch = ' '
			}
			screen.SetContent(x, y, ch, nil, styleFor(terminal, settings, cell))
		}
	}

	visibleTop := terminal.GetScrollOffset()
	pos := terminal.CursorPosition()
	screenRow := pos.Row - visibleTop
	if terminal.CursorVisible() && screenRow >= 0 && screenRow < len(rows) {
		screen.ShowCursor(pos.Col, screenRow)
	} else {
		screen.HideCursor()
	}
	screen.Show()
}

func styleFor(terminal *term.Terminal, settings config.Settings, cell grid.Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(mapColor(terminal, cell.FG, settings.ForegroundColor())).
		Background(mapColor(terminal, cell.BG, settings.BackgroundColor()))
	style = style.Bold(cell.Attr&grid.AttrBold != 0)
	style = style.Underline(cell.Attr&grid.AttrUnderline != 0)
	style = style.Reverse(cell.Attr&grid.AttrReverse != 0)
	return style
}

// mapColor resolves a buffer color through the terminal's palette into
// a concrete RGB value for tcell.
func mapColor(terminal *term.Terminal, c grid.Color, fallback grid.Color) tcell.Color {
	switch c.Mode {
	case grid.ColorModeDefault:
		c = fallback
	case grid.ColorModeStandard, grid.ColorMode256:
		c = terminal.ColorTableEntry(int(c.Value))
	}
	if c.Mode != grid.ColorModeRGB {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
