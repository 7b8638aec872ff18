// Copyright © 2026 termgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/archive.go
// Summary: SQLite-backed archive for rows evicted into scrollback.
//
// The terminal core is purely in-memory; persistence is an external
// concern. Archive is that external collaborator: plugged into the
// terminal's row-evicted hook, it batches evicted rows into a SQLite
// database so sessions can retain history beyond the in-memory
// scrollback depth.

package history

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/termgrid/grid"
)

// DefaultBatchSize is how many rows accumulate before an automatic
// flush.
const DefaultBatchSize = 100

// Line is one archived scrollback row.
type Line struct {
	Index      int64
	Timestamp  time.Time
	Content    string
	WrapForced bool
}

// Archive persists evicted rows. Safe for use from the terminal's
// write path: Append only buffers under a local mutex and touches the
// database once per batch.
type Archive struct {
	mu      sync.Mutex
	db      *sql.DB
	pending []Line

	batchSize int
}

// Open creates or opens an archive database at path. Use ":memory:"
// for a throwaway archive.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS scrollback (
		idx     INTEGER PRIMARY KEY AUTOINCREMENT,
		ts      INTEGER NOT NULL,
		content TEXT NOT NULL,
		wrapped INTEGER NOT NULL DEFAULT 0
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Archive{db: db, batchSize: DefaultBatchSize}, nil
}

// SetBatchSize adjusts how many rows buffer before a flush. Values
// below 1 flush on every append.
func (a *Archive) SetBatchSize(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n < 1 {
		n = 1
	}
	a.batchSize = n
}

// HandleEvicted is a grid.EvictHandler: it records one evicted row.
// Errors during the batched write are reported by the next Flush or
// Close; the write path itself never blocks on the database beyond
// batch boundaries.
func (a *Archive) HandleEvicted(cells []grid.Cell, wrapForced bool) {
	line := Line{
		Timestamp:  time.Now(),
		Content:    renderCells(cells),
		WrapForced: wrapForced,
	}

	a.mu.Lock()
	a.pending = append(a.pending, line)
	needFlush := len(a.pending) >= a.batchSize
	a.mu.Unlock()

	if needFlush {
		// Errors surface on the next explicit Flush/Close; eviction
		// handling is best-effort by contract.
		_ = a.Flush()
	}
}

// Flush writes all buffered rows to the database.
func (a *Archive) Flush() error {
	a.mu.Lock()
	batch := a.pending
	a.pending = nil
	a.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("history: begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO scrollback (ts, content, wrapped) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("history: prepare: %w", err)
	}
	defer stmt.Close()

	for _, line := range batch {
		wrapped := 0
		if line.WrapForced {
			wrapped = 1
		}
		if _, err := stmt.Exec(line.Timestamp.UnixMilli(), line.Content, wrapped); err != nil {
			tx.Rollback()
			return fmt.Errorf("history: insert: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history: commit: %w", err)
	}
	return nil
}

// Len returns the number of archived rows, including buffered ones.
func (a *Archive) Len() (int64, error) {
	a.mu.Lock()
	buffered := int64(len(a.pending))
	a.mu.Unlock()

	var n int64
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM scrollback`).Scan(&n); err != nil {
		return 0, fmt.Errorf("history: count: %w", err)
	}
	return n + buffered, nil
}

// Tail returns up to n of the most recent archived rows in
// chronological order. Buffered rows are flushed first.
func (a *Archive) Tail(n int) ([]Line, error) {
	if err := a.Flush(); err != nil {
		return nil, err
	}

	rows, err := a.db.Query(
		`SELECT idx, ts, content, wrapped FROM scrollback ORDER BY idx DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("history: tail: %w", err)
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var l Line
		var ts int64
		var wrapped int
		if err := rows.Scan(&l.Index, &ts, &l.Content, &wrapped); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		l.Timestamp = time.UnixMilli(ts)
		l.WrapForced = wrapped == 1
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: tail rows: %w", err)
	}

	// Reverse into chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Close flushes buffered rows and closes the database.
func (a *Archive) Close() error {
	flushErr := a.Flush()
	closeErr := a.db.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// renderCells turns a row into text: wide-rune spacers are dropped and
// trailing blanks trimmed, the same shape the row had as typed.
func renderCells(cells []grid.Cell) string {
	var b strings.Builder
	for _, c := range cells {
		if c.Wide && c.Rune == 0 {
			continue
		}
		if c.Rune == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}
