// Package history persists committed time windows in a sqlite database so
// zoom commits can be undone, including across sessions.
package history

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/wilbur182/zoomline/internal/timeline"
)

const schema = `
CREATE TABLE IF NOT EXISTS zoom_history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	start_ms   INTEGER NOT NULL,
	end_ms     INTEGER NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

// Store is a sqlite-backed stack of committed windows.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record pushes a window onto the history stack.
func (s *Store) Record(r timeline.Range) error {
	_, err := s.db.Exec(
		`INSERT INTO zoom_history (start_ms, end_ms) VALUES (?, ?)`,
		int64(r.Start), int64(r.End),
	)
	if err != nil {
		return fmt.Errorf("record zoom history: %w", err)
	}
	return nil
}

// Pop removes and returns the most recently recorded window. The second
// return value is false when the stack is empty.
func (s *Store) Pop() (timeline.Range, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, start_ms, end_ms FROM zoom_history ORDER BY id DESC LIMIT 1`,
	)
	var id, start, end int64
	if err := row.Scan(&id, &start, &end); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timeline.Range{}, false, nil
		}
		return timeline.Range{}, false, fmt.Errorf("read zoom history: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM zoom_history WHERE id = ?`, id); err != nil {
		return timeline.Range{}, false, fmt.Errorf("pop zoom history: %w", err)
	}
	return timeline.Range{Start: timeline.Millis(start), End: timeline.Millis(end)}, true, nil
}

// Recent returns up to n windows, newest first, without removing them.
func (s *Store) Recent(n int) ([]timeline.Range, error) {
	rows, err := s.db.Query(
		`SELECT start_ms, end_ms FROM zoom_history ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("list zoom history: %w", err)
	}
	defer rows.Close()

	var out []timeline.Range
	for rows.Next() {
		var start, end int64
		if err := rows.Scan(&start, &end); err != nil {
			return nil, fmt.Errorf("scan zoom history: %w", err)
		}
		out = append(out, timeline.Range{
			Start: timeline.Millis(start),
			End:   timeline.Millis(end),
		})
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
