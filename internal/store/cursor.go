package store

import (
	"database/sql"
	"errors"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/bjaus/tasks/internal/task"
)

// Cursor streams tasks from a query. Rows whose creation time cannot be read
// are skipped rather than surfaced, so every yielded task is complete.
type Cursor struct {
	rows    *sql.Rows
	logger  *log.Logger
	err     error
	skipped int
}

// Tasks returns a single-use sequence over the remaining rows. Check [Cursor.Err]
// once the sequence is drained.
func (c *Cursor) Tasks() iter.Seq[task.Task] {
	return func(yield func(task.Task) bool) {
		for c.rows.Next() {
			t, err := scanTask(c.rows)
			if errors.Is(err, errBadTimestamp) {
				c.skipped++
				c.logger.Warn("skipping unreadable task", "err", err)
				continue
			}
			if err != nil {
				c.err = err
				return
			}
			if !yield(t) {
				return
			}
		}
		c.err = c.rows.Err()
	}
}

// Err returns the first error hit while iterating.
func (c *Cursor) Err() error { return c.err }

// Skipped returns how many rows were dropped for unreadable timestamps.
func (c *Cursor) Skipped() int { return c.skipped }

// Close releases the underlying rows.
func (c *Cursor) Close() error { return c.rows.Close() }
