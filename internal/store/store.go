// Package store persists tasks in a single-file SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/bjaus/tasks/internal/task"
)

// ErrNotFound is returned when no task has the requested id.
var ErrNotFound = errors.New("task not found")

// Store is a task database. Create one with [Open].
type Store struct {
	db     *sql.DB
	path   string
	gen    *task.Generator
	now    func() time.Time
	logger *log.Logger
}

// Option configures a [Store].
type Option func(*Store)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the time source used for created and completed stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens the database at path, creating its directory and the file if
// needed, applies pending migrations and seeds the id generator from the
// highest stored id.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	// One writer at a time; a CLI invocation never needs more.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database %s: %w", path, err)
	}
	s.db = db
	s.logger.Debug("opened database", "path", path)

	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	last, err := s.LastID(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	s.gen = task.NewGenerator(last + 1)
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

var errBadTimestamp = errors.New("bad timestamp")

func scanTask(sc scanner) (task.Task, error) {
	var (
		t           task.Task
		id          int64
		createdAt   string
		completedAt sql.NullString
		scope       sql.NullString
	)
	if err := sc.Scan(&id, &t.Description, &completedAt, &createdAt, &scope); err != nil {
		return task.Task{}, err
	}
	t.ID = task.ID(id)

	created, err := parseTime(createdAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: task %d created_at %q", errBadTimestamp, id, createdAt)
	}
	t.CreatedAt = created

	// An unreadable completion stamp degrades to "not completed".
	if completedAt.Valid {
		if done, err := parseTime(completedAt.String); err == nil {
			t.CompletedAt = &done
		}
	}
	if scope.Valid {
		sc := task.Scope(scope.String)
		t.Scope = &sc
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// Timestamps without a zone are read as local time.
		t, err = time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.Local(), nil
}

func nullScope(s *task.Scope) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: s.String(), Valid: true}
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}
