package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bjaus/tasks/internal/task"
)

const taskColumns = `id, description, completed_at, created_at, scope`

// LastID returns the highest stored task id, or 0 for an empty database.
func (s *Store) LastID(ctx context.Context) (task.ID, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM tasks`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("read last task id: %w", err)
	}
	return task.ID(id), nil
}

// Add stores a new task and returns it.
func (s *Store) Add(ctx context.Context, input task.NewTask) (task.Task, error) {
	t := task.New(s.gen.Next(), input, s.now())
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, description, completed_at, created_at, scope) VALUES (?, ?, ?, ?, ?)`,
		int64(t.ID), t.Description, nullTime(t.CompletedAt), formatTime(t.CreatedAt), nullScope(t.Scope),
	)
	if err != nil {
		return task.Task{}, fmt.Errorf("save task: %w", err)
	}
	s.logger.Debug("added task", "id", t.ID)
	return t, nil
}

// Get returns the task with the given id.
func (s *Store) Get(ctx context.Context, id task.ID) (task.Task, error) {
	return s.get(ctx, s.db, id)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) get(ctx context.Context, q queryRower, id task.ID) (task.Task, error) {
	row := q.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, int64(id))
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return task.Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, nil
}

// ToggleComplete completes a pending task or reopens a completed one, and
// returns the updated task.
func (s *Store) ToggleComplete(ctx context.Context, id task.ID) (task.Task, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return task.Task{}, fmt.Errorf("toggle task %d: %w", id, err)
	}
	defer tx.Rollback()

	t, err := s.get(ctx, tx, id)
	if err != nil {
		return task.Task{}, err
	}
	t.ToggleComplete(s.now())

	if _, err := tx.ExecContext(ctx,
		`UPDATE tasks SET completed_at = ? WHERE id = ?`,
		nullTime(t.CompletedAt), int64(id),
	); err != nil {
		return task.Task{}, fmt.Errorf("toggle task %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return task.Task{}, fmt.Errorf("toggle task %d: %w", id, err)
	}
	s.logger.Debug("toggled task", "id", id, "completed", t.Completed())
	return t, nil
}

// Delete removes the task with the given id.
func (s *Store) Delete(ctx context.Context, id task.ID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, int64(id))
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.logger.Debug("deleted task", "id", id)
	return nil
}

// List returns a cursor over tasks, newest first. A nil scope lists every
// task. The caller must close the cursor.
func (s *Store) List(ctx context.Context, scope *task.Scope) (*Cursor, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var args []any
	if scope != nil {
		query += ` WHERE scope = ?`
		args = append(args, scope.String())
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &Cursor{rows: rows, logger: s.logger}, nil
}

// Scopes returns the distinct scopes in use, sorted.
func (s *Store) Scopes(ctx context.Context) ([]task.Scope, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT scope FROM tasks WHERE scope IS NOT NULL ORDER BY scope`)
	if err != nil {
		return nil, fmt.Errorf("list scopes: %w", err)
	}
	defer rows.Close()

	var scopes []task.Scope
	for rows.Next() {
		var sc string
		if err := rows.Scan(&sc); err != nil {
			return nil, fmt.Errorf("list scopes: %w", err)
		}
		scopes = append(scopes, task.Scope(sc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scopes: %w", err)
	}
	return scopes, nil
}
