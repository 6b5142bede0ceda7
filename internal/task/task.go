package task

import "time"

// TimeLayout is the display form of task timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// NewTask is the user input for creating a task.
type NewTask struct {
	Description string
	Scope       *Scope
}

// Task is a stored task.
type Task struct {
	ID          ID         `json:"id" yaml:"id"`
	Description string     `json:"description" yaml:"description"`
	Scope       *Scope     `json:"scope,omitempty" yaml:"scope,omitempty"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

// New creates a pending task from input.
func New(id ID, input NewTask, now time.Time) Task {
	return Task{
		ID:          id,
		Description: input.Description,
		Scope:       input.Scope,
		CreatedAt:   now,
	}
}

// Completed reports whether the task has been completed.
func (t Task) Completed() bool { return t.CompletedAt != nil }

// ToggleComplete marks a pending task completed at now, or reopens a
// completed one.
func (t *Task) ToggleComplete(now time.Time) {
	if t.CompletedAt != nil {
		t.CompletedAt = nil
		return
	}
	t.CompletedAt = &now
}

// ScopeOr returns the scope text, or fallback when the task has none.
func (t Task) ScopeOr(fallback string) string {
	if t.Scope == nil {
		return fallback
	}
	return t.Scope.String()
}
