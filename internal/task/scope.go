package task

import "strings"

// Scope is a user-defined tag grouping tasks. Scopes are case-insensitive and
// stored lower-cased.
type Scope string

// NewScope normalizes s into a scope.
func NewScope(s string) Scope {
	return Scope(strings.ToLower(strings.TrimSpace(s)))
}

// String returns the scope text.
func (s Scope) String() string { return string(s) }
