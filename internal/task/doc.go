// Package task defines the task domain: identifiers, scopes and the task
// record itself.
package task
