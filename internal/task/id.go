package task

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// ID identifies a task.
type ID uint32

// String returns the decimal form of the id.
func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// ParseID parses a decimal task id.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: %w", s, err)
	}
	return ID(n), nil
}

// Generator hands out increasing ids. It is safe for concurrent use.
type Generator struct {
	next atomic.Uint32
}

// NewGenerator returns a generator whose first id is start.
func NewGenerator(start ID) *Generator {
	g := &Generator{}
	g.next.Store(uint32(start))
	return g
}

// Next returns the next id.
func (g *Generator) Next() ID {
	return ID(g.next.Add(1) - 1)
}
