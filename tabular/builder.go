package tabular

import "fmt"

// MaxColumns is the exclusive upper bound on the number of columns.
const MaxColumns = 255

type weighted[Row any] struct {
	column Column[Row]
	weight uint8
}

// Builder accumulates columns for a [Table]. The zero value is not usable;
// create one with [NewBuilder].
type Builder[Row any] struct {
	width      uint8
	separators Separators
	columns    []weighted[Row]
}

// NewBuilder returns a builder for tables whose lines are at most width
// characters wide, borders included. Separators default to [ASCII].
func NewBuilder[Row any](width uint8) *Builder[Row] {
	return &Builder[Row]{width: width, separators: ASCII}
}

// AddColumn appends col with the given weight. Columns render left to right
// in the order they are added.
func (b *Builder[Row]) AddColumn(col Column[Row], weight uint8) *Builder[Row] {
	b.columns = append(b.columns, weighted[Row]{column: col, weight: weight})
	return b
}

// WithSeparators sets the border characters.
func (b *Builder[Row]) WithSeparators(s Separators) *Builder[Row] {
	b.separators = s
	return b
}

// MinWidth returns the narrowest width that gives every column added so far
// one character per weight unit.
func (b *Builder[Row]) MinWidth() int {
	return len(b.columns) + 1 + b.totalWeight()
}

func (b *Builder[Row]) totalWeight() int {
	n := 0
	for _, c := range b.columns {
		n += int(c.weight)
	}
	return n
}

// Build validates the configuration and returns the table.
func (b *Builder[Row]) Build() (*Table[Row], error) {
	n := len(b.columns)
	if n == 0 {
		return nil, ErrNoColumns
	}
	if n >= MaxColumns {
		return nil, fmt.Errorf("%w: %d columns, limit is %d", ErrTooManyColumns, n, MaxColumns-1)
	}
	for i, c := range b.columns {
		if c.weight == 0 {
			return nil, fmt.Errorf("%w: column %d (%q) has weight 0", ErrInvalidWeight, i, c.column.name)
		}
	}
	if need := b.MinWidth(); int(b.width) < need {
		return nil, fmt.Errorf("%w: width %d, need at least %d", ErrInsufficientWidth, b.width, need)
	}

	unit := (int(b.width) - (n + 1)) / b.totalWeight()
	columns := make([]Column[Row], n)
	widths := make([]int, n)
	for i, c := range b.columns {
		columns[i] = c.column
		widths[i] = int(c.weight) * unit
	}
	return &Table[Row]{
		width:      b.width,
		separators: b.separators,
		unit:       unit,
		columns:    columns,
		widths:     widths,
	}, nil
}
