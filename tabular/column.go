package tabular

// Alignment controls how a value is padded inside its cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Column describes one table column over rows of type Row.
//
// The extractor must be pure and must not fail: anything that can go wrong
// while reading a field has to be resolved to a placeholder before the row
// reaches the table.
type Column[Row any] struct {
	name        string
	headerAlign Alignment
	cellAlign   Alignment
	extract     func(Row) string
}

// NewColumn returns a column with centered header and cells.
func NewColumn[Row any](name string, extract func(Row) string) Column[Row] {
	return Column[Row]{
		name:        name,
		headerAlign: AlignCenter,
		cellAlign:   AlignCenter,
		extract:     extract,
	}
}

// WithHeaderAlignment returns a copy of c with the header alignment set.
func (c Column[Row]) WithHeaderAlignment(a Alignment) Column[Row] {
	c.headerAlign = a
	return c
}

// WithCellAlignment returns a copy of c with the data cell alignment set.
func (c Column[Row]) WithCellAlignment(a Alignment) Column[Row] {
	c.cellAlign = a
	return c
}

// Name returns the header text.
func (c Column[Row]) Name() string { return c.name }

// HeaderAlignment returns the alignment used for the header cell.
func (c Column[Row]) HeaderAlignment() Alignment { return c.headerAlign }

// CellAlignment returns the alignment used for data cells.
func (c Column[Row]) CellAlignment() Alignment { return c.cellAlign }

// Value projects row into the column's string value.
// A column without an extractor yields an empty string.
func (c Column[Row]) Value(row Row) string {
	if c.extract == nil {
		return ""
	}
	return c.extract(row)
}
