package tabular

import (
	"io"
	"iter"
	"slices"
	"strings"
)

// Table is a validated, immutable layout. It holds no row data; rows are
// supplied to each [Table.Print] call.
type Table[Row any] struct {
	width      uint8
	separators Separators
	unit       int
	columns    []Column[Row]
	widths     []int
}

// Width returns the configured total width.
func (t *Table[Row]) Width() int { return int(t.width) }

// UnitWidth returns the number of characters one weight unit occupies.
func (t *Table[Row]) UnitWidth() int { return t.unit }

// Widths returns the body width of each column.
func (t *Table[Row]) Widths() []int { return slices.Clone(t.widths) }

// Columns returns the columns in display order.
func (t *Table[Row]) Columns() []Column[Row] { return slices.Clone(t.columns) }

// Separators returns the border characters.
func (t *Table[Row]) Separators() Separators { return t.separators }

// LineWidth returns the number of characters in every rendered line,
// excluding the newline. It never exceeds [Table.Width].
func (t *Table[Row]) LineWidth() int {
	n := len(t.widths) + 1
	for _, w := range t.widths {
		n += w
	}
	return n
}

// Print writes the table to w: a separator, the header, a separator, one
// line per row and a closing separator. rows is consumed once, front to back,
// as lines are written. The first write error stops rendering and is
// returned unchanged.
func (t *Table[Row]) Print(w io.Writer, rows iter.Seq[Row]) error {
	sep := t.separatorLine()
	if _, err := io.WriteString(w, sep); err != nil {
		return err
	}
	if _, err := io.WriteString(w, t.headerLine()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, sep); err != nil {
		return err
	}
	var werr error
	for row := range rows {
		if _, werr = io.WriteString(w, t.rowLine(row)); werr != nil {
			break
		}
	}
	if werr != nil {
		return werr
	}
	_, err := io.WriteString(w, sep)
	return err
}

// PrintSlice prints rows from a slice.
func (t *Table[Row]) PrintSlice(w io.Writer, rows []Row) error {
	return t.Print(w, slices.Values(rows))
}

func (t *Table[Row]) separatorLine() string {
	var sb strings.Builder
	cross := string(t.separators.Cross)
	fill := string(t.separators.Horizontal)
	sb.WriteString(cross)
	for _, width := range t.widths {
		sb.WriteString(strings.Repeat(fill, width))
		sb.WriteString(cross)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (t *Table[Row]) headerLine() string {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = formatCell(col.name, t.widths[i], col.headerAlign)
	}
	return t.joinCells(cells)
}

func (t *Table[Row]) rowLine(row Row) string {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = formatCell(col.Value(row), t.widths[i], col.cellAlign)
	}
	return t.joinCells(cells)
}

func (t *Table[Row]) joinCells(cells []string) string {
	var sb strings.Builder
	vert := string(t.separators.Vertical)
	sb.WriteString(vert)
	for _, cell := range cells {
		sb.WriteString(cell)
		sb.WriteString(vert)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// formatCell fits s into exactly width bytes. Longer values are cut at the
// width-th byte, which can split a multi-byte character.
func formatCell(s string, width int, align Alignment) string {
	if len(s) > width {
		return s[:width]
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
