// Package tabular renders rows into a fixed-width, bordered text table.
//
// A table is described by weighted columns. Each [Column] names a header and
// projects a row into a string; its weight is a proportional share of the
// interior width, not a character count. A [Builder] accumulates columns and
// a total line width, and [Builder.Build] validates the configuration into an
// immutable [Table]:
//
//	tbl, err := tabular.NewBuilder[Person](40).
//		AddColumn(tabular.NewColumn("ID", idOf).WithCellAlignment(tabular.AlignRight), 1).
//		AddColumn(tabular.NewColumn("Name", nameOf), 3).
//		Build()
//	if err != nil { ... }
//	err = tbl.Print(os.Stdout, slices.Values(people))
//
// # Width Allocation
//
// One border character is drawn at every column boundary, so a table of n
// columns spends n+1 characters on borders. The rest is divided by the sum
// of all weights to get a single unit width, and every column is
// weight*unit characters wide. The division truncates; any remainder is
// left unused at the right edge. Rendered lines are therefore never longer
// than the configured width, and may be slightly shorter.
//
// The total width is a uint8: 255 characters is the widest line a table can
// describe.
//
// # Cells
//
// Values longer than their column are cut to the column width at a byte
// offset. Multi-byte UTF-8 characters straddling the cut are split; the
// renderer measures bytes, not display cells. Shorter values are padded
// according to the column's [Alignment]. Centered values carry the odd
// padding character on the right.
//
// # Errors
//
// All validation happens in [Builder.Build]:
//
//   - [ErrNoColumns]: no columns were added
//   - [ErrTooManyColumns]: 255 or more columns
//   - [ErrInvalidWeight]: a column has weight zero
//   - [ErrInsufficientWidth]: the width cannot give every column one character
//
// [Table.Print] only returns errors from the destination writer.
package tabular
