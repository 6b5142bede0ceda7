package output

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/bjaus/tasks/tabular"
)

// writePlain writes each row's values separated by single spaces, without a
// header. Single-column output is one value per line.
func writePlain[Row any](w io.Writer, cols []tabular.Column[Row], rows iter.Seq[Row]) error {
	for row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(cells(cols, row), " ")); err != nil {
			return err
		}
	}
	return nil
}
