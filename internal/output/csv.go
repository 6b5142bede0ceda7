package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/bjaus/tasks/tabular"
)

func writeCSV[Row any](w io.Writer, cols []tabular.Column[Row], rows iter.Seq[Row]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(cols)); err != nil {
		return err
	}
	for row := range rows {
		if err := cw.Write(cells(cols, row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTSV writes tab-separated values. Tabs and newlines inside a value are
// replaced by spaces so every row stays on one line.
func writeTSV[Row any](w io.Writer, cols []tabular.Column[Row], rows iter.Seq[Row]) error {
	if _, err := fmt.Fprintln(w, joinTSV(header(cols))); err != nil {
		return err
	}
	for row := range rows {
		if _, err := fmt.Fprintln(w, joinTSV(cells(cols, row))); err != nil {
			return err
		}
	}
	return nil
}

var tsvEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func joinTSV(values []string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = tsvEscaper.Replace(v)
	}
	return strings.Join(out, "\t")
}
