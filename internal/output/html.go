package output

import (
	"fmt"
	"html"
	"io"
	"iter"

	"github.com/bjaus/tasks/tabular"
)

func writeHTML[Row any](w io.Writer, cols []tabular.Column[Row], rows iter.Seq[Row]) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <thead>\n    <tr>"); err != nil {
		return err
	}
	for _, c := range cols {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(c.HeaderAlignment()), html.EscapeString(c.Name())); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>\n  </thead>\n  <tbody>"); err != nil {
		return err
	}
	for row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, c := range cols {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", alignStyle(c.CellAlignment()), html.EscapeString(c.Value(row))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "  </tbody>\n</table>")
	return err
}

func alignStyle(a tabular.Alignment) string {
	switch a {
	case tabular.AlignRight:
		return ` style="text-align: right"`
	case tabular.AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
