package output

import (
	"fmt"
	"io"
	"iter"
	"text/template"
)

func writeGoTemplate[Row any](w io.Writer, tmplStr string, rows iter.Seq[Row]) error {
	tmpl, err := template.New("").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for row := range rows {
		if err := tmpl.Execute(w, row); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
