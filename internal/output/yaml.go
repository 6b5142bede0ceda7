package output

import (
	"io"
	"iter"

	"gopkg.in/yaml.v3"
)

func writeYAML[Row any](w io.Writer, rows iter.Seq[Row]) error {
	items := collect(rows)
	if items == nil {
		items = []Row{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}
