package output

import (
	"encoding/json"
	"io"
	"iter"
)

// writeJSON streams rows as elements of a single JSON array.
func writeJSON[Row any](w io.Writer, rows iter.Seq[Row]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	first := true
	for row := range rows {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

func writeJSONL[Row any](w io.Writer, rows iter.Seq[Row]) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
