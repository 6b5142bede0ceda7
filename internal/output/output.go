package output

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/bjaus/tasks/tabular"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	JSON     Format = "json"
	YAML     Format = "yaml"
	JSONL    Format = "jsonl"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	Plain    Format = "plain"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, JSON, YAML, JSONL, CSV, TSV, Markdown, HTML, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row with a Go text/template.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders rows to w in format f. tbl supplies the layout for the table
// format and the column names and extractors for the other tabular formats.
func Write[Row any](w io.Writer, f Format, tbl *tabular.Table[Row], rows iter.Seq[Row]) error {
	switch f {
	case Table:
		return tbl.Print(w, rows)
	case JSON:
		return writeJSON(w, rows)
	case YAML:
		return writeYAML(w, rows)
	case JSONL:
		return writeJSONL(w, rows)
	case CSV:
		return writeCSV(w, tbl.Columns(), rows)
	case TSV:
		return writeTSV(w, tbl.Columns(), rows)
	case Markdown:
		return writeMarkdown(w, tbl.Columns(), rows)
	case HTML:
		return writeHTML(w, tbl.Columns(), rows)
	case Plain:
		return writePlain(w, tbl.Columns(), rows)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, rows)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func header[Row any](cols []tabular.Column[Row]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name()
	}
	return out
}

func cells[Row any](cols []tabular.Column[Row], row Row) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Value(row)
	}
	return out
}

func collect[Row any](rows iter.Seq[Row]) []Row {
	var out []Row
	for row := range rows {
		out = append(out, row)
	}
	return out
}
