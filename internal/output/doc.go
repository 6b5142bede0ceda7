// Package output writes rows in one of several formats.
//
// Every format is driven by a built [tabular.Table]. The table format prints
// it directly; CSV, TSV, Markdown, HTML and plain text reuse its column names
// and extractors, so a row looks the same in every tabular form. JSON, YAML,
// JSONL and Go templates encode the row values themselves.
//
// # Format Selection
//
// Use [ParseFormat] to convert a flag value into a [Format]. It recognizes
// the static formats and "go-template=<tmpl>" strings:
//
//	f, err := output.ParseFormat(flagValue)
//	err = output.Write(os.Stdout, f, tbl, rows)
//
// # Streaming
//
// Rows are consumed once, front to back. Formats whose layout depends on
// every row (Markdown widths, YAML documents) collect the rows first; the
// others write each row as it arrives.
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidTemplate]: invalid go-template syntax
package output
