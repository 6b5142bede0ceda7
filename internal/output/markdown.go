package output

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bjaus/tasks/tabular"
)

func writeMarkdown[Row any](w io.Writer, cols []tabular.Column[Row], rows iter.Seq[Row]) error {
	head := header(cols)
	var body [][]string
	for row := range rows {
		body = append(body, cells(cols, row))
	}

	// Calculate column widths (minimum 3 for alignment markers).
	widths := make([]int, len(cols))
	for i, h := range head {
		widths[i] = max(3, runewidth.StringWidth(h))
	}
	for _, line := range body {
		for i, cell := range line {
			widths[i] = max(widths[i], runewidth.StringWidth(markdownEscaper.Replace(cell)))
		}
	}

	aligns := make([]tabular.Alignment, len(cols))
	for i, c := range cols {
		aligns[i] = c.CellAlignment()
	}

	if err := writeMarkdownRow(w, head, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, len(cols))
	for i, width := range widths {
		switch aligns[i] {
		case tabular.AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case tabular.AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, line := range body {
		if err := writeMarkdownRow(w, line, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func writeMarkdownRow(w io.Writer, values []string, widths []int, aligns []tabular.Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = padDisplay(markdownEscaper.Replace(values[i]), width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// padDisplay pads s to width display cells. Unlike the console table, which
// measures bytes, Markdown is read in editors that lay out by display width.
func padDisplay(s string, width int, align tabular.Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case tabular.AlignRight:
		return strings.Repeat(" ", pad) + s
	case tabular.AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
