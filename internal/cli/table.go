package cli

import (
	"io"
	"math"
	"os"

	"golang.org/x/term"

	"github.com/bjaus/tasks/internal/task"
	"github.com/bjaus/tasks/tabular"
)

// fallbackWidth is used when the width follows the terminal but stdout is
// not one.
const fallbackWidth = 120

const noScope = "None"

// taskTable lays out the task listing: ID, Description, Scope, Created at
// and Completed with weights 1, 8, 4, 5 and 3.
func taskTable(width uint8, seps tabular.Separators) (*tabular.Table[task.Task], error) {
	id := tabular.NewColumn("ID", func(t task.Task) string { return t.ID.String() }).
		WithCellAlignment(tabular.AlignRight)
	desc := tabular.NewColumn("Description", func(t task.Task) string { return t.Description }).
		WithCellAlignment(tabular.AlignLeft)
	scope := tabular.NewColumn("Scope", func(t task.Task) string { return t.ScopeOr(noScope) })
	created := tabular.NewColumn("Created at", func(t task.Task) string {
		return t.CreatedAt.Format(task.TimeLayout)
	})
	completed := tabular.NewColumn("Completed", func(t task.Task) string {
		if t.Completed() {
			return "x"
		}
		return " "
	})

	return tabular.NewBuilder[task.Task](width).
		WithSeparators(seps).
		AddColumn(id, 1).
		AddColumn(desc, 8).
		AddColumn(scope, 4).
		AddColumn(created, 5).
		AddColumn(completed, 3).
		Build()
}

// scopeTable is a single-column listing of scopes.
func scopeTable(width uint8, seps tabular.Separators) (*tabular.Table[task.Scope], error) {
	col := tabular.NewColumn("Scope", task.Scope.String)
	return tabular.NewBuilder[task.Scope](width).
		WithSeparators(seps).
		AddColumn(col, 1).
		Build()
}

// resolveWidth picks the table width from the flag, the config or the
// terminal, in that order, clamped to what the renderer accepts.
func resolveWidth(flag, configured int, out io.Writer) uint8 {
	w := flag
	if w <= 0 {
		w = configured
	}
	if w <= 0 {
		w = terminalWidth(out)
	}
	return clampWidth(w)
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return fallbackWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

func clampWidth(w int) uint8 {
	switch {
	case w <= 0:
		return 0
	case w > math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(w)
	}
}
