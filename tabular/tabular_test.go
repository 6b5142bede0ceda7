package tabular_test

import (
	"bytes"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/bjaus/tasks/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	ID   string
	Name string
}

func idOf(p person) string   { return p.ID }
func nameOf(p person) string { return p.Name }

var errWriteFailed = errors.New("write failed")

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

func peopleTable(t *testing.T, width uint8) *tabular.Table[person] {
	t.Helper()
	tbl, err := tabular.NewBuilder[person](width).
		AddColumn(tabular.NewColumn("ID", idOf).WithCellAlignment(tabular.AlignRight), 1).
		AddColumn(tabular.NewColumn("Name", nameOf), 1).
		Build()
	require.NoError(t, err)
	return tbl
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestNewColumnDefaults(t *testing.T) {
	t.Parallel()
	col := tabular.NewColumn("Name", nameOf)
	assert.Equal(t, "Name", col.Name())
	assert.Equal(t, tabular.AlignCenter, col.HeaderAlignment())
	assert.Equal(t, tabular.AlignCenter, col.CellAlignment())
	assert.Equal(t, "Bob", col.Value(person{Name: "Bob"}))
}

func TestColumnSettersReturnCopies(t *testing.T) {
	t.Parallel()
	base := tabular.NewColumn("Name", nameOf)
	left := base.WithHeaderAlignment(tabular.AlignLeft)
	right := base.WithCellAlignment(tabular.AlignRight)

	assert.Equal(t, tabular.AlignCenter, base.HeaderAlignment())
	assert.Equal(t, tabular.AlignCenter, base.CellAlignment())
	assert.Equal(t, tabular.AlignLeft, left.HeaderAlignment())
	assert.Equal(t, tabular.AlignCenter, left.CellAlignment())
	assert.Equal(t, tabular.AlignRight, right.CellAlignment())
}

func TestColumnNilExtractor(t *testing.T) {
	t.Parallel()
	col := tabular.NewColumn[person]("Empty", nil)
	assert.Empty(t, col.Value(person{Name: "Bob"}))
}

func TestAlignmentString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "left", tabular.AlignLeft.String())
	assert.Equal(t, "center", tabular.AlignCenter.String())
	assert.Equal(t, "right", tabular.AlignRight.String())
	assert.Equal(t, "unknown", tabular.Alignment(9).String())
}

func TestBuildValidation(t *testing.T) {
	t.Parallel()
	col := tabular.NewColumn("Name", nameOf)
	tests := map[string]struct {
		build   func() *tabular.Builder[person]
		wantErr error
	}{
		"no columns": {
			build:   func() *tabular.Builder[person] { return tabular.NewBuilder[person](80) },
			wantErr: tabular.ErrNoColumns,
		},
		"256 columns": {
			build: func() *tabular.Builder[person] {
				b := tabular.NewBuilder[person](255)
				for range 256 {
					b.AddColumn(col, 1)
				}
				return b
			},
			wantErr: tabular.ErrTooManyColumns,
		},
		"255 columns": {
			build: func() *tabular.Builder[person] {
				b := tabular.NewBuilder[person](255)
				for range 255 {
					b.AddColumn(col, 1)
				}
				return b
			},
			wantErr: tabular.ErrTooManyColumns,
		},
		"zero weight": {
			build: func() *tabular.Builder[person] {
				return tabular.NewBuilder[person](80).AddColumn(col, 1).AddColumn(col, 0)
			},
			wantErr: tabular.ErrInvalidWeight,
		},
		"one below minimum": {
			build: func() *tabular.Builder[person] {
				// 3 borders + 2 + 3 weight units = 8.
				return tabular.NewBuilder[person](7).AddColumn(col, 2).AddColumn(col, 3)
			},
			wantErr: tabular.ErrInsufficientWidth,
		},
		"exactly minimum": {
			build: func() *tabular.Builder[person] {
				return tabular.NewBuilder[person](8).AddColumn(col, 2).AddColumn(col, 3)
			},
		},
		"many narrow columns": {
			build: func() *tabular.Builder[person] {
				b := tabular.NewBuilder[person](255)
				for range 127 {
					b.AddColumn(col, 1)
				}
				return b
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl, err := tt.build().Build()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tbl)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tbl)
		})
	}
}

func TestMinWidth(t *testing.T) {
	t.Parallel()
	b := tabular.NewBuilder[person](10)
	assert.Equal(t, 1, b.MinWidth())
	b.AddColumn(tabular.NewColumn("ID", idOf), 1).AddColumn(tabular.NewColumn("Name", nameOf), 4)
	assert.Equal(t, 8, b.MinWidth())
}

func TestUnitWidthNeverZero(t *testing.T) {
	t.Parallel()
	col := tabular.NewColumn("Name", nameOf)
	for width := 0; width <= 255; width++ {
		for _, weights := range [][]uint8{{1}, {1, 1}, {3, 1, 2}, {7, 5}, {1, 1, 1, 1, 1}} {
			b := tabular.NewBuilder[person](uint8(width))
			for _, w := range weights {
				b.AddColumn(col, w)
			}
			tbl, err := b.Build()
			if err != nil {
				require.ErrorIs(t, err, tabular.ErrInsufficientWidth)
				continue
			}
			assert.GreaterOrEqual(t, tbl.UnitWidth(), 1)
			for i, cw := range tbl.Widths() {
				assert.Equal(t, int(weights[i])*tbl.UnitWidth(), cw)
			}
			assert.LessOrEqual(t, tbl.LineWidth(), width)
		}
	}
}

func TestPrintScenario(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t, 20)
	assert.Equal(t, 8, tbl.UnitWidth())
	assert.Equal(t, []int{8, 8}, tbl.Widths())

	var buf bytes.Buffer
	err := tbl.PrintSlice(&buf, []person{{ID: "3", Name: "Bob"}})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+--------+--------+",
		"|   ID   |  Name  |",
		"+--------+--------+",
		"|       3|  Bob   |",
		"+--------+--------+",
	}, lines(buf.String()))
	for _, line := range lines(buf.String()) {
		assert.Len(t, line, tbl.LineWidth())
	}
}

func TestPrintNoRows(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t, 20)
	var buf bytes.Buffer
	require.NoError(t, tbl.PrintSlice(&buf, nil))
	assert.Len(t, lines(buf.String()), 4)
}

func TestPrintLineWidth(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		width   uint8
		weights []uint8
		want    int
	}{
		"even split":        {width: 23, weights: []uint8{1, 1}, want: 23},
		"remainder dropped": {width: 20, weights: []uint8{1, 1}, want: 19},
		"uneven weights":    {width: 120, weights: []uint8{1, 8, 4, 5, 3}, want: 111},
		"single column":     {width: 2 + 1, weights: []uint8{1}, want: 3},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			b := tabular.NewBuilder[person](tt.width)
			for _, w := range tt.weights {
				b.AddColumn(tabular.NewColumn("Name", nameOf), w)
			}
			tbl, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tbl.LineWidth())

			var buf bytes.Buffer
			require.NoError(t, tbl.PrintSlice(&buf, []person{{Name: strings.Repeat("x", 300)}, {Name: ""}}))
			for _, line := range lines(buf.String()) {
				assert.Len(t, line, tt.want)
			}
		})
	}
}

func TestPrintTruncatesLongValues(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t, 11) // unit 4
	var buf bytes.Buffer
	require.NoError(t, tbl.PrintSlice(&buf, []person{{ID: "123456", Name: "Alexander"}}))
	assert.Equal(t, "|1234|Alex|", lines(buf.String())[3])
}

func TestPrintSeparators(t *testing.T) {
	t.Parallel()
	tbl, err := tabular.NewBuilder[person](12).
		WithSeparators(tabular.Light).
		AddColumn(tabular.NewColumn("ID", idOf).WithHeaderAlignment(tabular.AlignLeft), 1).
		AddColumn(tabular.NewColumn("Name", nameOf).WithCellAlignment(tabular.AlignLeft), 2).
		Build()
	require.NoError(t, err)
	assert.Equal(t, tabular.Light, tbl.Separators())

	var buf bytes.Buffer
	require.NoError(t, tbl.PrintSlice(&buf, []person{{ID: "1", Name: "Al"}}))
	assert.Equal(t, []string{
		"┼───┼──────┼",
		"│ID │ Name │",
		"┼───┼──────┼",
		"│ 1 │Al    │",
		"┼───┼──────┼",
	}, lines(buf.String()))
}

func TestPrintConsumesRowsLazily(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t, 20)
	var buf bytes.Buffer
	var seen []int
	rows := func(yield func(person) bool) {
		for i := range 3 {
			// Header and separators are already written before the first row is pulled.
			seen = append(seen, len(lines(buf.String())))
			if !yield(person{ID: string(rune('1' + i))}) {
				return
			}
		}
	}
	require.NoError(t, tbl.Print(&buf, iter.Seq[person](rows)))
	assert.Equal(t, []int{3, 4, 5}, seen)
	assert.Len(t, lines(buf.String()), 7)
}

func TestPrintWriteErrors(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t, 20)
	rows := []person{{ID: "1"}, {ID: "2"}}
	// 3 preamble lines, 2 rows, closing separator.
	for n := range 6 {
		w := &failAfterN{n: n}
		err := tbl.PrintSlice(w, rows)
		require.ErrorIs(t, err, errWriteFailed, "fail after %d", n)
		assert.Equal(t, n, w.calls)
	}
	require.NoError(t, tbl.PrintSlice(&failAfterN{n: 6}, rows))
}

func TestPrintStopsPullingRowsAfterError(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t, 20)
	pulled := 0
	rows := func(yield func(person) bool) {
		for {
			pulled++
			if !yield(person{}) {
				return
			}
		}
	}
	err := tbl.Print(&failAfterN{n: 4}, rows)
	require.ErrorIs(t, err, errWriteFailed)
	assert.Equal(t, 2, pulled)
}

func TestTableAccessorsAreCopies(t *testing.T) {
	t.Parallel()
	tbl := peopleTable(t, 20)
	widths := tbl.Widths()
	widths[0] = 99
	cols := tbl.Columns()
	cols[0] = tabular.NewColumn("X", idOf)
	assert.Equal(t, []int{8, 8}, tbl.Widths())
	assert.Equal(t, "ID", tbl.Columns()[0].Name())
	assert.Equal(t, 20, tbl.Width())
}

func TestParseSeparators(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabular.Separators
		wantErr require.ErrorAssertionFunc
	}{
		"ascii":   {input: "ascii", want: tabular.ASCII, wantErr: require.NoError},
		"light":   {input: "light", want: tabular.Light, wantErr: require.NoError},
		"heavy":   {input: "heavy", want: tabular.Heavy, wantErr: require.NoError},
		"double":  {input: "double", want: tabular.Double, wantErr: require.NoError},
		"unknown": {input: "rounded", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabular.ParseSeparators(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeparatorsUnknownIsSentinel(t *testing.T) {
	t.Parallel()
	_, err := tabular.ParseSeparators("rounded")
	assert.ErrorIs(t, err, tabular.ErrUnknownBorder)
	assert.Equal(t, []string{"ascii", "double", "heavy", "light"}, tabular.Borders())
}
