package tabular

import (
	"fmt"
	"sort"
)

// Separators holds the three characters used to draw a table.
// Vertical separates cells, Horizontal fills separator lines and Cross marks
// column boundaries on separator lines.
type Separators struct {
	Vertical   rune
	Horizontal rune
	Cross      rune
}

// Border presets.
var (
	ASCII  = Separators{Vertical: '|', Horizontal: '-', Cross: '+'}
	Light  = Separators{Vertical: '│', Horizontal: '─', Cross: '┼'}
	Heavy  = Separators{Vertical: '┃', Horizontal: '━', Cross: '╋'}
	Double = Separators{Vertical: '║', Horizontal: '═', Cross: '╬'}
)

var borderSets = map[string]Separators{
	"ascii":  ASCII,
	"light":  Light,
	"heavy":  Heavy,
	"double": Double,
}

// ParseSeparators returns the preset registered under name.
func ParseSeparators(name string) (Separators, error) {
	s, ok := borderSets[name]
	if !ok {
		return Separators{}, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
	}
	return s, nil
}

// Borders returns the names accepted by [ParseSeparators], sorted.
func Borders() []string {
	names := make([]string, 0, len(borderSets))
	for name := range borderSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
