package render

import (
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Glyph returns the one-character ASCII symbol for kind k:
//
//	S start   E end   # wall   * path   o frontier   . visited   ' ' open
func Glyph(k grid.Kind) rune {
	switch k {
	case grid.Start:
		return 'S'
	case grid.End:
		return 'E'
	case grid.Wall:
		return '#'
	case grid.OnPath:
		return '*'
	case grid.Frontier:
		return 'o'
	case grid.Visited:
		return '.'
	}
	return ' '
}

// Text renders snap as rows of Glyph characters separated by newlines.
// A nil snapshot renders as the empty string.
func Text(snap *grid.Snapshot) string {
	if snap == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(snap.Rows() * (snap.Cols() + 1))
	for r := 0; r < snap.Rows(); r++ {
		for c := 0; c < snap.Cols(); c++ {
			b.WriteRune(Glyph(snap.At(grid.Pos{Row: r, Col: c}).Kind))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
