package life

import "strings"

// String renders the grid wrapped in a border of '+', '-' and '|'
// characters, alive cells as '#' and dead cells as spaces, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 3) * (g.height + 2))

	border := "+" + strings.Repeat("-", g.width) + "+\n"
	b.WriteString(border)
	for y := 0; y < g.height; y++ {
		b.WriteByte('|')
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[g.index(x, y)].Rune())
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}

// RenderCells renders the bare cell matrix without the decorative border,
// one row per line. This is the body of the ascii file format.
func (g *Grid) RenderCells() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[g.index(x, y)].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
