package life

// Cell is a two-state automaton unit, either Dead or Alive.
type Cell uint8

const (
	// Dead is the zero value; freshly allocated grids hold only Dead cells.
	Dead Cell = iota
	// Alive marks a living cell.
	Alive
)

// IsAlive reports whether the cell is Alive.
func (c Cell) IsAlive() bool {
	return c == Alive
}

// Valid reports whether the stored value is one of the two legal states.
// Any other value indicates corrupted storage.
func (c Cell) Valid() bool {
	return c == Dead || c == Alive
}

// Rune returns the canonical ascii representation, '#' for Alive and a
// space for Dead.
func (c Cell) Rune() rune {
	if c == Alive {
		return '#'
	}
	return ' '
}
