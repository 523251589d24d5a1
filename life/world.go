package life

import (
	"github.com/pkg/errors"

	"github.com/lifegrid/golife/rules"
)

// World is a double-buffered stepping engine that advances a grid by the
// Game of Life transition rule. It owns two equally sized grids for the
// current and next generation; Step writes the new generation into the spare
// buffer and then swaps the two in constant time.
//
// A World is not safe for concurrent use. Automata stepped from different
// goroutines need independent World instances or an external lock.
type World struct {
	current *Grid
	next    *Grid
}

// NewWorld creates a width x height world filled with dead cells.
func NewWorld(width, height int) (*World, error) {
	current, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.WithMessage(err, "[NewWorld]")
	}
	next, _ := NewGrid(width, height)
	return &World{current: current, next: next}, nil
}

// NewSquareWorld creates a size x size world filled with dead cells.
func NewSquareWorld(size int) (*World, error) {
	return NewWorld(size, size)
}

// NewEmptyWorld creates a 0x0 world.
func NewEmptyWorld() *World {
	w, _ := NewWorld(0, 0)
	return w
}

// NewWorldFromGrid seeds a world from an existing grid. The seed is deep
// copied, so the caller keeps ownership of its grid; the spare buffer starts
// as a dead grid of matching size.
func NewWorldFromGrid(seed *Grid) *World {
	next, _ := NewGrid(seed.GetWidth(), seed.GetHeight())
	return &World{current: seed.Clone(), next: next}
}

// GetWidth returns the width of the world.
func (w *World) GetWidth() int {
	return w.current.GetWidth()
}

// GetHeight returns the height of the world.
func (w *World) GetHeight() int {
	return w.current.GetHeight()
}

// GetTotalCells returns the total number of cells in the world.
func (w *World) GetTotalCells() int {
	return w.current.GetTotalCells()
}

// GetAliveCells counts the living cells in the current generation.
func (w *World) GetAliveCells() int {
	return w.current.GetAliveCells()
}

// GetDeadCells counts the dead cells in the current generation.
func (w *World) GetDeadCells() int {
	return w.current.GetDeadCells()
}

// GetState returns the current generation as a read-only view. The backing
// storage is recycled into the spare buffer on the next Step, so the
// returned grid must not be held across Step calls; Clone it to keep a
// snapshot.
func (w *World) GetState() *Grid {
	return w.current
}

// Resize resizes both buffers to the new dimensions. The current generation
// keeps its content under the same preservation rule as Grid.Resize; the
// spare buffer holds only scratch values and is reallocated dead.
func (w *World) Resize(newWidth, newHeight int) error {
	if err := w.current.Resize(newWidth, newHeight); err != nil {
		return errors.WithMessage(err, "[World.Resize]")
	}
	next, _ := NewGrid(newWidth, newHeight)
	w.next = next
	return nil
}

// ResizeSquare resizes both buffers to size x size.
func (w *World) ResizeSquare(size int) error {
	return w.Resize(size, size)
}

// countNeighbours counts the alive cells among the 8 neighbours of (x, y) in
// the current generation. Without toroidal wrapping, neighbours beyond an
// edge do not exist and contribute nothing. With it, coordinates wrap modulo
// the grid dimensions; on a 1-wide or 1-tall grid a cell then counts itself
// through the wraparound, by the same arithmetic as any other size.
func (w *World) countNeighbours(x, y int, toroidal bool) int {
	g := w.current
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if toroidal {
				nx = ((nx % g.width) + g.width) % g.width
				ny = ((ny % g.height) + g.height) % g.height
			} else if !g.ValidCoordinate(nx, ny) {
				continue
			}
			if g.cells[g.index(nx, ny)].IsAlive() {
				count++
			}
		}
	}
	return count
}

// Step advances the world by one generation. The read pass over the current
// buffer and the write pass into the spare buffer touch disjoint storage, so
// the current generation is never observed half-updated; once the spare is
// fully populated the two buffers exchange roles.
func (w *World) Step(toroidal bool) error {
	if w.current.width != w.next.width || w.current.height != w.next.height {
		return errors.Wrapf(ErrInvalidDimensions, "[World.Step] current %dx%d, next %dx%d",
			w.current.width, w.current.height, w.next.width, w.next.height)
	}

	for y := 0; y < w.current.height; y++ {
		for x := 0; x < w.current.width; x++ {
			var (
				neighbours = w.countNeighbours(x, y, toroidal)
				alive      = w.current.cells[w.current.index(x, y)].IsAlive()
				state      = Dead
			)
			if rules.ApplyConwayRules(neighbours, alive) {
				state = Alive
			}
			w.next.cells[w.next.index(x, y)] = state
		}
	}

	w.current, w.next = w.next, w.current
	return nil
}

// Advance steps the world forward the given number of generations. Zero is a
// no-op; negative counts are rejected since the transition rule has no
// general inverse.
func (w *World) Advance(steps int, toroidal bool) error {
	if steps < 0 {
		return errors.Wrapf(ErrNegativeSteps, "[World.Advance] %d", steps)
	}
	for i := 0; i < steps; i++ {
		if err := w.Step(toroidal); err != nil {
			return err
		}
	}
	return nil
}
