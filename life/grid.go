package life

import "github.com/pkg/errors"

// Grid is a fixed-size rectangular container of cells with bounds-checked
// access and geometric transforms. Cells live in a flat slice indexed
// x + width*y, row-major with x varying fastest. Every grid owns its storage
// exclusively; Crop and Rotate hand back deep copies.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a width x height grid filled with dead cells. Zero is a
// legal dimension and yields an empty grid; negative dimensions are not.
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrNegativeDimensions, "[NewGrid] %dx%d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	diag.GridCreated(width, height)
	return g, nil
}

// NewSquareGrid creates a size x size grid filled with dead cells.
func NewSquareGrid(size int) (*Grid, error) {
	return NewGrid(size, size)
}

// NewEmptyGrid creates a 0x0 grid.
func NewEmptyGrid() *Grid {
	g, _ := NewGrid(0, 0)
	return g
}

// GetWidth returns the width of the grid.
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid.
func (g *Grid) GetHeight() int {
	return g.height
}

// GetTotalCells returns width * height.
func (g *Grid) GetTotalCells() int {
	return g.width * g.height
}

// GetAliveCells counts the living cells.
func (g *Grid) GetAliveCells() (count int) {
	for _, c := range g.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// GetDeadCells counts the dead cells.
func (g *Grid) GetDeadCells() int {
	return g.GetTotalCells() - g.GetAliveCells()
}

// ValidCoordinate reports whether (x, y) addresses a cell inside the grid.
func (g *Grid) ValidCoordinate(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps a 2d coordinate to its offset in the flat cell slice.
func (g *Grid) index(x, y int) int {
	return x + g.width*y
}

// Get returns the value of the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.ValidCoordinate(x, y) {
		return Dead, errors.Wrapf(ErrOutOfRange, "[Grid.Get] (%d,%d) in %dx%d", x, y, g.width, g.height)
	}
	return g.cells[g.index(x, y)], nil
}

// Set overwrites the cell at (x, y). The grid is left unmodified when the
// coordinate is out of range.
func (g *Grid) Set(x, y int, value Cell) error {
	if !g.ValidCoordinate(x, y) {
		return errors.Wrapf(ErrOutOfRange, "[Grid.Set] (%d,%d) in %dx%d", x, y, g.width, g.height)
	}
	g.cells[g.index(x, y)] = value
	return nil
}

// At returns a mutable handle to the cell at (x, y), saving the index
// arithmetic when the same cell is accessed repeatedly. Resize invalidates
// outstanding handles.
func (g *Grid) At(x, y int) (*Cell, error) {
	if !g.ValidCoordinate(x, y) {
		return nil, errors.Wrapf(ErrOutOfRange, "[Grid.At] (%d,%d) in %dx%d", x, y, g.width, g.height)
	}
	return &g.cells[g.index(x, y)], nil
}

// Resize reallocates the grid to the new dimensions. Every coordinate inside
// both the old and new extents keeps its value, newly introduced cells start
// dead, and shrinking discards the trimmed content. The grid is untouched on
// failure.
func (g *Grid) Resize(newWidth, newHeight int) error {
	if newWidth < 0 || newHeight < 0 {
		return errors.Wrapf(ErrNegativeDimensions, "[Grid.Resize] %dx%d", newWidth, newHeight)
	}

	var (
		next  = make([]Cell, newWidth*newHeight)
		keepW = min(newWidth, g.width)
		keepH = min(newHeight, g.height)
	)
	for y := 0; y < keepH; y++ {
		copy(next[newWidth*y:newWidth*y+keepW], g.cells[g.width*y:g.width*y+keepW])
	}

	diag.GridResized(g.width, g.height, newWidth, newHeight)
	g.width = newWidth
	g.height = newHeight
	g.cells = next
	return nil
}

// ResizeSquare resizes the grid to size x size.
func (g *Grid) ResizeSquare(size int) error {
	return g.Resize(size, size)
}

// Crop copies the half-open window [x0,x1) x [y0,y1) into a new grid.
// Zero-size windows are legal and yield an empty grid.
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x0 < 0 || y0 < 0 || x1 > g.width || y1 > g.height || x1 < x0 || y1 < y0 {
		return nil, errors.Wrapf(ErrOutOfRange, "[Grid.Crop] window (%d,%d)-(%d,%d) in %dx%d",
			x0, y0, x1, y1, g.width, g.height)
	}

	out, err := NewGrid(x1-x0, y1-y0)
	if err != nil {
		return nil, err
	}
	for y := y0; y < y1; y++ {
		copy(out.cells[out.width*(y-y0):out.width*(y-y0+1)], g.cells[g.index(x0, y):g.index(x1, y)])
	}
	return out, nil
}

// Merge overlays other onto the grid with other's origin placed at (x0, y0).
// With aliveOnly set, dead cells in other leave the receiver untouched, so a
// merge can raise cells to alive but never lower them. The placed rectangle
// must fit entirely inside the receiver; nothing is written on failure.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if x0 < 0 || y0 < 0 || x0+other.width > g.width || y0+other.height > g.height {
		return errors.Wrapf(ErrOutOfRange, "[Grid.Merge] %dx%d at (%d,%d) in %dx%d",
			other.width, other.height, x0, y0, g.width, g.height)
	}

	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			v := other.cells[other.index(x, y)]
			if aliveOnly && !v.IsAlive() {
				continue
			}
			g.cells[g.index(x0+x, y0+y)] = v
		}
	}
	return nil
}

// Rotate returns a copy of the grid rotated clockwise by quarterTurns * 90
// degrees. Any integer is accepted and only quarterTurns mod 4 matters; an
// odd number of turns swaps width and height. Every residue walks the full
// destination grid, so the cost is uniform across inputs.
func (g *Grid) Rotate(quarterTurns int) *Grid {
	turns := ((quarterTurns % 4) + 4) % 4

	w, h := g.width, g.height
	if turns%2 == 1 {
		w, h = h, w
	}
	out, _ := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sx, sy int
			switch turns {
			case 0:
				sx, sy = x, y
			case 1:
				sx, sy = y, g.height-1-x
			case 2:
				sx, sy = g.width-1-x, g.height-1-y
			case 3:
				sx, sy = g.width-1-y, x
			}
			out.cells[out.index(x, y)] = g.cells[g.index(sx, sy)]
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Cell, len(g.cells)),
	}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have identical dimensions and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
