package zoo

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/lifegrid/golife/life"
)

// LoadASCII reads a grid from the ascii .gol format: a "width height" header
// line followed by height rows of '#' (alive) and ' ' (dead) characters.
// Rows shorter than the width leave the remaining cells dead.
func LoadASCII(path string) (*life.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadASCII] failed to open file: %+v", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return nil, errors.Errorf("[LoadASCII] missing header line in %+v", path)
	}
	var width, height int
	if _, err = fmt.Sscanf(scanner.Text(), "%d %d", &width, &height); err != nil {
		return nil, errors.Wrapf(err, "[LoadASCII] malformed header in %+v", path)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[LoadASCII] width and height must be positive, got %dx%d", width, height)
	}

	grid, err := life.NewGrid(width, height)
	if err != nil {
		return nil, errors.WithMessage(err, "[LoadASCII]")
	}
	for y := 0; y < height; y++ {
		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "[LoadASCII] failed reading %+v", path)
			}
			return nil, errors.Errorf("[LoadASCII] file ends at row %d of %d", y, height)
		}
		line := scanner.Text()
		if len(line) > width {
			return nil, errors.Errorf("[LoadASCII] row %d longer than width %d", y, width)
		}
		for x, sym := range line {
			switch sym {
			case '#':
				_ = grid.Set(x, y, life.Alive)
			case ' ':
				// cells start dead
			default:
				return nil, errors.Errorf("[LoadASCII] invalid cell character %q at (%d,%d)", sym, x, y)
			}
		}
	}
	return grid, nil
}

// SaveASCII writes a grid to the ascii .gol format.
func SaveASCII(path string, grid *life.Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[SaveASCII] failed to create file: %+v", path)
	}
	defer file.Close()

	if _, err = fmt.Fprintf(file, "%d %d\n", grid.GetWidth(), grid.GetHeight()); err != nil {
		return errors.Wrapf(err, "[SaveASCII] failed writing header to %+v", path)
	}
	if _, err = file.WriteString(grid.RenderCells()); err != nil {
		return errors.Wrapf(err, "[SaveASCII] failed writing cells to %+v", path)
	}
	return nil
}
