// Package zoo constructs well-known Game of Life creatures and loads and
// saves grids in the ascii .gol and binary .bgol file formats.
package zoo

import (
	"github.com/pkg/errors"

	"github.com/lifegrid/golife/life"
)

// Glider constructs a 3x3 grid containing a glider in its bounding box.
// https://www.conwaylife.com/wiki/Glider
func Glider() *life.Grid {
	return fromCoordinates(3, 3, [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
}

// RPentomino constructs a 3x3 grid containing an r-pentomino.
// https://www.conwaylife.com/wiki/R-pentomino
func RPentomino() *life.Grid {
	return fromCoordinates(3, 3, [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}})
}

// LightWeightSpaceship constructs a 5x4 grid containing a light weight
// spaceship. https://www.conwaylife.com/wiki/Lightweight_spaceship
func LightWeightSpaceship() *life.Grid {
	return fromCoordinates(5, 4, [][2]int{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	})
}

// ByName looks a creature builder up by its command line name.
func ByName(name string) (*life.Grid, error) {
	switch name {
	case "glider":
		return Glider(), nil
	case "r-pentomino":
		return RPentomino(), nil
	case "lwss":
		return LightWeightSpaceship(), nil
	}
	return nil, errors.Errorf("[ByName] unknown creature: %q", name)
}

func fromCoordinates(width, height int, alive [][2]int) *life.Grid {
	g, _ := life.NewGrid(width, height)
	for _, c := range alive {
		// the coordinate tables are static and inside the bounding box
		_ = g.Set(c[0], c[1], life.Alive)
	}
	return g
}
