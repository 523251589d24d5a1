package rules

/*
ApplyConwayRules applies Conway's Game of Life transition rule to determine
the next state of a cell.

A live cell survives with exactly 2 or 3 live neighbours, a dead cell comes
alive with exactly 3, everything else dies: (alive && neighbours == 2) || neighbours == 3
*/
func ApplyConwayRules(neighbours int, alive bool) bool {
	return (alive && neighbours == 2) || neighbours == 3
}
