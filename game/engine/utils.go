package engine

// FreeCells lists every cell in bounds for which excluded returns false, row by row
func FreeCells(bounds Geometry, excluded func(Cell) bool) []Cell {
	var free []Cell
	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			c := Cell{X: x, Y: y}
			if !excluded(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// ManhattanDistance calculates the Manhattan distance between two cells
func ManhattanDistance(from, to Cell) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// MaxScore is the highest score reachable on a board: every free cell eaten
func MaxScore(config *GameConfig) int {
	return config.GridWidth*config.GridHeight - config.InitialLength
}
