package engine

// Geometry describes the board in cells and the size of one cell in render units
type Geometry struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	CellSize int `json:"cell_size"`
}

// GeometryFromConfig builds the board geometry for a configuration
func GeometryFromConfig(config *GameConfig) Geometry {
	return Geometry{
		Width:    config.GridWidth,
		Height:   config.GridHeight,
		CellSize: config.CellSize,
	}
}

// Contains reports whether c lies inside [0,Width) x [0,Height)
func (g Geometry) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// CellCount returns the number of cells on the board
func (g Geometry) CellCount() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounded toward the origin
func (g Geometry) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// ToPixel returns the top-left render coordinate of a cell
func (g Geometry) ToPixel(c Cell) (x, y int) {
	return c.X * g.CellSize, c.Y * g.CellSize
}

// FromPixel returns the cell containing the render coordinate (x, y).
// Coordinates left of or above the board map to negative cells.
func (g Geometry) FromPixel(x, y int) Cell {
	if g.CellSize <= 0 {
		return Cell{X: x, Y: y}
	}
	return Cell{X: floorDiv(x, g.CellSize), Y: floorDiv(y, g.CellSize)}
}

// PixelSize returns the whole board size in render units
func (g Geometry) PixelSize() (w, h int) {
	return g.Width * g.CellSize, g.Height * g.CellSize
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
