package engine

import (
	"errors"
	"math/rand/v2"
)

// ErrBoardFull is returned when no free cell is left for food
var ErrBoardFull = errors.New("board full: no free cell for food")

// maxRandomProbes bounds rejection sampling before falling back to a scan
const maxRandomProbes = 64

// Food is the single food item on the board
type Food struct {
	cell Cell
}

// NewFood creates food at a fixed cell
func NewFood(c Cell) *Food {
	return &Food{cell: c}
}

// Cell returns the food position
func (f *Food) Cell() Cell {
	return f.cell
}

// Place moves the food to c without any checks
func (f *Food) Place(c Cell) {
	f.cell = c
}

// Respawn moves the food to a uniformly random cell inside bounds for which
// excluded returns false. It never loops forever: after a bounded number of
// random probes it enumerates the free cells, and returns ErrBoardFull when
// there are none. On error the food cell is unchanged.
func (f *Food) Respawn(excluded func(Cell) bool, bounds Geometry, rng *rand.Rand) error {
	if bounds.CellCount() <= 0 {
		return ErrBoardFull
	}

	for i := 0; i < maxRandomProbes; i++ {
		c := Cell{X: rng.IntN(bounds.Width), Y: rng.IntN(bounds.Height)}
		if !excluded(c) {
			f.cell = c
			return nil
		}
	}

	free := FreeCells(bounds, excluded)
	if len(free) == 0 {
		return ErrBoardFull
	}
	f.cell = free[rng.IntN(len(free))]
	return nil
}
