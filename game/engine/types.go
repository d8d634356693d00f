package engine

import "fmt"

// Direction is a heading on the grid
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Phase is the lifecycle stage of a game
type Phase string

const (
	Running   Phase = "running"
	GameOver  Phase = "game_over"
	BoardFull Phase = "board_full"
)

const (
	// Validation constants
	MinGridSize      = 2
	MaxGridSize      = 200
	MinTickInterval  = 10
	MaxTickInterval  = 5000
	DefaultCellSize  = 20
	DefaultTickMs    = 100
	DefaultBodyParts = 3
)

// Directions lists every direction in a stable order
var Directions = []Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four directions
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the reverse heading. Unknown directions map to themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Delta returns the one-cell offset for the direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection converts user input to a Direction
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("invalid direction: %q", s)
	}
	return d, nil
}

// Cell is a column/row coordinate on the grid
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Offset returns the neighbouring cell one step in direction d
func (c Cell) Offset(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	GridWidth        int       `json:"grid_width"`
	GridHeight       int       `json:"grid_height"`
	CellSize         int       `json:"cell_size"`
	TickIntervalMs   int       `json:"tick_interval_ms"`
	InitialLength    int       `json:"initial_length"`
	InitialDirection Direction `json:"initial_direction"`

	// Start is the initial head cell; nil means the board center.
	Start *Cell `json:"start,omitempty"`
}

// GameState is a snapshot of a running or finished game
type GameState struct {
	Snake      []Cell    `json:"snake"`
	Food       Cell      `json:"food"`
	Direction  Direction `json:"direction"`
	Heading    Direction `json:"heading"`
	Score      int       `json:"score"`
	Phase      Phase     `json:"phase"`
	Steps      int       `json:"steps"`
	TotalSteps int       `json:"total_steps"`
	Message    string    `json:"message"`
	ConfigName string    `json:"config_name"`
}

// Length returns the snake length in the snapshot
func (gs *GameState) Length() int {
	return len(gs.Snake)
}

// Head returns the snapshot's head cell
func (gs *GameState) Head() Cell {
	if len(gs.Snake) == 0 {
		return Cell{}
	}
	return gs.Snake[0]
}
