package service

import (
	"time"

	"github.com/wricardo/gridsnake/game/engine"
)

// Event types recorded on a session
const (
	EventStart     = "start"
	EventFoodEaten = "food_eaten"
	EventGameOver  = "game_over"
	EventBoardFull = "board_full"
	EventReset     = "reset"
)

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename       string `json:"filename"`
	ConfigID       string `json:"config_id"` // The identifier to use for session creation
	Name           string `json:"name"`      // Display name
	Description    string `json:"description"`
	GridWidth      int    `json:"grid_width"`
	GridHeight     int    `json:"grid_height"`
	TickIntervalMs int    `json:"tick_interval_ms"`
	InitialLength  int    `json:"initial_length"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
	Score     int         `json:"score"`
	Head      engine.Cell `json:"head"`
}

// Summary describes the outcome of the current game of a session
type Summary struct {
	SessionID  string        `json:"session_id"`
	ConfigID   string        `json:"config_id"`
	Phase      engine.Phase  `json:"phase"`
	Score      int           `json:"score"`
	MaxScore   int           `json:"max_score"`
	Length     int           `json:"length"`
	Steps      int           `json:"steps"`
	TotalSteps int           `json:"total_steps"`
	Games      int           `json:"games"`
	Duration   time.Duration `json:"duration"`
	Message    string        `json:"message"`
}
