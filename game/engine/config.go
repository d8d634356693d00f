package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	// Validate board
	if config.GridWidth < MinGridSize || config.GridWidth > MaxGridSize {
		return fmt.Errorf("config validation: grid_width must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.GridWidth)
	}
	if config.GridHeight < MinGridSize || config.GridHeight > MaxGridSize {
		return fmt.Errorf("config validation: grid_height must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.GridHeight)
	}
	if config.CellSize <= 0 {
		return fmt.Errorf("config validation: cell_size must be positive, got %d", config.CellSize)
	}

	// Validate timing
	if config.TickIntervalMs < MinTickInterval || config.TickIntervalMs > MaxTickInterval {
		return fmt.Errorf("config validation: tick_interval_ms must be between %d and %d, got %d", MinTickInterval, MaxTickInterval, config.TickIntervalMs)
	}

	// Validate snake
	if !config.InitialDirection.Valid() {
		return fmt.Errorf("config validation: initial_direction must be one of up, down, left, right, got %q", config.InitialDirection)
	}
	cells := config.GridWidth * config.GridHeight
	if config.InitialLength < 1 || config.InitialLength >= cells {
		return fmt.Errorf("config validation: initial_length must be between 1 and %d, got %d", cells-1, config.InitialLength)
	}

	// The whole starting line must fit on the board
	geometry := GeometryFromConfig(config)
	head := StartCell(config)
	for _, c := range NewSnakeLine(head, config.InitialLength, config.InitialDirection).Cells() {
		if !geometry.Contains(c) {
			return fmt.Errorf("config validation: initial snake from %s heading %s leaves the board at %s", head, config.InitialDirection, c)
		}
	}

	return nil
}

// StartCell returns the configured head cell or the board center
func StartCell(config *GameConfig) Cell {
	if config.Start != nil {
		return *config.Start
	}
	return GeometryFromConfig(config).Center()
}

// TickInterval returns the configured tick interval as a duration
func TickInterval(config *GameConfig) time.Duration {
	return time.Duration(config.TickIntervalMs) * time.Millisecond
}

// DefaultConfig returns the classic board: 600x400 pixels of 20px cells,
// a 100ms tick and a three segment snake heading down.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:             "default",
		Description:      "Classic 30x20 board",
		GridWidth:        600 / DefaultCellSize,
		GridHeight:       400 / DefaultCellSize,
		CellSize:         DefaultCellSize,
		TickIntervalMs:   DefaultTickMs,
		InitialLength:    DefaultBodyParts,
		InitialDirection: Down,
	}
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
	}

	// Validate the loaded configuration
	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
