// Command validate checks the board preset JSON files in a directory
// (default "configs", or the first argument). It checks:
//   - JSON structure and required fields
//   - Board dimensions, cell size and tick interval ranges
//   - Initial direction and snake length
//   - That the starting snake fits on the board and leaves room for food
//
// Every problem in a file is reported, not just the first one.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/wricardo/gridsnake/game/engine"
)

// Config mirrors the JSON schema for a board preset.
type Config struct {
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	GridWidth        int          `json:"grid_width"`
	GridHeight       int          `json:"grid_height"`
	CellSize         int          `json:"cell_size"`
	TickIntervalMs   int          `json:"tick_interval_ms"`
	InitialLength    int          `json:"initial_length"`
	InitialDirection string       `json:"initial_direction"`
	Start            *engine.Cell `json:"start"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single preset file
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if strings.TrimSpace(config.Name) == "" {
		result.fail("name is required")
	}

	gridOK := true
	if config.GridWidth < engine.MinGridSize || config.GridWidth > engine.MaxGridSize {
		result.fail("grid_width must be between %d and %d, got %d", engine.MinGridSize, engine.MaxGridSize, config.GridWidth)
		gridOK = false
	}
	if config.GridHeight < engine.MinGridSize || config.GridHeight > engine.MaxGridSize {
		result.fail("grid_height must be between %d and %d, got %d", engine.MinGridSize, engine.MaxGridSize, config.GridHeight)
		gridOK = false
	}
	if config.CellSize <= 0 {
		result.fail("cell_size must be positive, got %d", config.CellSize)
	}
	if config.TickIntervalMs < engine.MinTickInterval || config.TickIntervalMs > engine.MaxTickInterval {
		result.fail("tick_interval_ms must be between %d and %d, got %d", engine.MinTickInterval, engine.MaxTickInterval, config.TickIntervalMs)
	}

	direction, err := engine.ParseDirection(config.InitialDirection)
	if err != nil {
		result.fail("initial_direction: %v", err)
	}

	cells := config.GridWidth * config.GridHeight
	if config.InitialLength < 1 {
		result.fail("initial_length must be at least 1, got %d", config.InitialLength)
	} else if gridOK && config.InitialLength > cells-1 {
		result.fail("initial_length %d leaves no room for food on a %d cell board", config.InitialLength, cells)
	}

	// Placement checks need a sane board and snake
	if result.Valid {
		placement := validatePlacement(config, direction)
		if !placement.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, placement.Errors...)
	}

	// Add informational data
	if result.Valid {
		geometry := engine.Geometry{Width: config.GridWidth, Height: config.GridHeight, CellSize: config.CellSize}
		w, h := geometry.PixelSize()
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d cells (%dx%d px)", config.GridWidth, config.GridHeight, w, h))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Tick: %dms", config.TickIntervalMs))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Snake: length %d heading %s", config.InitialLength, direction))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Max score: %d", cells-config.InitialLength))
	}

	return result
}

// validatePlacement ensures every cell of the starting snake lies on the
// board. The body trails behind the head, opposite to the initial direction.
func validatePlacement(config Config, direction engine.Direction) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	geometry := engine.Geometry{Width: config.GridWidth, Height: config.GridHeight, CellSize: config.CellSize}
	head := geometry.Center()
	if config.Start != nil {
		head = *config.Start
	}

	if !geometry.Contains(head) {
		result.fail("start %s is off the %dx%d board", head, config.GridWidth, config.GridHeight)
		return result
	}

	cell := head
	for i := 1; i < config.InitialLength; i++ {
		cell = cell.Offset(direction.Opposite())
		if !geometry.Contains(cell) {
			result.fail("Placement failure: segment %d at %s is off the board", i+1, cell)
			return result
		}
	}

	result.Errors = append(result.Errors, fmt.Sprintf("✓ Placement: head %s, tail %s", head, cell))
	return result
}

// main scans the preset directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		color.Red("Error finding config files: %v", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		color.Yellow("No config files found in %s", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			color.Green("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			color.Red("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		color.Green("✅ All configurations are valid!")
	} else {
		color.Red("❌ Some configurations have errors")
		os.Exit(1)
	}
}
