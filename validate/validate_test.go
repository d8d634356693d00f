package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/gridsnake/game/engine"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func hasError(result ValidationResult, substr string) bool {
	for _, err := range result.Errors {
		if contains(err, substr) {
			return true
		}
	}
	return false
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Test Config",
		"description": "Test configuration",
		"grid_width": 12,
		"grid_height": 8,
		"cell_size": 20,
		"tick_interval_ms": 100,
		"initial_length": 3,
		"initial_direction": "right",
		"start": {"x": 4, "y": 4}
	}`
	path := writeTempConfig(t, validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
	if !hasError(result, "✓ Max score: 93") {
		t.Errorf("Expected max score info, got %v", result.Errors)
	}
	if !hasError(result, "tail (2,4)") {
		t.Errorf("Expected placement info, got %v", result.Errors)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}
	if !hasError(result, "Invalid JSON") {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasError(result, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_AccumulatesErrors(t *testing.T) {
	config := `{
		"name": "",
		"grid_width": 1,
		"grid_height": 500,
		"cell_size": 0,
		"tick_interval_ms": 1,
		"initial_length": 0,
		"initial_direction": "sideways"
	}`
	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Fatal("Expected invalid config")
	}

	for _, expected := range []string{
		"name is required",
		"grid_width",
		"grid_height",
		"cell_size",
		"tick_interval_ms",
		"initial_direction",
		"initial_length",
	} {
		if !hasError(result, expected) {
			t.Errorf("Expected error mentioning %q, got %v", expected, result.Errors)
		}
	}
}

func TestValidateConfig_SnakeFillsBoard(t *testing.T) {
	config := `{
		"name": "Full",
		"grid_width": 2,
		"grid_height": 2,
		"cell_size": 20,
		"tick_interval_ms": 100,
		"initial_length": 4,
		"initial_direction": "up"
	}`
	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config")
	}
	if !hasError(result, "leaves no room for food") {
		t.Errorf("Expected room error, got %v", result.Errors)
	}
}

func TestValidatePlacement(t *testing.T) {
	base := Config{GridWidth: 10, GridHeight: 10, CellSize: 20, InitialLength: 4}

	tests := []struct {
		name      string
		start     *engine.Cell
		direction engine.Direction
		valid     bool
		message   string
	}{
		{"centered", nil, engine.Down, true, "head (5,5), tail (5,2)"},
		{"tail hits left wall", &engine.Cell{X: 2, Y: 5}, engine.Right, false, "segment 4"},
		{"tail fits exactly", &engine.Cell{X: 3, Y: 5}, engine.Right, true, "tail (0,5)"},
		{"start off board", &engine.Cell{X: 10, Y: 0}, engine.Left, false, "off the 10x10 board"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := base
			config.Start = tt.start

			result := validatePlacement(config, tt.direction)
			if result.Valid != tt.valid {
				t.Errorf("Expected valid=%v, got %v (%v)", tt.valid, result.Valid, result.Errors)
			}
			if !hasError(result, tt.message) {
				t.Errorf("Expected message %q, got %v", tt.message, result.Errors)
			}
		})
	}
}

func TestValidateConfig_BundledPresets(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "configs", "*.json"))
	if err != nil || len(files) == 0 {
		t.Skip("Skipping test - configs directory not found")
	}

	for _, file := range files {
		result := validateConfig(file)
		if !result.Valid {
			t.Errorf("Expected %s to be valid, got %v", result.File, result.Errors)
		}
	}
}

// Helper function to check if a string contains a substring
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
