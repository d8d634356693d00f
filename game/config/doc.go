// Package config provides configuration management for the snake game.
//
// The config package handles:
//   - Loading board presets from JSON files
//   - Configuration validation via the engine rules
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Presets are stored as JSON files in the configs directory. Each preset
// defines the board size in cells, the render cell size, the tick interval
// and the starting snake (length, direction and optional head cell).
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("small")
//
//	// Get default configuration (classic.json, else first preset, else built-in)
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
package config
