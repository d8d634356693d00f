// Package engine provides the core rules of the snake game.
//
// The engine package implements the game mechanics including:
//   - Grid geometry and cell/render coordinate conversion
//   - Snake movement, growth and self-collision queries
//   - Random food placement that avoids the snake
//   - Direction changes that reject instant reversals
//   - The tick-driven state machine (running, game over, board full)
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState is a snapshot of a game, while
// GameConfig defines the board and starting snake loaded from JSON files.
//
// Collaborators:
//
// The engine never draws or sleeps. It emits drawing commands through a
// RenderPort and asks a Clock for exactly one future Step after each
// completed Step. Tests drive Step directly with a nil Clock.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultConfig(), renderer, clock)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine.Start()
//	gameEngine.ChangeDirection(engine.Left)
//
// Game Rules:
//
// Each tick the head moves one cell in the current direction. Landing on the
// food grows the snake by one segment and scores a point; otherwise the tail
// follows. Leaving the board or running into the body ends the game. Filling
// every cell of the board ends it too, in the board full phase.
package engine
