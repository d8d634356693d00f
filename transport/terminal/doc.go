// Package terminal is the tcell front end of the game.
//
// Renderer implements engine.RenderPort on a tcell.Screen, Input turns key
// presses into engine calls posted to the game loop, and Theme holds the
// colors, glyphs and texts, optionally loaded from an ini file:
//
//	[colors]
//	snake = #00FF00
//	food = red
//
//	[glyphs]
//	food = *
//
//	[messages]
//	game_over = GAME OVER - Thanks for playing!
package terminal
