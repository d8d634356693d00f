package terminal

import (
	"context"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/wricardo/gridsnake/game/engine"
)

// Poster runs functions on the goroutine that owns the engine
type Poster interface {
	Post(fn func()) bool
}

// Game is the part of the engine driven by key presses
type Game interface {
	ChangeDirection(direction engine.Direction) bool
	IsRunning() bool
}

// Input translates terminal key events into game actions. Every engine call
// is posted to the loop; Input itself never touches the engine.
type Input struct {
	screen  tcell.Screen
	poster  Poster
	game    Game
	restart func()
	quit    func()
}

// NewInput creates an input handler. restart runs on the loop goroutine after
// a game has ended; quit runs on the polling goroutine.
func NewInput(screen tcell.Screen, poster Poster, game Game, restart, quit func()) *Input {
	return &Input{
		screen:  screen,
		poster:  poster,
		game:    game,
		restart: restart,
		quit:    quit,
	}
}

// KeyDirection maps arrow keys, WASD and hjkl to directions
func KeyDirection(ev *tcell.EventKey) (engine.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.Up, true
	case tcell.KeyDown:
		return engine.Down, true
	case tcell.KeyLeft:
		return engine.Left, true
	case tcell.KeyRight:
		return engine.Right, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w', 'k':
			return engine.Up, true
		case 's', 'j':
			return engine.Down, true
		case 'a', 'h':
			return engine.Left, true
		case 'd', 'l':
			return engine.Right, true
		}
	}
	return "", false
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == 'q'
}

// HandleKey processes one key event and reports whether polling should
// continue
func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	if isQuit(ev) {
		if in.quit != nil {
			in.quit()
		}
		return false
	}

	if direction, ok := KeyDirection(ev); ok {
		in.poster.Post(func() {
			in.game.ChangeDirection(direction)
		})
		return true
	}

	if ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == 'r' && in.restart != nil {
		in.poster.Post(func() {
			if !in.game.IsRunning() {
				in.restart()
			}
		})
	}
	return true
}

// Poll reads screen events until a quit key is pressed, ctx is cancelled or
// the screen is finalized. PollEvent blocks, so cancelling ctx only takes
// effect on the next event; call Fini on the screen to unblock it.
func (in *Input) Poll(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev := in.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !in.HandleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			in.screen.Sync()
		}
	}
}
