package terminal

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/wricardo/gridsnake/game/engine"
)

// immediatePoster runs posted functions inline
type immediatePoster struct {
	posted int
}

func (p *immediatePoster) Post(fn func()) bool {
	p.posted++
	fn()
	return true
}

type fakeGame struct {
	running    bool
	directions []engine.Direction
}

func (g *fakeGame) ChangeDirection(d engine.Direction) bool {
	g.directions = append(g.directions, d)
	return true
}

func (g *fakeGame) IsRunning() bool { return g.running }

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key      tcell.Key
		ch       rune
		expected engine.Direction
		ok       bool
	}{
		{tcell.KeyUp, 0, engine.Up, true},
		{tcell.KeyDown, 0, engine.Down, true},
		{tcell.KeyLeft, 0, engine.Left, true},
		{tcell.KeyRight, 0, engine.Right, true},
		{tcell.KeyRune, 'w', engine.Up, true},
		{tcell.KeyRune, 'S', engine.Down, true},
		{tcell.KeyRune, 'h', engine.Left, true},
		{tcell.KeyRune, 'l', engine.Right, true},
		{tcell.KeyRune, 'x', "", false},
		{tcell.KeyEnter, 0, "", false},
	}

	for _, tt := range tests {
		got, ok := KeyDirection(tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone))
		if ok != tt.ok || got != tt.expected {
			t.Errorf("KeyDirection(%v, %q) = (%q, %v), expected (%q, %v)", tt.key, tt.ch, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestInput_HandleKey(t *testing.T) {
	poster := &immediatePoster{}
	game := &fakeGame{running: true}
	restarts, quits := 0, 0
	in := NewInput(nil, poster, game, func() { restarts++ }, func() { quits++ })

	if !in.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Error("Expected polling to continue after a direction key")
	}
	if len(game.directions) != 1 || game.directions[0] != engine.Up {
		t.Errorf("Expected [up], got %v", game.directions)
	}

	// Restart is ignored while the game runs
	in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if restarts != 0 {
		t.Errorf("Expected no restart while running, got %d", restarts)
	}

	game.running = false
	in.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if restarts != 1 {
		t.Errorf("Expected 1 restart after the game ended, got %d", restarts)
	}

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if in.HandleKey(ev) {
			t.Errorf("Expected %v to stop polling", ev.Name())
		}
	}
	if quits != 3 {
		t.Errorf("Expected 3 quits, got %d", quits)
	}
}

func TestInput_Poll(t *testing.T) {
	screen := newTestScreen(t)
	poster := &immediatePoster{}
	game := &fakeGame{running: true}
	quit := false
	in := NewInput(screen, poster, game, nil, func() { quit = true })

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := in.Poll(context.Background()); err != nil {
		t.Fatalf("Poll returned error: %v", err)
	}
	if !quit {
		t.Error("Expected quit callback")
	}
	if len(game.directions) != 2 || game.directions[0] != engine.Left || game.directions[1] != engine.Down {
		t.Errorf("Expected [left down], got %v", game.directions)
	}
}

func TestInput_PollCancelled(t *testing.T) {
	in := NewInput(newTestScreen(t), &immediatePoster{}, &fakeGame{}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := in.Poll(ctx); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
