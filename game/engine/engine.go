package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrInvalidState is returned when a snapshot cannot be restored
var ErrInvalidState = errors.New("invalid game state")

// Engine provides the main interface for game operations
type Engine interface {
	// Tick driving
	Start()
	Step()
	ChangeDirection(direction Direction) bool

	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsRunning() bool
	IsGameOver() bool
	IsBoardFull() bool
	GetScore() int
	GetDirection() Direction

	// Configuration
	GetConfig() *GameConfig
	Geometry() Geometry
}

// Option customizes a GameEngine
type Option func(*GameEngine)

// WithRand sets the random source used for food placement
func WithRand(rng *rand.Rand) Option {
	return func(e *GameEngine) {
		e.rng = rng
	}
}

// WithSeed seeds food placement deterministically
func WithSeed(seed uint64) Option {
	return func(e *GameEngine) {
		e.rng = rand.New(rand.NewPCG(seed, 0))
	}
}

// GameEngine implements the Engine interface. It is not safe for concurrent
// use; every call must come from the goroutine that drives the clock.
type GameEngine struct {
	config   *GameConfig
	geometry Geometry
	interval time.Duration
	render   RenderPort
	clock    Clock
	rng      *rand.Rand

	snake *Snake
	food  *Food

	// direction is read by the next Step; heading is what the last Step used
	direction Direction
	heading   Direction

	score      int
	phase      Phase
	steps      int
	totalSteps int
	message    string
}

// NewEngine creates a new game engine with the provided configuration.
// A nil render discards drawing; a nil clock leaves ticking to the caller.
func NewEngine(config *GameConfig, render RenderPort, clock Clock, opts ...Option) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if render == nil {
		render = NopRenderer{}
	}

	e := &GameEngine{
		config:   config,
		geometry: GeometryFromConfig(config),
		interval: TickInterval(config),
		render:   render,
		clock:    clock,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	if err := e.init(); err != nil {
		return nil, err
	}
	return e, nil
}

// init places the starting snake and the first food item
func (e *GameEngine) init() error {
	e.snake = NewSnakeLine(StartCell(e.config), e.config.InitialLength, e.config.InitialDirection)
	e.food = &Food{}
	if err := e.food.Respawn(e.snake.Occupies, e.geometry, e.rng); err != nil {
		return fmt.Errorf("failed to place initial food: %w", err)
	}
	e.direction = e.config.InitialDirection
	e.heading = e.config.InitialDirection
	e.score = 0
	e.steps = 0
	e.phase = Running
	e.message = "Eat the food, avoid the walls and your own tail!"
	return nil
}

// Start draws the current frame and requests the first tick
func (e *GameEngine) Start() {
	if e.phase != Running {
		return
	}
	e.renderFrame()
	e.scheduleNext()
}

// Step advances the simulation by one tick. The order is fixed: move the
// head, then eat or drop the tail, then check walls and finally the body.
// Calls after the game has ended are ignored.
func (e *GameEngine) Step() {
	if e.phase != Running {
		return
	}

	head := e.snake.Advance(e.direction)
	e.heading = e.direction
	e.steps++
	e.totalSteps++

	boardFull := false
	if head == e.food.Cell() {
		e.score++
		if err := e.food.Respawn(e.snake.Occupies, e.geometry, e.rng); err != nil {
			boardFull = true
		}
	} else {
		e.snake.ShrinkTail()
	}

	if !e.geometry.Contains(head) {
		e.finish(GameOver, fmt.Sprintf("COLLISION: Hit the wall at %s moving %s! Game Over!", head, e.heading))
		return
	}
	if e.snake.OccupiesExcludingHead(head) {
		e.finish(GameOver, fmt.Sprintf("COLLISION: Ran into itself at %s! Game Over!", head))
		return
	}
	if boardFull {
		e.finish(BoardFull, fmt.Sprintf("Board full! Final score: %d", e.score))
		return
	}

	e.message = fmt.Sprintf("Score: %d", e.score)
	e.renderFrame()
	e.scheduleNext()
}

// ChangeDirection sets the direction used by the next Step. Reversals of the
// heading moved in the last Step are rejected, so several key presses within
// one tick can never turn the snake back onto its neck. It reports whether
// the request was accepted.
func (e *GameEngine) ChangeDirection(direction Direction) bool {
	if e.phase != Running {
		return false
	}
	next := RequestDirection(direction, e.heading)
	if next != direction {
		return false
	}
	e.direction = next
	return true
}

func (e *GameEngine) finish(phase Phase, message string) {
	e.phase = phase
	e.message = message
	e.render.Clear()
	if phase == BoardFull {
		e.render.ShowBoardFull()
		return
	}
	e.render.ShowGameOver()
}

func (e *GameEngine) renderFrame() {
	e.render.Clear()
	e.render.DrawSnake(e.snake.Cells())
	e.render.DrawFood(e.food.Cell())
	e.render.UpdateScore(e.score)
}

func (e *GameEngine) scheduleNext() {
	if e.clock == nil {
		return
	}
	e.clock.ScheduleNext(e.Step, e.interval)
}

// GetState returns a snapshot of the current game state
func (e *GameEngine) GetState() *GameState {
	return &GameState{
		Snake:      e.snake.Cells(),
		Food:       e.food.Cell(),
		Direction:  e.direction,
		Heading:    e.heading,
		Score:      e.score,
		Phase:      e.phase,
		Steps:      e.steps,
		TotalSteps: e.totalSteps,
		Message:    e.message,
		ConfigName: e.config.Name,
	}
}

// SetState restores a snapshot. Snake and food must lie on the board and the
// food must not overlap the snake while the game is running.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("%w: state cannot be nil", ErrInvalidState)
	}
	if len(state.Snake) == 0 {
		return fmt.Errorf("%w: snake must have at least one segment", ErrInvalidState)
	}
	if !state.Direction.Valid() {
		return fmt.Errorf("%w: invalid direction %q", ErrInvalidState, state.Direction)
	}
	if state.Heading != "" && !state.Heading.Valid() {
		return fmt.Errorf("%w: invalid heading %q", ErrInvalidState, state.Heading)
	}
	if state.Score < 0 {
		return fmt.Errorf("%w: score cannot be negative", ErrInvalidState)
	}

	phase := state.Phase
	switch phase {
	case "":
		phase = Running
	case Running, GameOver, BoardFull:
	default:
		return fmt.Errorf("%w: unknown phase %q", ErrInvalidState, state.Phase)
	}

	if phase == Running {
		for _, c := range state.Snake {
			if !e.geometry.Contains(c) {
				return fmt.Errorf("%w: snake segment %s is off the board", ErrInvalidState, c)
			}
		}
		if !e.geometry.Contains(state.Food) {
			return fmt.Errorf("%w: food %s is off the board", ErrInvalidState, state.Food)
		}
	}

	snake := NewSnake(state.Snake)
	if phase == Running && snake.Occupies(state.Food) {
		return fmt.Errorf("%w: food %s overlaps the snake", ErrInvalidState, state.Food)
	}

	heading := state.Heading
	if heading == "" {
		heading = state.Direction
	}

	e.snake = snake
	e.food = NewFood(state.Food)
	e.direction = state.Direction
	e.heading = heading
	e.score = state.Score
	e.phase = phase
	e.steps = state.Steps
	e.totalSteps = state.TotalSteps
	e.message = state.Message
	return nil
}

// Reset starts a fresh game from the configuration. The cumulative step
// count survives; call Start afterwards to resume ticking.
func (e *GameEngine) Reset() *GameState {
	total := e.totalSteps
	if err := e.init(); err != nil {
		// Unreachable for a validated config: the start line leaves free cells.
		e.phase = BoardFull
		e.message = err.Error()
	}
	e.totalSteps = total
	return e.GetState()
}

// IsRunning returns whether the game still accepts ticks
func (e *GameEngine) IsRunning() bool {
	return e.phase == Running
}

// IsGameOver returns whether the snake has collided
func (e *GameEngine) IsGameOver() bool {
	return e.phase == GameOver
}

// IsBoardFull returns whether the snake filled the whole board
func (e *GameEngine) IsBoardFull() bool {
	return e.phase == BoardFull
}

// GetPhase returns the current lifecycle phase
func (e *GameEngine) GetPhase() Phase {
	return e.phase
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.score
}

// GetDirection returns the direction the next Step will use
func (e *GameEngine) GetDirection() Direction {
	return e.direction
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// Geometry returns the board geometry
func (e *GameEngine) Geometry() Geometry {
	return e.geometry
}

// TickInterval returns the delay between steps
func (e *GameEngine) TickInterval() time.Duration {
	return e.interval
}
