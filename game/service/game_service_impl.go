package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wricardo/gridsnake/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	configManager ConfigManager
}

// NewGameService creates a new game service instance
func NewGameService(configManager ConfigManager) GameService {
	return &gameServiceImpl{
		configManager: configManager,
	}
}

// NewSession builds an engine for the named preset and wires it to the given
// ports. An empty name selects the default preset and a zero seed picks one
// from the current time. The session is created but not started.
func (s *gameServiceImpl) NewSession(ctx context.Context, configName string, render engine.RenderPort, clock engine.Clock, seed uint64) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	configID := strings.TrimSuffix(configName, ".json")
	var gameConfig *engine.GameConfig
	if configID == "" {
		gameConfig = s.configManager.GetDefault()
		if gameConfig == nil {
			return nil, fmt.Errorf("no default configuration available")
		}
		configID = gameConfig.Name
	} else {
		var err error
		gameConfig, err = s.configManager.LoadConfig(configID)
		if err != nil {
			return nil, s.unknownConfigError(configID, err)
		}
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if render == nil {
		render = engine.NopRenderer{}
	}

	session := &Session{
		ID:        uuid.NewString(),
		ConfigID:  configID,
		Config:    gameConfig,
		Seed:      seed,
		CreatedAt: time.Now(),
	}

	observed := &observedRenderer{RenderPort: render, session: session}
	eng, err := engine.NewEngine(gameConfig, observed, clock, engine.WithSeed(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	session.Engine = eng
	session.Games = 1
	session.StartedAt = time.Now()
	session.record(EventStart, fmt.Sprintf("Session started with config %q", configID))

	log.Printf("Session %s created (config=%s, %dx%d, tick=%v, seed=%d)",
		session.ID, configID, gameConfig.GridWidth, gameConfig.GridHeight, eng.TickInterval(), seed)
	return session, nil
}

// unknownConfigError lists the presets the player could have asked for
func (s *gameServiceImpl) unknownConfigError(configID string, cause error) error {
	configs, err := s.configManager.ListConfigs()
	if err != nil || len(configs) == 0 {
		return fmt.Errorf("config '%s' not found: %w", configID, cause)
	}
	ids := make([]string, 0, len(configs))
	for _, c := range configs {
		ids = append(ids, c.ConfigID)
	}
	return fmt.Errorf("config '%s' not found: %w (available configs: %s)", configID, cause, strings.Join(ids, ", "))
}

// Restart resets the session's engine to a fresh game and starts ticking again
func (s *gameServiceImpl) Restart(ctx context.Context, session *Session) (*engine.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if session == nil || session.Engine == nil {
		return nil, fmt.Errorf("session is not initialized")
	}

	state := session.Engine.Reset()
	session.Games++
	session.StartedAt = time.Now()
	session.record(EventReset, fmt.Sprintf("Game %d started", session.Games))
	session.Engine.Start()

	log.Printf("Session %s restarted (game %d)", session.ID, session.Games)
	return state, nil
}

// Summarize reports the outcome of the session's current game
func (s *gameServiceImpl) Summarize(session *Session) *Summary {
	if session == nil || session.Engine == nil {
		return nil
	}
	state := session.Engine.GetState()
	return &Summary{
		SessionID:  session.ID,
		ConfigID:   session.ConfigID,
		Phase:      state.Phase,
		Score:      state.Score,
		MaxScore:   engine.MaxScore(session.Config),
		Length:     state.Length(),
		Steps:      state.Steps,
		TotalSteps: state.TotalSteps,
		Games:      session.Games,
		Duration:   time.Since(session.StartedAt),
		Message:    state.Message,
	}
}

// ListConfigs returns all available configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configManager.ListConfigs()
}

// LoadConfig loads a configuration by name
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configManager.LoadConfig(configName)
}

// observedRenderer forwards to the real render port and records session
// events on the way
type observedRenderer struct {
	engine.RenderPort
	session   *Session
	lastScore int
}

func (r *observedRenderer) UpdateScore(score int) {
	if score < r.lastScore {
		r.lastScore = 0
	}
	if score > r.lastScore {
		r.lastScore = score
		r.session.record(EventFoodEaten, fmt.Sprintf("Food eaten, score %d", score))
	}
	r.RenderPort.UpdateScore(score)
}

func (r *observedRenderer) ShowGameOver() {
	r.lastScore = 0
	r.session.record(EventGameOver, r.session.Engine.GetState().Message)
	log.Printf("Session %s game over: %s", r.session.ID, r.session.Engine.GetState().Message)
	r.RenderPort.ShowGameOver()
}

func (r *observedRenderer) ShowBoardFull() {
	r.lastScore = 0
	r.session.record(EventBoardFull, r.session.Engine.GetState().Message)
	log.Printf("Session %s filled the board: %s", r.session.ID, r.session.Engine.GetState().Message)
	r.RenderPort.ShowBoardFull()
}
