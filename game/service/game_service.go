package service

import (
	"context"
	"time"

	"github.com/wricardo/gridsnake/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Sessions
	NewSession(ctx context.Context, configName string, render engine.RenderPort, clock engine.Clock, seed uint64) (*Session, error)
	Restart(ctx context.Context, session *Session) (*engine.GameState, error)
	Summarize(session *Session) *Summary

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
}

// Session is one player's game: an engine bound to its render port and clock.
// It is owned by the goroutine that drives the clock.
type Session struct {
	ID        string
	ConfigID  string
	Engine    *engine.GameEngine
	Config    *engine.GameConfig
	Seed      uint64
	CreatedAt time.Time
	StartedAt time.Time
	Games     int
	Events    []GameEvent
}

// LastEvent returns the most recent event, or nil
func (s *Session) LastEvent() *GameEvent {
	if len(s.Events) == 0 {
		return nil
	}
	return &s.Events[len(s.Events)-1]
}

func (s *Session) record(eventType, message string) {
	ev := GameEvent{
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
	if s.Engine != nil {
		state := s.Engine.GetState()
		ev.Score = state.Score
		ev.Head = state.Head()
	}
	s.Events = append(s.Events, ev)
}
