package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wricardo/gridsnake/game/engine"
	"github.com/wricardo/gridsnake/game/service"
)

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs       map[string]*engine.GameConfig
	defaultConfig *engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	config := createTestConfig()
	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"test": config,
		},
		defaultConfig: config,
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, errors.New("configuration not found")
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	var configs []*service.ConfigInfo
	for name, config := range m.configs {
		configs = append(configs, &service.ConfigInfo{
			Filename:   name + ".json",
			ConfigID:   name,
			Name:       config.Name,
			GridWidth:  config.GridWidth,
			GridHeight: config.GridHeight,
		})
	}
	return configs, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.defaultConfig
}

// countingRenderer counts the terminal screens it was asked to show
type countingRenderer struct {
	engine.NopRenderer
	scores    []int
	gameOvers int
	boardFull int
}

func (r *countingRenderer) UpdateScore(score int) { r.scores = append(r.scores, score) }
func (r *countingRenderer) ShowGameOver() { r.gameOvers++ }
func (r *countingRenderer) ShowBoardFull() { r.boardFull++ }

func createTestConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:             "Test",
		GridWidth:        10,
		GridHeight:       10,
		CellSize:         20,
		TickIntervalMs:   100,
		InitialLength:    3,
		InitialDirection: engine.Right,
		Start:            &engine.Cell{X: 5, Y: 5},
	}
}

func TestGameService_NewSession(t *testing.T) {
	svc := service.NewGameService(NewMockConfigManager())
	ctx := context.Background()

	session, err := svc.NewSession(ctx, "test", nil, nil, 42)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if session.ID == "" {
		t.Error("Expected session ID to be generated")
	}
	if session.ConfigID != "test" {
		t.Errorf("Expected config ID 'test', got '%s'", session.ConfigID)
	}
	if session.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", session.Seed)
	}
	if session.Games != 1 {
		t.Errorf("Expected 1 game, got %d", session.Games)
	}
	if !session.Engine.IsRunning() {
		t.Error("Expected engine to be running")
	}
	if ev := session.LastEvent(); ev == nil || ev.Type != service.EventStart {
		t.Errorf("Expected start event, got %+v", ev)
	}

	other, err := svc.NewSession(ctx, "test.json", nil, nil, 42)
	if err != nil {
		t.Fatalf("Failed to create second session: %v", err)
	}
	if other.ID == session.ID {
		t.Error("Expected distinct session IDs")
	}
	if other.Engine.GetState().Food != session.Engine.GetState().Food {
		t.Error("Expected identical seeds to place identical food")
	}
}

func TestGameService_NewSession_Default(t *testing.T) {
	svc := service.NewGameService(NewMockConfigManager())

	session, err := svc.NewSession(context.Background(), "", nil, nil, 0)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if session.Config.Name != "Test" {
		t.Errorf("Expected default config, got '%s'", session.Config.Name)
	}
	if session.Seed == 0 {
		t.Error("Expected a time-based seed")
	}
}

func TestGameService_NewSession_UnknownConfig(t *testing.T) {
	svc := service.NewGameService(NewMockConfigManager())

	_, err := svc.NewSession(context.Background(), "missing", nil, nil, 1)
	if err == nil {
		t.Fatal("Expected error for unknown config")
	}
	if !strings.Contains(err.Error(), "available configs: test") {
		t.Errorf("Expected available configs in error, got %v", err)
	}
}

func TestGameService_NewSession_CancelledContext(t *testing.T) {
	svc := service.NewGameService(NewMockConfigManager())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.NewSession(ctx, "test", nil, nil, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestGameService_RecordsEvents(t *testing.T) {
	svc := service.NewGameService(NewMockConfigManager())
	render := &countingRenderer{}

	session, err := svc.NewSession(context.Background(), "test", render, nil, 7)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Put food directly in front of the head
	state := session.Engine.GetState()
	state.Food = engine.Cell{X: 6, Y: 5}
	if err := session.Engine.SetState(state); err != nil {
		t.Fatalf("Failed to set state: %v", err)
	}

	session.Engine.Step()
	if session.Engine.GetScore() != 1 {
		t.Fatalf("Expected score 1, got %d", session.Engine.GetScore())
	}
	if ev := session.LastEvent(); ev == nil || ev.Type != service.EventFoodEaten || ev.Score != 1 {
		t.Errorf("Expected food_eaten event with score 1, got %+v", ev)
	}

	// Drive into the right wall
	for i := 0; i < 10 && session.Engine.IsRunning(); i++ {
		session.Engine.Step()
	}
	if !session.Engine.IsGameOver() {
		t.Fatal("Expected game over")
	}
	if render.gameOvers != 1 {
		t.Errorf("Expected 1 game over screen, got %d", render.gameOvers)
	}
	ev := session.LastEvent()
	if ev == nil || ev.Type != service.EventGameOver {
		t.Fatalf("Expected game_over event, got %+v", ev)
	}
	if !strings.Contains(ev.Message, "Hit the wall") {
		t.Errorf("Expected wall collision message, got '%s'", ev.Message)
	}
}

func TestGameService_Restart(t *testing.T) {
	svc := service.NewGameService(NewMockConfigManager())
	ctx := context.Background()

	session, err := svc.NewSession(ctx, "test", nil, nil, 3)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	for i := 0; i < 10 && session.Engine.IsRunning(); i++ {
		session.Engine.Step()
	}
	if session.Engine.IsRunning() {
		t.Fatal("Expected the game to end")
	}
	steps := session.Engine.GetState().TotalSteps

	state, err := svc.Restart(ctx, session)
	if err != nil {
		t.Fatalf("Failed to restart: %v", err)
	}
	if state.Phase != engine.Running {
		t.Errorf("Expected running phase, got %s", state.Phase)
	}
	if state.Score != 0 || state.Length() != 3 {
		t.Errorf("Expected fresh snake, got score %d length %d", state.Score, state.Length())
	}
	if state.TotalSteps != steps {
		t.Errorf("Expected total steps %d to survive restart, got %d", steps, state.TotalSteps)
	}
	if session.Games != 2 {
		t.Errorf("Expected 2 games, got %d", session.Games)
	}
	if ev := session.LastEvent(); ev == nil || ev.Type != service.EventReset {
		t.Errorf("Expected reset event, got %+v", ev)
	}

	if _, err := svc.Restart(ctx, nil); err == nil {
		t.Error("Expected error for nil session")
	}
}

func TestGameService_Summarize(t *testing.T) {
	svc := service.NewGameService(NewMockConfigManager())

	session, err := svc.NewSession(context.Background(), "test", nil, nil, 5)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	session.Engine.Step()

	summary := svc.Summarize(session)
	if summary == nil {
		t.Fatal("Expected summary")
	}
	if summary.SessionID != session.ID {
		t.Errorf("Expected session ID %s, got %s", session.ID, summary.SessionID)
	}
	if summary.MaxScore != 97 {
		t.Errorf("Expected max score 97, got %d", summary.MaxScore)
	}
	if summary.Steps != 1 {
		t.Errorf("Expected 1 step, got %d", summary.Steps)
	}
	if summary.Games != 1 {
		t.Errorf("Expected 1 game, got %d", summary.Games)
	}

	if svc.Summarize(nil) != nil {
		t.Error("Expected nil summary for nil session")
	}
}

func TestGameService_ListConfigs(t *testing.T) {
	svc := service.NewGameService(NewMockConfigManager())
	ctx := context.Background()

	configs, err := svc.ListConfigs(ctx)
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configs) != 1 || configs[0].ConfigID != "test" {
		t.Errorf("Expected single 'test' config, got %+v", configs)
	}

	config, err := svc.LoadConfig(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.GridWidth != 10 {
		t.Errorf("Expected grid width 10, got %d", config.GridWidth)
	}
}
