package main

import (
	"github.com/wricardo/gridsnake/game/engine"
)

// GreedyStrategy heads for the food by Manhattan distance but refuses moves
// that leave the head in a pocket smaller than the snake.
type GreedyStrategy struct {
	geometry engine.Geometry
}

// NewGreedyStrategy creates a strategy for the given board
func NewGreedyStrategy(geometry engine.Geometry) *GreedyStrategy {
	return &GreedyStrategy{geometry: geometry}
}

// NextMove picks the direction for the next step. When every move is fatal
// it keeps the current heading.
func (s *GreedyStrategy) NextMove(state *engine.GameState) engine.Direction {
	head := state.Head()
	heading := state.Heading
	if heading == "" {
		heading = state.Direction
	}

	best := heading
	bestDist := -1
	bestSpace := -1
	length := state.Length()

	for _, dir := range engine.Directions {
		if dir == heading.Opposite() {
			continue
		}
		next := head.Offset(dir)
		blocked := s.blocked(state, next == state.Food)
		if !s.geometry.Contains(next) || blocked[next] {
			continue
		}

		space := s.reachable(next, blocked)
		dist := engine.ManhattanDistance(next, state.Food)

		roomy := space >= length
		bestRoomy := bestSpace >= length
		switch {
		case bestDist < 0,
			roomy && !bestRoomy,
			roomy == bestRoomy && roomy && dist < bestDist,
			roomy == bestRoomy && !roomy && space > bestSpace:
			best, bestDist, bestSpace = dir, dist, space
		}
	}
	return best
}

// blocked returns the cells the head cannot enter next step. The tail moves
// away unless the snake is about to eat.
func (s *GreedyStrategy) blocked(state *engine.GameState, eating bool) map[engine.Cell]bool {
	body := state.Snake
	if !eating && len(body) > 1 {
		body = body[:len(body)-1]
	}
	blocked := make(map[engine.Cell]bool, len(body))
	for _, c := range body {
		blocked[c] = true
	}
	return blocked
}

// reachable counts the free cells connected to start
func (s *GreedyStrategy) reachable(start engine.Cell, blocked map[engine.Cell]bool) int {
	visited := map[engine.Cell]bool{start: true}
	queue := []engine.Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range engine.Directions {
			next := current.Offset(dir)
			if visited[next] || blocked[next] || !s.geometry.Contains(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return len(visited)
}

// SimulationResult is the outcome of one simulated game
type SimulationResult struct {
	Seed  uint64
	Score int
	Steps int
	Phase engine.Phase
}

// simulate plays one game with the greedy strategy. The step limit guards
// against a snake that circles forever without reaching the food.
func simulate(config *engine.GameConfig, seed uint64) (SimulationResult, error) {
	eng, err := engine.NewEngine(config, nil, nil, engine.WithSeed(seed))
	if err != nil {
		return SimulationResult{}, err
	}

	strategy := NewGreedyStrategy(eng.Geometry())
	limit := eng.Geometry().CellCount() * eng.Geometry().CellCount()
	for i := 0; i < limit && eng.IsRunning(); i++ {
		eng.ChangeDirection(strategy.NextMove(eng.GetState()))
		eng.Step()
	}

	state := eng.GetState()
	return SimulationResult{
		Seed:  seed,
		Score: state.Score,
		Steps: state.Steps,
		Phase: state.Phase,
	}, nil
}
