package engine

import "time"

// RenderPort receives drawing commands from the engine. Implementations are
// assumed infallible; the engine never draws directly.
type RenderPort interface {
	Clear()
	DrawSnake(cells []Cell)
	DrawFood(cell Cell)
	UpdateScore(score int)
	ShowGameOver()
	ShowBoardFull()
}

// Clock schedules exactly one future call of fn per request
type Clock interface {
	ScheduleNext(fn func(), interval time.Duration)
}

// NopRenderer discards all drawing commands
type NopRenderer struct{}

func (NopRenderer) Clear() {}
func (NopRenderer) DrawSnake([]Cell) {}
func (NopRenderer) DrawFood(Cell) {}
func (NopRenderer) UpdateScore(int) {}
func (NopRenderer) ShowGameOver() {}
func (NopRenderer) ShowBoardFull() {}
