package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/wricardo/gridsnake/game/engine"
)

var _ engine.RenderPort = (*Renderer)(nil)

// cellColumns is the number of terminal columns per board cell, which keeps
// cells roughly square in most fonts
const cellColumns = 2

// Renderer draws the game on a tcell screen. The board is framed by a border
// at the top-left corner of the screen with the status lines beneath it.
type Renderer struct {
	screen   tcell.Screen
	geometry engine.Geometry
	theme    Theme
	score    int
}

// NewRenderer creates a renderer for a board of the given geometry
func NewRenderer(screen tcell.Screen, geometry engine.Geometry, theme Theme) *Renderer {
	return &Renderer{
		screen:   screen,
		geometry: geometry,
		theme:    theme,
	}
}

// Size returns the number of terminal columns and rows the board needs
func (r *Renderer) Size() (int, int) {
	return r.geometry.Width*cellColumns + 2, r.geometry.Height + 4
}

// Position returns the screen position of the left column of a cell
func (r *Renderer) Position(c engine.Cell) (int, int) {
	return 1 + c.X*cellColumns, 1 + c.Y
}

// Clear wipes the screen and draws the empty board
func (r *Renderer) Clear() {
	r.screen.Clear()

	bg := tcell.StyleDefault.Background(r.theme.Background)
	for y := 0; y < r.geometry.Height; y++ {
		for x := 0; x < r.geometry.Width; x++ {
			r.fillCell(engine.Cell{X: x, Y: y}, ' ', bg)
		}
	}
	r.drawBorder()
}

// DrawSnake draws the body, head first
func (r *Renderer) DrawSnake(cells []engine.Cell) {
	body := tcell.StyleDefault.Foreground(r.theme.Snake).Background(r.theme.Background)
	head := tcell.StyleDefault.Foreground(r.theme.SnakeHead).Background(r.theme.Background).Bold(true)

	for i := len(cells) - 1; i >= 0; i-- {
		if i == 0 {
			r.fillCell(cells[i], r.theme.HeadGlyph, head)
			continue
		}
		r.fillCell(cells[i], r.theme.SnakeGlyph, body)
	}
}

// DrawFood draws the food item
func (r *Renderer) DrawFood(cell engine.Cell) {
	style := tcell.StyleDefault.Foreground(r.theme.Food).Background(r.theme.Background)
	x, y := r.Position(cell)
	r.screen.SetContent(x, y, r.theme.FoodGlyph, nil, style)
	r.screen.SetContent(x+1, y, ' ', nil, style)
}

// UpdateScore draws the status lines and flushes the frame
func (r *Renderer) UpdateScore(score int) {
	r.score = score
	_, rows := r.Size()
	style := tcell.StyleDefault.Foreground(r.theme.Text)
	drawText(r.screen, 0, rows-2, fmt.Sprintf("Score: %d", score), style)
	drawText(r.screen, 0, rows-1, r.theme.HelpText, style.Dim(true))
	r.screen.Show()
}

// ShowGameOver shows the game over banner with the final score
func (r *Renderer) ShowGameOver() {
	r.showBanner(r.theme.GameOverText)
}

// ShowBoardFull shows the winning banner with the final score
func (r *Renderer) ShowBoardFull() {
	r.showBanner(r.theme.BoardFullText)
}

func (r *Renderer) showBanner(text string) {
	cols, rows := r.Size()
	cx := cols / 2
	cy := (rows - 2) / 2

	banner := tcell.StyleDefault.Foreground(r.theme.Text).Background(tcell.ColorMaroon).Bold(true)
	style := tcell.StyleDefault.Foreground(r.theme.Text)

	drawCentered(r.screen, cx, cy-1, text, banner)
	drawCentered(r.screen, cx, cy, fmt.Sprintf("Final score: %d", r.score), style)
	drawCentered(r.screen, cx, cy+1, "press r to play again or q to quit", style.Dim(true))
	r.screen.Show()
}

func (r *Renderer) fillCell(c engine.Cell, ch rune, style tcell.Style) {
	x, y := r.Position(c)
	for i := 0; i < cellColumns; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawBorder() {
	style := tcell.StyleDefault.Foreground(r.theme.Border)
	right := r.geometry.Width*cellColumns + 1
	bottom := r.geometry.Height + 1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	if x < 0 {
		x = 0
	}
	drawText(s, x, cy, text, st)
}
