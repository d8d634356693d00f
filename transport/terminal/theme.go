package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/ini.v1"
)

// Theme controls colors, glyphs and texts of the terminal board
type Theme struct {
	Snake      tcell.Color
	SnakeHead  tcell.Color
	Food       tcell.Color
	Background tcell.Color
	Border     tcell.Color
	Text       tcell.Color

	SnakeGlyph rune
	HeadGlyph  rune
	FoodGlyph  rune

	GameOverText  string
	BoardFullText string
	HelpText      string
}

// DefaultTheme returns the classic green snake on black
func DefaultTheme() Theme {
	return Theme{
		Snake:      tcell.GetColor("#00FF00"),
		SnakeHead:  tcell.GetColor("#00FF00"),
		Food:       tcell.GetColor("#FF0000"),
		Background: tcell.GetColor("#000000"),
		Border:     tcell.ColorGray,
		Text:       tcell.ColorWhite,

		SnakeGlyph: '█',
		HeadGlyph:  '█',
		FoodGlyph:  '●',

		GameOverText:  "GAME OVER - Thanks for playing!",
		BoardFullText: "BOARD FULL - You win!",
		HelpText:      "arrows/wasd/hjkl move  r restart  q quit",
	}
}

// LoadTheme reads a theme from an ini file. Sections are [colors], [glyphs]
// and [messages]; missing keys keep their default value.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	// Colors are written as #RRGGBB, so '#' must not start a comment
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return theme, fmt.Errorf("failed to load theme: %w", err)
	}

	colors := cfg.Section("colors")
	for _, c := range []struct {
		key string
		dst *tcell.Color
	}{
		{"snake", &theme.Snake},
		{"snake_head", &theme.SnakeHead},
		{"food", &theme.Food},
		{"background", &theme.Background},
		{"border", &theme.Border},
		{"text", &theme.Text},
	} {
		if !colors.HasKey(c.key) {
			continue
		}
		color, err := parseColor(colors.Key(c.key).String())
		if err != nil {
			return theme, fmt.Errorf("colors.%s: %w", c.key, err)
		}
		*c.dst = color
	}

	glyphs := cfg.Section("glyphs")
	for _, g := range []struct {
		key string
		dst *rune
	}{
		{"snake", &theme.SnakeGlyph},
		{"head", &theme.HeadGlyph},
		{"food", &theme.FoodGlyph},
	} {
		value := []rune(glyphs.Key(g.key).String())
		if len(value) == 0 {
			continue
		}
		*g.dst = value[0]
	}

	messages := cfg.Section("messages")
	theme.GameOverText = messages.Key("game_over").MustString(theme.GameOverText)
	theme.BoardFullText = messages.Key("board_full").MustString(theme.BoardFullText)
	theme.HelpText = messages.Key("help").MustString(theme.HelpText)

	return theme, nil
}

// SaveTheme writes theme to path in the format LoadTheme reads
func SaveTheme(path string, theme Theme) error {
	cfg := ini.Empty()

	colors := cfg.Section("colors")
	colors.Key("snake").SetValue(formatColor(theme.Snake))
	colors.Key("snake_head").SetValue(formatColor(theme.SnakeHead))
	colors.Key("food").SetValue(formatColor(theme.Food))
	colors.Key("background").SetValue(formatColor(theme.Background))
	colors.Key("border").SetValue(formatColor(theme.Border))
	colors.Key("text").SetValue(formatColor(theme.Text))

	glyphs := cfg.Section("glyphs")
	glyphs.Key("snake").SetValue(string(theme.SnakeGlyph))
	glyphs.Key("head").SetValue(string(theme.HeadGlyph))
	glyphs.Key("food").SetValue(string(theme.FoodGlyph))

	messages := cfg.Section("messages")
	messages.Key("game_over").SetValue(theme.GameOverText)
	messages.Key("board_full").SetValue(theme.BoardFullText)
	messages.Key("help").SetValue(theme.HelpText)

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// parseColor accepts tcell color names and #RRGGBB values
func parseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "default") {
		return tcell.ColorDefault, nil
	}
	color := tcell.GetColor(s)
	if color == tcell.ColorDefault {
		return color, fmt.Errorf("unknown color %q", s)
	}
	return color, nil
}

func formatColor(c tcell.Color) string {
	hex := c.Hex()
	if hex < 0 {
		return "default"
	}
	return fmt.Sprintf("#%06X", hex)
}
