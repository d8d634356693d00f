// Command gridsnake plays the classic snake game in a terminal.
//
// It supports three commands:
//  1. "play" (default) – runs a game on the selected board preset
//  2. "configs" – lists the available board presets
//  3. "theme" – writes the default terminal theme to an ini file
//
// Flags control the config directory, preset, theme, random seed, log file
// and debug logging. A .env file in the working directory is loaded first.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/gridsnake/game/config"
	"github.com/wricardo/gridsnake/game/engine"
	"github.com/wricardo/gridsnake/game/loop"
	"github.com/wricardo/gridsnake/game/service"
	"github.com/wricardo/gridsnake/transport/terminal"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Grid Snake"
)

// main loads the environment and runs the command line app
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// newApp builds the command tree. Flags on the root command are visible to
// every subcommand.
func newApp() *cli.Command {
	return &cli.Command{
		Name:           "gridsnake",
		Usage:          "play snake on a grid in your terminal",
		Version:        Version,
		DefaultCommand: "play",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing board presets",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "board preset to play (defaults to classic)",
				Sources: cli.EnvVars("SNAKE_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "theme",
				Usage:   "path to a terminal theme ini file",
				Sources: cli.EnvVars("SNAKE_THEME"),
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "seed for food placement (0 picks one from the clock)",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to this file while playing",
				Sources: cli.EnvVars("SNAKE_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play a game (default)",
				Action: runPlay,
			},
			{
				Name:   "configs",
				Usage:  "list available board presets",
				Action: runConfigs,
			},
			{
				Name:      "theme",
				Usage:     "write the default theme to an ini file",
				ArgsUsage: "<path>",
				Action:    runTheme,
			},
		},
	}
}

// setupLogging configures the standard logger. While the terminal UI owns
// the screen logs go to the log file or nowhere.
func setupLogging(cmd *cli.Command, interactive bool) (func(), error) {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	path := cmd.String("log-file")
	if path == "" {
		if interactive {
			log.SetOutput(io.Discard)
			return func() { log.SetOutput(os.Stderr) }, nil
		}
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// initializeServices wires the config manager and the game service
func initializeServices(configDir string) (service.GameService, *config.Manager, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	return service.NewGameService(configManager), configManager, nil
}

// resolveConfig returns the preset a session for name would use
func resolveConfig(ctx context.Context, gameService service.GameService, configManager *config.Manager, name string) (*engine.GameConfig, error) {
	if name == "" {
		return configManager.GetDefault(), nil
	}
	return gameService.LoadConfig(ctx, name)
}

// runPlay runs one interactive session until the player quits or the
// process is interrupted
func runPlay(ctx context.Context, cmd *cli.Command) error {
	restoreLog, err := setupLogging(cmd, true)
	if err != nil {
		return err
	}
	defer restoreLog()

	log.Printf("Starting %s v%s", AppName, Version)

	gameService, configManager, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	theme := terminal.DefaultTheme()
	if path := cmd.String("theme"); path != "" {
		if theme, err = terminal.LoadTheme(path); err != nil {
			return err
		}
	}

	name := cmd.String("config")
	gameConfig, err := resolveConfig(ctx, gameService, configManager, name)
	if err != nil {
		return fmt.Errorf("failed to load config '%s': %w", name, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := terminal.NewRenderer(screen, engine.GeometryFromConfig(gameConfig), theme)
	if err := checkScreenSize(screen, renderer); err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameLoop := loop.New()
	session, err := gameService.NewSession(ctx, name, renderer, gameLoop, cmd.Uint64("seed"))
	if err != nil {
		screen.Fini()
		return err
	}

	restart := func() {
		if _, err := gameService.Restart(ctx, session); err != nil {
			log.Printf("Restart failed: %v", err)
		}
	}
	input := terminal.NewInput(screen, gameLoop, session.Engine, restart, gameLoop.Stop)

	gameLoop.Post(session.Engine.Start)
	go func() {
		if err := input.Poll(ctx); err != nil {
			log.Printf("Input stopped: %v", err)
		}
		gameLoop.Stop()
	}()

	runErr := gameLoop.Run(ctx)
	screen.Fini()

	printSummary(gameService.Summarize(session))
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

func checkScreenSize(screen tcell.Screen, renderer *terminal.Renderer) error {
	cols, rows := screen.Size()
	needCols, needRows := renderer.Size()
	if cols < needCols || rows < needRows {
		return fmt.Errorf("terminal is %dx%d but the board needs %dx%d", cols, rows, needCols, needRows)
	}
	return nil
}

// printSummary reports the final result of the session
func printSummary(summary *service.Summary) {
	if summary == nil {
		return
	}

	title := color.New(color.FgCyan, color.Bold)
	title.Printf("%s v%s\n", AppName, Version)

	switch summary.Phase {
	case engine.BoardFull:
		color.Green("Board full! You filled every cell.")
	case engine.GameOver:
		color.Red("%s", summary.Message)
	default:
		color.Yellow("Game left unfinished.")
	}

	fmt.Printf("Config:      %s\n", summary.ConfigID)
	fmt.Printf("Score:       %d / %d\n", summary.Score, summary.MaxScore)
	fmt.Printf("Length:      %d\n", summary.Length)
	fmt.Printf("Steps:       %d (total %d over %d games)\n", summary.Steps, summary.TotalSteps, summary.Games)
	fmt.Printf("Duration:    %s\n", summary.Duration.Round(time.Second))
}

// runConfigs prints the available board presets
func runConfigs(ctx context.Context, cmd *cli.Command) error {
	restoreLog, err := setupLogging(cmd, false)
	if err != nil {
		return err
	}
	defer restoreLog()

	gameService, configManager, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	configs, err := gameService.ListConfigs(ctx)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	if len(configs) == 0 {
		fmt.Fprintf(out, "No presets found in %s, the built-in default board will be used\n", cmd.String("config-dir"))
		return nil
	}

	defaultName := configManager.GetDefault().Name
	id := color.New(color.FgCyan, color.Bold)
	for _, c := range configs {
		marker := " "
		if c.Name == defaultName {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s  %dx%d  %dms  length %d  %s\n",
			marker, id.Sprint(c.ConfigID), c.GridWidth, c.GridHeight, c.TickIntervalMs, c.InitialLength, c.Description)
	}
	return nil
}

// runTheme writes the default theme so it can be edited
func runTheme(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("theme path is required")
	}
	if err := terminal.SaveTheme(path, terminal.DefaultTheme()); err != nil {
		return err
	}
	color.Green("Theme written to %s", path)
	return nil
}
