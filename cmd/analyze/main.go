// Command analyze prints quick, human-readable stats about the board presets
// in a configs directory: board and pixel size, speed, the highest possible
// score and how much room the starting snake leaves. With -simulate it also
// plays a few seeded games with a greedy bot to show what a preset is like
// in practice.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/wricardo/gridsnake/game/engine"
)

// Analysis holds the derived stats of one preset
type Analysis struct {
	Name           string
	Cells          int
	MaxScore       int
	PixelWidth     int
	PixelHeight    int
	TicksPerSecond float64
	FreeAtStart    int
	FarthestSteps  int
	Simulations    []SimulationResult
}

func main() {
	configDir := flag.String("config-dir", "configs", "Directory containing board presets")
	games := flag.Int("simulate", 0, "Number of greedy bot games to simulate per preset")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*configDir, "*.json"))
	if err != nil || len(files) == 0 {
		color.Red("No presets found in %s", *configDir)
		os.Exit(1)
	}

	for _, file := range files {
		color.New(color.FgCyan, color.Bold).Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analysis, err := analyzeConfig(file, *games)
		if err != nil {
			color.Red("Error: %v", err)
			continue
		}
		printAnalysis(os.Stdout, analysis)
	}
}

// analyzeConfig loads a preset and derives its stats, simulating the given
// number of games with seeds 1..games
func analyzeConfig(path string, games int) (*Analysis, error) {
	config, err := engine.LoadGameConfig(path)
	if err != nil {
		return nil, err
	}

	geometry := engine.GeometryFromConfig(config)
	w, h := geometry.PixelSize()
	head := engine.StartCell(config)

	farthest := 0
	for _, corner := range []engine.Cell{
		{X: 0, Y: 0},
		{X: geometry.Width - 1, Y: 0},
		{X: 0, Y: geometry.Height - 1},
		{X: geometry.Width - 1, Y: geometry.Height - 1},
	} {
		if d := engine.ManhattanDistance(head, corner); d > farthest {
			farthest = d
		}
	}

	analysis := &Analysis{
		Name:           config.Name,
		Cells:          geometry.CellCount(),
		MaxScore:       engine.MaxScore(config),
		PixelWidth:     w,
		PixelHeight:    h,
		TicksPerSecond: float64(time.Second) / float64(engine.TickInterval(config)),
		FreeAtStart:    geometry.CellCount() - config.InitialLength,
		FarthestSteps:  farthest,
	}

	for seed := 1; seed <= games; seed++ {
		result, err := simulate(config, uint64(seed))
		if err != nil {
			return nil, fmt.Errorf("simulation %d failed: %w", seed, err)
		}
		analysis.Simulations = append(analysis.Simulations, result)
	}

	return analysis, nil
}

func printAnalysis(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "Name: %s\n", a.Name)
	fmt.Fprintf(w, "Board: %d cells (%dx%d px)\n", a.Cells, a.PixelWidth, a.PixelHeight)
	fmt.Fprintf(w, "Speed: %.1f steps/s\n", a.TicksPerSecond)
	fmt.Fprintf(w, "Max Score: %d\n", a.MaxScore)
	fmt.Fprintf(w, "Free Cells at Start: %d\n", a.FreeAtStart)
	fmt.Fprintf(w, "Farthest Corner: %d steps from the start\n", a.FarthestSteps)

	if len(a.Simulations) == 0 {
		return
	}

	best, total := 0, 0
	for _, sim := range a.Simulations {
		total += sim.Score
		if sim.Score > best {
			best = sim.Score
		}
		fmt.Fprintf(w, "  seed %d: score %d in %d steps (%s)\n", sim.Seed, sim.Score, sim.Steps, sim.Phase)
	}
	avg := float64(total) / float64(len(a.Simulations))
	fmt.Fprintf(w, "Greedy bot: best %d, average %.1f (%.0f%% of max)\n", best, avg, 100*avg/float64(a.MaxScore))
}
