package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/integrii/flaggy"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lifegrid/golife/life"
	"github.com/lifegrid/golife/utils"
	"github.com/lifegrid/golife/view"
	"github.com/lifegrid/golife/zoo"
)

func main() {
	config := initOptions()

	logger, err := newLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	life.SetDiagnostics(&zapDiagnostics{logger: logger})

	seed, err := buildSeed(config)
	if err != nil {
		logger.Fatal("failed to build the initial grid", zap.Error(err))
	}
	sim := NewSimulation(life.NewWorldFromGrid(seed), config, logger)

	if config.Interactive {
		ui := view.NewConsoleUI(sim)
		sim.RegisterViewer(ui)
		ui.Start()
		return
	}

	if err = runBatch(sim, config, logger); err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}
}

// initOptions loads config.json when present and lets command line flags
// override it.
func initOptions() utils.Config {
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		config = utils.DefaultConfig()
	}

	flaggy.SetName("golife")
	flaggy.SetDescription("Conway's Game of Life on a bounded 2d grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&config.Width, "x", "width", "Width of the world")
	flaggy.Int(&config.Height, "y", "height", "Height of the world")
	flaggy.Duration(&config.FrameRate, "i", "interval", "Interval between steps, for example 150ms")
	flaggy.Int(&config.MaxGenerations, "s", "steps", "Stop after this many generations (0 runs forever)")
	flaggy.Bool(&config.Toroidal, "t", "toroidal", "Wrap neighbour lookups around the edges")
	flaggy.String(&config.Creature, "", "creature", "Seed creature [glider|r-pentomino|lwss|none]")
	flaggy.String(&config.PatternFile, "f", "file", "Seed pattern file (.gol ascii or .bgol binary)")
	flaggy.String(&config.SavePath, "o", "out", "Write the final state to this file when finished")
	flaggy.Float64(&config.RandomDensity, "r", "random", "Seed with random cells at this density instead of a creature")
	flaggy.Bool(&config.Interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.String(&config.LogLevel, "l", "log-level", "Log level [debug|info|warn|error]")
	flaggy.Parse()

	return config.Normalized()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// zapDiagnostics routes grid lifecycle events into the structured log.
type zapDiagnostics struct {
	logger *zap.Logger
}

func (d *zapDiagnostics) GridCreated(width, height int) {
	d.logger.Debug("grid created", zap.Int("width", width), zap.Int("height", height))
}

func (d *zapDiagnostics) GridResized(oldWidth, oldHeight, newWidth, newHeight int) {
	d.logger.Debug("grid resized",
		zap.Int("old_width", oldWidth), zap.Int("old_height", oldHeight),
		zap.Int("new_width", newWidth), zap.Int("new_height", newHeight))
}

// buildSeed produces the initial grid from the pattern file, random density,
// or creature name, in that order of precedence.
func buildSeed(config utils.Config) (*life.Grid, error) {
	if config.PatternFile != "" {
		if strings.HasSuffix(config.PatternFile, ".bgol") {
			return zoo.LoadBinary(config.PatternFile)
		}
		return zoo.LoadASCII(config.PatternFile)
	}

	grid, err := life.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	if config.RandomDensity > 0 {
		randomize(grid, config.RandomDensity)
		return grid, nil
	}
	if config.Creature != "" && config.Creature != "none" {
		creature, err := zoo.ByName(config.Creature)
		if err != nil {
			return nil, err
		}
		// centre the creature on the world
		x0 := (grid.GetWidth() - creature.GetWidth()) / 2
		y0 := (grid.GetHeight() - creature.GetHeight()) / 2
		if err = grid.Merge(creature, x0, y0, false); err != nil {
			return nil, err
		}
	}
	return grid, nil
}

func randomize(grid *life.Grid, density float64) {
	for y := 0; y < grid.GetHeight(); y++ {
		for x := 0; x < grid.GetWidth(); x++ {
			if rand.Float64() < density {
				_ = grid.Set(x, y, life.Alive)
			}
		}
	}
}
