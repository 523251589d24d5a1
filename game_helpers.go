package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lifegrid/golife/life"
	"github.com/lifegrid/golife/utils"
	"github.com/lifegrid/golife/view"
	"github.com/lifegrid/golife/zoo"
)

// runBatch steps the world at the configured rate until the generation
// limit, extinction, or an interrupt, then prints a summary and optionally
// saves the final state.
func runBatch(sim *Simulation, config utils.Config, logger *zap.Logger) error {
	config = config.Normalized()
	logger.Info("simulation started",
		zap.Int("width", config.Width),
		zap.Int("height", config.Height),
		zap.Bool("toroidal", config.Toroidal),
		zap.Int("max_generations", config.MaxGenerations))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	eg.Go(func() error {
		select {
		case <-sigCh:
			logger.Info("interrupt received, stopping")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	eg.Go(func() error {
		ticker := time.NewTicker(config.FrameRate)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			sim.Step()
			frame := sim.Snapshot()
			if frame.Generation%10 == 0 {
				printStatus(frame)
			}
			if config.MaxGenerations > 0 && frame.Generation >= config.MaxGenerations {
				cancel()
				return nil
			}
			if frame.Alive == 0 {
				logger.Info("population extinct", zap.Int("generation", frame.Generation))
				cancel()
				return nil
			}
		}
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	frame := sim.Snapshot()
	printSummary(frame, sim.stats)
	if config.SavePath != "" {
		if err := saveFinalState(config.SavePath, frame.Grid); err != nil {
			return err
		}
		logger.Info("final state saved", zap.String("path", config.SavePath))
	}
	return nil
}

// printStatus prints one colored status line for the given frame.
func printStatus(f view.Frame) {
	fmt.Printf("%s %-6d %s %-6d %s %v\n",
		aurora.Green("gen:"), f.Generation,
		aurora.Cyan("alive:"), f.Alive,
		aurora.Yellow("step:"), f.StepTime.Round(time.Microsecond))
}

// printSummary prints the final grid and run statistics.
func printSummary(f view.Frame, stats *utils.Stats) {
	fmt.Print(f.Grid.String())
	fmt.Printf("%s %d generations in %.1fs, %.1f gen/sec, avg population %.1f\n",
		aurora.Bold("finished:"), f.Generation, stats.Runtime().Seconds(),
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// saveFinalState picks the file format from the extension, binary for .bgol
// and ascii otherwise.
func saveFinalState(path string, grid *life.Grid) error {
	if strings.HasSuffix(path, ".bgol") {
		return zoo.SaveBinary(path, grid)
	}
	return zoo.SaveASCII(path, grid)
}
