package main

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lifegrid/golife/life"
	"github.com/lifegrid/golife/utils"
	"github.com/lifegrid/golife/view"
)

// Simulation drives a World for the terminal front ends. The engine itself
// is single threaded; the mutex serializes the UI goroutines around it.
type Simulation struct {
	mu         sync.Mutex
	world      *life.World
	config     utils.Config
	stats      *utils.Stats
	generation int
	running    bool
	stopCh     chan struct{}
	lastStep   time.Duration
	viewers    []view.Refresher
	logger     *zap.Logger
}

func NewSimulation(world *life.World, config utils.Config, logger *zap.Logger) *Simulation {
	return &Simulation{
		world:  world,
		config: config.Normalized(),
		stats:  utils.NewStats(),
		logger: logger,
	}
}

// RegisterViewer adds a viewer that is refreshed after every state change.
func (s *Simulation) RegisterViewer(v view.Refresher) {
	s.viewers = append(s.viewers, v)
}

func (s *Simulation) refreshViewers() {
	for _, v := range s.viewers {
		v.Refresh()
	}
}

// Snapshot captures the current state for rendering. The grid in the frame
// is a deep copy, detached from the stepping buffers.
func (s *Simulation) Snapshot() view.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.world.GetState().Clone()
	return view.Frame{
		Grid:       state,
		Generation: s.generation,
		Alive:      state.GetAliveCells(),
		Running:    s.running,
		StepTime:   s.lastStep,
		Config:     s.config,
	}
}

// Step advances the world by one generation.
func (s *Simulation) Step() {
	s.mu.Lock()
	start := time.Now()
	if err := s.world.Step(s.config.Toroidal); err != nil {
		s.mu.Unlock()
		s.logger.Error("step failed", zap.Error(err))
		return
	}
	s.generation++
	s.lastStep = time.Since(start)
	s.stats.Update(s.generation, s.world.GetAliveCells(), s.lastStep)
	s.mu.Unlock()
	s.refreshViewers()
}

// Run steps continuously at the configured frame rate until Stop, the
// generation limit, or extinction.
func (s *Simulation) Run() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(s.config.FrameRate)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				s.Step()
				s.mu.Lock()
				var (
					done    = s.config.MaxGenerations > 0 && s.generation >= s.config.MaxGenerations
					extinct = s.world.GetAliveCells() == 0
				)
				s.mu.Unlock()
				if done || extinct {
					s.Stop()
					return
				}
			}
		}
	}()
}

// Stop halts a running simulation.
func (s *Simulation) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()
	s.refreshViewers()
}

// Clear kills every cell and resets the generation counter.
func (s *Simulation) Clear() {
	s.mu.Lock()
	fresh, _ := life.NewWorld(s.world.GetWidth(), s.world.GetHeight())
	s.world = fresh
	s.generation = 0
	s.mu.Unlock()
	s.refreshViewers()
}

// Randomize reseeds the world with random cells at the configured density
// and resets the generation counter.
func (s *Simulation) Randomize() {
	s.mu.Lock()
	seed, _ := life.NewGrid(s.world.GetWidth(), s.world.GetHeight())
	density := s.config.RandomDensity
	if density <= 0 {
		density = 0.15
	}
	randomize(seed, density)
	s.world = life.NewWorldFromGrid(seed)
	s.generation = 0
	s.mu.Unlock()
	s.refreshViewers()
}

// Toggle flips the cell at (x, y), ignoring clicks outside the grid.
func (s *Simulation) Toggle(x, y int) {
	s.mu.Lock()
	seed := s.world.GetState().Clone()
	cell, err := seed.At(x, y)
	if err != nil {
		s.mu.Unlock()
		return
	}
	if cell.IsAlive() {
		*cell = life.Dead
	} else {
		*cell = life.Alive
	}
	s.world = life.NewWorldFromGrid(seed)
	s.mu.Unlock()
	s.refreshViewers()
}
