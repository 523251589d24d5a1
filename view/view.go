// Package view renders a running simulation in the terminal.
package view

import (
	"time"

	"github.com/lifegrid/golife/life"
	"github.com/lifegrid/golife/utils"
)

// Refresher is anything capable of redrawing itself from a fresh snapshot.
type Refresher interface {
	Refresh()
}

// Controller is the simulation surface the terminal front ends drive.
type Controller interface {
	Snapshot() Frame
	Step()
	Run()
	Stop()
	Clear()
	Randomize()
	Toggle(x, y int)
}

// Frame is one render-ready snapshot of the simulation. The grid it carries
// is a private copy, safe to read while the simulation keeps stepping.
type Frame struct {
	Grid       *life.Grid
	Generation int
	Alive      int
	Running    bool
	StepTime   time.Duration
	Config     utils.Config
}
