package life

import (
	"testing"

	"github.com/pkg/errors"
)

func mustWorld(t *testing.T, width, height int) *World {
	t.Helper()
	w, err := NewWorld(width, height)
	if err != nil {
		t.Fatalf("NewWorld(%d, %d): %v", width, height, err)
	}
	return w
}

func TestNewWorld(t *testing.T) {
	w := mustWorld(t, 5, 4)
	if w.GetWidth() != 5 || w.GetHeight() != 4 {
		t.Fatalf("got %dx%d, want 5x4", w.GetWidth(), w.GetHeight())
	}
	if w.GetTotalCells() != 20 || w.GetAliveCells() != 0 || w.GetDeadCells() != 20 {
		t.Fatal("fresh world should be entirely dead")
	}
}

func TestNewWorldNegativeDimensions(t *testing.T) {
	if _, err := NewWorld(-1, 4); errors.Cause(err) != ErrNegativeDimensions {
		t.Fatalf("err = %v, want ErrNegativeDimensions", err)
	}
}

func TestNewSquareWorldAndEmpty(t *testing.T) {
	w, err := NewSquareWorld(6)
	if err != nil {
		t.Fatal(err)
	}
	if w.GetWidth() != 6 || w.GetHeight() != 6 {
		t.Fatalf("got %dx%d, want 6x6", w.GetWidth(), w.GetHeight())
	}
	if e := NewEmptyWorld(); e.GetTotalCells() != 0 {
		t.Fatal("empty world should have no cells")
	}
}

func TestNewWorldFromGridCopiesSeed(t *testing.T) {
	seed := mustGrid(t, 3, 3)
	_ = seed.Set(1, 1, Alive)

	w := NewWorldFromGrid(seed)
	if w.GetAliveCells() != 1 {
		t.Fatalf("alive = %d, want 1", w.GetAliveCells())
	}

	// mutating the seed afterwards must not reach into the world
	_ = seed.Set(0, 0, Alive)
	if w.GetAliveCells() != 1 {
		t.Fatal("world aliases the caller's grid")
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	seed := mustGrid(t, 5, 5)
	for x := 1; x <= 3; x++ {
		_ = seed.Set(x, 2, Alive)
	}
	w := NewWorldFromGrid(seed)

	if err := w.Step(false); err != nil {
		t.Fatal(err)
	}
	// horizontal blinker flips to vertical
	for y := 1; y <= 3; y++ {
		if got, _ := w.GetState().Get(2, y); !got.IsAlive() {
			t.Fatalf("(2,%d) should be alive after one step", y)
		}
	}
	if w.GetAliveCells() != 3 {
		t.Fatalf("alive = %d, want 3", w.GetAliveCells())
	}

	if err := w.Step(false); err != nil {
		t.Fatal(err)
	}
	if !w.GetState().Equal(seed) {
		t.Fatal("blinker should return to its seed after two steps")
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	var (
		start = [][2]int{{1, 3}, {2, 3}, {3, 3}, {3, 2}, {2, 1}}
		seed  = mustGrid(t, 6, 6)
	)
	for _, c := range start {
		_ = seed.Set(c[0], c[1], Alive)
	}
	w := NewWorldFromGrid(seed)

	for i := 0; i < 4; i++ {
		if err := w.Step(false); err != nil {
			t.Fatal(err)
		}
		if w.GetAliveCells() != 5 {
			t.Fatalf("alive = %d at step %d, want 5", w.GetAliveCells(), i+1)
		}
	}

	// after four generations the glider reappears translated by (+1,+1)
	want := mustGrid(t, 6, 6)
	for _, c := range start {
		_ = want.Set(c[0]+1, c[1]+1, Alive)
	}
	if !w.GetState().Equal(want) {
		t.Fatalf("glider did not translate:\n%s\nwant:\n%s", w.GetState(), want)
	}
}

func TestStepNonToroidalEdges(t *testing.T) {
	// a corner cell with one diagonal neighbour sees only that neighbour;
	// nothing wraps and nothing errors at the edges
	seed := mustGrid(t, 3, 3)
	_ = seed.Set(0, 0, Alive)
	_ = seed.Set(1, 1, Alive)
	w := NewWorldFromGrid(seed)

	if err := w.Step(false); err != nil {
		t.Fatal(err)
	}
	if w.GetAliveCells() != 0 {
		t.Fatalf("alive = %d, want 0 (both cells starve)", w.GetAliveCells())
	}
}

func TestStepToroidalSingleCell(t *testing.T) {
	// on a 1x1 torus all eight neighbour offsets wrap back to the one cell,
	// so a live cell counts eight live neighbours and dies of overpopulation
	seed := mustGrid(t, 1, 1)
	_ = seed.Set(0, 0, Alive)
	w := NewWorldFromGrid(seed)

	if err := w.Step(true); err != nil {
		t.Fatal(err)
	}
	if w.GetAliveCells() != 0 {
		t.Fatal("the cell should die of overpopulation through wraparound")
	}
}

func TestStepToroidalWrapsEdges(t *testing.T) {
	// a horizontal blinker across the right edge of a 5x5 torus still
	// oscillates: cells at x = 4, 0, 1 on the same row
	seed := mustGrid(t, 5, 5)
	for _, x := range []int{4, 0, 1} {
		_ = seed.Set(x, 2, Alive)
	}
	w := NewWorldFromGrid(seed)

	if err := w.Step(true); err != nil {
		t.Fatal(err)
	}
	for y := 1; y <= 3; y++ {
		if got, _ := w.GetState().Get(0, y); !got.IsAlive() {
			t.Fatalf("(0,%d) should be alive after wrapping step", y)
		}
	}
	if w.GetAliveCells() != 3 {
		t.Fatalf("alive = %d, want 3", w.GetAliveCells())
	}

	if err := w.Step(true); err != nil {
		t.Fatal(err)
	}
	if !w.GetState().Equal(seed) {
		t.Fatal("edge blinker should return to its seed after two steps")
	}
}

func TestStepWithoutWrapKillsEdgeBlinker(t *testing.T) {
	// the same pattern without the torus falls apart: (4,2) and (1,2) are
	// not neighbours of (0,2)
	seed := mustGrid(t, 5, 5)
	for _, x := range []int{4, 0, 1} {
		_ = seed.Set(x, 2, Alive)
	}
	w := NewWorldFromGrid(seed)

	if err := w.Step(false); err != nil {
		t.Fatal(err)
	}
	if got, _ := w.GetState().Get(4, 2); got.IsAlive() {
		t.Fatal("(4,2) has one neighbour at most and should die")
	}
}

func TestAdvance(t *testing.T) {
	seedFor := func() *World {
		seed := mustGrid(t, 6, 6)
		for _, c := range [][2]int{{1, 3}, {2, 3}, {3, 3}, {3, 2}, {2, 1}} {
			_ = seed.Set(c[0], c[1], Alive)
		}
		return NewWorldFromGrid(seed)
	}

	batched := seedFor()
	if err := batched.Advance(4, false); err != nil {
		t.Fatal(err)
	}
	stepped := seedFor()
	for i := 0; i < 4; i++ {
		if err := stepped.Step(false); err != nil {
			t.Fatal(err)
		}
	}
	if !batched.GetState().Equal(stepped.GetState()) {
		t.Fatal("Advance(4) must match four Step calls")
	}
}

func TestAdvanceZeroIsNoOp(t *testing.T) {
	seed := mustGrid(t, 4, 4)
	_ = seed.Set(1, 1, Alive)
	w := NewWorldFromGrid(seed)
	before := w.GetState().Clone()

	if err := w.Advance(0, false); err != nil {
		t.Fatal(err)
	}
	if !w.GetState().Equal(before) {
		t.Fatal("Advance(0) must not change the state")
	}
}

func TestAdvanceNegativeSteps(t *testing.T) {
	w := mustWorld(t, 4, 4)
	if err := w.Advance(-1, false); errors.Cause(err) != ErrNegativeSteps {
		t.Fatalf("err = %v, want ErrNegativeSteps", err)
	}
}

func TestWorldResize(t *testing.T) {
	seed := mustGrid(t, 4, 4)
	_ = seed.Set(1, 1, Alive)
	w := NewWorldFromGrid(seed)

	if err := w.Resize(6, 6); err != nil {
		t.Fatal(err)
	}
	if w.GetWidth() != 6 || w.GetHeight() != 6 {
		t.Fatalf("got %dx%d, want 6x6", w.GetWidth(), w.GetHeight())
	}
	if got, _ := w.GetState().Get(1, 1); !got.IsAlive() {
		t.Fatal("resize lost the current state content")
	}

	// both buffers track the new dimensions, so stepping still works
	if err := w.Step(false); err != nil {
		t.Fatal(err)
	}
}

func TestWorldResizeNegative(t *testing.T) {
	w := mustWorld(t, 4, 4)
	if err := w.Resize(-2, 4); errors.Cause(err) != ErrNegativeDimensions {
		t.Fatalf("err = %v, want ErrNegativeDimensions", err)
	}
	if w.GetWidth() != 4 || w.GetHeight() != 4 {
		t.Fatal("failed resize must leave the world untouched")
	}
}

func TestStepGuardsBufferMismatch(t *testing.T) {
	w := mustWorld(t, 3, 3)
	// unreachable through the public API, forced here to exercise the guard
	w.next, _ = NewGrid(2, 3)
	if err := w.Step(false); errors.Cause(err) != ErrInvalidDimensions {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestStepEmptyWorld(t *testing.T) {
	w := NewEmptyWorld()
	if err := w.Step(false); err != nil {
		t.Fatal(err)
	}
	if err := w.Step(true); err != nil {
		t.Fatal(err)
	}
}

func BenchmarkWorldStep(b *testing.B) {
	w := benchWorld()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.Step(false)
	}
}

func BenchmarkWorldStepToroidal(b *testing.B) {
	w := benchWorld()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.Step(true)
	}
}

func benchWorld() *World {
	seed, _ := NewGrid(200, 200)
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if (x*7+y*3)%5 == 0 {
				_ = seed.Set(x, y, Alive)
			}
		}
	}
	return NewWorldFromGrid(seed)
}
