package life

import (
	"fmt"

	"tgol/pkg/core"
)

var _ core.Sim = (*World)(nil)

// World is a toroidal Game of Life board with a double-buffered update.
// It is not safe for concurrent use; a single driver goroutine owns it.
type World struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid

	generation uint64
	running    bool
	population int

	density  int
	rule     Rule
	adaptive bool
	minAlive int
	maxAlive int

	rng *core.RNG
}

// New builds a world from cfg and seeds it once using rng. The rng is owned
// by the caller and shared across worlds; New never reseeds it.
func New(cfg Config, rng *core.RNG) (*World, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	w := &World{
		cur:      core.NewByteGrid(cfg.Cols, cfg.Rows),
		nxt:      core.NewByteGrid(cfg.Cols, cfg.Rows),
		running:  true,
		density:  cfg.Density,
		rule:     cfg.Rule,
		adaptive: cfg.Adaptive,
		rng:      rng,
	}
	if w.adaptive {
		w.rule = DecayRule
	} else if w.rule == (Rule{}) {
		w.rule = ConwayRule
	}
	w.updateThresholds()
	w.seed(cfg.Density)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// Size returns the grid dimensions with W as columns and H as rows.
func (w *World) Size() core.Size { return core.Size{W: w.cur.W, H: w.cur.H} }

// Rows returns the number of grid rows.
func (w *World) Rows() int { return w.cur.H }

// Cols returns the number of grid columns.
func (w *World) Cols() int { return w.cur.W }

// Cells exposes the current generation in row-major order. The slice is
// replaced by Step and Resize, so callers must not retain it.
func (w *World) Cells() []uint8 { return w.cur.Cells() }

// Alive reports whether cell (r, c) is alive. Out-of-range cells are dead.
func (w *World) Alive(r, c int) bool {
	if !w.cur.In(c, r) {
		return false
	}
	return w.cur.Cells()[w.cur.Index(c, r)] == 1
}

// Set changes a single cell. Out-of-range coordinates are ignored.
func (w *World) Set(r, c int, alive bool) {
	if !w.cur.In(c, r) {
		return
	}
	idx := w.cur.Index(c, r)
	cells := w.cur.Cells()
	was := cells[idx] == 1
	switch {
	case alive && !was:
		cells[idx] = 1
		w.population++
	case !alive && was:
		cells[idx] = 0
		w.population--
	}
}

// Generation returns the number of completed Step calls.
func (w *World) Generation() uint64 { return w.generation }

// Running reports whether the driver should advance the world every tick.
func (w *World) Running() bool { return w.running }

// SetRunning changes the run mode. The engine never changes it itself.
func (w *World) SetRunning(running bool) { w.running = running }

// Population returns the number of live cells.
func (w *World) Population() int { return w.population }

// Rule returns the rule the next Step will apply.
func (w *World) Rule() Rule { return w.rule }

// SetRule replaces the active rule. In adaptive mode the controller may
// switch away from it after the next Step.
func (w *World) SetRule(r Rule) { w.rule = r }

// Adaptive reports whether the rule follows population thresholds.
func (w *World) Adaptive() bool { return w.adaptive }

// Density returns the seeding density used by Reset and Reseed.
func (w *World) Density() int { return w.density }

// Clear kills every cell.
func (w *World) Clear() {
	w.cur.Clear()
	w.population = 0
}

// Reseed clears the board and seeds it again from the shared random source.
// The generation counter restarts at zero.
func (w *World) Reseed() {
	w.Clear()
	w.generation = 0
	w.seed(w.density)
}

// Reset clears the board and seeds it from a generator built from seed, so
// equal seeds reproduce equal boards. Later Reseed calls keep using it.
func (w *World) Reset(seed int64) {
	w.rng = core.NewRNG(seed)
	w.Reseed()
}

// Release drops both buffers. The world must not be used afterwards.
func (w *World) Release() {
	w.cur = nil
	w.nxt = nil
	w.population = 0
}

func (w *World) updateThresholds() {
	area := w.cur.W * w.cur.H
	w.minAlive = area * minThresholdPct / 100
	w.maxAlive = area * maxThresholdPct / 100
}
