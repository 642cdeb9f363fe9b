package model

import (
	"context"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/propagator"
	"github.com/katalvlaran/wavecollapse/random"
	"github.com/katalvlaran/wavecollapse/wave"
)

// Reseed is called by Clear after the Wave and Propagator have been
// reset to their all-possible starting state, to re-apply any
// construction-time initial constraints (e.g. OverlappingModel's ground
// row). A Runner with no initial constraints passes nil.
type Reseed func(w *wave.Wave, p *propagator.Propagator) error

// Runner is the model-agnostic observe/collapse/propagate core. Both
// OverlappingModel and SimpleTiledModel embed a *Runner and add only
// their own rendering and pattern/tile bookkeeping on top.
type Runner struct {
	Wave       *wave.Wave
	Propagator *propagator.Propagator

	dims      grid.Dims
	heuristic wave.Heuristic
	seed      uint32
	rng       *random.Source
	reseed    Reseed

	lastCollapsed int
	terminal      bool
	contradiction bool
}

// New builds a Runner over dims and the given pattern weights/compat
// table, seeded with seed and driven by heuristic. reseed may be nil.
//
// Complexity: O(W*H*T) for Wave, O(W*H*T*4) for Propagator.
func New(dims grid.Dims, weights []float64, compat propagator.CompatTable, heuristic wave.Heuristic, seed uint32, reseed Reseed) (*Runner, error) {
	w, err := wave.New(dims, weights)
	if err != nil {
		return nil, err
	}
	p, err := propagator.New(dims, len(weights), compat)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		Wave:          w,
		Propagator:    p,
		dims:          dims,
		heuristic:     heuristic,
		seed:          seed,
		rng:           random.New(seed),
		reseed:        reseed,
		lastCollapsed: -1,
	}

	if reseed != nil {
		if err := reseed(w, p); err != nil {
			return nil, err
		}
		if !p.Propagate(w) {
			r.contradiction = true
			r.terminal = true
		}
	}

	return r, nil
}

// Step performs one observation: select a cell via the configured
// heuristic, collapse it, push every deselected pattern to the
// propagator, then propagate to fixpoint.
//
// Complexity: see package doc.
func (r *Runner) Step() (StepResult, error) {
	if r.terminal {
		return Failure, ErrAlreadyTerminal
	}

	idx := r.Wave.SelectCell(r.heuristic, r.rng)
	switch idx {
	case wave.SelectDone:
		r.terminal = true

		return Success, nil
	case wave.SelectContradiction:
		r.terminal = true
		r.contradiction = true

		return Failure, nil
	}

	r.lastCollapsed = idx
	_, removed := r.Wave.Collapse(idx, r.rng)
	for _, t := range removed {
		r.Propagator.AddToPropagate(idx, t)
	}

	if !r.Propagator.Propagate(r.Wave) {
		r.terminal = true
		r.contradiction = true

		return Failure, nil
	}

	return Continue, nil
}

// Run calls Step repeatedly until it returns Success, Failure, or
// maxSteps is exhausted, or ctx is cancelled between steps (never mid
// propagation, which always runs to fixpoint atomically). It returns
// true iff the run ended in Success.
//
// Complexity: O(maxSteps) Step calls.
func (r *Runner) Run(ctx context.Context, maxSteps int) (bool, error) {
	for i := 0; i < maxSteps; i++ {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}

		res, err := r.Step()
		if err != nil {
			return false, err
		}
		switch res {
		case Success:
			return true, nil
		case Failure:
			return false, nil
		}
	}

	return false, nil
}

// GetState summarizes the current run per SPEC_FULL.md §6.
//
// Complexity: O(W*H).
func (r *Runner) GetState() State {
	n := r.dims.Len()
	collapsed := 0
	for i := 0; i < n; i++ {
		if r.Wave.RemainingAt(i) == 1 {
			collapsed++
		}
	}

	return State{
		TotalCells:       n,
		CollapsedCount:   collapsed,
		PatternCount:     r.Wave.NumPatterns(),
		IsComplete:       r.terminal && !r.contradiction,
		HasContradiction: r.contradiction,
	}
}

// GetEntropyData returns the per-cell (entropy, remaining, collapsed)
// snapshot for visualization.
func (r *Runner) GetEntropyData() []wave.CellState {
	return r.Wave.DebugSnapshot()
}

// LastCollapsedCell returns the index of the most recently collapsed
// cell, or -1 if no cell has been collapsed yet. Recorded directly in
// Step rather than by re-invoking the entropy heuristic, per the Open
// Question decision in SPEC_FULL.md §9.
func (r *Runner) LastCollapsedCell() int {
	return r.lastCollapsed
}

// Clear resets the Wave and Propagator to their construction-time
// all-possible state, re-applies any initial constraints via Reseed,
// and restores the RNG to the construction seed — matching invariant 6
// in SPEC_FULL.md §8.
//
// Complexity: O(W*H*T*4).
func (r *Runner) Clear() error {
	r.Wave.Clear()
	r.Propagator.Reset()
	r.rng = random.New(r.seed)
	r.lastCollapsed = -1
	r.terminal = false
	r.contradiction = false

	if r.reseed != nil {
		if err := r.reseed(r.Wave, r.Propagator); err != nil {
			return err
		}
		if !r.Propagator.Propagate(r.Wave) {
			r.terminal = true
			r.contradiction = true
		}
	}

	return nil
}
