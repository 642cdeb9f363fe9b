package wave

import "errors"

// Sentinel errors for Wave construction. Follows the engine-wide policy:
// package-level sentinels only, wrapped with fmt.Errorf("wave: %w", ...)
// at the call site, never stringified.
var (
	// ErrNoPatterns indicates an empty weights slice (T==0).
	ErrNoPatterns = errors.New("wave: pattern set must be non-empty")
	// ErrZeroWeightSum indicates every weight is zero, so no pattern could
	// ever be drawn by Collapse.
	ErrZeroWeightSum = errors.New("wave: sum of weights must be positive")
	// ErrNegativeWeight indicates a weight below zero, which would corrupt
	// the weighted-draw accumulation in Collapse.
	ErrNegativeWeight = errors.New("wave: weights must be non-negative")
)

// Heuristic selects the policy Wave.SelectCell uses to pick the next
// cell to collapse.
type Heuristic int

const (
	// HeuristicEntropy picks the uncollapsed cell with lowest Shannon
	// entropy, breaking ties with lazily-drawn noise below the smallest
	// possible entropy gap (see noiseScale in New).
	HeuristicEntropy Heuristic = iota
	// HeuristicMRV (Minimum Remaining Values) picks the uncollapsed cell
	// with the fewest still-possible patterns, tie-broken by reservoir
	// sampling over the RNG.
	HeuristicMRV
	// HeuristicScanline resumes from an internal cursor and returns the
	// first uncollapsed cell at or after it, left-to-right top-to-bottom,
	// never wrapping.
	HeuristicScanline
)

// Sentinel return values shared by all three heuristics.
const (
	// SelectDone indicates every cell is already collapsed.
	SelectDone = -1
	// SelectContradiction indicates some cell has zero remaining patterns.
	SelectContradiction = -2
)

// CellState is a read-only snapshot of one cell, used by
// Wave.DebugSnapshot and surfaced to callers via the model layer's
// GetEntropyData.
type CellState struct {
	Entropy   float64
	Remaining int
	Collapsed bool
}
