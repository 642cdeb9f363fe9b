package wave

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/random"
)

// Wave is the per-cell pattern-possibility table described in
// SPEC_FULL.md §3/§4.2. The zero value is not usable; construct with New.
type Wave struct {
	dims  grid.Dims
	T     int
	words int // uint64 words per cell's bitset, (T+63)/64

	weights []float64 // w_t, immutable after construction
	plogp   []float64 // p_t * log(p_t), immutable after construction

	possible [][]uint64 // possible[i] is a bitset over T patterns

	remaining []int
	sum       []float64
	plogpSum  []float64
	logSum    []float64
	entropy   []float64

	startingEntropy float64
	noiseScale      float64
	scanCursor      int

	// initial holds the construction-time values so Clear can restore
	// them exactly without recomputing from weights.
	initial waveSnapshot
}

// waveSnapshot captures the all-possible starting state, precomputed
// once so Clear() is O(W*H*words) instead of redoing the weight math.
type waveSnapshot struct {
	sum      float64
	plogpSum float64
	logSum   float64
	entropy  float64
}

// New constructs a Wave over dims.Len() cells and len(weights) patterns.
// weights must be non-empty, non-negative, and sum to a positive value
// (the "Numeric zero-sum" error class in SPEC_FULL.md §7).
//
// Complexity: O(T) to precompute weight statistics, O(W*H*words) to
// initialize every cell to all-possible.
func New(dims grid.Dims, weights []float64) (*Wave, error) {
	t := len(weights)
	if t == 0 {
		return nil, ErrNoPatterns
	}

	var sumW float64
	for _, w := range weights {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
		sumW += w
	}
	if sumW <= 0 {
		return nil, ErrZeroWeightSum
	}

	plogp := make([]float64, t)
	var plogpSumAll float64
	minAbsPlogp := math.Inf(1)
	for i, w := range weights {
		if w == 0 {
			plogp[i] = 0
			continue
		}
		p := w / sumW
		pl := p * math.Log(p)
		plogp[i] = pl
		plogpSumAll += pl
		if a := math.Abs(pl); a < minAbsPlogp {
			minAbsPlogp = a
		}
	}
	if math.IsInf(minAbsPlogp, 1) {
		// Every weight was zero, but ErrZeroWeightSum already guards
		// against sumW<=0, so this only happens if sumW>0 yet every
		// individual weight is 0, which is impossible; kept defensively.
		minAbsPlogp = 0
	}

	startingEntropy := math.Log(sumW) - plogpSumAll
	if t == 1 {
		// A single-pattern wave starts collapsed, so its entropy is 0.
		startingEntropy = 0
	}
	noiseScale := minAbsPlogp / 2

	words := (t + 63) / 64
	n := dims.Len()

	w := &Wave{
		dims:            dims,
		T:               t,
		words:           words,
		weights:         weights,
		plogp:           plogp,
		possible:        make([][]uint64, n),
		remaining:       make([]int, n),
		sum:             make([]float64, n),
		plogpSum:        make([]float64, n),
		logSum:          make([]float64, n),
		entropy:         make([]float64, n),
		startingEntropy: startingEntropy,
		noiseScale:      noiseScale,
		initial: waveSnapshot{
			sum:      sumW,
			plogpSum: plogpSumAll,
			logSum:   math.Log(sumW),
			entropy:  startingEntropy,
		},
	}

	w.resetCells()

	return w, nil
}

// fullMaskLastWord returns the bitmask for the final word of a cell's
// bitset, which may have fewer than 64 live bits when T is not a
// multiple of 64.
func (w *Wave) fullMaskLastWord() uint64 {
	rem := w.T % 64
	if rem == 0 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(rem)) - 1
}

// resetCells sets every cell back to all-patterns-possible and the
// construction-time memoized scalars. Shared by New and Clear.
func (w *Wave) resetCells() {
	lastMask := w.fullMaskLastWord()
	for i := 0; i < w.dims.Len(); i++ {
		bs := make([]uint64, w.words)
		for wi := 0; wi < w.words; wi++ {
			bs[wi] = ^uint64(0)
		}
		if w.words > 0 {
			bs[w.words-1] &= lastMask
		}
		w.possible[i] = bs
		w.remaining[i] = w.T
		w.sum[i] = w.initial.sum
		w.plogpSum[i] = w.initial.plogpSum
		w.logSum[i] = w.initial.logSum
		w.entropy[i] = w.initial.entropy
	}
	w.scanCursor = 0
}

// Clear resets the wave to its construction-time all-possible state.
// Callers that seed initial constraints (e.g. a ground row) must
// re-apply them after Clear, exactly as at construction.
//
// Complexity: O(W*H*words).
func (w *Wave) Clear() {
	w.resetCells()
}

// Dims returns the grid dimensions this wave was built over.
func (w *Wave) Dims() grid.Dims { return w.dims }

// NumPatterns returns T, the size of the pattern set.
func (w *Wave) NumPatterns() int { return w.T }

// Get reports whether pattern t is still possible at cell i.
//
// Complexity: O(1).
func (w *Wave) Get(i, t int) bool {
	return w.possible[i][t>>6]&(uint64(1)<<uint(t&63)) != 0
}

// Possible returns the still-possible pattern indices at cell i, in
// index order.
//
// Complexity: O(T/64 + remaining[i]).
func (w *Wave) Possible(i int) []int {
	out := make([]int, 0, w.remaining[i])
	for wi := 0; wi < w.words; wi++ {
		word := w.possible[i][wi]
		base := wi * 64
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, base+b)
			word &= word - 1
		}
	}

	return out
}

// RemainingAt returns remaining[i], the popcount of cell i's mask.
func (w *Wave) RemainingAt(i int) int { return w.remaining[i] }

// Entropy returns the memoized entropy[i].
func (w *Wave) Entropy(i int) float64 { return w.entropy[i] }

// Observed returns the sole still-possible pattern at a collapsed cell,
// or -1 if the cell is not (yet) collapsed to exactly one pattern.
//
// Complexity: O(T/64).
func (w *Wave) Observed(i int) int {
	if w.remaining[i] != 1 {
		return -1
	}
	for wi := 0; wi < w.words; wi++ {
		if w.possible[i][wi] != 0 {
			return wi*64 + bits.TrailingZeros64(w.possible[i][wi])
		}
	}

	return -1
}

// Remove clears bit t of cell i's mask and updates the memoized scalars
// in lockstep. It is idempotent: removing an already-absent pattern is
// a no-op that returns false.
//
// Complexity: O(1).
func (w *Wave) Remove(i, t int) bool {
	word := t >> 6
	bit := uint64(1) << uint(t&63)
	if w.possible[i][word]&bit == 0 {
		return false
	}
	w.possible[i][word] &^= bit

	w.plogpSum[i] -= w.plogp[t]
	w.sum[i] -= w.weights[t]
	w.remaining[i]--

	if w.sum[i] > 0 {
		w.logSum[i] = math.Log(w.sum[i])
	}
	if w.sum[i] > 0 && w.remaining[i] > 1 {
		w.entropy[i] = w.logSum[i] - w.plogpSum[i]/w.sum[i]
	} else {
		w.entropy[i] = 0
	}

	return true
}

// DebugSnapshot returns a read-only view of every cell's (entropy,
// remaining, collapsed) triple, in row-major order. Used by the model
// layer's GetEntropyData and by invariant tests; never consulted on the
// propagation hot path.
//
// Complexity: O(W*H).
func (w *Wave) DebugSnapshot() []CellState {
	out := make([]CellState, w.dims.Len())
	for i := range out {
		out[i] = CellState{
			Entropy:   w.entropy[i],
			Remaining: w.remaining[i],
			Collapsed: w.remaining[i] == 1,
		}
	}

	return out
}

// Collapse picks one still-possible pattern at cell i via a weighted
// random draw and removes every other still-possible pattern, returning
// the chosen pattern index. Callers MUST push each removed pattern to
// the propagator's work stack and then propagate to fixpoint.
//
// Returns -1 if cell i already has no possible patterns (a pre-existing
// contradiction); requires RemainingAt(i) >= 1 otherwise.
//
// Complexity: O(T) worst case (one weighted scan plus one removal pass).
func (w *Wave) Collapse(i int, rng *random.Source) (chosen int, removed []int) {
	if w.remaining[i] == 0 {
		return -1, nil
	}

	target := rng.Next() * w.sum[i]

	chosen = -1
	lastPossible := -1
	var acc float64
	for t := 0; t < w.T; t++ {
		if !w.Get(i, t) {
			continue
		}
		lastPossible = t
		acc += w.weights[t]
		if acc >= target {
			chosen = t
			break
		}
	}
	if chosen == -1 {
		// Rounding edge case: no running sum reached target. Spec's
		// tie-break is to take the last still-possible pattern.
		chosen = lastPossible
	}

	removed = make([]int, 0, w.remaining[i]-1)
	for t := 0; t < w.T; t++ {
		if t == chosen || !w.Get(i, t) {
			continue
		}
		w.Remove(i, t)
		removed = append(removed, t)
	}

	return chosen, removed
}
