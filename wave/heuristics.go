package wave

import "github.com/katalvlaran/wavecollapse/random"

// SelectCell picks the next cell to collapse under the given heuristic.
// All three policies skip already-collapsed cells (remaining==1) and
// return SelectContradiction immediately upon finding a cell with
// remaining==0, SelectDone if every cell is collapsed.
//
// Complexity: O(W*H) for Entropy and MRV; O(cells scanned since cursor)
// for Scanline, amortized O(W*H) across a full run.
func (w *Wave) SelectCell(h Heuristic, rng *random.Source) int {
	switch h {
	case HeuristicMRV:
		return w.selectMRV(rng)
	case HeuristicScanline:
		return w.selectScanline()
	default:
		return w.selectEntropy(rng)
	}
}

// selectEntropy implements the lazy-noise argmin scan from
// SPEC_FULL.md §4.2: noise is drawn only when a cell's raw entropy is
// already <= the current best, so cells that are clearly worse never
// consume an RNG draw (and so never perturb determinism for runs that
// never reach them).
func (w *Wave) selectEntropy(rng *random.Source) int {
	const inf = 1e18
	best := inf
	bestIdx := -1

	for i := 0; i < w.dims.Len(); i++ {
		if w.remaining[i] == 0 {
			return SelectContradiction
		}
		if w.remaining[i] == 1 {
			continue // already collapsed
		}

		e := w.entropy[i]
		if e > best {
			continue
		}
		noise := rng.Next() * w.noiseScale
		if e+noise < best {
			best = e + noise
			bestIdx = i
		}
	}

	if bestIdx == -1 {
		return SelectDone
	}

	return bestIdx
}

// selectMRV implements Minimum-Remaining-Values selection with
// reservoir-sampled tie-breaking: each time a new candidate ties the
// current minimum, it replaces the held candidate with probability
// 1/seen, yielding a uniform choice among all ties using exactly one
// RNG draw per tie rather than a second pass.
func (w *Wave) selectMRV(rng *random.Source) int {
	best := w.T + 1
	bestIdx := -1
	seenAtBest := 0

	for i := 0; i < w.dims.Len(); i++ {
		r := w.remaining[i]
		if r == 0 {
			return SelectContradiction
		}
		if r == 1 {
			continue
		}

		switch {
		case r < best:
			best = r
			bestIdx = i
			seenAtBest = 1
		case r == best:
			seenAtBest++
			if rng.NextInt(seenAtBest) == 0 {
				bestIdx = i
			}
		}
	}

	if bestIdx == -1 {
		return SelectDone
	}

	return bestIdx
}

// selectScanline resumes from the internal cursor and returns the first
// uncollapsed cell at index >= cursor, advancing the cursor past it.
// The cursor never wraps: once it passes the last cell, every
// subsequent call returns SelectDone. A contradiction at or after the
// cursor is reported here; propagate() remains the canonical detector
// for contradictions anywhere else in the grid.
func (w *Wave) selectScanline() int {
	n := w.dims.Len()
	for i := w.scanCursor; i < n; i++ {
		if w.remaining[i] == 0 {
			return SelectContradiction
		}
		if w.remaining[i] == 1 {
			continue
		}
		w.scanCursor = i + 1

		return i
	}
	w.scanCursor = n

	return SelectDone
}
