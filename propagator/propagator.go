package propagator

import (
	"github.com/katalvlaran/wavecollapse/compatgraph"
	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/wave"
)

// Propagator drives Wave removals to an arc-consistency fixpoint. It
// owns the per-cell compatible-count table and the LIFO work stack;
// compat itself (the pattern-level relation) is immutable once built.
type Propagator struct {
	dims   grid.Dims
	T      int
	compat CompatTable

	// count[i][t][d] is indexed count[i][t*4+int(d)] for locality; see
	// countIndex.
	count []int32

	stack []cellPattern
}

// countIndex maps (cell,pattern,direction) to an offset into the flat
// count slice, avoiding T*4 small allocations per cell.
func (p *Propagator) countIndex(i, t int, d grid.Direction) int {
	return (i*p.T+t)*grid.NumDirections + int(d)
}

// New builds a Propagator over dims and T patterns from the compat
// relation. It precomputes count[i][t][d] = |compat[t][d]| for
// every cell with a neighbor in direction d, and 0 where the grid is
// non-periodic and d would cross the boundary (SPEC_FULL.md §3/§4.3).
//
// Complexity: O(W*H*T*4).
func New(dims grid.Dims, t int, compat CompatTable) (*Propagator, error) {
	if len(compat) != t {
		return nil, ErrPatternCompatLength
	}

	p := &Propagator{
		dims:   dims,
		T:      t,
		compat: compat,
		count:  make([]int32, dims.Len()*t*grid.NumDirections),
		stack:  make([]cellPattern, 0, dims.Len()*t),
	}
	p.rebuildCounts()

	return p, nil
}

// rebuildCounts recomputes count[i][t][d] from compat for every cell,
// shared by New and Reset.
func (p *Propagator) rebuildCounts() {
	n := p.dims.Len()
	for i := 0; i < n; i++ {
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			_, hasNeighbor := grid.Neighbor(p.dims, i, d)
			for t := 0; t < p.T; t++ {
				idx := p.countIndex(i, t, d)
				if hasNeighbor {
					p.count[idx] = int32(len(p.compat[t][d]))
				} else {
					p.count[idx] = 0
				}
			}
		}
	}
}

// Reset rebuilds count from compat and empties the work stack, without
// touching the Wave (callers reset the Wave separately via Wave.Clear).
//
// Complexity: O(W*H*T*4).
func (p *Propagator) Reset() {
	p.rebuildCounts()
	p.stack = p.stack[:0]
}

// AddToPropagate pushes (cell,pattern) onto the work stack. The caller
// is responsible for having already removed the bit from the Wave (or
// calling this immediately after Wave.Remove/Collapse reports a
// removal).
//
// Complexity: O(1) amortized.
func (p *Propagator) AddToPropagate(cell, pattern int) {
	p.stack = append(p.stack, cellPattern{Cell: cell, Pattern: pattern})
}

// Propagate drains the work stack to fixpoint against w, cascading
// further removals as compatibility counts hit zero. It returns false
// the moment any cell's remaining count reaches zero (a contradiction);
// the stack is left non-empty in that case, matching the "partial
// propagation state is never observed by callers" contract — the only
// caller-visible effect is the boolean result and the Wave's new state.
//
// Complexity: amortized O(total removals * average |compat|) across a
// whole run, since each count can be decremented to zero only once.
func (p *Propagator) Propagate(w *wave.Wave) bool {
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			j, ok := grid.Neighbor(p.dims, top.Cell, d)
			if !ok {
				continue
			}

			opp := grid.Opposite[d]
			for _, t2 := range p.compat[top.Pattern][d] {
				idx := p.countIndex(j, t2, opp)
				p.count[idx]--
				if p.count[idx] == 0 && w.Get(j, t2) {
					w.Remove(j, t2)
					p.AddToPropagate(j, t2)
					if w.RemainingAt(j) == 0 {
						return false
					}
				}
			}
		}
	}

	return true
}

// CompatibilityGraph exposes compat[t][d] as a compatgraph.Graph for
// introspection and invariant tests (see SPEC_FULL.md §4.3 Expansion).
// It is built fresh on every call and never cached, since compat is
// small relative to a typical test's lifetime and this method is never
// on the hot path.
//
// Complexity: O(T*4*average |compat|).
func (p *Propagator) CompatibilityGraph() *compatgraph.Graph {
	g := compatgraph.New()
	for t := 0; t < p.T; t++ {
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			for _, t2 := range p.compat[t][d] {
				g.AddEdge(t, t2, d)
			}
		}
	}

	return g
}
