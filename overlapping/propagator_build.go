package overlapping

import (
	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/propagator"
)

// agree reports whether patches p and q (both N×N color-index arrays)
// agree pixelwise on their overlap region when q is shifted by
// (dx,dy) relative to p: p[x,y] = q[x-dx,y-dy] for every (x,y) in the
// intersection of p's N×N grid with q's grid shifted by (dx,dy).
//
// Complexity: O(N²) worst case.
func agree(p, q []int, n, dx, dy int) bool {
	xmin, xmax := 0, n
	if dx > 0 {
		xmin = dx
	} else {
		xmax = n + dx
	}
	ymin, ymax := 0, n
	if dy > 0 {
		ymin = dy
	} else {
		ymax = n + dy
	}

	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p[x+y*n] != q[(x-dx)+(y-dy)*n] {
				return false
			}
		}
	}

	return true
}

// buildCompat computes compat[t1][d] = {t2 : agree(t1, t2, DX[d], DY[d])}
// for every ordered pair of patterns and direction, per SPEC_FULL.md
// §4.4's propagator build.
//
// Complexity: O(T² * N²).
func buildCompat(patterns [][]int, n int) propagator.CompatTable {
	t := len(patterns)
	compat := make(propagator.CompatTable, t)

	for t1 := 0; t1 < t; t1++ {
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			for t2 := 0; t2 < t; t2++ {
				if agree(patterns[t1], patterns[t2], n, grid.DX[d], grid.DY[d]) {
					compat[t1][d] = append(compat[t1][d], t2)
				}
			}
		}
	}

	return compat
}
