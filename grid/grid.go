package grid

// Index maps (x,y) to the row-major cell index i = x + y*W.
//
// Complexity: O(1).
func Index(d Dims, x, y int) int {
	return x + y*d.W
}

// Coordinate converts a row-major index back to (x,y).
//
// Complexity: O(1).
func Coordinate(d Dims, i int) (x, y int) {
	return i % d.W, i / d.W
}

// InBounds reports whether (x,y) lies within the rectangle described by d.
// Periodic grids always report true for coordinates that wrap; callers
// that need raw bounds checking before wrapping use InBoundsRaw.
//
// Complexity: O(1).
func InBounds(d Dims, x, y int) bool {
	if d.Periodic {
		return true
	}

	return x >= 0 && x < d.W && y >= 0 && y < d.H
}

// InBoundsRaw reports whether (x,y) lies within [0,W)x[0,H) ignoring
// Periodic. Used internally before folding periodic coordinates.
func InBoundsRaw(d Dims, x, y int) bool {
	return x >= 0 && x < d.W && y >= 0 && y < d.H
}

// floorMod returns a mod m in [0,m), unlike Go's %, which can be negative.
func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// Neighbor resolves the cell adjacent to i in direction dir. If d.Periodic,
// the result always exists and wraps toroidally; otherwise ok is false
// when the neighbor would fall outside the rectangle (clipped edge), and
// j is meaningless in that case.
//
// Complexity: O(1).
func Neighbor(d Dims, i int, dir Direction) (j int, ok bool) {
	x, y := Coordinate(d, i)
	nx, ny := x+DX[dir], y+DY[dir]

	if d.Periodic {
		nx = floorMod(nx, d.W)
		ny = floorMod(ny, d.H)

		return Index(d, nx, ny), true
	}

	if !InBoundsRaw(d, nx, ny) {
		return 0, false
	}

	return Index(d, nx, ny), true
}

// WrapCoordinate folds (x,y) into [0,W)x[0,H) when periodic is true; used
// by the overlapping model's periodicInput sampling, which wraps
// independently of the output grid's own Periodic flag.
//
// Complexity: O(1).
func WrapCoordinate(w, h, x, y int, periodic bool) (nx, ny int, ok bool) {
	if periodic {
		return floorMod(x, w), floorMod(y, h), true
	}
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, false
	}

	return x, y, true
}
