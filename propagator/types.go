package propagator

import "errors"

// Sentinel errors for Propagator construction.
var (
	// ErrPatternCompatLength indicates compat does not have exactly T
	// entries. The per-direction slices themselves are not validated.
	ErrPatternCompatLength = errors.New("propagator: compat table must have one entry per pattern")
)

// CompatTable is the compat[t][d] relation in sparse list form: for pattern t and
// direction d, the list of patterns that may lie in direction d from t.
// Index d with grid.Direction (Left=0, Down=1, Right=2, Up=3).
type CompatTable [][4][]int

// cellPattern is one entry of the work stack: pattern `Pattern` was
// just removed from the Wave at cell `Cell`.
type cellPattern struct {
	Cell    int
	Pattern int
}
