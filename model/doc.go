// Package model implements the single constraint-propagation core
// shared by both OverlappingModel and SimpleTiledModel: one Step is
// "select a cell via the configured heuristic, collapse it, push every
// deselected pattern to the propagator, drain the propagator to
// fixpoint" — identical between the two models per SPEC_FULL.md §4.4/
// §4.5 ("Step: identical to the overlapping model").
//
// Runner owns the Wave, the Propagator, and the RNG; it has no notion
// of pixels, tiles, or patterns beyond their integer indices, which is
// what lets both model packages embed it instead of re-implementing the
// observe/collapse/propagate loop.
//
// Complexity: Step is O(W*H) for the heuristic scan plus the amortized
// propagation cost described in package propagator's doc comment.
package model
