// Package propagator implements the engine's arc-consistency core: a
// per-(cell,pattern,direction) compatible-count table and a LIFO work
// stack that together drive a Wave to fixpoint after each removal.
//
// What:
//
//   - New precomputes count[i][t][d] from the compat[t][d] relation
//     (see SPEC_FULL.md §3/§4.3).
//   - AddToPropagate pushes a (cell, removed-pattern) pair.
//   - Propagate drains the stack, decrementing counts and cascading
//     further removals into the Wave, until it reaches fixpoint or a
//     cell's Wave.RemainingAt reaches zero (a contradiction).
//
// Why:
//
//   - The naive alternative — on every removal, recheck every neighbor's
//     every pattern against the surviving compat set — is the dominant
//     cost of a slow WFC implementation. Maintaining a decrementing
//     count per (cell,pattern,direction) turns that recheck into "does
//     this counter happen to be zero", which is the entire point of
//     this type (SPEC_FULL.md §9, "Compatibility counts, not boolean
//     recheck").
//
// Complexity: New is O(W*H*T*4); each Propagate call is O(removals *
// average |compat|), amortized across the whole run to
// O(W*H*T*4*average |compat|) total, since every (cell,pattern) pair
// can be removed, and so pushed, at most once.
package propagator
