// Package wave implements the Wave: a dense per-cell boolean
// possibility table over a pattern set, with incrementally maintained
// Shannon entropy and popcount so that removals are O(1) amortized and
// never require a full rescan.
//
// What:
//
//   - Wave holds, per cell, a bitset over T patterns plus five memoized
//     scalars (remaining, sum, plogpSum, logSum, entropy) kept in sync by
//     Remove and Collapse.
//   - Three cell-selection heuristics (Entropy, MRV, Scanline) pick the
//     next cell for the solver to collapse.
//
// Why:
//
//   - The hot loop of the algorithm is "remove a bit, ask whether this
//     cell is now more certain than that one". Recomputing entropy from
//     scratch on every removal would make propagation quadratic in the
//     number of bits ever removed; memoizing it is the entire point of
//     this type (see SPEC_FULL.md §4.2).
//
// Invariants (see wave_test.go for the property checks):
//
//   - remaining[i] >= 1 while no contradiction has occurred at i.
//   - The memoized scalars always equal their from-scratch recompute.
//   - entropy[i] == 0 whenever remaining[i] <= 1.
//
// Complexity: construction O(W*H*T); Get/Remove O(1) amortized (bitset
// word op); Collapse O(T) worst case (weighted scan); heuristics O(W*H).
package wave
