// Package overlapping implements the Overlapping Model described in
// SPEC_FULL.md §4.4: patterns of N×N color indices are extracted from a
// sample bitmap (with up to 8 rotation/reflection variants, deduplicated
// by a stable hash), a compatibility relation is built from pixel-level
// overlap agreement, and the shared model.Runner core drives the
// observe/collapse/propagate loop over those patterns.
//
package overlapping
