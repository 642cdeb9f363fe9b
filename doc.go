// Package wavecollapse is a Wave Function Collapse constraint-satisfaction
// engine: a shared observe/collapse/propagate core driving two models.
//
//	grid/        — W×H coordinate/neighbor arithmetic, periodic or bounded
//	wave/        — per-cell possibility masks, memoized entropy, weighted collapse
//	propagator/  — arc-consistency fixpoint propagation over a compatibility table
//	compatgraph/ — compatibility-table introspection (edge queries, arc counts)
//	random/      — mulberry32, the deterministic PRNG backing every weighted draw
//	model/       — the model-agnostic Runner (Step/Run/Clear) both models embed
//	overlapping/ — OverlappingModel: patterns extracted from a sample bitmap
//	tileset/     — symmetry-class expansion and neighbor-rule assembly for tiles
//	tiled/       — SimpleTiledModel: a Runner driven by an assembled tile set
//
// A run is deterministic given (seed, dims, model build): two identical
// inputs yield bit-identical collapse sequences and renders. Contradictions
// are terminal; there is no backtracking. See SPEC_FULL.md for the full
// design and DESIGN.md for the grounding of each package.
package wavecollapse
