// Package compatgraph exposes a Propagator's pattern-compatibility
// relation as a small directed, direction-labeled graph, for
// introspection and invariant-checking only — it is never consulted on
// the hot propagate() path, which always walks the compat[t][d]
// slices directly.
//
// Graph uses a plain adjacency-list-of-maps shape: PatternVertex carries
// a pattern index as its ID, CompatEdge carries a grid.Direction as its
// label. There is no thread-safety, multigraph, or weighted/unweighted
// mode to speak of: a compatibility graph is built once, read-only, from
// a single Propagator, and never mutated concurrently.
package compatgraph
