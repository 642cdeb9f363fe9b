// Package grid provides the coordinate system shared by Wave, Propagator,
// and both model builders: a W×H rectangle of cells addressed by a
// row-major index i = x + y*W, with optional toroidal wraparound and a
// fixed four-directional neighbor scheme.
//
// What:
//
//   - Dims describes the rectangle's size.
//   - Direction constants Left, Down, Right, Up with their (dx,dy) deltas and Opposite.
//   - Index/Coordinate convert between (x,y) and the row-major index i.
//   - Neighbor resolves the cell in a direction from i, honoring Dims'
//     Periodic flag (toroidal wrap) or returning ok=false at a clipped edge.
//
// Why:
//
//   - Every component that walks the neighbor graph (Propagator.propagate,
//     both renderers, the ground-constraint seeder) needs the exact same
//     answer to "what cell is to the left of i, and does it exist". Factoring
//     this once avoids four independent (and driftable) reimplementations.
//
// Grounded on gridgraph.GridGraph (InBounds, neighborOffsets, index/Coordinate),
// generalized from gridgraph's Conn4/Conn8 connectivity to the engine's fixed
// four-directional {L,D,R,U} scheme with a single Periodic flag covering both
// axes (the source distinguishes horizontal/vertical periodicity only for the
// overlapping model's *input* sampling, never for the *output* grid).
//
// Complexity: Index/Coordinate/Neighbor are all O(1).
package grid
