// Package tiled implements the SimpleTiledModel: a model.Runner driven
// by a fixed tile set and explicit neighbor rules, as opposed to
// overlapping's sample-derived patterns. Tiles are expanded into
// symmetry variants and assembled into a propagator.CompatTable by the
// tileset package; this package wires that Assembly into a Runner and
// renders by stamping each cell's observed tile.
package tiled
