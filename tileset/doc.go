// Package tileset assembles a SimpleTiledModel's pattern table from a
// list of named tiles (symmetry class, weight, square pixel buffer) and
// a list of neighbor-adjacency rules, per SPEC_FULL.md §4.5.
//
// Each tile's symmetry class determines how many rotation/reflection
// variants it has and how an 8-entry action table maps the symmetry
// group's operations onto global variant indices; neighbor rules are
// expanded through that action table into every implied adjacency
// before conversion to the engine's sparse propagator.CompatTable.
//
package tileset
