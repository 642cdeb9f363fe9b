package tileset

import (
	"fmt"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/propagator"
)

// Option customizes Assemble: a function mutating an unexported config
// before assembly.
type Option func(cfg *assembleConfig)

type assembleConfig struct {
	subset map[string]bool
}

// WithTileSubset restricts the active tile list (and, transitively, the
// variant/action indices and neighbor rules derived from it) to the
// named tiles. A rule naming a tile outside the subset is dropped,
// per SPEC_FULL.md §4.5's Expansion note.
func WithTileSubset(names ...string) Option {
	return func(cfg *assembleConfig) {
		cfg.subset = make(map[string]bool, len(names))
		for _, n := range names {
			cfg.subset[n] = true
		}
	}
}

// Assembly is the result of assembling a tile list and neighbor rules
// into the engine's pattern table: one entry per global variant index.
type Assembly struct {
	TileSize     int
	TileName     []string   // TileName[v] is the owning tile's name
	TileIndex    []int      // TileIndex[v] is the owning tile's index in the active list
	Pixels       [][]uint32 // Pixels[v] is variant v's size*size pixel buffer
	Weights      []float64  // Weights[v] is variant v's collapse weight
	Fingerprints []uint64   // Fingerprints[v], for duplicate-variant diagnostics
	Compat       propagator.CompatTable
}

// Assemble builds an Assembly from tiles and rules, per SPEC_FULL.md
// §4.5: each tile is expanded into Class.Cardinality() variants via an
// 8-entry action table, neighbor rules are expanded through that table
// into every implied adjacency, and the resulting dense relation is
// converted to a sparse propagator.CompatTable.
//
// Complexity: O(T) to expand variants, O(len(rules)) to populate the
// dense relation, O(T²) to convert dense to sparse.
func Assemble(tiles []Tile, rules []Rule, opts ...Option) (*Assembly, error) {
	cfg := &assembleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	active := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if cfg.subset == nil || cfg.subset[t.Name] {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil, fmt.Errorf("tileset: Assemble: %w", ErrEmptyTileSet)
	}

	size := active[0].Size
	var sumWeight float64
	firstOccurrence := make(map[string]int, len(active))
	action := make([][8]int, 0)
	pixels := make([][]uint32, 0)
	weights := make([]float64, 0)
	tileName := make([]string, 0)
	tileIndex := make([]int, 0)
	fingerprints := make([]uint64, 0)

	for ti, t := range active {
		if t.Size != size {
			return nil, fmt.Errorf("tileset: Assemble: tile %q: %w", t.Name, ErrInconsistentSize)
		}
		if len(t.Pixels) != t.Size*t.Size {
			return nil, fmt.Errorf("tileset: Assemble: tile %q: %w", t.Name, ErrMalformedPixels)
		}

		tileBase := len(action)
		firstOccurrence[t.Name] = tileBase
		action = append(action, buildAction(t.Class, tileBase)...)

		for _, vp := range variantPixels(t.Pixels, size, t.Class) {
			pixels = append(pixels, vp)
			weights = append(weights, t.Weight)
			tileName = append(tileName, t.Name)
			tileIndex = append(tileIndex, ti)
			fingerprints = append(fingerprints, fingerprint(vp))
			sumWeight += t.Weight
		}
	}
	if sumWeight <= 0 {
		return nil, fmt.Errorf("tileset: Assemble: %w", ErrZeroWeightSum)
	}

	total := len(action)
	denseLeft := make([][]bool, total)
	denseDown := make([][]bool, total)
	for v := range denseLeft {
		denseLeft[v] = make([]bool, total)
		denseDown[v] = make([]bool, total)
	}

	for _, r := range rules {
		lBase, lok := firstOccurrence[r.Left]
		rBase, rok := firstOccurrence[r.Right]
		if !lok || !rok {
			if cfg.subset != nil {
				// A rule naming a tile outside the active subset is
				// dropped silently, per SPEC_FULL.md §4.5's Expansion note.
				continue
			}
			missing := r.Left
			if lok {
				missing = r.Right
			}

			return nil, fmt.Errorf("tileset: Assemble: %w: %s", ErrUnknownTileInRule, missing)
		}

		Lv := action[lBase][r.LeftVariant]
		Rv := action[rBase][r.RightVariant]
		Dv := action[Rv][1]
		Uv := action[Lv][1]

		// "right-of" axis: fact (x,y) means x tolerates y to its left.
		denseLeft[Rv][Lv] = true
		denseLeft[action[Rv][6]][action[Lv][6]] = true
		denseLeft[action[Lv][4]][action[Rv][4]] = true
		denseLeft[action[Lv][2]][action[Rv][2]] = true

		// "down" axis: fact (x,y) means x tolerates y below it.
		denseDown[Dv][Uv] = true
		denseDown[action[Dv][6]][action[Uv][6]] = true
		denseDown[action[Uv][4]][action[Dv][4]] = true
		denseDown[action[Uv][2]][action[Dv][2]] = true
	}

	denseRight := make([][]bool, total)
	denseUp := make([][]bool, total)
	for v := range denseRight {
		denseRight[v] = make([]bool, total)
		denseUp[v] = make([]bool, total)
	}
	for t1 := 0; t1 < total; t1++ {
		for t2 := 0; t2 < total; t2++ {
			denseRight[t2][t1] = denseLeft[t1][t2]
			denseUp[t2][t1] = denseDown[t1][t2]
		}
	}

	dense := [grid.NumDirections][][]bool{grid.Left: denseLeft, grid.Down: denseDown, grid.Right: denseRight, grid.Up: denseUp}

	compat := make(propagator.CompatTable, total)
	for t1 := 0; t1 < total; t1++ {
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			for t2 := 0; t2 < total; t2++ {
				if dense[d][t1][t2] {
					compat[t1][d] = append(compat[t1][d], t2)
				}
			}
		}
	}

	return &Assembly{
		TileSize:     size,
		TileName:     tileName,
		TileIndex:    tileIndex,
		Pixels:       pixels,
		Weights:      weights,
		Fingerprints: fingerprints,
		Compat:       compat,
	}, nil
}
