package tiled

import (
	"fmt"
	"log"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/model"
	"github.com/katalvlaran/wavecollapse/tileset"
)

// Model is the SimpleTiledModel of SPEC_FULL.md §4.5: a shared
// model.Runner driving an assembled tile set. It embeds *model.Runner,
// so Step/Run/GetState/GetEntropyData/Clear/LastCollapsedCell are all
// available directly on Model.
type Model struct {
	*model.Runner

	dims     grid.Dims
	tileSize int
	asm      *tileset.Assembly
	black    bool
	verbose  bool
	logger   *log.Logger
}

// NewModel assembles tiles and rules into variant/compat tables via
// tileset.Assemble, then constructs the shared Runner over them.
//
// Complexity: O(T) to expand variants, O(len(rules)) to populate the
// dense relation, O(T²) to convert dense to sparse, per SPEC_FULL.md §4.5.
func NewModel(tiles []tileset.Tile, rules []tileset.Rule, opts ...Option) (*Model, error) {
	cfg := newConfig(opts...)
	if cfg.outW <= 0 || cfg.outH <= 0 {
		return nil, fmt.Errorf("tiled: NewModel: %w", ErrInvalidDimensions)
	}

	var asmOpts []tileset.Option
	if cfg.subset != nil {
		asmOpts = append(asmOpts, tileset.WithTileSubset(cfg.subset...))
	}
	asm, err := tileset.Assemble(tiles, rules, asmOpts...)
	if err != nil {
		return nil, fmt.Errorf("tiled: NewModel: %w", err)
	}
	if cfg.verbose {
		cfg.logger.Printf("tiled: assembled %d tile variants from %d rules", len(asm.Weights), len(rules))
	}

	dims, err := grid.NewDims(cfg.outW, cfg.outH, cfg.outPeriodic)
	if err != nil {
		return nil, fmt.Errorf("tiled: NewModel: %w", err)
	}

	runner, err := model.New(dims, asm.Weights, asm.Compat, cfg.heuristic, cfg.seed, nil)
	if err != nil {
		return nil, fmt.Errorf("tiled: NewModel: %w", err)
	}
	if cfg.verbose {
		cfg.logger.Printf("tiled: propagator compatibility graph has %d arcs", runner.Propagator.CompatibilityGraph().EdgeCount())
	}

	return &Model{
		Runner:   runner,
		dims:     dims,
		tileSize: asm.TileSize,
		asm:      asm,
		black:    cfg.blackBackground,
		verbose:  cfg.verbose,
		logger:   cfg.logger,
	}, nil
}

// Dims returns the output grid's dimensions, in tiles.
func (m *Model) Dims() grid.Dims { return m.dims }

// NumVariants returns the count of assembled tile variants.
func (m *Model) NumVariants() int { return len(m.asm.Weights) }
