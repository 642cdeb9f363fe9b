package overlapping

import (
	"fmt"
	"log"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/model"
	"github.com/katalvlaran/wavecollapse/propagator"
	"github.com/katalvlaran/wavecollapse/wave"
)

// Model is the Overlapping Model of SPEC_FULL.md §4.4: a shared
// model.Runner driving patterns extracted from a sample bitmap. It
// embeds *model.Runner, so Step/Run/GetState/GetEntropyData/Clear/
// LastCollapsedCell are all available directly on Model.
type Model struct {
	*model.Runner

	dims     grid.Dims
	patternN int
	palette  []uint32
	patterns [][]int
	ground   bool
	verbose  bool
	logger   *log.Logger
}

// NewModel quantizes pixels to a color-index sample, extracts patterns
// per the configured options, builds the overlap-agreement compat
// table, and constructs the shared Runner over it.
//
// Complexity: O(sampleW*sampleH*symmetry*N²) for extraction plus
// O(T²*N²) for the compat build, per SPEC_FULL.md §4.4.
func NewModel(pixels []uint32, sampleW, sampleH int, opts ...Option) (*Model, error) {
	if sampleW <= 0 || sampleH <= 0 {
		return nil, fmt.Errorf("overlapping: NewModel: %w", ErrEmptySample)
	}

	cfg := newConfig(opts...)
	if cfg.patternSize < 2 || cfg.patternSize > 5 {
		return nil, fmt.Errorf("overlapping: NewModel: N=%d: %w", cfg.patternSize, ErrInvalidPatternSize)
	}
	if cfg.symmetry != 1 && cfg.symmetry != 2 && cfg.symmetry != 8 {
		return nil, fmt.Errorf("overlapping: NewModel: symmetry=%d: %w", cfg.symmetry, ErrInvalidSymmetry)
	}

	dims, err := grid.NewDims(cfg.outW, cfg.outH, cfg.outPeriodic)
	if err != nil {
		return nil, fmt.Errorf("overlapping: NewModel: %w", err)
	}

	sample, palette := quantize(pixels)
	patterns, weights := extractPatterns(sample, sampleW, sampleH, cfg.patternSize, cfg.symmetry, cfg.periodicInput)
	if len(patterns) == 0 {
		return nil, fmt.Errorf("overlapping: NewModel: %w", ErrEmptyPatternSet)
	}

	compat := buildCompat(patterns, cfg.patternSize)

	m := &Model{
		dims:     dims,
		patternN: cfg.patternSize,
		palette:  palette,
		patterns: patterns,
		ground:   cfg.ground,
		verbose:  cfg.verbose,
		logger:   cfg.logger,
	}
	if m.verbose {
		m.logger.Printf("overlapping: extracted %d patterns from a %dx%d sample", len(patterns), sampleW, sampleH)
	}

	var reseed model.Reseed
	if cfg.ground {
		reseed = m.reseedGround
	}

	runner, err := model.New(dims, weights, compat, cfg.heuristic, cfg.seed, reseed)
	if err != nil {
		return nil, fmt.Errorf("overlapping: NewModel: %w", err)
	}
	m.Runner = runner

	if m.verbose {
		m.logger.Printf("overlapping: propagator compatibility graph has %d arcs", runner.Propagator.CompatibilityGraph().EdgeCount())
	}

	return m, nil
}

// reseedGround implements the ground constraint of SPEC_FULL.md §4.4:
// before the first step, forbid all non-last patterns on the bottom
// row and forbid the last pattern everywhere else, per the Open
// Question decision in SPEC_FULL.md §9 (the highest-index pattern
// after dedup is the anchor).
func (m *Model) reseedGround(w *wave.Wave, p *propagator.Propagator) error {
	last := len(m.patterns) - 1
	if m.verbose {
		m.logger.Printf("overlapping: applying ground constraint, anchor pattern %d", last)
	}

	for y := 0; y < m.dims.H; y++ {
		for x := 0; x < m.dims.W; x++ {
			i := grid.Index(m.dims, x, y)
			if y == m.dims.H-1 {
				for t := 0; t < last; t++ {
					if w.Remove(i, t) {
						p.AddToPropagate(i, t)
					}
				}
				continue
			}
			if w.Remove(i, last) {
				p.AddToPropagate(i, last)
			}
		}
	}

	return nil
}

// Dims returns the output grid's dimensions.
func (m *Model) Dims() grid.Dims { return m.dims }

// NumPatterns returns the count of distinct patterns registered after
// symmetry-variant deduplication.
func (m *Model) NumPatterns() int { return len(m.patterns) }
