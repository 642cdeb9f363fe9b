package tiled

import (
	"errors"
	"log"

	"github.com/katalvlaran/wavecollapse/wave"
)

// Sentinel errors for SimpleTiledModel construction, wrapped with
// fmt.Errorf("tiled: %s: %w", ctx, ErrX) at the point of failure.
var (
	// ErrInvalidDimensions indicates W or H is non-positive.
	ErrInvalidDimensions = errors.New("tiled: output dimensions must be positive")
)

// config holds the resolved construction options for NewModel, built by
// applying each Option in order over sensible defaults, mirroring the
// overlapping package's config/newConfig pattern.
type config struct {
	heuristic       wave.Heuristic
	seed            uint32
	outW, outH      int
	outPeriodic     bool
	blackBackground bool
	subset          []string
	verbose         bool
	logger          *log.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		heuristic:       wave.HeuristicEntropy,
		seed:            0,
		outW:            16,
		outH:            16,
		outPeriodic:     true,
		blackBackground: false,
		verbose:         false,
		logger:          log.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option customizes SimpleTiledModel construction. As a rule, Option
// constructors never panic; validation happens once in NewModel.
type Option func(cfg *config)

// WithHeuristic selects the cell-choice policy for Step.
func WithHeuristic(h wave.Heuristic) Option {
	return func(cfg *config) { cfg.heuristic = h }
}

// WithSeed sets the mulberry32 seed driving every weighted draw.
func WithSeed(seed uint32) Option {
	return func(cfg *config) { cfg.seed = seed }
}

// WithOutputSize sets the output grid's W×H (in tiles) and whether it
// wraps toroidally.
func WithOutputSize(w, h int, periodic bool) Option {
	return func(cfg *config) {
		cfg.outW = w
		cfg.outH = h
		cfg.outPeriodic = periodic
	}
}

// WithBlackBackground makes Render stamp opaque black for uncollapsed
// cells instead of blending their still-possible tiles.
func WithBlackBackground(black bool) Option {
	return func(cfg *config) { cfg.blackBackground = black }
}

// WithTileSubset restricts the active tile list to the named tiles
// before assembly; passed through to tileset.Assemble.
func WithTileSubset(names ...string) Option {
	return func(cfg *config) { cfg.subset = names }
}

// WithVerbose emits deterministic, human-readable construction progress
// (tile/variant counts, propagator arc counts) to logger via the
// standard log package. logger defaults to log.Default() when nil.
func WithVerbose(verbose bool, logger *log.Logger) Option {
	return func(cfg *config) {
		cfg.verbose = verbose
		if logger != nil {
			cfg.logger = logger
		}
	}
}
