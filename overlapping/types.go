package overlapping

import (
	"errors"
	"log"

	"github.com/katalvlaran/wavecollapse/wave"
)

// Sentinel errors for OverlappingModel construction. Each is the
// "Invalid configuration" or "Numeric zero-sum" class named in
// SPEC_FULL.md §7, wrapped with fmt.Errorf("overlapping: %s: %w", ...)
// at the point of failure.
var (
	// ErrInvalidPatternSize indicates N is outside [2,5].
	ErrInvalidPatternSize = errors.New("overlapping: pattern size must be in [2,5]")
	// ErrInvalidSymmetry indicates symmetry is not one of {1,2,8}.
	ErrInvalidSymmetry = errors.New("overlapping: symmetry must be 1, 2, or 8")
	// ErrEmptyPatternSet indicates extraction produced zero patterns,
	// e.g. a sample too small to hold one N×N patch when non-periodic.
	ErrEmptyPatternSet = errors.New("overlapping: no patterns could be extracted from the sample")
	// ErrEmptySample indicates sampleW or sampleH is non-positive.
	ErrEmptySample = errors.New("overlapping: sample dimensions must be positive")
)

// config holds the resolved construction options for NewModel, built by
// applying each Option in order over sensible defaults.
type config struct {
	patternSize   int
	symmetry      int
	periodicInput bool
	ground        bool
	heuristic     wave.Heuristic
	seed          uint32
	outW, outH    int
	outPeriodic   bool
	verbose       bool
	logger        *log.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		patternSize:   3,
		symmetry:      8,
		periodicInput: false,
		ground:        false,
		heuristic:     wave.HeuristicEntropy,
		seed:          0,
		outW:          32,
		outH:          32,
		outPeriodic:   false,
		verbose:       false,
		logger:        log.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option customizes OverlappingModel construction. As a rule, Option
// constructors never panic; validation happens once in NewModel.
type Option func(cfg *config)

// WithPatternSize sets N, the side length of extracted patches.
func WithPatternSize(n int) Option {
	return func(cfg *config) { cfg.patternSize = n }
}

// WithSymmetry sets how many of the 8 rotation/reflection variants of
// each extracted patch are registered as distinct patterns.
func WithSymmetry(symmetry int) Option {
	return func(cfg *config) { cfg.symmetry = symmetry }
}

// WithPeriodicInput makes pattern extraction wrap around the sample's
// edges instead of stopping short of them.
func WithPeriodicInput(periodic bool) Option {
	return func(cfg *config) { cfg.periodicInput = periodic }
}

// WithGround enables the ground constraint: the bottom output row is
// forced to the last-registered pattern, forbidden everywhere else.
func WithGround(ground bool) Option {
	return func(cfg *config) { cfg.ground = ground }
}

// WithHeuristic selects the cell-choice policy for Step.
func WithHeuristic(h wave.Heuristic) Option {
	return func(cfg *config) { cfg.heuristic = h }
}

// WithSeed sets the mulberry32 seed driving every weighted draw.
func WithSeed(seed uint32) Option {
	return func(cfg *config) { cfg.seed = seed }
}

// WithOutputSize sets the output grid's W×H and whether it wraps
// toroidally.
func WithOutputSize(w, h int, periodic bool) Option {
	return func(cfg *config) {
		cfg.outW = w
		cfg.outH = h
		cfg.outPeriodic = periodic
	}
}

// WithVerbose emits deterministic, human-readable construction progress
// (pattern count, propagator arc counts, ground-constraint application)
// to logger via the standard log package. logger defaults to
// log.Default() when nil.
func WithVerbose(verbose bool, logger *log.Logger) Option {
	return func(cfg *config) {
		cfg.verbose = verbose
		if logger != nil {
			cfg.logger = logger
		}
	}
}
