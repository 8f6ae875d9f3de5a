package maze

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid indicates a nil grid was passed to Generate or Scatter.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrBadBraiding indicates a braiding ratio outside [0, 1].
	ErrBadBraiding = errors.New("maze: braiding must be in [0, 1]")

	// ErrBadDensity indicates a scatter density outside [0, 1).
	ErrBadDensity = errors.New("maze: density must be in [0, 1)")
)

// Options controls generation.
type Options struct {
	// Seed for the random source; 0 picks a time-based seed.
	Seed int64

	// Braiding is the probability that a dead end is joined to a neighboring
	// room, turning the spanning tree into a graph with cycles.
	//   0 → perfect maze (exactly one route between any two rooms)
	//   1 → no dead ends
	Braiding float64

	err error
}

// Option configures Generate and Scatter.
type Option func(*Options)

// DefaultOptions returns a time-seeded perfect maze configuration.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed fixes the random source so output is reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithBraiding sets the dead-end removal probability.
func WithBraiding(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: %v", ErrBadBraiding, p)
			return
		}
		o.Braiding = p
	}
}
