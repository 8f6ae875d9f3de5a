package tui

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/render"
)

// Sentinel errors returned by the terminal front end.
var (
	// ErrNilScreen indicates New was called without a screen.
	ErrNilScreen = errors.New("tui: screen is nil")

	// ErrNilDriver indicates New was called without a driver.
	ErrNilDriver = errors.New("tui: driver is nil")

	// ErrScreenTooSmall indicates the terminal cannot hold the grid and status line.
	ErrScreenTooSmall = errors.New("tui: screen too small for grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tui: invalid option supplied")
)

// Options configures an App.
type Options struct {
	// FrameInterval between redraws.
	FrameInterval time.Duration

	// Maze options used by the 'm' key.
	Maze []maze.Option

	// Density of the random walls placed by the 'n' key, in [0, 1).
	Density float64

	Palette render.Palette

	// internal error recorded during option parsing
	err error
}

// Option configures an App.
type Option func(*Options)

// DefaultOptions: ~30 redraws per second, perfect mazes, 25% scatter.
func DefaultOptions() Options {
	return Options{
		FrameInterval: 33 * time.Millisecond,
		Density:       0.25,
		Palette:       render.DefaultPalette(),
	}
}

// WithFrameInterval sets the redraw period; non-positive values are ignored.
func WithFrameInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.FrameInterval = d
		}
	}
}

// WithMaze sets the options passed to maze.Generate.
func WithMaze(opts ...maze.Option) Option {
	return func(o *Options) {
		o.Maze = opts
	}
}

// WithDensity sets the density used by maze.Scatter.
//
//	0 ≤ d < 1: accepted
//	otherwise: invalid option → ErrOptionViolation from New
func WithDensity(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d < 0 || d >= 1 {
			o.err = fmt.Errorf("%w: Density must be in [0,1) (%v)", ErrOptionViolation, d)
			return
		}
		o.Density = d
	}
}
