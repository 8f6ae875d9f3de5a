package driver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors returned by the Driver.
var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("driver: grid is nil")

	// ErrInvalidTransition indicates a control was used in a state that does not accept it.
	ErrInvalidTransition = errors.New("driver: invalid state transition")

	// ErrBusy indicates a grid edit was rejected because a search is Running or Paused.
	ErrBusy = errors.New("driver: grid is locked by an active search")

	// ErrInvalidRate indicates a non-positive or non-finite update rate.
	ErrInvalidRate = errors.New("driver: rate must be a positive finite number")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("driver: invalid option supplied")
)

// State is the animation lifecycle state.
type State int

const (
	// Idle: no search; the grid is freely editable.
	Idle State = iota
	// Running: ticks advance the search.
	Running
	// Paused: the search is kept but ticks do nothing.
	Paused
	// Finished: the trace is exhausted; Result is available.
	Finished
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Active reports whether a search holds the grid (Running or Paused).
func (s State) Active() bool {
	return s == Running || s == Paused
}

// Rate bounds of the interactive updates-per-second control.
// SetRate accepts any positive finite value whose interval fits in a
// time.Duration; these only seed UIs.
const (
	DefaultRate = 20.0
	MinRate     = 0.2
	MaxRate     = 20.0
)

// Options configures a Driver.
type Options struct {
	// Algorithm used by the next Start.
	Algorithm search.Algorithm

	// Rate is the number of ticks per second driven by Run.
	Rate float64

	// StepsPerTick is how many search steps one tick applies (≥ 1).
	StepsPerTick int

	// OnStep is called, outside the driver lock, for every applied step.
	OnStep func(search.Step)

	// OnFinish is called, outside the driver lock, once per finished search.
	OnFinish func(search.Result)

	// internal error recorded during option parsing
	err error
}

// Option configures a Driver via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with A*, DefaultRate, one step per tick
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Algorithm:    search.Astar,
		Rate:         DefaultRate,
		StepsPerTick: 1,
		OnStep:       func(search.Step) {},
		OnFinish:     func(search.Result) {},
	}
}

// WithAlgorithm selects the algorithm used by Start.
func WithAlgorithm(a search.Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithRate sets the initial ticks per second. Invalid values surface as
// ErrOptionViolation from New.
func WithRate(r float64) Option {
	return func(o *Options) {
		if err := validateRate(r); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Rate = r
	}
}

// WithStepsPerTick sets how many search steps each tick applies.
//
//	n ≥ 1: apply up to n steps per tick
//	n < 1: invalid option → ErrOptionViolation
func WithStepsPerTick(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: StepsPerTick must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.StepsPerTick = n
	}
}

// WithOnStep registers a callback run for each applied step.
func WithOnStep(fn func(search.Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnFinish registers a callback run when a search finishes.
func WithOnFinish(fn func(search.Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// validateRate accepts positive finite rates whose tick interval fits in a
// time.Duration.
func validateRate(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, r)
	}
	if float64(time.Second)/r >= math.MaxInt64 {
		return fmt.Errorf("%w: %v ticks/s overflows the tick interval", ErrInvalidRate, r)
	}
	return nil
}
