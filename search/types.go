// Package search defines algorithm selectors, results, traces, options and
// sentinel errors for the step-wise grid searches.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the search package.
var (
	// ErrNilGrid indicates a nil snapshot was passed to New or Run.
	ErrNilGrid = errors.New("search: grid snapshot is nil")

	// ErrInvalidConfiguration indicates Start or End is missing, or sits on a wall.
	ErrInvalidConfiguration = errors.New("search: invalid configuration")

	// ErrUnknownAlgorithm indicates an Algorithm value or name outside the supported set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// Astar orders the frontier by distance + admissible heuristic.
	Astar Algorithm = iota
	// Dijkstra orders the frontier by accumulated distance.
	Dijkstra
	// BidirectionalDijkstra alternates a forward and a backward Dijkstra.
	BidirectionalDijkstra
)

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Astar, Dijkstra, BidirectionalDijkstra}
}

// String returns the canonical flag name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Astar:
		return "astar"
	case Dijkstra:
		return "dijkstra"
	case BidirectionalDijkstra:
		return "bidijkstra"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a case-insensitive name ("astar", "a*", "dijkstra",
// "bidijkstra", "bidirectional") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*", "a-star":
		return Astar, nil
	case "dijkstra":
		return Dijkstra, nil
	case "bidijkstra", "bidirectional", "bidirectional-dijkstra":
		return BidirectionalDijkstra, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Outcome is the terminal result of a search. Unreachable is a normal
// outcome, not an error.
type Outcome int

const (
	// Found means a path from Start to End exists; Result.Path holds it.
	Found Outcome = iota
	// Unreachable means the frontier was exhausted without reaching End.
	Unreachable
)

// String returns "found" or "unreachable".
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the terminal result of a search.
//
// Path runs from Start to End inclusive when Outcome == Found and is nil
// otherwise. Cost is the summed grid.StepCost along Path.
type Result struct {
	Outcome Outcome
	Path    []grid.Pos
	Cost    int64
}

// Moves returns the number of moves along Path (len(Path)-1), or 0.
func (r Result) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Step is one discrete unit of search progress: the cells that changed
// state and what they changed to.
type Step struct {
	Changes []grid.Change
}

// Trace is the ordered, append-only record of a search run.
type Trace struct {
	Steps []Step
}

// Len returns the number of steps.
func (t Trace) Len() int { return len(t.Steps) }

// Append adds s to the end of the trace.
func (t *Trace) Append(s Step) { t.Steps = append(t.Steps, s) }

// Visited returns how many cells the trace finalized.
func (t Trace) Visited() int {
	return t.count(grid.Visited)
}

// Discovered returns how many Frontier transitions the trace recorded.
func (t Trace) Discovered() int {
	return t.count(grid.Frontier)
}

func (t Trace) count(k grid.Kind) int {
	n := 0
	for _, s := range t.Steps {
		for _, ch := range s.Changes {
			if ch.Cell.Kind == k {
				n++
			}
		}
	}
	return n
}

// Final applies every step to g, producing the end-of-search state without
// animating. It returns the number of cell writes accepted by g.
func (t Trace) Final(g *grid.Grid) int {
	n := 0
	for _, s := range t.Steps {
		n += g.Apply(s.Changes...)
	}
	return n
}

// Options configures New and Run.
type Options struct {
	// Ctx allows Run to be cancelled between steps.
	Ctx context.Context

	// OnStep is called with every step a searcher produces.
	OnStep func(Step)

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with context.Background() and a no-op OnStep.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(Step) {},
	}
}

// WithContext sets a context checked once per step by Run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnStep registers a callback run for each produced step.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
