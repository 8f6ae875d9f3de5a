package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Searcher is an incremental search over a grid snapshot.
//
// Next returns the next step and true, or a zero Step and false once the
// search is over. After Done reports true, Result holds the outcome.
type Searcher interface {
	Next() (Step, bool)
	Done() bool
	Result() Result
	Algorithm() Algorithm
}

// New validates snap and returns a Searcher for alg.
//
// Preconditions and validation (in order):
//  1. alg must be a known Algorithm (ErrUnknownAlgorithm).
//  2. options must be valid (ErrOptionViolation).
//  3. snap must be non-nil (ErrNilGrid).
//  4. Start and End must exist and not be walls (ErrInvalidConfiguration).
//
// If Start == End the searcher is already done: Found, Path=[Start], no steps.
func New(alg Algorithm, snap *grid.Snapshot, opts ...Option) (Searcher, error) {
	// 1) Validate algorithm
	switch alg {
	case Astar, Dijkstra, BidirectionalDijkstra:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate snapshot and endpoints
	if snap == nil {
		return nil, ErrNilGrid
	}
	start, end, err := endpoints(snap)
	if err != nil {
		return nil, err
	}

	// 4) Build the state machine
	var s Searcher
	switch alg {
	case Astar:
		s = newUnidirectional(Astar, snap, start, end, heuristic(snap.Conn(), end))
	case Dijkstra:
		s = newUnidirectional(Dijkstra, snap, start, end, nil)
	case BidirectionalDijkstra:
		s = newBidirectional(snap, start, end)
	}

	return &observed{Searcher: s, onStep: cfg.OnStep}, nil
}

// Run drains a new searcher for alg, returning the full trace and result.
// The context from WithContext is checked once per step.
func Run(alg Algorithm, snap *grid.Snapshot, opts ...Option) (Trace, Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	s, err := New(alg, snap, opts...)
	if err != nil {
		return Trace{}, Result{}, err
	}

	var trace Trace
	for {
		select {
		case <-cfg.Ctx.Done():
			return trace, Result{}, cfg.Ctx.Err()
		default:
		}
		step, ok := s.Next()
		if !ok {
			break
		}
		trace.Append(step)
	}

	return trace, s.Result(), nil
}

func endpoints(snap *grid.Snapshot) (start, end grid.Pos, err error) {
	start, ok := snap.Start()
	if !ok {
		return start, end, fmt.Errorf("%w: start is not set", ErrInvalidConfiguration)
	}
	end, ok = snap.End()
	if !ok {
		return start, end, fmt.Errorf("%w: end is not set", ErrInvalidConfiguration)
	}
	if snap.IsWall(start) {
		return start, end, fmt.Errorf("%w: start %v is a wall", ErrInvalidConfiguration, start)
	}
	if snap.IsWall(end) {
		return start, end, fmt.Errorf("%w: end %v is a wall", ErrInvalidConfiguration, end)
	}

	return start, end, nil
}

// observed forwards every produced step to the OnStep hook.
type observed struct {
	Searcher
	onStep func(Step)
}

func (o *observed) Next() (Step, bool) {
	step, ok := o.Searcher.Next()
	if ok {
		o.onStep(step)
	}
	return step, ok
}

// pathStep marks every cell of path as OnPath.
func pathStep(path []grid.Pos) Step {
	changes := make([]grid.Change, len(path))
	for i, p := range path {
		changes[i] = grid.Change{Pos: p, Cell: grid.Cell{Kind: grid.OnPath}}
	}
	return Step{Changes: changes}
}

func visitedChange(p grid.Pos, d int64) grid.Change {
	return grid.Change{Pos: p, Cell: grid.Cell{Kind: grid.Visited, Cost: d}}
}

func frontierChange(p grid.Pos, d int64) grid.Change {
	return grid.Change{Pos: p, Cell: grid.Cell{Kind: grid.Frontier, Cost: d}}
}
