package search

import "github.com/katalvlaran/gridpath/grid"

// unidirectional is the shared state machine behind Dijkstra and A*.
// With h == nil the frontier is ordered by distance with FIFO tie-break
// (Dijkstra); with an admissible h it is ordered by distance + h, then by
// lower h, then FIFO (A*).
//
// Each call to Next finalizes exactly one cell:
//
//	Visited(u, dist) followed by Frontier(v, dist) for every neighbor whose
//	tentative distance strictly improved.
//
// When End is finalized, one more step marks the reconstructed path OnPath.
type unidirectional struct {
	alg   Algorithm
	snap  *grid.Snapshot
	start grid.Pos
	end   grid.Pos
	f     *frontier

	pending []grid.Pos // path waiting to be emitted as the final step
	done    bool
	result  Result
}

func newUnidirectional(alg Algorithm, snap *grid.Snapshot, start, end grid.Pos, h func(grid.Pos) int64) *unidirectional {
	u := &unidirectional{
		alg:   alg,
		snap:  snap,
		start: start,
		end:   end,
		f:     newFrontier(start, snap.Rows()*snap.Cols()/4+1, h),
	}
	if start == end {
		u.done = true
		u.result = Result{Outcome: Found, Path: []grid.Pos{start}}
	}

	return u
}

func (u *unidirectional) Algorithm() Algorithm { return u.alg }
func (u *unidirectional) Done() bool           { return u.done }
func (u *unidirectional) Result() Result       { return u.result }

// Next advances the search by one step.
func (u *unidirectional) Next() (Step, bool) {
	if u.done {
		return Step{}, false
	}
	// 1) The goal was finalized last step: emit the path and stop.
	if u.pending != nil {
		step := pathStep(u.pending)
		u.pending = nil
		u.done = true
		return step, true
	}

	// 2) Pop the closest live cell; an exhausted frontier means End is unreachable.
	item, ok := u.f.pop()
	if !ok {
		u.done = true
		u.result = Result{Outcome: Unreachable}
		return Step{}, false
	}
	cur, d := item.pos, item.dist
	changes := []grid.Change{visitedChange(cur, d)}

	// 3) Goal finalized: its distance is minimal, reconstruct the path.
	if cur == u.end {
		path := u.f.chain(cur)
		u.result = Result{Outcome: Found, Path: path, Cost: d}
		u.pending = path
		return Step{Changes: changes}, true
	}

	// 4) Relax all traversable neighbors.
	for _, v := range u.snap.Neighbors(cur) {
		nd := d + grid.StepCost(cur, v)
		if u.f.relax(cur, v, nd) {
			changes = append(changes, frontierChange(v, nd))
		}
	}

	return Step{Changes: changes}, true
}
