package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// bidirectional runs a forward Dijkstra from Start and a backward Dijkstra
// from End, alternating one finalization per side within a single goroutine
// so the trace is deterministic.
//
// μ (best) is the cost of the best complete path seen so far. It is updated
// when a finalized cell already has a distance on the other side, and on
// every relaxed edge u→v where v has a distance on the other side.
//
// Termination:
//
//   - a cell is finalized by both sides, or
//   - topF + topB ≥ μ (no unexplored path can beat μ), or
//   - either frontier is exhausted (Unreachable when μ is still infinite).
//
// The path is the forward chain Start→meetF joined with the backward chain
// meetB→End; meetF == meetB when the sides met on a cell.
type bidirectional struct {
	snap       *grid.Snapshot
	start, end grid.Pos
	fwd, bwd   *frontier
	forward    bool // side to expand next

	best         int64
	meetF, meetB grid.Pos

	done   bool
	result Result
}

func newBidirectional(snap *grid.Snapshot, start, end grid.Pos) *bidirectional {
	capacity := snap.Rows()*snap.Cols()/8 + 1
	b := &bidirectional{
		snap:    snap,
		start:   start,
		end:     end,
		fwd:     newFrontier(start, capacity, nil),
		bwd:     newFrontier(end, capacity, nil),
		forward: true,
		best:    math.MaxInt64,
	}
	if start == end {
		b.done = true
		b.result = Result{Outcome: Found, Path: []grid.Pos{start}}
	}

	return b
}

func (b *bidirectional) Algorithm() Algorithm { return BidirectionalDijkstra }
func (b *bidirectional) Done() bool           { return b.done }
func (b *bidirectional) Result() Result       { return b.result }

// Next advances the search by one finalization on the current side.
func (b *bidirectional) Next() (Step, bool) {
	if b.done {
		return Step{}, false
	}

	// 1) Stopping rules checked before every expansion.
	topF, okF := b.fwd.peek()
	topB, okB := b.bwd.peek()
	if !okF || !okB || (b.best != math.MaxInt64 && topF.dist+topB.dist >= b.best) {
		return b.finish()
	}

	// 2) Expand the side whose turn it is.
	self, other := b.fwd, b.bwd
	if !b.forward {
		self, other = b.bwd, b.fwd
	}
	isForward := b.forward
	b.forward = !b.forward

	item, _ := self.pop()
	cur, d := item.pos, item.dist

	// 3) Meeting on a cell the other side already reached.
	if od, ok := other.dist[cur]; ok {
		b.offer(d+od, cur, cur)
	}
	if other.settled[cur] {
		// finalized by both sides: μ is optimal
		return b.emitPath(b.path())
	}
	changes := []grid.Change{visitedChange(cur, d)}

	// 4) Relax neighbors, tracking edges that bridge the two searches.
	for _, v := range b.snap.Neighbors(cur) {
		nd := d + grid.StepCost(cur, v)
		if self.relax(cur, v, nd) && !other.settled[v] {
			changes = append(changes, frontierChange(v, nd))
		}
		if od, ok := other.dist[v]; ok {
			if isForward {
				b.offer(nd+od, cur, v)
			} else {
				b.offer(nd+od, v, cur)
			}
		}
	}

	return Step{Changes: changes}, true
}

// offer records a complete Start→End path of the given cost through the
// forward-side cell f and the backward-side cell bk, if it beats μ.
func (b *bidirectional) offer(cost int64, f, bk grid.Pos) {
	if cost < b.best {
		b.best = cost
		b.meetF, b.meetB = f, bk
	}
}

// finish ends the search after a stopping rule fired.
func (b *bidirectional) finish() (Step, bool) {
	if b.best == math.MaxInt64 {
		b.done = true
		b.result = Result{Outcome: Unreachable}
		return Step{}, false
	}
	return b.emitPath(b.path())
}

// emitPath ends the search with the step that marks path OnPath.
func (b *bidirectional) emitPath(path []grid.Pos) (Step, bool) {
	b.done = true
	return pathStep(path), true
}

// path joins the forward chain Start→meetF with the backward chain meetB→End
// and records the result.
func (b *bidirectional) path() []grid.Pos {
	path := b.fwd.chain(b.meetF)
	back := b.bwd.chain(b.meetB) // End → meetB
	i := len(back) - 1
	if b.meetF == b.meetB {
		i-- // meeting cell already included
	}
	for ; i >= 0; i-- {
		path = append(path, back[i])
	}
	b.result = Result{Outcome: Found, Path: path, Cost: b.best}

	return path
}
