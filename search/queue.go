package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// frontierItem is a cell waiting in a frontier with its tentative distance.
type frontierItem struct {
	pos  grid.Pos
	dist int64  // accumulated distance from the side's origin
	prio int64  // dist + heuristic (heuristic is 0 for Dijkstra)
	h    int64  // heuristic alone, for A* tie-breaking
	seq  uint64 // insertion order, for FIFO among equal keys
}

// frontierPQ is a min-heap of *frontierItem ordered by prio, then h, then seq.
// We use the lazy-decrease-key approach: a shorter distance pushes a new item
// and the outdated one is discarded when popped.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *frontierItem.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// frontier bundles the per-direction search state shared by every algorithm:
// distances, predecessors, finalized set and the heap.
type frontier struct {
	origin  grid.Pos
	dist    map[grid.Pos]int64
	prev    map[grid.Pos]grid.Pos
	settled map[grid.Pos]bool
	pq      frontierPQ
	seq     uint64
	h       func(grid.Pos) int64
}

func newFrontier(origin grid.Pos, capacity int, h func(grid.Pos) int64) *frontier {
	if h == nil {
		h = func(grid.Pos) int64 { return 0 }
	}
	f := &frontier{
		origin:  origin,
		dist:    make(map[grid.Pos]int64, capacity),
		prev:    make(map[grid.Pos]grid.Pos, capacity),
		settled: make(map[grid.Pos]bool, capacity),
		pq:      make(frontierPQ, 0, capacity),
		h:       h,
	}
	f.dist[origin] = 0
	f.push(origin, 0)

	return f
}

func (f *frontier) push(p grid.Pos, d int64) {
	hv := f.h(p)
	heap.Push(&f.pq, &frontierItem{pos: p, dist: d, prio: d + hv, h: hv, seq: f.seq})
	f.seq++
}

// peek drops stale entries and returns the best live item without removing it.
func (f *frontier) peek() (*frontierItem, bool) {
	for f.pq.Len() > 0 {
		top := f.pq[0]
		if f.settled[top.pos] || top.dist > f.dist[top.pos] {
			heap.Pop(&f.pq)
			continue
		}
		return top, true
	}
	return nil, false
}

// pop removes and finalizes the best live item.
func (f *frontier) pop() (*frontierItem, bool) {
	top, ok := f.peek()
	if !ok {
		return nil, false
	}
	heap.Pop(&f.pq)
	f.settled[top.pos] = true

	return top, true
}

// relax tries to improve the distance of v through u. It reports whether
// v's tentative distance strictly decreased.
func (f *frontier) relax(u, v grid.Pos, d int64) bool {
	if f.settled[v] {
		return false
	}
	if cur, ok := f.dist[v]; ok && d >= cur {
		return false
	}
	f.dist[v] = d
	f.prev[v] = u
	f.push(v, d)

	return true
}

// chain walks predecessors from p back to the origin, returning origin→p.
func (f *frontier) chain(p grid.Pos) []grid.Pos {
	path := []grid.Pos{p}
	for cur := p; cur != f.origin; {
		cur = f.prev[cur]
		path = append(path, cur)
	}
	// reverse to get origin → p
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
