// Package search implements the pathfinding engine of gridpath: A*, Dijkstra
// and bidirectional Dijkstra over a grid.Snapshot.
//
// Overview:
//
//   - Every algorithm is a step-wise state machine (Searcher). Each call to
//     Next finalizes one cell and reports the cells that changed state, so
//     the same searcher drives an animation one tick at a time or is drained
//     eagerly by Run. Both produce the identical trace.
//   - A Trace is the ordered, append-only list of Steps. Applying it to a
//     grid (Trace.Final) yields the end-of-search picture without animation.
//   - The terminal Result is Found (with Path and Cost) or Unreachable.
//     Unreachable is a normal outcome, never an error.
//
// Algorithms:
//
//   - Dijkstra: min-heap keyed by accumulated distance, FIFO among equal keys,
//     lazy decrease-key, each cell finalized at most once, relaxation only on
//     strict improvement.
//   - Astar: key = distance + heuristic (Manhattan on Conn4, octile on Conn8),
//     ties broken by lower heuristic, then insertion order. Both heuristics
//     are consistent, so A* returns Dijkstra's cost and finalizes no more cells.
//   - BidirectionalDijkstra: forward and backward frontiers expanded
//     alternately in one goroutine. Stops when a cell is finalized by both
//     sides, when topF + topB ≥ μ (best complete path), or when a frontier is
//     exhausted.
//
// Step contents:
//
//	Visited(u, dist)    – u finalized.
//	Frontier(v, dist)   – v discovered or improved.
//	OnPath(p) for all p – final step after a Found search.
//
// Edge cases:
//
//   - Start == End: Found, Path = [Start], no steps.
//   - Start enclosed by walls: Unreachable after the frontier is exhausted.
//   - Searchers read only the snapshot they were built with; they never write
//     Wall, Start or End. grid.Grid.Apply ignores annotations aimed at them.
//
// Costs are in grid.StepCost units: 10 per cardinal move, 14 per diagonal.
//
// Complexity (W×H cells, d neighbors per cell):
//
//   - Time:  O(W·H·d · log(W·H)) per search.
//   - Space: O(W·H) for distance, predecessor and finalized maps plus the heap.
//
// Errors (sentinel):
//
//	– ErrNilGrid               snapshot is nil.
//	– ErrInvalidConfiguration  Start or End missing, or on a wall.
//	– ErrUnknownAlgorithm      unsupported Algorithm value or name.
//	– ErrOptionViolation       invalid functional option.
//
// Example usage:
//
//	trace, res, err := search.Run(search.Astar, g.Snapshot())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outcome, res.Moves(), trace.Visited())
package search
