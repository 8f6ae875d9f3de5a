// Package driver animates a pathfinding search over a live grid.
//
// What:
//
//   - A Driver owns a grid.Grid and a search.Searcher. Each Tick applies up
//     to StepsPerTick steps to the grid, so observers see cells turn
//     Frontier, Visited and finally OnPath one step at a time.
//   - Run calls Tick at Rate ticks per second until its context ends.
//     SetRate reschedules the pending tick immediately.
//
// Lifecycle:
//
//	Idle ──Start──▶ Running ──Pause──▶ Paused
//	  ▲               │  ▲──Resume───────┘
//	  │               ▼
//	  └──Clear/edit── Finished ──Start──▶ Running
//
//   - Clear returns to Idle from any state and removes all annotations.
//   - Start from Finished discards the old search and begins a new one.
//
// Ownership:
//
//   - While Running or Paused every grid edit (ToggleWall, SetWall, SetStart,
//     SetEnd, ClearWalls, Reset, Edit, SetAlgorithm) fails with ErrBusy and
//     leaves the grid untouched.
//   - In Finished an edit first discards the search annotations and moves the
//     driver to Idle, then applies.
//
// Concurrency:
//
//   - One sync.Mutex guards state, searcher and trace. Hooks (OnStep,
//     OnFinish) run after it is released.
//
// Errors (sentinel):
//
//	– ErrNilGrid            New without a grid.
//	– ErrInvalidTransition  control not valid in the current state.
//	– ErrBusy               edit while a search is active.
//	– ErrInvalidRate        rate ≤ 0, NaN or infinite.
//	– ErrOptionViolation    invalid functional option.
//
// Example usage:
//
//	d, _ := driver.New(g, driver.WithAlgorithm(search.Dijkstra))
//	_ = d.Start()
//	go d.Run(ctx)
package driver
