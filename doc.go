// Package gridpath is an interactive pathfinding visualizer for rectangular
// grids: draw walls, place Start and End, and watch A*, Dijkstra or
// bidirectional Dijkstra expand step by step until the path lights up.
//
// What is in the box?
//
//	• Grid model: walls, endpoints and search annotations under one lock,
//	  with immutable snapshots for searching and drawing
//	• Step-wise searches: every algorithm yields one finalized cell per
//	  step, so the same code drives an animation or an eager run
//	• Animation driver: start / pause / resume / clear, adjustable
//	  update rate, and edits refused while a search holds the grid
//	• Board makers: backtracker mazes with braiding, random wall scatter
//	• Output: tcell terminal UI, PNG snapshots with captions, ASCII maps,
//	  and a short chime when a search ends
//
// Under the hood, everything is organized into subpackages:
//
//	grid/    — cells, endpoints, snapshots, neighbors, pixel ↔ cell mapping
//	search/  — A*, Dijkstra, bidirectional Dijkstra as Searcher state machines
//	driver/  — lifecycle state machine that ticks a Searcher over a live grid
//	maze/    — Generate (recursive backtracker) and Scatter
//	render/  — image.Image view, Compose/WritePNG, ASCII Text
//	chime/   — beep tones for Found and Unreachable
//	tui/     — terminal front end (mouse drawing, key bindings, status line)
//	cmd/     — pathviz (interactive) and pathtrace (headless)
//
// Quick ASCII example (render.Text after a Dijkstra run):
//
//	S##E
//	****
//	...o
//
// S and E are the endpoints, # walls, * the shortest path, . finalized
// cells and o the frontier still waiting in the queue.
//
//	go run github.com/katalvlaran/gridpath/cmd/pathviz -maze
package gridpath
