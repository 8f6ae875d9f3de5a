// Package tui is the interactive terminal front end of gridpath, drawn with
// tcell. Each grid cell occupies one terminal cell; the bottom line shows
// the algorithm, driver state, rate and the last result or error.
//
// Controls:
//
//	mouse drag    draw walls (or erase, if the drag starts on a wall)
//	arrows        move the cursor
//	enter         toggle the wall under the cursor
//	s / e         place Start / End at the cursor
//	space         start the search, then pause and resume it
//	.             advance a running or paused search by one step
//	c             clear the search annotations
//	w / r         clear walls / reset the board
//	m / n         generate a maze / scatter random walls
//	1 2 3         A*, Dijkstra, bidirectional Dijkstra
//	+ / -         double / halve the update rate
//	q, esc        quit
//
// Edits made while a search is running or paused are refused by the driver
// and reported in the status line.
package tui
