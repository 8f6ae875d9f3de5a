// Package grid defines core types, options, and sentinel errors
// for the grid model of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid was requested with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a position (or a mapped point) lies outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrWallCell indicates Start or End was placed on a wall.
	ErrWallCell = errors.New("grid: cell is a wall")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, E, S, W, NE, SE, SW, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	}
	return fmt.Sprintf("Connectivity(%d)", int(c))
}

// Movement costs. Diagonal ≈ 10·√2, so octile distance stays admissible.
const (
	CostCardinal int64 = 10
	CostDiagonal int64 = 14
)

// Pos identifies a cell by row and column.
type Pos struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Kind is the closed set of cell states.
type Kind uint8

const (
	// Open is traversable with no search annotation.
	Open Kind = iota
	// Wall blocks all path expansion.
	Wall
	// Start is the origin of a search.
	Start
	// End is the goal of a search.
	End
	// Frontier is discovered but not yet finalized; Cell.Cost is tentative.
	Frontier
	// Visited is finalized; Cell.Cost is the settled distance.
	Visited
	// OnPath marks a member of the reconstructed path.
	OnPath
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	case Frontier:
		return "frontier"
	case Visited:
		return "visited"
	case OnPath:
		return "path"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Annotation reports whether k is written by a search (Frontier, Visited, OnPath).
// Annotations are transient and reset whenever a search is cleared.
func (k Kind) Annotation() bool {
	switch k {
	case Frontier, Visited, OnPath:
		return true
	case Open, Wall, Start, End:
		return false
	}
	return false
}

// Cell is the state of one grid position.
// Cost is only meaningful for Frontier and Visited.
type Cell struct {
	Kind Kind
	Cost int64
}

// Change records one cell transitioning to a new state.
type Change struct {
	Pos  Pos
	Cell Cell
}

// GridOptions contains tunable parameters for a Grid.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// internal error recorded during option parsing
	err error
}

// Option configures a Grid via functional arguments.
type Option func(*GridOptions)

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// WithConnectivity selects Conn4 or Conn8 movement.
// Any other value is recorded and surfaced as ErrOptionViolation by New.
func WithConnectivity(c Connectivity) Option {
	return func(o *GridOptions) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}

// WithDiagonal is shorthand for WithConnectivity(Conn8) when enabled.
func WithDiagonal(enabled bool) Option {
	if enabled {
		return WithConnectivity(Conn8)
	}
	return WithConnectivity(Conn4)
}

// neighborOffsets returns (dRow, dCol) pairs in a fixed order:
// N, E, S, W and, for Conn8, NE, SE, SW, NW.
func neighborOffsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
	}
	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}
