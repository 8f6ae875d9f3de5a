package grid

import (
	"fmt"
	"math"
)

// Point is a continuous position in surface coordinates (pixels, terminal
// cells, ...). X grows to the right, Y grows downward.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in surface coordinates.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle with origin Min and extent Size.
type Rect struct {
	Min  Point
	Size Size
}

// Locate maps a surface point to the cell under it on a rows×cols grid
// whose cells measure cell. X selects the column and Y the row.
// Returns ErrOutOfBounds for points outside the grid, non-finite input,
// or a non-positive cell size. Locate has no side effects, so input
// handling and rendering share it.
func Locate(pt Point, cell Size, rows, cols int) (Pos, error) {
	if !finite(pt.X) || !finite(pt.Y) || !finite(cell.Width) || !finite(cell.Height) {
		return Pos{}, fmt.Errorf("%w: non-finite point %v or cell size %v", ErrOutOfBounds, pt, cell)
	}
	if pt.X < 0 || pt.Y < 0 || cell.Width <= 0 || cell.Height <= 0 {
		return Pos{}, fmt.Errorf("%w: point %v with cell size %v", ErrOutOfBounds, pt, cell)
	}
	p := Pos{
		Row: int(pt.Y / cell.Height),
		Col: int(pt.X / cell.Width),
	}
	if !inBounds(rows, cols, p) {
		return Pos{}, fmt.Errorf("%w: point %v maps to %v", ErrOutOfBounds, pt, p)
	}

	return p, nil
}

// Locate maps pt onto this grid. See the package-level Locate.
func (g *Grid) Locate(pt Point, cell Size) (Pos, error) {
	return Locate(pt, cell, g.rows, g.cols)
}

// Locate maps pt onto the snapshot's grid. See the package-level Locate.
func (s *Snapshot) Locate(pt Point, cell Size) (Pos, error) {
	return Locate(pt, cell, s.rows, s.cols)
}

// CellRect returns the surface rectangle covered by p, the inverse of Locate.
func CellRect(p Pos, cell Size) Rect {
	return Rect{
		Min:  Point{X: float64(p.Col) * cell.Width, Y: float64(p.Row) * cell.Height},
		Size: cell,
	}
}

// FitCellSize returns the largest square cell that lets a rows×cols grid
// fit inside a width×height surface. Degenerate input yields a zero Size.
func FitCellSize(width, height float64, rows, cols int) Size {
	if rows < 1 || cols < 1 || !(width > 0) || !(height > 0) {
		return Size{}
	}
	side := math.Min(width/float64(cols), height/float64(rows))

	return Size{Width: side, Height: side}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
