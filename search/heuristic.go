package search

import "github.com/katalvlaran/gridpath/grid"

// heuristic returns an admissible and consistent estimate of the remaining
// cost to goal, in grid.StepCost units.
//
//   - Conn4: Manhattan distance × CostCardinal.
//   - Conn8: octile distance, CostCardinal·max + (CostDiagonal−CostCardinal)·min.
func heuristic(conn grid.Connectivity, goal grid.Pos) func(grid.Pos) int64 {
	if conn == grid.Conn8 {
		return func(p grid.Pos) int64 {
			dr, dc := abs(p.Row-goal.Row), abs(p.Col-goal.Col)
			lo, hi := dr, dc
			if lo > hi {
				lo, hi = hi, lo
			}
			return grid.CostCardinal*int64(hi) + (grid.CostDiagonal-grid.CostCardinal)*int64(lo)
		}
	}
	return func(p grid.Pos) int64 {
		return grid.CostCardinal * int64(abs(p.Row-goal.Row)+abs(p.Col-goal.Col))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
