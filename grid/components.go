package grid

// Components finds all contiguous regions of non-wall cells under the
// grid's connectivity. Each component lists its cells in BFS discovery
// order; components are ordered by their first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (s *Snapshot) Components() [][]Pos {
	seen := make([]bool, s.rows*s.cols)
	var comps [][]Pos

	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			p := Pos{Row: r, Col: c}
			if s.IsWall(p) || seen[s.index(p)] {
				continue
			}
			comps = append(comps, s.flood(p, seen))
		}
	}

	return comps
}

// Reachable reports whether a sequence of non-wall moves connects from and to.
// It is an independent flood fill, not a shortest-path search.
// Time: O(W·H·d).
func (s *Snapshot) Reachable(from, to Pos) bool {
	if s.IsWall(from) || s.IsWall(to) {
		return false
	}
	if from == to {
		return true
	}
	seen := make([]bool, s.rows*s.cols)
	for _, p := range s.flood(from, seen) {
		if p == to {
			return true
		}
	}

	return false
}

// Components is Snapshot().Components().
func (g *Grid) Components() [][]Pos { return g.Snapshot().Components() }

// Reachable is Snapshot().Reachable(from, to).
func (g *Grid) Reachable(from, to Pos) bool { return g.Snapshot().Reachable(from, to) }

// flood collects every cell connected to origin, marking them in seen.
func (s *Snapshot) flood(origin Pos, seen []bool) []Pos {
	queue := []Pos{origin}
	seen[s.index(origin)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, q := range s.Neighbors(queue[qi]) {
			if i := s.index(q); !seen[i] {
				seen[i] = true
				queue = append(queue, q)
			}
		}
	}

	return queue
}

// index maps p to a row-major index: Row*cols + Col.
func (s *Snapshot) index(p Pos) int {
	return p.Row*s.cols + p.Col
}
