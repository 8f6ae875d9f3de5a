package grid

// Snapshot is an immutable copy of a Grid taken at one instant.
// Renderers iterate it and searchers expand over it, so neither ever
// reads the live grid while it is being edited.
type Snapshot struct {
	rows, cols int
	conn       Connectivity
	offsets    [][2]int
	cells      map[Pos]Cell

	start, end       Pos
	hasStart, hasEnd bool
}

// Snapshot deep-copies the current grid state.
// Complexity: O(k), k = number of non-Open cells.
func (g *Grid) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cells := make(map[Pos]Cell, len(g.cells))
	for p, c := range g.cells {
		cells[p] = c
	}

	return &Snapshot{
		rows:     g.rows,
		cols:     g.cols,
		conn:     g.conn,
		offsets:  g.offsets,
		cells:    cells,
		start:    g.start,
		end:      g.end,
		hasStart: g.hasStart,
		hasEnd:   g.hasEnd,
	}
}

// Rows returns the number of rows.
func (s *Snapshot) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Snapshot) Cols() int { return s.cols }

// Conn returns the connectivity the grid was built with.
func (s *Snapshot) Conn() Connectivity { return s.conn }

// Start returns the Start position, if one was set.
func (s *Snapshot) Start() (Pos, bool) { return s.start, s.hasStart }

// End returns the End position, if one was set.
func (s *Snapshot) End() (Pos, bool) { return s.end, s.hasEnd }

// InBounds reports whether p lies within the grid.
func (s *Snapshot) InBounds(p Pos) bool { return inBounds(s.rows, s.cols, p) }

// At returns the state of p, with the same precedence as Grid.At.
// Out-of-bounds positions report Wall.
func (s *Snapshot) At(p Pos) Cell {
	switch {
	case !s.InBounds(p):
		return Cell{Kind: Wall}
	case s.hasStart && p == s.start:
		return Cell{Kind: Start}
	case s.hasEnd && p == s.end:
		return Cell{Kind: End}
	}
	return s.cells[p]
}

// IsWall reports whether p is a wall or lies outside the grid.
func (s *Snapshot) IsWall(p Pos) bool {
	if !s.InBounds(p) {
		return true
	}
	return s.cells[p].Kind == Wall
}

// Neighbors returns the traversable neighbors of p, in the same order as Grid.Neighbors.
func (s *Snapshot) Neighbors(p Pos) []Pos {
	return neighbors(s.rows, s.cols, s.offsets, p, func(q Pos) bool {
		return s.cells[q].Kind == Wall
	})
}

// Each calls fn for every non-Open cell in row-major order until fn returns false.
func (s *Snapshot) Each(fn func(Pos, Cell) bool) {
	set := make(map[Pos]Cell, len(s.cells)+2)
	for p := range s.cells {
		set[p] = Cell{}
	}
	if s.hasStart {
		set[s.start] = Cell{}
	}
	if s.hasEnd {
		set[s.end] = Cell{}
	}
	for _, p := range sortedKeys(set) {
		c := s.At(p)
		if c.Kind == Open {
			continue
		}
		if !fn(p, c) {
			return
		}
	}
}

// Count returns the number of cells of kind k.
func (s *Snapshot) Count(k Kind) int {
	n, nonOpen := 0, 0
	s.Each(func(_ Pos, c Cell) bool {
		nonOpen++
		if c.Kind == k {
			n++
		}
		return true
	})
	if k == Open {
		return s.rows*s.cols - nonOpen
	}

	return n
}
