// Package grid provides the rectangular cell model searched by gridpath.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Wall drawing and erasing, Start/End placement
//   - Transient search annotations (Frontier, Visited, OnPath)
//   - Immutable snapshots for renderers and searchers
//
// Storage is sparse: a position without an entry is Open.
package grid

import (
	"fmt"
	"sort"
	"sync"
)

// Grid is a fixed-size rectangular mapping from Pos to Cell.
//
// Walls and annotations live in a sparse map. Start and End are kept as
// separate positions so that they may coincide; At reports Start for such
// a cell. All methods are safe for concurrent use.
type Grid struct {
	mu sync.RWMutex

	rows, cols int
	conn       Connectivity
	offsets    [][2]int

	cells map[Pos]Cell // walls and annotations only

	start, end       Pos
	hasStart, hasEnd bool
}

// New constructs an empty rows×cols grid.
// Returns ErrEmptyGrid if either dimension is < 1, or ErrOptionViolation
// for an invalid option.
// Complexity: O(1).
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Grid{
		rows:    rows,
		cols:    cols,
		conn:    o.Conn,
		offsets: neighborOffsets(o.Conn),
		cells:   make(map[Pos]Cell),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Conn returns the grid connectivity.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return inBounds(g.rows, g.cols, p)
}

func inBounds(rows, cols int, p Pos) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// At returns the state of p. Start takes precedence over End, which takes
// precedence over the stored cell. Returns ErrOutOfBounds for invalid p.
func (g *Grid) At(p Pos) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cellLocked(p), nil
}

// cellLocked resolves the visible state of p. Caller holds g.mu.
func (g *Grid) cellLocked(p Pos) Cell {
	switch {
	case g.hasStart && p == g.start:
		return Cell{Kind: Start}
	case g.hasEnd && p == g.end:
		return Cell{Kind: End}
	}
	return g.cells[p] // zero value is Open
}

// isEndpointLocked reports whether p holds Start or End. Caller holds g.mu.
func (g *Grid) isEndpointLocked(p Pos) bool {
	return (g.hasStart && p == g.start) || (g.hasEnd && p == g.end)
}

// protectedLocked reports whether wall edits must leave p alone: p holds an
// endpoint or a search annotation. Caller holds g.mu.
func (g *Grid) protectedLocked(p Pos) bool {
	return g.isEndpointLocked(p) || g.cells[p].Kind.Annotation()
}

// Start returns the Start position, if one is set.
func (g *Grid) Start() (Pos, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start, g.hasStart
}

// End returns the End position, if one is set.
func (g *Grid) End() (Pos, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.end, g.hasEnd
}

// ToggleWall flips p between Wall and Open, so two calls restore the cell.
// It is a no-op returning false if p is out of bounds, holds Start/End or
// carries a search annotation.
func (g *Grid) ToggleWall(p Pos) bool {
	if !g.InBounds(p) {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.protectedLocked(p) {
		return false
	}
	if g.cells[p].Kind == Wall {
		delete(g.cells, p)
	} else {
		g.cells[p] = Cell{Kind: Wall}
	}

	return true
}

// SetWall draws (wall=true) or erases (wall=false) a wall at p.
// Returns true only if the cell changed. Out-of-bounds positions,
// Start/End cells and annotated cells are left untouched.
func (g *Grid) SetWall(p Pos, wall bool) bool {
	if !g.InBounds(p) {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.protectedLocked(p) {
		return false
	}
	isWall := g.cells[p].Kind == Wall
	switch {
	case wall && !isWall:
		g.cells[p] = Cell{Kind: Wall}
	case !wall && isWall:
		delete(g.cells, p)
	default:
		return false
	}

	return true
}

// SetStart places Start at p, replacing any previous Start.
// Returns ErrOutOfBounds or ErrWallCell; the grid is unchanged on error.
func (g *Grid) SetStart(p Pos) error {
	return g.setEndpoint(p, true)
}

// SetEnd places End at p, replacing any previous End.
// Returns ErrOutOfBounds or ErrWallCell; the grid is unchanged on error.
func (g *Grid) SetEnd(p Pos) error {
	return g.setEndpoint(p, false)
}

func (g *Grid) setEndpoint(p Pos, start bool) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.cells[p]; ok {
		if c.Kind == Wall {
			return fmt.Errorf("%w: %v", ErrWallCell, p)
		}
		// the endpoint overwrites whatever annotation was there
		delete(g.cells, p)
	}
	if start {
		g.start, g.hasStart = p, true
	} else {
		g.end, g.hasEnd = p, true
	}

	return nil
}

// ClearStart removes Start, if any.
func (g *Grid) ClearStart() {
	g.mu.Lock()
	g.hasStart = false
	g.mu.Unlock()
}

// ClearEnd removes End, if any.
func (g *Grid) ClearEnd() {
	g.mu.Lock()
	g.hasEnd = false
	g.mu.Unlock()
}

// ClearWalls resets every Wall to Open. Start, End and annotations are kept.
func (g *Grid) ClearWalls() {
	g.clearWhere(func(k Kind) bool { return k == Wall })
}

// ClearSearch resets every Frontier, Visited and OnPath cell to Open.
func (g *Grid) ClearSearch() {
	g.clearWhere(Kind.Annotation)
}

// Reset clears walls and annotations; Start and End are kept.
func (g *Grid) Reset() {
	g.mu.Lock()
	g.cells = make(map[Pos]Cell)
	g.mu.Unlock()
}

func (g *Grid) clearWhere(match func(Kind) bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for p, c := range g.cells {
		if match(c.Kind) {
			delete(g.cells, p)
		}
	}
}

// Neighbors returns the in-bounds, non-wall neighbors of p in offset order
// N, E, S, W (then NE, SE, SW, NW under Conn8). Returns nil if p is out of bounds.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(p Pos) []Pos {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return neighbors(g.rows, g.cols, g.offsets, p, func(q Pos) bool {
		return g.cells[q].Kind == Wall
	})
}

func neighbors(rows, cols int, offsets [][2]int, p Pos, isWall func(Pos) bool) []Pos {
	if !inBounds(rows, cols, p) {
		return nil
	}
	out := make([]Pos, 0, len(offsets))
	for _, d := range offsets {
		q := Pos{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !inBounds(rows, cols, q) || isWall(q) {
			continue
		}
		out = append(out, q)
	}

	return out
}

// StepCost returns the cost of moving between adjacent cells a and b:
// CostDiagonal when both row and column differ, CostCardinal otherwise.
func StepCost(a, b Pos) int64 {
	if a.Row != b.Row && a.Col != b.Col {
		return CostDiagonal
	}
	return CostCardinal
}

// Apply writes search annotations to the grid and returns how many were applied.
// Only Frontier, Visited and OnPath changes are accepted; changes targeting
// walls, Start, End or out-of-bounds positions are skipped.
func (g *Grid) Apply(changes ...Change) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 0
	for _, ch := range changes {
		if !ch.Cell.Kind.Annotation() || !inBounds(g.rows, g.cols, ch.Pos) {
			continue
		}
		if g.isEndpointLocked(ch.Pos) || g.cells[ch.Pos].Kind == Wall {
			continue
		}
		g.cells[ch.Pos] = ch.Cell
		n++
	}

	return n
}

// Each calls fn for every non-Open cell in row-major order, stopping early
// when fn returns false. fn runs without the grid lock held, so it may
// mutate the grid; it sees the state as of the call to Each.
func (g *Grid) Each(fn func(Pos, Cell) bool) {
	g.Snapshot().Each(fn)
}

// Count returns the number of cells currently of kind k.
// Open is counted as rows·cols minus every other kind.
func (g *Grid) Count(k Kind) int {
	return g.Snapshot().Count(k)
}

// sortedKeys returns the keys of m in row-major order.
func sortedKeys(m map[Pos]Cell) []Pos {
	keys := make([]Pos, 0, len(m))
	for p := range m {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Row != keys[j].Row {
			return keys[i].Row < keys[j].Row
		}
		return keys[i].Col < keys[j].Col
	})

	return keys
}
