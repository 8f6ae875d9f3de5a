package maze

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// jumps are the room-to-room moves of the carver, in N, S, W, E order.
var jumps = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Generate replaces the contents of g with a maze.
//
// Rooms sit on cells whose row and column are both even; the carver walks
// from (0,0) with a randomized depth-first backtracker, opening the wall
// between each room and the next unvisited one. Cells with an odd row and an
// odd column are never opened, so a room can only connect orthogonally.
//
// Afterwards, with probability Braiding, each dead-end room (one exit) is
// joined to a neighboring room through a closed wall.
//
// Start is placed at (0,0) and End at the farthest room, the even corner
// opposite it. Any previous annotations, walls and endpoints are discarded.
//
// Complexity: O(W·H) time and memory.
func Generate(g *grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}
	rng := newRand(cfg.Seed)

	// 1) Every cell starts as a wall; rooms are carved out of it.
	rows, cols := g.Rows(), g.Cols()
	wall := make([][]bool, rows)
	for r := range wall {
		wall[r] = make([]bool, cols)
		for c := range wall[r] {
			wall[r][c] = true
		}
	}

	// 2) Recursive backtracker from the top-left room.
	carve(wall, rng)

	// 3) Optional braiding.
	if cfg.Braiding > 0 {
		braid(wall, cfg.Braiding, rng)
	}

	// 4) Write the layout back to the grid.
	g.ClearStart()
	g.ClearEnd()
	g.Reset()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if wall[r][c] {
				g.SetWall(grid.Pos{Row: r, Col: c}, true)
			}
		}
	}
	end := grid.Pos{Row: (rows - 1) &^ 1, Col: (cols - 1) &^ 1}
	if err := g.SetStart(grid.Pos{}); err != nil {
		return fmt.Errorf("maze: place start: %w", err)
	}
	if err := g.SetEnd(end); err != nil {
		return fmt.Errorf("maze: place end: %w", err)
	}

	return nil
}

// carve runs the iterative depth-first backtracker over the even cells.
func carve(wall [][]bool, rng *rand.Rand) {
	rows, cols := len(wall), len(wall[0])
	wall[0][0] = false
	stack := []grid.Pos{{}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates := make([][2]int, 0, 4)
		for _, j := range jumps {
			nr, nc := cur.Row+j[0], cur.Col+j[1]
			if nr >= 0 && nr < rows && nc >= 0 && nc < cols && wall[nr][nc] {
				candidates = append(candidates, j)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		j := candidates[rng.Intn(len(candidates))]
		wall[cur.Row+j[0]/2][cur.Col+j[1]/2] = false
		next := grid.Pos{Row: cur.Row + j[0], Col: cur.Col + j[1]}
		wall[next.Row][next.Col] = false
		stack = append(stack, next)
	}
}

// braid opens one extra wall next to each dead-end room with probability p.
// Only walls between two rooms are opened, so no 2×2 open area can form.
func braid(wall [][]bool, p float64, rng *rand.Rand) {
	rows, cols := len(wall), len(wall[0])
	for r := 0; r < rows; r += 2 {
		for c := 0; c < cols; c += 2 {
			if exits(wall, r, c) != 1 || rng.Float64() >= p {
				continue
			}
			var closed [][2]int
			for _, j := range jumps {
				nr, nc := r+j[0], c+j[1]
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				if wall[r+j[0]/2][c+j[1]/2] {
					closed = append(closed, [2]int{r + j[0]/2, c + j[1]/2})
				}
			}
			if len(closed) > 0 {
				w := closed[rng.Intn(len(closed))]
				wall[w[0]][w[1]] = false
			}
		}
	}
}

// exits counts the open orthogonal neighbors of (r,c).
func exits(wall [][]bool, r, c int) int {
	n := 0
	for _, j := range jumps {
		nr, nc := r+j[0]/2, c+j[1]/2
		if nr >= 0 && nr < len(wall) && nc >= 0 && nc < len(wall[0]) && !wall[nr][nc] {
			n++
		}
	}
	return n
}

// Scatter turns each cell into a wall independently with probability
// density, leaving Start, End, existing walls and annotated cells alone.
// It returns the number of walls added.
func Scatter(g *grid.Grid, density float64, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if math.IsNaN(density) || density < 0 || density >= 1 {
		return 0, fmt.Errorf("%w: %v", ErrBadDensity, density)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, cfg.err
	}
	rng := newRand(cfg.Seed)

	added := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if rng.Float64() >= density {
				continue
			}
			if g.SetWall(grid.Pos{Row: r, Col: c}, true) {
				added++
			}
		}
	}

	return added, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
