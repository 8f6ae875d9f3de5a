package grid_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty dimensions and bad options.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		opts       []grid.Option
		err        error
	}{
		{"ZeroRows", 0, 5, nil, grid.ErrEmptyGrid},
		{"ZeroCols", 5, 0, nil, grid.ErrEmptyGrid},
		{"Negative", -1, -1, nil, grid.ErrEmptyGrid},
		{"BadConn", 3, 3, []grid.Option{grid.WithConnectivity(grid.Connectivity(7))}, grid.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g := mustGrid(t, 2, 3)

	for _, p := range []grid.Pos{{0, 0}, {1, 2}, {0, 2}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Pos{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

//----------------------------------------------------------------------------//
// Mutation Tests
//----------------------------------------------------------------------------//

// TestToggleWall_Involution: toggling twice restores the original state for every kind of cell.
func TestToggleWall_Involution(t *testing.T) {
	g := mustGrid(t, 3, 3)
	require.NoError(t, g.SetStart(grid.Pos{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Pos{Row: 2, Col: 2}))
	g.SetWall(grid.Pos{Row: 1, Col: 1}, true)
	require.Equal(t, 3, g.Apply(
		grid.Change{Pos: grid.Pos{Row: 0, Col: 1}, Cell: grid.Cell{Kind: grid.Visited, Cost: 10}},
		grid.Change{Pos: grid.Pos{Row: 1, Col: 0}, Cell: grid.Cell{Kind: grid.Frontier, Cost: 14}},
		grid.Change{Pos: grid.Pos{Row: 2, Col: 1}, Cell: grid.Cell{Kind: grid.OnPath}},
	))

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p := grid.Pos{Row: r, Col: c}
			before, err := g.At(p)
			require.NoError(t, err)
			g.ToggleWall(p)
			g.ToggleWall(p)
			after, err := g.At(p)
			require.NoError(t, err)
			assert.Equal(t, before, after, "cell %v", p)
		}
	}
}

// TestToggleWall_NoOps covers out-of-bounds and endpoint cells.
func TestToggleWall_NoOps(t *testing.T) {
	g := mustGrid(t, 2, 2)
	require.NoError(t, g.SetStart(grid.Pos{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Pos{Row: 1, Col: 1}))

	assert.False(t, g.ToggleWall(grid.Pos{Row: 5, Col: 5}))
	assert.False(t, g.ToggleWall(grid.Pos{Row: 0, Col: 0}))
	assert.False(t, g.ToggleWall(grid.Pos{Row: 1, Col: 1}))
	assert.Equal(t, 0, g.Count(grid.Wall))

	assert.True(t, g.ToggleWall(grid.Pos{Row: 0, Col: 1}))
	c, _ := g.At(grid.Pos{Row: 0, Col: 1})
	assert.Equal(t, grid.Wall, c.Kind)
}

// TestWallEdits_SkipAnnotatedCells leaves search marks and their costs in place.
func TestWallEdits_SkipAnnotatedCells(t *testing.T) {
	g := mustGrid(t, 2, 2)
	p := grid.Pos{Row: 0, Col: 1}
	mark := grid.Cell{Kind: grid.Visited, Cost: 10}
	require.Equal(t, 1, g.Apply(grid.Change{Pos: p, Cell: mark}))

	assert.False(t, g.ToggleWall(p))
	assert.False(t, g.SetWall(p, true))
	assert.False(t, g.SetWall(p, false))
	c, _ := g.At(p)
	assert.Equal(t, mark, c)

	g.ClearSearch()
	assert.True(t, g.ToggleWall(p))
}

// TestSetWall reports a change only when the cell actually changes.
func TestSetWall(t *testing.T) {
	g := mustGrid(t, 2, 2)
	p := grid.Pos{Row: 1, Col: 0}

	assert.True(t, g.SetWall(p, true))
	assert.False(t, g.SetWall(p, true))
	assert.True(t, g.SetWall(p, false))
	assert.False(t, g.SetWall(p, false))
}

// TestSetEndpoints_Errors verifies the failure modes of SetStart and SetEnd.
func TestSetEndpoints_Errors(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.SetWall(grid.Pos{Row: 1, Col: 1}, true)

	require.ErrorIs(t, g.SetStart(grid.Pos{Row: 3, Col: 0}), grid.ErrOutOfBounds)
	require.ErrorIs(t, g.SetEnd(grid.Pos{Row: 0, Col: -1}), grid.ErrOutOfBounds)
	require.ErrorIs(t, g.SetStart(grid.Pos{Row: 1, Col: 1}), grid.ErrWallCell)
	require.ErrorIs(t, g.SetEnd(grid.Pos{Row: 1, Col: 1}), grid.ErrWallCell)

	_, ok := g.Start()
	assert.False(t, ok, "failed SetStart must not place a Start")
}

// TestSetStart_ReplacesPrevious keeps exactly one Start on the grid.
func TestSetStart_ReplacesPrevious(t *testing.T) {
	g := mustGrid(t, 3, 3)
	require.NoError(t, g.SetStart(grid.Pos{Row: 0, Col: 0}))
	require.NoError(t, g.SetStart(grid.Pos{Row: 2, Col: 1}))

	assert.Equal(t, 1, g.Count(grid.Start))
	c, _ := g.At(grid.Pos{Row: 0, Col: 0})
	assert.Equal(t, grid.Open, c.Kind)
	p, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, grid.Pos{Row: 2, Col: 1}, p)
}

// TestSetEndpoint_OverwritesAnnotation removes the search mark under a new endpoint.
func TestSetEndpoint_OverwritesAnnotation(t *testing.T) {
	g := mustGrid(t, 2, 2)
	p := grid.Pos{Row: 0, Col: 1}
	require.Equal(t, 1, g.Apply(grid.Change{Pos: p, Cell: grid.Cell{Kind: grid.Visited, Cost: 10}}))
	require.NoError(t, g.SetEnd(p))

	g.ClearEnd()
	c, _ := g.At(p)
	assert.Equal(t, grid.Open, c.Kind)
}

// TestClearSearch_KeepsPlacement: clearing search state never alters Wall/Start/End.
func TestClearSearch_KeepsPlacement(t *testing.T) {
	g := mustGrid(t, 4, 4)
	require.NoError(t, g.SetStart(grid.Pos{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Pos{Row: 3, Col: 3}))
	g.SetWall(grid.Pos{Row: 1, Col: 1}, true)
	g.SetWall(grid.Pos{Row: 2, Col: 2}, true)
	g.Apply(
		grid.Change{Pos: grid.Pos{Row: 0, Col: 1}, Cell: grid.Cell{Kind: grid.Frontier, Cost: 10}},
		grid.Change{Pos: grid.Pos{Row: 1, Col: 0}, Cell: grid.Cell{Kind: grid.Visited, Cost: 10}},
		grid.Change{Pos: grid.Pos{Row: 3, Col: 2}, Cell: grid.Cell{Kind: grid.OnPath}},
	)
	before := placement(g)

	g.ClearSearch()

	assert.Equal(t, before, placement(g))
	assert.Equal(t, 0, g.Count(grid.Frontier)+g.Count(grid.Visited)+g.Count(grid.OnPath))
}

// TestClearWalls_KeepsEndpoints: clearing walls never alters Start/End.
func TestClearWalls_KeepsEndpoints(t *testing.T) {
	g := mustGrid(t, 3, 3)
	require.NoError(t, g.SetStart(grid.Pos{Row: 0, Col: 2}))
	require.NoError(t, g.SetEnd(grid.Pos{Row: 2, Col: 0}))
	g.SetWall(grid.Pos{Row: 1, Col: 1}, true)

	g.ClearWalls()

	assert.Equal(t, 0, g.Count(grid.Wall))
	s, _ := g.Start()
	e, _ := g.End()
	assert.Equal(t, grid.Pos{Row: 0, Col: 2}, s)
	assert.Equal(t, grid.Pos{Row: 2, Col: 0}, e)
}

// TestApply_SkipsProtectedCells: annotations never land on walls or endpoints.
func TestApply_SkipsProtectedCells(t *testing.T) {
	g := mustGrid(t, 2, 3)
	require.NoError(t, g.SetStart(grid.Pos{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Pos{Row: 0, Col: 2}))
	g.SetWall(grid.Pos{Row: 1, Col: 1}, true)

	n := g.Apply(
		grid.Change{Pos: grid.Pos{Row: 0, Col: 0}, Cell: grid.Cell{Kind: grid.Visited}},
		grid.Change{Pos: grid.Pos{Row: 0, Col: 2}, Cell: grid.Cell{Kind: grid.OnPath}},
		grid.Change{Pos: grid.Pos{Row: 1, Col: 1}, Cell: grid.Cell{Kind: grid.Frontier}},
		grid.Change{Pos: grid.Pos{Row: 9, Col: 9}, Cell: grid.Cell{Kind: grid.Frontier}},
		grid.Change{Pos: grid.Pos{Row: 1, Col: 0}, Cell: grid.Cell{Kind: grid.Wall}},
		grid.Change{Pos: grid.Pos{Row: 0, Col: 1}, Cell: grid.Cell{Kind: grid.Visited, Cost: 10}},
	)

	assert.Equal(t, 1, n)
	c, _ := g.At(grid.Pos{Row: 0, Col: 1})
	assert.Equal(t, grid.Cell{Kind: grid.Visited, Cost: 10}, c)
	c, _ = g.At(grid.Pos{Row: 1, Col: 0})
	assert.Equal(t, grid.Open, c.Kind)
}

// TestStartEndMayCoincide: the shared cell reports Start.
func TestStartEndMayCoincide(t *testing.T) {
	g := mustGrid(t, 2, 2)
	p := grid.Pos{Row: 1, Col: 1}
	require.NoError(t, g.SetStart(p))
	require.NoError(t, g.SetEnd(p))

	c, _ := g.At(p)
	assert.Equal(t, grid.Start, c.Kind)
	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 0, g.Count(grid.End))
}

//----------------------------------------------------------------------------//
// Neighbor Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Conn4 returns orthogonal neighbors in N, E, S, W order, skipping walls.
func TestNeighbors_Conn4(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.SetWall(grid.Pos{Row: 1, Col: 2}, true)

	got := g.Neighbors(grid.Pos{Row: 1, Col: 1})
	want := []grid.Pos{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}}
	assert.Equal(t, want, got)

	assert.Len(t, g.Neighbors(grid.Pos{Row: 0, Col: 0}), 2)
	assert.Nil(t, g.Neighbors(grid.Pos{Row: -1, Col: 0}))
}

// TestNeighbors_Conn8 includes diagonals after the cardinal directions.
func TestNeighbors_Conn8(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithDiagonal(true))
	require.NoError(t, err)

	got := g.Neighbors(grid.Pos{Row: 1, Col: 1})
	require.Len(t, got, 8)
	assert.Equal(t, grid.Pos{Row: 0, Col: 2}, got[4], "first diagonal is NE")
	assert.Len(t, g.Neighbors(grid.Pos{Row: 0, Col: 0}), 3)
}

// TestStepCost distinguishes cardinal from diagonal moves.
func TestStepCost(t *testing.T) {
	assert.Equal(t, grid.CostCardinal, grid.StepCost(grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 0, Col: 1}))
	assert.Equal(t, grid.CostDiagonal, grid.StepCost(grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 1, Col: 1}))
}

//----------------------------------------------------------------------------//
// Snapshot and Concurrency Tests
//----------------------------------------------------------------------------//

// TestSnapshot_IsIndependent: later edits do not leak into an earlier snapshot.
func TestSnapshot_IsIndependent(t *testing.T) {
	g := mustGrid(t, 2, 2)
	g.SetWall(grid.Pos{Row: 0, Col: 1}, true)
	snap := g.Snapshot()

	g.ClearWalls()

	assert.True(t, snap.IsWall(grid.Pos{Row: 0, Col: 1}))
	assert.True(t, snap.IsWall(grid.Pos{Row: 2, Col: 0}), "out of bounds reads as wall")
	assert.Equal(t, 1, snap.Count(grid.Wall))
	assert.Equal(t, 3, snap.Count(grid.Open))
}

// TestEach_RowMajor visits non-Open cells in row-major order and honors early stop.
func TestEach_RowMajor(t *testing.T) {
	g := mustGrid(t, 3, 3)
	require.NoError(t, g.SetEnd(grid.Pos{Row: 0, Col: 2}))
	require.NoError(t, g.SetStart(grid.Pos{Row: 2, Col: 0}))
	g.SetWall(grid.Pos{Row: 1, Col: 1}, true)

	var seen []grid.Pos
	g.Each(func(p grid.Pos, _ grid.Cell) bool {
		seen = append(seen, p)
		return true
	})
	assert.Equal(t, []grid.Pos{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}, seen)

	calls := 0
	g.Each(func(grid.Pos, grid.Cell) bool { calls++; return false })
	assert.Equal(t, 1, calls)
}

// TestConcurrentEditsAndSnapshots exercises the grid lock under the race detector.
func TestConcurrentEditsAndSnapshots(t *testing.T) {
	g := mustGrid(t, 20, 20)
	var wg sync.WaitGroup
	const workers = 8
	wg.Add(2 * workers)
	for i := 0; i < workers; i++ {
		go func(row int) {
			defer wg.Done()
			for c := 0; c < 20; c++ {
				g.ToggleWall(grid.Pos{Row: row, Col: c})
			}
		}(i)
		go func() {
			defer wg.Done()
			for k := 0; k < 20; k++ {
				_ = g.Snapshot().Count(grid.Wall)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, workers*20, g.Count(grid.Wall))
}

func mustGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	return g
}

type placementState struct {
	walls      []grid.Pos
	start, end grid.Pos
}

func placement(g *grid.Grid) placementState {
	var ps placementState
	g.Each(func(p grid.Pos, c grid.Cell) bool {
		switch c.Kind {
		case grid.Wall:
			ps.walls = append(ps.walls, p)
		case grid.Start:
			ps.start = p
		case grid.End:
			ps.end = p
		}
		return true
	})
	return ps
}
