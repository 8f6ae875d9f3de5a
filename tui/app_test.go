package tui

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/driver"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// newApp returns an App over a 6×10 grid on a 20×8 simulation screen.
func newApp(t *testing.T) (*App, *grid.Grid, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 8)
	t.Cleanup(screen.Fini)

	g, err := grid.New(6, 10)
	require.NoError(t, err)
	d, err := driver.New(g, driver.WithStepsPerTick(100))
	require.NoError(t, err)
	app, err := New(screen, d, WithMaze(maze.WithSeed(1)))
	require.NoError(t, err)
	return app, g, screen
}

func press(a *App, keys ...rune) {
	for _, r := range keys {
		a.key(tcell.KeyRune, r)
	}
}

func TestNew_Errors(t *testing.T) {
	app, _, screen := newApp(t)

	_, err := New(nil, app.drv)
	require.ErrorIs(t, err, ErrNilScreen)
	_, err = New(screen, nil)
	require.ErrorIs(t, err, ErrNilDriver)

	for _, bad := range []float64{-0.1, 1, math.NaN()} {
		_, err = New(screen, app.drv, WithDensity(bad))
		require.ErrorIs(t, err, ErrOptionViolation, "density %v", bad)
	}

	zero, err := New(screen, app.drv, WithDensity(0))
	require.NoError(t, err)
	assert.Zero(t, zero.opts.Density)
}

//------------------------------------------------------------------------//
// Keyboard
//------------------------------------------------------------------------//

func TestKeys_CursorAndEndpoints(t *testing.T) {
	app, g, _ := newApp(t)

	app.key(tcell.KeyLeft, 0)
	app.key(tcell.KeyUp, 0)
	assert.Equal(t, grid.Pos{}, app.Cursor(), "cursor is clamped to the grid")

	press(app, 's')
	for i := 0; i < 9; i++ {
		app.key(tcell.KeyRight, 0)
	}
	app.key(tcell.KeyDown, 0)
	press(app, 'e')
	app.key(tcell.KeyRight, 0)
	assert.Equal(t, grid.Pos{Row: 1, Col: 9}, app.Cursor())

	start, ok := g.Start()
	require.True(t, ok)
	end, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, grid.Pos{}, start)
	assert.Equal(t, grid.Pos{Row: 1, Col: 9}, end)

	app.key(tcell.KeyLeft, 0)
	app.key(tcell.KeyEnter, 0)
	c, err := g.At(grid.Pos{Row: 1, Col: 8})
	require.NoError(t, err)
	assert.Equal(t, grid.Wall, c.Kind)
}

func TestKeys_SearchLifecycle(t *testing.T) {
	app, g, _ := newApp(t)
	require.NoError(t, g.SetStart(grid.Pos{}))
	require.NoError(t, g.SetEnd(grid.Pos{Row: 5, Col: 9}))

	press(app, '2')
	assert.Equal(t, search.Dijkstra, app.drv.Algorithm())

	press(app, ' ')
	assert.Equal(t, driver.Running, app.drv.State())
	press(app, ' ')
	assert.Equal(t, driver.Paused, app.drv.State())

	// edits are refused while a search holds the grid
	app.key(tcell.KeyEnter, 0)
	assert.Contains(t, app.Status(), "locked")
	assert.Zero(t, g.Count(grid.Wall))
	press(app, '3')
	assert.Equal(t, search.Dijkstra, app.drv.Algorithm())

	press(app, '.')
	assert.Equal(t, 1, app.drv.Trace().Len(), "single step while paused")
	assert.Equal(t, driver.Paused, app.drv.State())

	press(app, ' ')
	app.drv.Tick()
	assert.Equal(t, driver.Finished, app.drv.State())
	assert.Contains(t, app.statusLine(), "found cost 140")

	press(app, 'c')
	assert.Equal(t, driver.Idle, app.drv.State())
	assert.Zero(t, g.Count(grid.OnPath))
}

func TestKeys_RateBounds(t *testing.T) {
	app, _, _ := newApp(t)
	press(app, '+')
	assert.Equal(t, driver.MaxRate, app.drv.Rate())
	for i := 0; i < 10; i++ {
		press(app, '-')
	}
	assert.Equal(t, driver.MinRate, app.drv.Rate())
	press(app, '+')
	assert.Equal(t, 2*driver.MinRate, app.drv.Rate())
}

func TestKeys_MazeAndWalls(t *testing.T) {
	app, g, _ := newApp(t)
	press(app, 'm')
	assert.NotZero(t, g.Count(grid.Wall))
	_, ok := g.Start()
	assert.True(t, ok, "maze places Start")

	press(app, 'w')
	assert.Zero(t, g.Count(grid.Wall))
	press(app, 'n')
	assert.NotZero(t, g.Count(grid.Wall))
	press(app, 'r')
	assert.Zero(t, g.Count(grid.Wall))
}

func TestKeys_Quit(t *testing.T) {
	app, _, _ := newApp(t)
	assert.False(t, app.key(tcell.KeyEscape, 0))
	assert.False(t, app.key(tcell.KeyRune, 'q'))
	assert.True(t, app.key(tcell.KeyRune, 'x'))
}

//------------------------------------------------------------------------//
// Mouse
//------------------------------------------------------------------------//

func TestMouse_DragDrawsThenErases(t *testing.T) {
	app, g, _ := newApp(t)

	app.mouse(2, 1, tcell.Button1)
	app.mouse(3, 1, tcell.Button1)
	app.mouse(4, 1, tcell.Button1)
	app.mouse(4, 1, tcell.ButtonNone)
	assert.Equal(t, 3, g.Count(grid.Wall))
	assert.Equal(t, grid.Pos{Row: 1, Col: 4}, app.Cursor())

	// a drag that starts on a wall erases, even across open cells
	app.mouse(3, 1, tcell.Button1)
	app.mouse(3, 2, tcell.Button1)
	app.mouse(2, 1, tcell.Button1)
	app.mouse(0, 0, tcell.ButtonNone)
	assert.Equal(t, 1, g.Count(grid.Wall))

	// outside the grid (status line, right margin) is ignored
	app.mouse(15, 1, tcell.Button1)
	app.mouse(1, 6, tcell.Button1)
	assert.Equal(t, 1, g.Count(grid.Wall))
}

//------------------------------------------------------------------------//
// Drawing and Run
//------------------------------------------------------------------------//

func TestDraw(t *testing.T) {
	app, g, screen := newApp(t)
	require.NoError(t, g.SetStart(grid.Pos{Row: 2, Col: 3}))
	require.NoError(t, g.SetEnd(grid.Pos{Row: 4, Col: 7}))
	app.Draw()

	ch, _, _, _ := screen.GetContent(3, 2)
	assert.Equal(t, 'S', ch)
	ch, _, _, _ = screen.GetContent(7, 4)
	assert.Equal(t, 'E', ch)
	ch, _, _, _ = screen.GetContent(0, 0)
	assert.Equal(t, '+', ch, "cursor marker")

	var status strings.Builder
	for x := 0; x < 20; x++ {
		r, _, _, _ := screen.GetContent(x, 6)
		status.WriteRune(r)
	}
	assert.True(t, strings.HasPrefix(status.String(), "astar | idle"), status.String())
}

func TestRun_ScreenTooSmall(t *testing.T) {
	app, _, screen := newApp(t)
	screen.SetSize(5, 5)
	err := app.Run(context.Background())
	require.ErrorIs(t, err, ErrScreenTooSmall)
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, _, _ := newApp(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, app.Run(ctx), context.DeadlineExceeded)
}
