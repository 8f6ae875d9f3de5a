package tui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/driver"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

// unit maps one terminal cell to one grid cell.
var unit = grid.Size{Width: 1, Height: 1}

// App is the interactive terminal front end. Grid cell (r,c) is drawn at
// terminal column c, row r; the status line sits below the grid.
//
// Input is handled on the goroutine that calls Run; the driver ticks on its
// own goroutine and all grid access goes through it.
type App struct {
	screen tcell.Screen
	drv    *driver.Driver
	opts   Options

	cursor   grid.Pos
	dragging bool
	dragWall bool // true: the current drag draws walls; false: erases them
	status   string
}

// New returns an App drawing on screen, which must already be initialized.
func New(screen tcell.Screen, drv *driver.Driver, opts ...Option) (*App, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if drv == nil {
		return nil, ErrNilDriver
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &App{screen: screen, drv: drv, opts: cfg}, nil
}

// Cursor returns the keyboard cursor position.
func (a *App) Cursor() grid.Pos { return a.cursor }

// Status returns the message shown in the status line.
func (a *App) Status() string { return a.status }

// Run processes input and redraws until ctx ends or the user quits.
// It returns nil on quit and ctx.Err() on cancellation.
func (a *App) Run(ctx context.Context) error {
	g := a.drv.Grid()
	if w, h := a.screen.Size(); w < g.Cols() || h < g.Rows()+1 {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrScreenTooSmall, g.Cols(), g.Rows()+1, w, h)
	}
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() { _ = a.drv.Run(ctx) }()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(a.opts.FrameInterval)
	defer ticker.Stop()
	a.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev) {
				Logger().Info("tui: quit")
				return nil
			}
			a.Draw()
		case <-ticker.C:
			a.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether the app keeps running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.mouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// key handles one key press; false means quit.
func (a *App) key(k tcell.Key, r rune) bool {
	a.status = ""
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
	case tcell.KeyDown:
		a.moveCursor(1, 0)
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
	case tcell.KeyRight:
		a.moveCursor(0, 1)
	case tcell.KeyEnter:
		_, err := a.drv.ToggleWall(a.cursor)
		a.report("toggle wall", err)
	case tcell.KeyRune:
		return a.char(r)
	}
	return true
}

func (a *App) char(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case 's':
		a.report("set start", a.drv.SetStart(a.cursor))
	case 'e':
		a.report("set end", a.drv.SetEnd(a.cursor))
	case ' ':
		a.startOrPause()
	case '.':
		_, err := a.drv.Step()
		a.report("step", err)
	case 'c':
		a.drv.Clear()
	case 'w':
		a.report("clear walls", a.drv.ClearWalls())
	case 'r':
		a.report("reset", a.drv.Reset())
	case 'm':
		a.report("maze", a.drv.Edit(func(g *grid.Grid) error {
			return maze.Generate(g, a.opts.Maze...)
		}))
	case 'n':
		a.report("scatter", a.drv.Edit(func(g *grid.Grid) error {
			_, err := maze.Scatter(g, a.opts.Density, a.opts.Maze...)
			return err
		}))
	case '1', '2', '3':
		alg := search.Algorithms()[r-'1']
		a.report("algorithm", a.drv.SetAlgorithm(alg))
	case '+', '=':
		a.report("rate", a.drv.SetRate(min(a.drv.Rate()*2, driver.MaxRate)))
	case '-', '_':
		a.report("rate", a.drv.SetRate(max(a.drv.Rate()/2, driver.MinRate)))
	}
	return true
}

func (a *App) startOrPause() {
	switch a.drv.State() {
	case driver.Idle, driver.Finished:
		a.report("start", a.drv.Start())
	default:
		_, err := a.drv.TogglePause()
		a.report("pause", err)
	}
}

// mouse handles a press, drag or release. The first cell of a drag decides
// whether the whole stroke draws or erases walls.
func (a *App) mouse(x, y int, buttons tcell.ButtonMask) {
	if buttons&tcell.Button1 == 0 {
		a.dragging = false
		return
	}
	g := a.drv.Grid()
	p, err := grid.Locate(grid.Point{X: float64(x), Y: float64(y)}, unit, g.Rows(), g.Cols())
	if err != nil {
		return
	}
	a.cursor = p
	if !a.dragging {
		a.dragging = true
		c, _ := g.At(p)
		a.dragWall = c.Kind != grid.Wall
	}
	_, err = a.drv.SetWall(p, a.dragWall)
	a.report("draw", err)
}

func (a *App) moveCursor(dr, dc int) {
	g := a.drv.Grid()
	next := grid.Pos{Row: a.cursor.Row + dr, Col: a.cursor.Col + dc}
	if g.InBounds(next) {
		a.cursor = next
	}
}

// report shows err in the status line; driver rejections are expected
// during a search and logged at Debug only.
func (a *App) report(op string, err error) {
	if err == nil {
		return
	}
	a.status = err.Error()
	if errors.Is(err, driver.ErrBusy) {
		Logger().Debug("tui: edit rejected", "op", op, "err", err)
		return
	}
	Logger().Warn("tui: action failed", "op", op, "err", err)
}

// Draw renders the grid, cursor and status line and shows the frame.
func (a *App) Draw() {
	snap := a.drv.Snapshot()
	pal := a.opts.Palette
	for r := 0; r < snap.Rows(); r++ {
		for c := 0; c < snap.Cols(); c++ {
			p := grid.Pos{Row: r, Col: c}
			kind := snap.At(p).Kind
			style := tcell.StyleDefault.
				Background(rgb(pal.Color(kind))).
				Foreground(tcell.ColorBlack)
			ch := ' '
			if kind == grid.Start || kind == grid.End {
				ch = render.Glyph(kind)
			}
			if p == a.cursor {
				style = style.Reverse(true)
				if ch == ' ' {
					ch = '+'
				}
			}
			a.screen.SetContent(c, r, ch, nil, style)
		}
	}
	a.drawStatus(snap.Rows())
	a.screen.Show()
}

func (a *App) drawStatus(y int) {
	w, _ := a.screen.Size()
	line := a.statusLine()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(line)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		a.screen.SetContent(x, y, ch, nil, style)
	}
}

func (a *App) statusLine() string {
	line := fmt.Sprintf("%s | %s | %.1f/s", a.drv.Algorithm(), a.drv.State(), a.drv.Rate())
	if res, ok := a.drv.Result(); ok {
		if res.Outcome == search.Found {
			line += fmt.Sprintf(" | found cost %d moves %d", res.Cost, res.Moves())
		} else {
			line += " | unreachable"
		}
	}
	if a.status != "" {
		line += " | " + a.status
	}
	return line
}

func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
