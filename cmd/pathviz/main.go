// Command pathviz is the interactive terminal pathfinding visualizer.
//
//	pathviz -rows 30 -cols 80 -algo dijkstra -maze -sound -log pathviz.log
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/chime"
	"github.com/katalvlaran/gridpath/driver"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/tui"
)

func run() int {
	var rows, cols int
	var algoName, logFile string
	var rate, braid float64
	var diagonal, makeMaze, sound bool
	var seed int64
	flag.IntVar(&rows, "rows", 30, "Grid height in cells.")
	flag.IntVar(&cols, "cols", 80, "Grid width in cells.")
	flag.StringVar(&algoName, "algo", "astar",
		"Search algorithm: astar, dijkstra or bidijkstra.")
	flag.Float64Var(&rate, "rate", driver.DefaultRate,
		"Animation updates per second.")
	flag.BoolVar(&diagonal, "diagonal", false,
		"Allow diagonal moves (8-connectivity).")
	flag.BoolVar(&makeMaze, "maze", false, "Start with a generated maze.")
	flag.Float64Var(&braid, "braid", 0.2,
		"Maze dead-end removal probability, 0 to 1.")
	flag.Int64Var(&seed, "seed", 0, "Random seed for mazes; 0 is time-based.")
	flag.BoolVar(&sound, "sound", false, "Play a chime when a search finishes.")
	flag.StringVar(&logFile, "log", "",
		"Write debug logs to this file (the terminal is used by the UI).")
	flag.Parse()

	alg, e := search.ParseAlgorithm(algoName)
	if e != nil {
		fmt.Printf("Invalid -algo: %s\n", e)
		return 1
	}
	if logFile != "" {
		f, e := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if e != nil {
			fmt.Printf("Error opening log file %s: %s\n", logFile, e)
			return 1
		}
		defer f.Close()
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		driver.SetLogger(logger)
		tui.SetLogger(logger)
		chime.SetLogger(logger)
	}

	g, e := grid.New(rows, cols, grid.WithDiagonal(diagonal))
	if e != nil {
		fmt.Printf("Invalid grid size: %s\n", e)
		return 1
	}
	mazeOpts := []maze.Option{maze.WithSeed(seed), maze.WithBraiding(braid)}
	if makeMaze {
		if e = maze.Generate(g, mazeOpts...); e != nil {
			fmt.Printf("Failed generating maze: %s\n", e)
			return 1
		}
	} else {
		_ = g.SetStart(grid.Pos{Row: rows / 2, Col: cols / 4})
		_ = g.SetEnd(grid.Pos{Row: rows / 2, Col: cols * 3 / 4})
	}

	player, e := chime.NewPlayer(sound)
	if e != nil {
		tui.Logger().Warn("pathviz: audio disabled", "err", e)
		player, _ = chime.NewPlayer(false)
	}
	defer player.Close()

	drv, e := driver.New(g,
		driver.WithAlgorithm(alg),
		driver.WithRate(rate),
		driver.WithOnFinish(player.Notify),
	)
	if e != nil {
		fmt.Printf("Invalid driver settings: %s\n", e)
		return 1
	}

	screen, e := tcell.NewScreen()
	if e != nil {
		fmt.Printf("Error creating screen: %s\n", e)
		return 1
	}
	if e = screen.Init(); e != nil {
		fmt.Printf("Error initializing screen: %s\n", e)
		return 1
	}
	app, e := tui.New(screen, drv, tui.WithMaze(mazeOpts...))
	if e != nil {
		screen.Fini()
		fmt.Printf("Error creating UI: %s\n", e)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	e = app.Run(ctx)
	screen.Fini()
	if e != nil && e != context.Canceled {
		fmt.Printf("%s\n", e)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
