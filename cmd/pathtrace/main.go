// Command pathtrace runs searches headlessly and prints their results.
//
//	pathtrace -rows 25 -cols 60 -algo all -maze -seed 7 -png out.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

// config holds the parsed flags.
type config struct {
	rows, cols int
	algo       string
	diagonal   bool
	makeMaze   bool
	braid      float64
	density    float64
	seed       int64
	pngFile    string
	cellPixels int
	quiet      bool
	verbose    bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("pathtrace", flag.ContinueOnError)
	fs.IntVar(&c.rows, "rows", 25, "Grid height in cells.")
	fs.IntVar(&c.cols, "cols", 60, "Grid width in cells.")
	fs.StringVar(&c.algo, "algo", "all",
		"astar, dijkstra, bidijkstra, or all.")
	fs.BoolVar(&c.diagonal, "diagonal", false, "Allow diagonal moves.")
	fs.BoolVar(&c.makeMaze, "maze", false,
		"Generate a maze instead of scattering random walls.")
	fs.Float64Var(&c.braid, "braid", 0.2, "Maze dead-end removal probability.")
	fs.Float64Var(&c.density, "density", 0.25, "Random wall density in [0, 1).")
	fs.Int64Var(&c.seed, "seed", 1, "Random seed; 0 is time-based.")
	fs.StringVar(&c.pngFile, "png", "",
		"Write the last search's final picture to this .png file.")
	fs.IntVar(&c.cellPixels, "cell", 8, "Pixels per cell in the PNG.")
	fs.BoolVar(&c.quiet, "quiet", false, "Do not print the ASCII map.")
	fs.BoolVar(&c.verbose, "v", false, "Log debug output to stderr.")
	err := fs.Parse(args)
	return c, err
}

// algorithms resolves the -algo flag.
func algorithms(name string) ([]search.Algorithm, error) {
	if strings.EqualFold(name, "all") {
		return search.Algorithms(), nil
	}
	a, err := search.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []search.Algorithm{a}, nil
}

// buildGrid creates the board described by c.
func buildGrid(c config) (*grid.Grid, error) {
	g, err := grid.New(c.rows, c.cols, grid.WithDiagonal(c.diagonal))
	if err != nil {
		return nil, err
	}
	if c.makeMaze {
		return g, maze.Generate(g, maze.WithSeed(c.seed), maze.WithBraiding(c.braid))
	}
	if err = g.SetStart(grid.Pos{}); err != nil {
		return nil, err
	}
	if err = g.SetEnd(grid.Pos{Row: c.rows - 1, Col: c.cols - 1}); err != nil {
		return nil, err
	}
	_, err = maze.Scatter(g, c.density, maze.WithSeed(c.seed))
	return g, err
}

// summary is one printed result line.
func summary(alg search.Algorithm, trace search.Trace, res search.Result) string {
	if res.Outcome != search.Found {
		return fmt.Sprintf("%-10s unreachable  visited %d  steps %d",
			alg, trace.Visited(), trace.Len())
	}
	return fmt.Sprintf("%-10s found  cost %d  moves %d  visited %d  steps %d",
		alg, res.Cost, res.Moves(), trace.Visited(), trace.Len())
}

func run() int {
	c, e := parseFlags(os.Args[1:])
	if e != nil {
		return 2
	}
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	algs, e := algorithms(c.algo)
	if e != nil {
		fmt.Printf("Invalid -algo: %s\n", e)
		return 1
	}
	g, e := buildGrid(c)
	if e != nil {
		fmt.Printf("Error building grid: %s\n", e)
		return 1
	}
	logger.Debug("grid ready", "rows", c.rows, "cols", c.cols,
		"conn", g.Conn().String(), "walls", g.Count(grid.Wall))

	var caption string
	for _, alg := range algs {
		g.ClearSearch()
		trace, res, e := search.Run(alg, g.Snapshot())
		if e != nil {
			fmt.Printf("Search %s failed: %s\n", alg, e)
			return 1
		}
		line := summary(alg, trace, res)
		fmt.Println(line)
		logger.Debug("search done", "algorithm", alg.String(), "outcome", res.Outcome.String(),
			"visited", trace.Visited(), "discovered", trace.Discovered())
		trace.Final(g)
		caption = line
	}
	if !c.quiet {
		fmt.Print(render.Text(g.Snapshot()))
	}

	if c.pngFile != "" {
		f, e := os.Create(c.pngFile)
		if e != nil {
			fmt.Printf("Error creating output file %s: %s\n", c.pngFile, e)
			return 1
		}
		defer f.Close()
		e = render.WritePNG(f, g.Snapshot(), strings.Join(strings.Fields(caption), " "),
			render.WithCellPixels(c.cellPixels))
		if e != nil {
			fmt.Printf("Error writing image to %s: %s\n", c.pngFile, e)
			return 1
		}
		logger.Info("image written", "file", c.pngFile)
	}
	return 0
}

func main() {
	os.Exit(run())
}
