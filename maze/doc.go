// Package maze fills a grid.Grid with obstacles: carved mazes and random
// wall scatter.
//
// Generate lays rooms on even coordinates and connects them with a
// randomized depth-first backtracker, producing a perfect maze. Braiding
// then joins a fraction of dead ends to a neighbor, adding cycles so the
// search algorithms have alternative routes to compare.
//
// Scatter sprinkles independent walls with a given density.
//
// Both accept WithSeed for reproducible layouts; a zero seed is time-based.
package maze
