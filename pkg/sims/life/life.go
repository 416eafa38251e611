// Package life advances a bounded Conway's Game of Life grid.
package life

import (
	"lifeboard/pkg/core"

	"golang.org/x/sync/errgroup"
)

// Offsets lists the eight neighbor positions relative to a cell.
var Offsets = [8][2]int{
	{0, 1},
	{0, -1},
	{1, -1},
	{-1, 1},
	{1, 1},
	{-1, -1},
	{1, 0},
	{-1, 0},
}

// Step returns the generation after g. Neighbors are read from g only and
// positions outside the grid count as dead.
func Step(g core.Grid) core.Grid {
	if g.Rows() == 0 {
		return g
	}
	next := make([]uint8, g.Rows()*g.Cols())
	stepRows(g, next, 0, g.Rows())
	return mustWrap(g, next)
}

// StepParallel computes the same generation as Step with rows split into
// bands that are evaluated concurrently.
func StepParallel(g core.Grid, workers int) core.Grid {
	rows := g.Rows()
	if workers <= 1 || rows < 2 {
		return Step(g)
	}
	if workers > rows {
		workers = rows
	}

	next := make([]uint8, rows*g.Cols())
	per := (rows + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < rows; start += per {
		start, end := start, min(start+per, rows)
		eg.Go(func() error {
			stepRows(g, next, start, end)
			return nil
		})
	}
	_ = eg.Wait()

	return mustWrap(g, next)
}

// Neighbors counts live cells around (row, col) in g.
func Neighbors(g core.Grid, row, col int) int {
	n := 0
	for _, off := range Offsets {
		if g.Alive(row+off[0], col+off[1]) {
			n++
		}
	}
	return n
}

// Rule applies the transition for a cell with the given state and neighbor
// count.
func Rule(alive bool, neighbors int) bool {
	next := alive
	if neighbors < 2 || neighbors > 3 {
		next = false
	} else if !alive && neighbors == 3 {
		next = true
	}
	return next
}

func stepRows(g core.Grid, next []uint8, from, to int) {
	cols := g.Cols()
	for row := from; row < to; row++ {
		for col := 0; col < cols; col++ {
			if Rule(g.Alive(row, col), Neighbors(g, row, col)) {
				next[row*cols+col] = 1
			}
		}
	}
}

func mustWrap(g core.Grid, next []uint8) core.Grid {
	out, err := core.FromData(g.Rows(), g.Cols(), next)
	if err != nil {
		// g was valid, so its shape is valid too.
		panic(err)
	}
	return out
}
