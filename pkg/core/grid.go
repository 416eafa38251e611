package core

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// Cell addresses a single position on a grid.
type Cell struct {
	Row, Col int
}

// Grid is an immutable rows x cols board of alive/dead cells stored in
// row-major order. Operations that change state return a new Grid and never
// touch the receiver's storage.
type Grid struct {
	rows, cols int
	data       []uint8
}

// Empty returns a grid with every cell dead.
func Empty(rows, cols int) (Grid, error) {
	if err := CheckDimensions(rows, cols); err != nil {
		return Grid{}, err
	}
	return Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}, nil
}

// Randomized returns a grid where each cell is independently alive with
// probability p.
func Randomized(rows, cols int, p float64, r *rand.Rand) (Grid, error) {
	if err := CheckProbability(p); err != nil {
		return Grid{}, err
	}
	g, err := Empty(rows, cols)
	if err != nil {
		return Grid{}, err
	}
	FillBernoulli(r, g.data, p)
	return g, nil
}

// FromCells builds a grid with exactly the listed cells alive.
func FromCells(rows, cols int, live ...Cell) (Grid, error) {
	g, err := Empty(rows, cols)
	if err != nil {
		return Grid{}, err
	}
	for _, c := range live {
		if !g.InBounds(c.Row, c.Col) {
			return Grid{}, g.rangeError("FromCells", c.Row, c.Col)
		}
		g.data[g.Index(c.Row, c.Col)] = 1
	}
	return g, nil
}

// FromData wraps a row-major buffer without copying it. The caller hands
// over ownership and must not write to data afterwards.
func FromData(rows, cols int, data []uint8) (Grid, error) {
	if err := CheckDimensions(rows, cols); err != nil {
		return Grid{}, err
	}
	if len(data) != rows*cols {
		return Grid{}, errors.Wrapf(ErrInvalidConfiguration, "[FromData] buffer holds %d cells, want %d", len(data), rows*cols)
	}
	return Grid{rows: rows, cols: cols, data: data}, nil
}

// WithCellToggled returns a copy of g with the cell at (row, col) flipped.
func (g Grid) WithCellToggled(row, col int) (Grid, error) {
	if !g.InBounds(row, col) {
		return Grid{}, g.rangeError("WithCellToggled", row, col)
	}
	next := g.clone()
	next.data[g.Index(row, col)] ^= 1
	return next, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Index returns the linear offset for (row, col).
func (g Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) addresses a cell of g.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive reports whether the cell at (row, col) is alive. Positions outside
// the grid are dead.
func (g Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.data[g.Index(row, col)] != 0
}

// Cells returns a copy of the row-major cell buffer.
func (g Grid) Cells() []uint8 {
	return append([]uint8(nil), g.data...)
}

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// LiveCells lists live cells in row-major order.
func (g Grid) LiveCells() []Cell {
	var out []Cell
	for i, c := range g.data {
		if c != 0 {
			out = append(out, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// Equal reports whether both grids have the same shape and cell states.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.data {
		if (g.data[i] != 0) != (o.data[i] != 0) {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, '#' alive and '.' dead.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.data[g.Index(row, col)] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g Grid) clone() Grid {
	return Grid{rows: g.rows, cols: g.cols, data: g.Cells()}
}

func (g Grid) rangeError(op string, row, col int) error {
	return errors.Wrapf(ErrOutOfRange, "[%s] (%d,%d) outside %dx%d grid", op, row, col, g.rows, g.cols)
}
