// Package canvas holds the drawing grid and the cycle state that maps draws to notes.
package canvas

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a draw targets a cell outside the grid
var ErrOutOfBounds = errors.New("cell out of bounds")

// Grid is an immutable rows×cols array of cell values; "" is an empty cell
// Updates return a new Grid and share untouched rows with the previous one
type Grid struct {
	rows, cols int
	cells      [][]string
}

// NewGrid returns an all-empty grid
func NewGrid(rows, cols int) Grid {
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
	}
	return Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the grid height
func (g Grid) Rows() int { return g.rows }

// Cols returns the grid width
func (g Grid) Cols() int { return g.cols }

// Contains reports whether (row, col) is inside the grid
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the value at (row, col), "" if empty or out of range
func (g Grid) Cell(row, col int) string {
	if !g.Contains(row, col) {
		return ""
	}
	return g.cells[row][col]
}

// Draw returns a copy of g with (row, col) set to value
func (g Grid) Draw(row, col int, value string) (Grid, error) {
	if !g.Contains(row, col) {
		return g, fmt.Errorf("draw (%d,%d) on %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}

	cells := make([][]string, g.rows)
	copy(cells, g.cells)

	line := make([]string, g.cols)
	copy(line, g.cells[row])
	line[col] = value
	cells[row] = line

	return Grid{rows: g.rows, cols: g.cols, cells: cells}, nil
}

// Clear returns a fresh empty grid with the same dimensions
func (g Grid) Clear() Grid {
	return NewGrid(g.rows, g.cols)
}

// Filled counts non-empty cells
func (g Grid) Filled() int {
	n := 0
	for _, line := range g.cells {
		for _, v := range line {
			if v != "" {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cell values
func (g Grid) Equal(other Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
