// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Grid is a fixed-size, row-major matrix of cells addressed by (x, y),
// where x is the column and y the row.
type Grid[T any] struct {
	cells [][]T
	cols  int
	rows  int
}

// NewGrid creates a grid with the given dimensions, every cell holding fill
func NewGrid[T any](cols, rows int, fill T) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &Grid[T]{cols: cols, rows: rows}
	g.cells = make([][]T, rows)
	for y := 0; y < rows; y++ {
		g.cells[y] = make([]T, cols)
		for x := 0; x < cols; x++ {
			g.cells[y][x] = fill
		}
	}
	return g
}

// FromRows builds a grid from row-major data. Rows shorter than the first
// row are padded with the zero value.
func FromRows[T any](rows [][]T) *Grid[T] {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("Grid dimensions must be positive")
	}

	var zero T
	g := NewGrid(len(rows[0]), len(rows), zero)
	for y, row := range rows {
		for x := 0; x < g.cols && x < len(row); x++ {
			g.cells[y][x] = row[x]
		}
	}
	return g
}

// Cols returns the number of columns in the grid
func (g *Grid[T]) Cols() int {
	return g.cols
}

// Rows returns the number of rows in the grid
func (g *Grid[T]) Rows() int {
	return g.rows
}

// InBounds checks if a position is within grid bounds
func (g *Grid[T]) InBounds(x, y int) bool {
	return g != nil && x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid[T]) IsOnPerimeter(x, y int) bool {
	return g.InBounds(x, y) && (x == 0 || y == 0 || x == g.cols-1 || y == g.rows-1)
}

// At returns the cell at (x, y). ok is false when the position is out of bounds.
func (g *Grid[T]) At(x, y int) (cell T, ok bool) {
	if !g.InBounds(x, y) {
		return cell, false
	}
	return g.cells[y][x], true
}

// Set stores a cell value. Returns false if out of bounds.
func (g *Grid[T]) Set(x, y int, cell T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y][x] = cell
	return true
}

// Neighbor returns the cell adjacent to (x, y) in the given direction
func (g *Grid[T]) Neighbor(x, y int, dir Direction) (cell T, ok bool) {
	if !dir.IsValid() {
		return cell, false
	}
	dx, dy := dir.Delta()
	return g.At(x+dx, y+dy)
}

// ForEach iterates over all cells in row-major order
func (g *Grid[T]) ForEach(fn func(x, y int, cell T)) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// Fill sets every cell inside the rectangle to cell, clipped to the grid
func (g *Grid[T]) Fill(x, y, w, h int, cell T) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			g.Set(col, row, cell)
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{cols: g.cols, rows: g.rows, cells: make([][]T, g.rows)}
	for y := range g.cells {
		c.cells[y] = append([]T(nil), g.cells[y]...)
	}
	return c
}
