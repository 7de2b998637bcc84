package battleship

import (
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

const DefaultGridSize int = 10

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Grid is a square board of cells. Its size is fixed at construction.
type Grid struct {
	size  int
	cells [][]Cell
}

// Creates a new default grid
// All indexes are empty cells
func NewGrid(gridSize int) *Grid {
	cells := make([][]Cell, gridSize)
	for i := 0; i < gridSize; i++ {
		cells[i] = make([]Cell, gridSize)
	}
	return &Grid{size: gridSize, cells: cells}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) InBounds(c Coordinates) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) Get(c Coordinates) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}
	return g.cells[c.Row][c.Col], nil
}

// set is reserved to the placement and strike logic of this package.
func (g *Grid) set(c Coordinates, cell Cell) error {
	if !g.InBounds(c) {
		return cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}
	g.cells[c.Row][c.Col] = cell
	return nil
}

// Row returns a copy of the cells of row r.
func (g *Grid) Row(r int) []Cell {
	row := make([]Cell, g.size)
	copy(row, g.cells[r])
	return row
}

// Count returns the number of cells matching pred.
func (g *Grid) Count(pred func(Cell) bool) int {
	var n int
	for _, row := range g.cells {
		for _, cell := range row {
			if pred(cell) {
				n++
			}
		}
	}
	return n
}
