package engine

import "fmt"

// Board is the owned width×height cell lattice, indexed Cells[y][x].
type Board struct {
	Width  int
	Height int
	Cells  [][]Cell
}

func NewBoard(width, height int) *Board {
	b := &Board{Width: width, Height: height}
	b.Reset()
	return b
}

// Reset replaces every cell with a fully walled, unvisited one and precomputes
// the in-bounds neighbor coordinates. Callable repeatedly to start over.
func (b *Board) Reset() {
	b.Cells = make([][]Cell, b.Height)
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, b.Width)
		for x := range b.Cells[y] {
			cell := Cell{X: x, Y: y, Walls: AllWalls}
			if x > 0 {
				cell.neighbors = append(cell.neighbors, Coord{X: x - 1, Y: y})
			}
			if x < b.Width-1 {
				cell.neighbors = append(cell.neighbors, Coord{X: x + 1, Y: y})
			}
			if y > 0 {
				cell.neighbors = append(cell.neighbors, Coord{X: x, Y: y - 1})
			}
			if y < b.Height-1 {
				cell.neighbors = append(cell.neighbors, Coord{X: x, Y: y + 1})
			}
			b.Cells[y][x] = cell
		}
	}
}

func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

func (b *Board) CellAt(c Coord) *Cell {
	return &b.Cells[c.Y][c.X]
}

// UnvisitedNeighbors returns the neighbors of c whose cells have not been
// visited yet. An empty result is the generator's stop signal.
func (b *Board) UnvisitedNeighbors(c Coord) []Coord {
	var result []Coord
	for _, n := range b.CellAt(c).neighbors {
		if !b.CellAt(n).Visited {
			result = append(result, n)
		}
	}
	return result
}

// BreakWall clears w on the cell at from and the opposite wall on the cell at
// to, always together so the pair never goes one-sided. to must be the
// neighbor of from behind w.
func (b *Board) BreakWall(from, to Coord, w Wall) {
	if GetNeighbor(w, from) != to {
		panic(fmt.Sprintf("BreakWall: %+v is not the %s neighbor of %+v", to, w, from))
	}
	b.CellAt(from).Walls &^= w
	b.CellAt(to).Walls &^= w.Opposite()
}
