package engine

// Cell is a single square of the board. Walls holds the 4-bit wall mask,
// neighbors the in-bounds orthogonal coordinates precomputed at reset.
// Neighbors are coordinates, never cell pointers: the board owns the cells.
type Cell struct {
	X, Y      int
	Walls     Wall
	Visited   bool
	neighbors []Coord
}

func (c *Cell) HasWall(w Wall) bool {
	return c.Walls&w != 0
}

func (c *Cell) Neighbors() []Coord {
	return c.neighbors
}
