package engine

// Coord addresses a cell in the board, X is the column and Y the row.
type Coord struct {
	X int
	Y int
}

// GetNeighbor returns the coordinate adjacent to from in the direction of w.
func GetNeighbor(w Wall, from Coord) Coord {
	offset := w.Offset()
	return Coord{X: from.X + offset.X, Y: from.Y + offset.Y}
}
