package engine

import "fmt"

// Wall identifies one side of a cell. The values are bit flags, so the wall
// state of a cell packs into a single 4-bit mask. The encoding is fixed:
// external tools reading the masks rely on it.
type Wall int

const (
	WallTop    Wall = 8
	WallRight  Wall = 4
	WallBottom Wall = 2
	WallLeft   Wall = 1

	AllWalls = WallTop | WallRight | WallBottom | WallLeft
)

// WallSides lists the four walls of a cell.
var WallSides = [4]Wall{WallTop, WallRight, WallBottom, WallLeft}

// Opposite returns the wall facing w from the neighboring cell.
func (w Wall) Opposite() Wall {
	switch w {
	case WallTop:
		return WallBottom
	case WallBottom:
		return WallTop
	case WallLeft:
		return WallRight
	case WallRight:
		return WallLeft
	}
	panic(fmt.Sprintf("Invalid wall: %d", int(w)))
}

// Offset returns the coordinate delta towards the cell behind w.
func (w Wall) Offset() Coord {
	switch w {
	case WallTop:
		return Coord{X: 0, Y: -1}
	case WallBottom:
		return Coord{X: 0, Y: 1}
	case WallLeft:
		return Coord{X: -1, Y: 0}
	case WallRight:
		return Coord{X: 1, Y: 0}
	}
	panic(fmt.Sprintf("Invalid wall: %d", int(w)))
}

func (w Wall) String() string {
	switch w {
	case WallTop:
		return "top"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallLeft:
		return "left"
	}
	return fmt.Sprintf("wall(%d)", int(w))
}

// WallBetween returns the wall of from that faces to. The second result is
// false when the coordinates are not orthogonally adjacent.
func WallBetween(from, to Coord) (Wall, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	switch {
	case dx == 1 && dy == 0:
		return WallRight, true
	case dx == -1 && dy == 0:
		return WallLeft, true
	case dx == 0 && dy == -1:
		return WallTop, true
	case dx == 0 && dy == 1:
		return WallBottom, true
	}
	return 0, false
}
