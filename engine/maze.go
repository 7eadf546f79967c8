/*
Package engine generates perfect rectangular mazes.

A Board holds the cell lattice with a 4-bit wall mask per cell, a Generator
carves a spanning tree into it with a randomized depth-first walk, and Maze
ties the two together behind a small facade. Renderers read the finished wall
masks through CellWalls; String gives a quick ASCII view.
*/
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds reports a coordinate outside [0,width) × [0,height).
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Maze is the public face of the package: a board plus the generator that
// carves it.
type Maze struct {
	Board *Board
	Gen   *Generator
}

// New creates a reset, fully walled maze. Panics on non-positive dimensions.
func New(width, height int) *Maze {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("Invalid maze dimensions: %dx%d", width, height))
	}
	board := NewBoard(width, height)
	return &Maze{Board: board, Gen: NewGenerator(board)}
}

func (m *Maze) Width() int  { return m.Board.Width }
func (m *Maze) Height() int { return m.Board.Height }

// Reset returns every cell to the fully walled, unvisited state without
// changing dimensions.
func (m *Maze) Reset() {
	m.Board.Reset()
}

// Generate carves the maze starting at start. Fails if start lies outside
// the board.
func (m *Maze) Generate(start Coord) error {
	if err := m.Gen.Generate(start); err != nil {
		return err
	}
	Log.Debugf("generated %dx%d maze from %d,%d", m.Width(), m.Height(), start.X, start.Y)
	return nil
}

// CellWalls exposes the 4-bit wall mask at c. Fails if c lies outside the
// board.
func (m *Maze) CellWalls(c Coord) (Wall, error) {
	if !m.Board.InBounds(c) {
		return 0, fmt.Errorf("cell walls at %d,%d: %w", c.X, c.Y, ErrOutOfBounds)
	}
	return m.Board.CellAt(c).Walls, nil
}

// String renders the maze with ASCII box walls.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", m.Width()) + "\n")

	for y := 0; y < m.Height(); y++ {
		// Cell rows
		cellRow := "|"
		for x := 0; x < m.Width(); x++ {
			if m.Board.Cells[y][x].HasWall(WallRight) {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}
		}
		b.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for x := 0; x < m.Width(); x++ {
			if m.Board.Cells[y][x].HasWall(WallBottom) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		b.WriteString(wallRow + "\n")
	}

	return b.String()
}
