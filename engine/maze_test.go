package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanicsOnInvalidDimensions(t *testing.T) {
	assert.Panics(t, func() { New(0, 5) })
	assert.Panics(t, func() { New(5, 0) })
	assert.Panics(t, func() { New(-3, 4) })
}

func TestCellWalls(t *testing.T) {
	m := New(3, 2)

	walls, err := m.CellWalls(Coord{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, AllWalls, walls)

	m.Board.BreakWall(Coord{X: 0, Y: 0}, Coord{X: 1, Y: 0}, WallRight)
	walls, err = m.CellWalls(Coord{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, AllWalls&^WallRight, walls)
}

func TestCellWallsOutOfRange(t *testing.T) {
	m := New(3, 2)

	for _, c := range []Coord{
		{X: 3, Y: 0},
		{X: 0, Y: 2},
		{X: -1, Y: 0},
		{X: 0, Y: -1},
	} {
		_, err := m.CellWalls(c)
		assert.ErrorIs(t, err, ErrOutOfBounds, "coordinate %d,%d", c.X, c.Y)
	}
}

func TestStringRendersWalls(t *testing.T) {
	m := New(2, 2)
	m.Gen.Pick = pickFirst
	require.NoError(t, m.Generate(Coord{X: 0, Y: 0}))

	expected := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, expected, m.String())
}
