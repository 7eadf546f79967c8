package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// PickIndex returns a uniform random index in [0, n). n is always >= 1.
type PickIndex func(n int) int

// Generator carves a perfect maze into a board with a randomized depth-first
// walk. Pick selects among candidate neighbors and can be swapped for a
// deterministic source.
type Generator struct {
	Board *Board
	Pick  PickIndex
}

func NewGenerator(b *Board) *Generator {
	return &Generator{Board: b, Pick: rand.Intn}
}

// Generate runs the walk from start. The cell on top of the stack picks one
// of its unvisited neighbors at random, breaks the shared wall pair, marks
// the neighbor visited and descends into it; when a cell has no unvisited
// neighbors left, control backtracks. The candidate set is recomputed after
// every descent, exactly as the recursive formulation would on return. An
// explicit stack stands in for recursion so boards with thousands of cells
// cannot exhaust the call stack; the visit order is unchanged.
func (g *Generator) Generate(start Coord) error {
	if !g.Board.InBounds(start) {
		return fmt.Errorf("generate from %d,%d: %w", start.X, start.Y, ErrOutOfBounds)
	}

	g.Board.CellAt(start).Visited = true
	stack := []Coord{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := g.Board.UnvisitedNeighbors(current)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[g.Pick(len(candidates))]
		wall, ok := WallBetween(current, next)
		if !ok {
			panic(fmt.Sprintf("non-adjacent neighbor %+v of %+v", next, current))
		}

		g.Board.BreakWall(current, next, wall)
		g.Board.CellAt(next).Visited = true
		stack = append(stack, next)

		Log.Debugf("broke %s wall of %d,%d", wall, current.X, current.Y)
	}

	return nil
}
