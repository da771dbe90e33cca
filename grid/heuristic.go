package grid

import "github.com/katalvlaran/pathfinder/search"

// DiagonalHeuristic is an admissible, consistent octile-distance estimate
// for a Maze under Conn8 movement: it combines the diagonal steps needed to
// cover the shorter axis with the remaining orthogonal steps on the longer
// one, each priced at the Maze's own step costs. Under Conn4 the same
// formula applies; it never exceeds the Manhattan distance there, so it
// remains admissible for orthogonal-only movement.
type DiagonalHeuristic struct {
	Orthogonal, Diagonal search.Cost
}

// NewDiagonalHeuristic builds a DiagonalHeuristic from a Maze's own step
// costs, so the estimate never overestimates what that Maze actually charges.
func NewDiagonalHeuristic(m *Maze) DiagonalHeuristic {
	return DiagonalHeuristic{Orthogonal: m.opts.OrthogonalCost, Diagonal: m.opts.DiagonalCost}
}

// H implements search.Heuristic.
func (d DiagonalHeuristic) H(s, goal Coord) search.Cost {
	dx := abs(s.X - goal.X)
	dy := abs(s.Y - goal.Y)

	diag := dx
	if dy < diag {
		diag = dy
	}
	straight := dx + dy - 2*diag

	return search.Cost(diag)*d.Diagonal + search.Cost(straight)*d.Orthogonal
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
