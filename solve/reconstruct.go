package solve

import (
	"errors"

	"github.com/brinepath/flowlattice/graph"
	"github.com/brinepath/flowlattice/puzzle"
	"github.com/brinepath/flowlattice/solve/pathwalk"
)

// ReconstructPaths walks each color's first terminal to its second over g's
// adjacency, restricted at every step to same-color neighbors.
// Both backends reconstruct their own
// paths by calling solve/pathwalk directly (importing solve from a backend
// would cycle back through Solve's dispatch); this entry point exists for
// external callers holding only a flat node-color map obtained some other
// way, e.g. from a persisted SolveResult.
//
// Complexity: O(sum of path lengths * max degree).
func ReconstructPaths(g *graph.Graph, p *puzzle.Puzzle, nodeColor map[string]string) (map[string][]string, error) {
	paths := make(map[string][]string, len(p.Terminals))

	for _, color := range p.AllColors() {
		pair := p.Terminals[color]
		if nodeColor[pair[0]] != color || nodeColor[pair[1]] != color {
			return nil, newError(KindInternal, "terminal endpoint colored inconsistently with its declared color", nil)
		}

		neighbors := func(n string) []string {
			var out []string
			for _, nb := range g.Neighbors(n) {
				if nodeColor[nb] == color {
					out = append(out, nb)
				}
			}

			return out
		}

		path, err := pathwalk.Walk(pair[0], pair[1], neighbors)
		if err != nil {
			if errors.Is(err, pathwalk.ErrAmbiguousStep) {
				return nil, newError(KindInternal, err.Error(), err)
			}

			return nil, err
		}
		paths[color] = path
	}

	return paths, nil
}
