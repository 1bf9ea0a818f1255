package dfssolve

import (
	"fmt"
	"sort"
	"time"

	"github.com/brinepath/flowlattice/puzzle"
	"github.com/brinepath/flowlattice/solve/pathwalk"
)

// noColor is the sentinel stored for a node no color ever touched, mirroring
// solve.NoColor without importing the solve package (which would cycle back
// through this one).
const noColor = "unused"

// Solve runs the backtracking path-growth search against p until it finds a
// full assignment, exhausts the search space, or the timeout elapses.
func Solve(p *puzzle.Puzzle, timeout time.Duration) (map[string]string, map[string][]string, error) {
	s, err := newSearcher(p, timeout)
	if err != nil {
		return nil, nil, err
	}

	if err := s.checkTimeout(); err != nil {
		return nil, nil, err
	}

	ok, err := s.search()
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrUnsat
	}

	nodeColor := make(map[string]string, len(s.assigned))
	for node, color := range s.assigned {
		if color == "" {
			nodeColor[node] = noColor
		} else {
			nodeColor[node] = color
		}
	}

	paths := make(map[string][]string, len(p.Terminals))
	for _, color := range s.colors {
		pair := p.Terminals[color]
		neighbors := func(n string) []string {
			adj := s.pathAdj[color][n]
			out := make([]string, 0, len(adj))
			for nb := range adj {
				out = append(out, nb)
			}
			sort.Strings(out)

			return out
		}
		path, err := pathwalk.Walk(pair[0], pair[1], neighbors)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: color %q: %s", ErrInternal, color, err)
		}
		paths[color] = path
	}

	return nodeColor, paths, nil
}
