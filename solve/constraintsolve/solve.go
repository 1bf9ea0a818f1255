package constraintsolve

import (
	"fmt"
	"time"

	"github.com/crillab/gophersat/bf"

	"github.com/brinepath/flowlattice/puzzle"
	"github.com/brinepath/flowlattice/solve/pathwalk"
)

// noColor is the sentinel stored for an uncolored node, mirroring
// solve.NoColor without importing the solve package (which dispatches to
// this one and would cycle back).
const noColor = "unused"

type solveOutcome struct {
	model map[string]bool
	err   error
}

// Solve builds the full Boolean encoding of p and races bf.Solve against
// timeout. bf.Solve has no native deadline, so a goroutine runs the solve
// and the caller races it against time.After; on timeout the goroutine is
// abandoned (Go cannot preempt a running call), a known limitation of this
// backend. A nil model means unsatisfiable; a panic inside the procedure is
// recovered and reported as Unknown with the panic value as the reason.
func Solve(p *puzzle.Puzzle, timeout time.Duration) (map[string]string, map[string][]string, error) {
	e := newEncoding(p)
	formula := e.build()

	result := make(chan solveOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				result <- solveOutcome{err: fmt.Errorf("%w: %v", ErrUnknown, r)}
			}
		}()
		result <- solveOutcome{model: bf.Solve(formula)}
	}()

	select {
	case <-time.After(timeout):
		return nil, nil, ErrTimeout
	case out := <-result:
		if out.err != nil {
			return nil, nil, out.err
		}
		if out.model == nil {
			return nil, nil, ErrUnsat
		}

		return e.decode(out.model)
	}
}

// decode walks bf's model back into a node->color map, then reconstructs
// each color's path over the raw graph filtered to same-color nodes.
func (e *encoding) decode(model map[string]bool) (map[string]string, map[string][]string, error) {
	nodeColor := make(map[string]string, len(e.nodes))
	for _, n := range e.nodes {
		assigned := noColor
		count := 0
		for ci, color := range e.colors {
			if model[colorVarName(n, ci)] {
				assigned = color
				count++
			}
		}
		if count > 1 {
			return nil, nil, fmt.Errorf("%w: node %q decoded to %d colors at once", ErrInternal, n, count)
		}
		nodeColor[n] = assigned
	}

	paths := make(map[string][]string, len(e.p.Terminals))
	for _, color := range e.colors {
		pair := e.p.Terminals[color]
		neighbors := func(n string) []string {
			var out []string
			for _, nb := range e.p.Graph.Neighbors(n) {
				if nodeColor[nb] == color {
					out = append(out, nb)
				}
			}

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
