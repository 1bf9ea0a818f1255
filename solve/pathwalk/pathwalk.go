// Package pathwalk implements the unique-walk path reconstruction shared by
// both solve backends: given a color's two terminals and some notion of
// "same-color neighbor", walk from the first to the second, failing closed
// if any step doesn't offer exactly one candidate.
//
// It is split out from solve itself so that solve/constraintsolve and
// solve/dfssolve, which each need to reconstruct paths, can depend on it
// without an import cycle back through the solve package that dispatches to
// them.
package pathwalk

import "fmt"

// ErrAmbiguousStep indicates a walk step had zero or more than one
// candidate next node: a solver invariant violation, not a user error.
var ErrAmbiguousStep = fmt.Errorf("pathwalk: ambiguous reconstruction step")

// NeighborsFunc returns the neighbor ids to consider stepping to from node.
// Callers adapt their own adjacency notion (full graph neighbors filtered by
// color, or a color-local path adjacency) into this shape.
type NeighborsFunc func(node string) []string

// Walk walks from start to goal, at each step moving to the unique neighbor
// (per neighbors) that isn't the previous node.
// Complexity: O(path length * neighbor fan-out).
func Walk(start, goal string, neighbors NeighborsFunc) ([]string, error) {
	path := []string{start}
	prev, cur := "", start

	for cur != goal {
		var candidates []string
		for _, nb := range neighbors(cur) {
			if nb != prev {
				candidates = append(candidates, nb)
			}
		}
		if len(candidates) != 1 {
			return nil, fmt.Errorf("%w: at node %q (candidates=%v)", ErrAmbiguousStep, cur, candidates)
		}
		prev, cur = cur, candidates[0]
		path = append(path, cur)
	}

	return path, nil
}
