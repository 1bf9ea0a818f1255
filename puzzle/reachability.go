package puzzle

import "github.com/brinepath/flowlattice/graph"

// reachable reports whether b is reachable from a via a plain BFS over g's
// adjacency, visiting neighbors in graph.Neighbors' deterministic sorted
// order (irrelevant to the boolean answer, but kept for reproducible
// traversal order if this is ever instrumented).
//
// Complexity: O(V + E).
func reachable(g *graph.Graph, a, b string) bool {
	if a == b {
		return true
	}

	visited := map[string]bool{a: true}
	queue := []string{a}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range g.Neighbors(cur) {
			if visited[next] {
				continue
			}
			if next == b {
				return true
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return false
}
