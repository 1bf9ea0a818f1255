package graph

// Node is a vertex in the unified space model.
//
// ID uniquely identifies the node within its Graph. Pos is a position in
// three dimensions, carried purely for downstream rendering; solvers never
// read it. Kind is an advisory tag ("cell", "terminal", "bridge_h",
// "bridge_v", "core", ...); the only thing that depends on Kind rather than
// treating it as opaque metadata is that a "terminal" node is expected to
// carry a "color" entry in Metadata.
type Node struct {
	ID       string
	Pos      [3]float64
	Kind     string
	Metadata map[string]interface{}
}

// Graph is an undirected adjacency structure over Node values.
//
// Invariants, enforced by AddNode/AddEdge:
//   - no self-loops
//   - both endpoints of every edge exist
//   - adjacency is symmetric
//
// nodeOrder preserves insertion order for deterministic iteration; adjacency
// is a sorted-on-read view (see Neighbors), not a sorted-on-write structure,
// to keep AddEdge O(1) amortized.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	adjacency map[string]map[string]struct{}
}

// NewGraph returns an empty Graph ready for AddNode/AddEdge.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]struct{}),
	}
}
