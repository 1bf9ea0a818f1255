package graph

import "sort"

// AddNode inserts a node with the given ID, zero Pos, Kind "cell", and an
// empty Metadata map.
// Returns ErrEmptyNodeID for an empty id, ErrNodeExists for a duplicate.
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.nodes[id]; ok {
		return ErrNodeExists
	}
	g.nodes[id] = &Node{ID: id, Kind: "cell", Metadata: make(map[string]interface{})}
	g.nodeOrder = append(g.nodeOrder, id)
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// AddNodeValue inserts n (keyed by n.ID), allocating Metadata if nil.
// Returns ErrEmptyNodeID / ErrNodeExists under the same rules as AddNode.
// Complexity: O(1).
func (g *Graph) AddNodeValue(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.nodes[n.ID]; ok {
		return ErrNodeExists
	}
	if n.Metadata == nil {
		n.Metadata = make(map[string]interface{})
	}
	cp := n
	g.nodes[n.ID] = &cp
	g.nodeOrder = append(g.nodeOrder, n.ID)
	g.adjacency[n.ID] = make(map[string]struct{})

	return nil
}

// AddEdge connects u and v. Idempotent for a repeated pair (no error, no
// duplicate bookkeeping). Returns ErrSelfLoop if u == v, ErrNodeNotFound if
// either endpoint is missing.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.nodes[u]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrNodeNotFound
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}

	return nil
}

// HasNode reports whether id names an existing node. Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node for id, or nil if absent. The returned pointer
// aliases internal state; treat it as read-only outside of construction.
// Complexity: O(1).
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// RequireNode returns the node for id, or ErrNodeNotFound: an annotated
// lookup failure instead of a bare nil, for builder/puzzle code that wants
// to fail fast with context.
// Complexity: O(1).
func (g *Graph) RequireNode(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Len returns the number of nodes. Complexity: O(1).
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns all node IDs in insertion order. The returned slice is a
// fresh copy safe for the caller to retain and mutate.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// Degree returns the number of neighbors of id, or 0 if id is absent.
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	return len(g.adjacency[id])
}

// Neighbors returns the node IDs adjacent to id, sorted lexicographically.
// Returns an empty (non-nil) slice for an unknown or isolated node; callers
// that need to distinguish "unknown node" should check HasNode first.
//
// Determinism: this is the one ordering every solver's tie-breaking and
// every SAT variable enumeration depends on.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) []string {
	adj := g.adjacency[id]
	out := make([]string, 0, len(adj))
	for nb := range adj {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out
}

// Edges returns every undirected pair exactly once, ordered lexicographically
// by (u, v) with u < v, and the pairs themselves sorted by u then v.
// Complexity: O(V + E log E).
func (g *Graph) Edges() [][2]string {
	out := make([][2]string, 0)
	for _, u := range g.nodeOrder {
		nbs := g.Neighbors(u)
		for _, v := range nbs {
			if u < v {
				out = append(out, [2]string{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}
