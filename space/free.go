package space

import (
	"fmt"
	"sort"

	"github.com/brinepath/flowlattice/graph"
)

// FreeFormNode is one entry of a FreeFormDescription's Nodes map.
type FreeFormNode struct {
	Pos  []float64              `json:"pos"`
	Kind string                 `json:"kind,omitempty"`
	Data map[string]interface{} `json:"data,omitempty"`
}

// FreeFormDescription is the decoded shape of a JSON puzzle's
// `space: {type: "graph", ...}` object.
type FreeFormDescription struct {
	Nodes     map[string]FreeFormNode `json:"nodes"`
	Edges     [][2]string             `json:"edges"`
	Tiles     map[string][]string     `json:"tiles,omitempty"`
	Terminals Terminals               `json:"terminals"`
}

// Free builds a graph space directly from an explicit node/edge/tile/
// terminal description, the JSON "graph" space type. Tiles default to one
// node per tile when the description omits them. Nodes and tiles are
// inserted in sorted-id order so graph iteration stays reproducible no
// matter what order the description's maps decoded in.
// Complexity: O(V log V + E).
func Free(desc FreeFormDescription) (*graph.Graph, *graph.TileSet, Terminals, error) {
	g := graph.NewGraph()

	nodeIDs := make([]string, 0, len(desc.Nodes))
	for id := range desc.Nodes {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)

	for _, id := range nodeIDs {
		nd := desc.Nodes[id]
		// A position is [x,y] or [x,y,z]; anything else is a garbled document.
		if len(nd.Pos) < 2 || len(nd.Pos) > 3 {
			return nil, nil, nil, fmt.Errorf("space.Free: node %q: pos has %d coordinates: %w", id, len(nd.Pos), ErrMalformedDescription)
		}
		pos := [3]float64{}
		copy(pos[:], nd.Pos)
		kind := nd.Kind
		if kind == "" {
			kind = "cell"
		}
		meta := make(map[string]interface{}, len(nd.Data))
		for k, v := range nd.Data {
			meta[k] = v
		}
		if err := g.AddNodeValue(graph.Node{ID: id, Pos: pos, Kind: kind, Metadata: meta}); err != nil {
			return nil, nil, nil, fmt.Errorf("space.Free: AddNode(%s): %w", id, err)
		}
	}

	for _, e := range desc.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, nil, nil, fmt.Errorf("space.Free: AddEdge(%s,%s): %w", e[0], e[1], err)
		}
	}

	tiles := graph.NewTileSet()
	if desc.Tiles == nil {
		for _, id := range g.Nodes() {
			tiles.Put(id, id)
		}
	} else {
		tileIDs := make([]string, 0, len(desc.Tiles))
		for tileID := range desc.Tiles {
			tileIDs = append(tileIDs, tileID)
		}
		sort.Strings(tileIDs)
		for _, tileID := range tileIDs {
			tiles.Put(tileID, desc.Tiles[tileID]...)
		}
	}

	if len(desc.Terminals) == 0 {
		return nil, nil, nil, ErrNoTerminals
	}
	terminals := make(Terminals, len(desc.Terminals))
	for color, pair := range desc.Terminals {
		terminals[color] = pair
	}

	return g, tiles, terminals, nil
}
