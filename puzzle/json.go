package puzzle

import (
	"encoding/json"
	"fmt"

	"github.com/brinepath/flowlattice/space"
)

// jsonSpace mirrors the `space` object of a JSON puzzle document.
type jsonSpace struct {
	Type  string                        `json:"type"`
	Nodes map[string]space.FreeFormNode `json:"nodes,omitempty"`
	Edges [][2]string                   `json:"edges,omitempty"`
	Grid  [][]string                    `json:"grid,omitempty"`
}

// jsonPuzzle mirrors the top-level JSON puzzle object.
type jsonPuzzle struct {
	Space     jsonSpace           `json:"space"`
	Terminals map[string][]string `json:"terminals"`
	Tiles     map[string][]string `json:"tiles,omitempty"`
	Fill      *bool               `json:"fill,omitempty"`
	Meta      map[string]string   `json:"meta,omitempty"`
}

// ParseJSON parses the JSON puzzle format: `space.type` of
// "graph" builds directly from explicit nodes/edges/tiles/terminals;
// "square" wraps `space.grid` through the same builder ParseFlow uses for a
// `# type: square` .flow document.
//
// Extra opts, if given, are applied after the fields parsed from data.
//
// Complexity: O(V + E).
func ParseJSON(data []byte, opts ...Option) (*Puzzle, error) {
	var doc jsonPuzzle
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("puzzle.ParseJSON: %w: %v", ErrMalformedJSON, err)
	}

	fill := true
	if doc.Fill != nil {
		fill = *doc.Fill
	}

	spaceType := doc.Space.Type
	if spaceType == "" {
		spaceType = "graph"
	}

	switch spaceType {
	case "graph":
		terminals := make(space.Terminals, len(doc.Terminals))
		for color, pair := range doc.Terminals {
			if len(pair) != 2 {
				return nil, fmt.Errorf("puzzle.ParseJSON: color %q: %w", color, ErrMalformedJSON)
			}
			terminals[color] = [2]string{pair[0], pair[1]}
		}

		desc := space.FreeFormDescription{
			Nodes:     doc.Space.Nodes,
			Edges:     doc.Space.Edges,
			Tiles:     doc.Tiles,
			Terminals: terminals,
		}
		g, tiles, terms, err := space.Free(desc)
		if err != nil {
			return nil, fmt.Errorf("puzzle.ParseJSON: %w", err)
		}

		return New(g, tiles, terms, append([]Option{WithFill(fill), WithMeta(doc.Meta)}, opts...)...)

	case "square":
		g, tiles, terms, err := space.Square(doc.Space.Grid)
		if err != nil {
			return nil, fmt.Errorf("puzzle.ParseJSON: %w", err)
		}

		return New(g, tiles, terms, append([]Option{WithFill(fill), WithMeta(doc.Meta)}, opts...)...)

	default:
		return nil, fmt.Errorf("puzzle.ParseJSON: %q: %w", spaceType, ErrUnknownBoardType)
	}
}

// ToJSON serializes p as a graph-mode JSON puzzle document: explicit nodes,
// edges, tiles, and terminals, so any puzzle round-trips through ParseJSON
// no matter which space built it. Tiles are always written out explicitly
// since a bridge tile cannot be reconstructed from nodes alone.
func ToJSON(p *Puzzle) ([]byte, error) {
	nodes := make(map[string]space.FreeFormNode, p.Graph.Len())
	for _, id := range p.Graph.Nodes() {
		n := p.Graph.Node(id)
		nodes[id] = space.FreeFormNode{
			Pos:  []float64{n.Pos[0], n.Pos[1], n.Pos[2]},
			Kind: n.Kind,
			Data: n.Metadata,
		}
	}

	tiles := make(map[string][]string, p.Tiles.Len())
	for _, tileID := range p.Tiles.TileIDs() {
		tiles[tileID] = p.Tiles.Tile(tileID).Nodes
	}

	terminals := make(map[string][]string, len(p.Terminals))
	for color, pair := range p.Terminals {
		terminals[color] = []string{pair[0], pair[1]}
	}

	fill := p.Fill
	doc := jsonPuzzle{
		Space: jsonSpace{
			Type:  "graph",
			Nodes: nodes,
			Edges: p.Graph.Edges(),
		},
		Terminals: terminals,
		Tiles:     tiles,
		Fill:      &fill,
		Meta:      p.Meta,
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("puzzle.ToJSON: %w", err)
	}

	return out, nil
}
