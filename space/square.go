package space

import (
	"fmt"

	"github.com/brinepath/flowlattice/graph"
)

// cellID formats the tile/vertex ID for a non-bridge cell at (x,y): "x,y".
func cellID(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

// squarePorts records, for one physical cell, which internal node each of
// the four compass directions resolves to. A non-bridge cell maps all four
// to the same node; a bridge cell maps N/S to its vertical-channel node and
// E/W to its horizontal-channel node.
type squarePorts struct {
	n, s, e, w string
}

// Square builds a rectilinear grid space from a rectangular token grid.
// Position for a non-hole cell at (x,y) is (x, -y, 0); bridge cells place
// two internal nodes at z=+0.15 (horizontal channel) and z=-0.15 (vertical
// channel), both members of one tile.
//
// Complexity: O(W*H).
func Square(tokens [][]string) (*graph.Graph, *graph.TileSet, Terminals, error) {
	height, width, err := validateTokenGrid(tokens)
	if err != nil {
		return nil, nil, nil, err
	}

	g := graph.NewGraph()
	tiles := graph.NewTileSet()
	terms := newTerminalCollector()
	ports := make(map[[2]int]squarePorts, height*width)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tok := tokens[y][x]
			kind, color := classifyToken(tok)
			tile := cellID(x, y)
			pos := [3]float64{float64(x), float64(-y), 0.0}

			switch kind {
			case tokenHole:
				continue

			case tokenBridge:
				hID, vID := tile+":h", tile+":v"
				if err := g.AddNodeValue(graph.Node{
					ID: hID, Pos: [3]float64{pos[0], pos[1], 0.15}, Kind: "bridge_h",
					Metadata: map[string]interface{}{"tile": tile},
				}); err != nil {
					return nil, nil, nil, fmt.Errorf("space.Square: AddNode(%s): %w", hID, err)
				}
				if err := g.AddNodeValue(graph.Node{
					ID: vID, Pos: [3]float64{pos[0], pos[1], -0.15}, Kind: "bridge_v",
					Metadata: map[string]interface{}{"tile": tile},
				}); err != nil {
					return nil, nil, nil, fmt.Errorf("space.Square: AddNode(%s): %w", vID, err)
				}
				tiles.Put(tile, hID, vID)
				ports[[2]int{x, y}] = squarePorts{n: vID, s: vID, e: hID, w: hID}

			case tokenTerminal:
				if err := g.AddNodeValue(graph.Node{
					ID: tile, Pos: pos, Kind: "terminal",
					Metadata: map[string]interface{}{"tile": tile, "color": color},
				}); err != nil {
					return nil, nil, nil, fmt.Errorf("space.Square: AddNode(%s): %w", tile, err)
				}
				tiles.Put(tile, tile)
				ports[[2]int{x, y}] = squarePorts{n: tile, s: tile, e: tile, w: tile}
				terms.add(color, tile)

			default: // tokenCell
				if err := g.AddNodeValue(graph.Node{
					ID: tile, Pos: pos, Kind: "cell",
					Metadata: map[string]interface{}{"tile": tile, "token": tok},
				}); err != nil {
					return nil, nil, nil, fmt.Errorf("space.Square: AddNode(%s): %w", tile, err)
				}
				tiles.Put(tile, tile)
				ports[[2]int{x, y}] = squarePorts{n: tile, s: tile, e: tile, w: tile}
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p, ok := ports[[2]int{x, y}]
			if !ok {
				continue
			}
			if rp, ok := ports[[2]int{x + 1, y}]; ok {
				if err := g.AddEdge(p.e, rp.w); err != nil {
					return nil, nil, nil, fmt.Errorf("space.Square: AddEdge(%s,%s): %w", p.e, rp.w, err)
				}
			}
			if dp, ok := ports[[2]int{x, y + 1}]; ok {
				if err := g.AddEdge(p.s, dp.n); err != nil {
					return nil, nil, nil, fmt.Errorf("space.Square: AddEdge(%s,%s): %w", p.s, dp.n, err)
				}
			}
		}
	}

	terminals, err := terms.finish()
	if err != nil {
		return nil, nil, nil, err
	}

	return g, tiles, terminals, nil
}
