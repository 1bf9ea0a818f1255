package space

import (
	"fmt"
	"math"

	"github.com/brinepath/flowlattice/graph"
)

// hexNeighborOffsets returns the six odd-r offset neighbor coordinates for a
// cell at row y, in a fixed compass order (E, W, NE, NW, SE, SW).
func hexNeighborOffsets(y int) [6][2]int {
	if y%2 == 0 {
		return [6][2]int{
			{1, 0}, {-1, 0}, {0, -1}, {-1, -1}, {0, 1}, {-1, 1},
		}
	}
	return [6][2]int{
		{1, 0}, {-1, 0}, {1, -1}, {0, -1}, {1, 1}, {0, 1},
	}
}

// Hex builds an odd-r offset hex grid space from a rectangular token grid.
// Each non-hole cell becomes its own tile; bridge tokens are unsupported
// (ErrBridgeToken).
//
// Construction follows Square's validate/place/connect/finish split.
// Complexity: O(W*H).
func Hex(tokens [][]string) (*graph.Graph, *graph.TileSet, Terminals, error) {
	height, width, err := validateTokenGrid(tokens)
	if err != nil {
		return nil, nil, nil, err
	}

	g := graph.NewGraph()
	tiles := graph.NewTileSet()
	terms := newTerminalCollector()
	present := make(map[[2]int]string, height*width)

	yStep := math.Sqrt(3) / 2.0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tok := tokens[y][x]
			kind, color := classifyToken(tok)
			if kind == tokenHole {
				continue
			}
			if kind == tokenBridge {
				return nil, nil, nil, ErrBridgeToken
			}

			id := cellID(x, y)
			px := float64(x)
			if y%2 != 0 {
				px += 0.5
			}
			pos := [3]float64{px, float64(-y) * yStep, 0.0}

			nodeKind := "cell"
			meta := map[string]interface{}{"tile": id, "token": tok}
			if kind == tokenTerminal {
				nodeKind = "terminal"
				meta = map[string]interface{}{"tile": id, "color": color}
			}
			if err := g.AddNodeValue(graph.Node{ID: id, Pos: pos, Kind: nodeKind, Metadata: meta}); err != nil {
				return nil, nil, nil, fmt.Errorf("space.Hex: AddNode(%s): %w", id, err)
			}
			tiles.Put(id, id)
			present[[2]int{x, y}] = id
			if kind == tokenTerminal {
				terms.add(color, id)
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u, ok := present[[2]int{x, y}]
			if !ok {
				continue
			}
			for _, d := range hexNeighborOffsets(y) {
				nx, ny := x+d[0], y+d[1]
				v, ok := present[[2]int{nx, ny}]
				if !ok {
					continue
				}
				// AddEdge is idempotent, so visiting each pair from both
				// sides (once per cell's own neighbor scan) is harmless.
				if err := g.AddEdge(u, v); err != nil {
					return nil, nil, nil, fmt.Errorf("space.Hex: AddEdge(%s,%s): %w", u, v, err)
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
