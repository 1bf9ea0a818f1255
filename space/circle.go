package space

import (
	"fmt"
	"math"
	"strconv"

	"github.com/brinepath/flowlattice/graph"
)

// CircleRing builds a 1D ring space from a flat token sequence: nodes sit
// on a circle at unit-ish arc spacing and connect to their immediate
// neighbors, wrapping from the last back to the first.
// Complexity: O(n).
func CircleRing(tokens []string) (*graph.Graph, *graph.TileSet, Terminals, error) {
	n := len(tokens)
	if n == 0 {
		return nil, nil, nil, ErrEmptyGrid
	}

	g := graph.NewGraph()
	tiles := graph.NewTileSet()
	terms := newTerminalCollector()
	present := make(map[int]string, n)

	r := math.Max(1.0, float64(n)/(2.0*math.Pi))

	for i, tok := range tokens {
		kind, color := classifyToken(tok)
		if kind == tokenHole {
			continue
		}
		if kind == tokenBridge {
			return nil, nil, nil, ErrBridgeToken
		}

		id := strconv.Itoa(i)
		theta := 2.0 * math.Pi * float64(i) / float64(n)
		pos := [3]float64{r * math.Cos(theta), r * math.Sin(theta), 0.0}

		nodeKind, meta := "cell", map[string]interface{}{"tile": id, "token": tok}
		if kind == tokenTerminal {
			nodeKind, meta = "terminal", map[string]interface{}{"tile": id, "color": color}
		}
		if err := g.AddNodeValue(graph.Node{ID: id, Pos: pos, Kind: nodeKind, Metadata: meta}); err != nil {
			return nil, nil, nil, fmt.Errorf("space.CircleRing: AddNode(%s): %w", id, err)
		}
		tiles.Put(id, id)
		present[i] = id
		if kind == tokenTerminal {
			terms.add(color, id)
		}
	}

	for i := 0; i < n; i++ {
		u, ok := present[i]
		if !ok {
			continue
		}
		if v, ok := present[(i+1)%n]; ok && v != u {
			if err := g.AddEdge(u, v); err != nil {
				return nil, nil, nil, fmt.Errorf("space.CircleRing: AddEdge(%s,%s): %w", u, v, err)
			}
		}
	}

	terminals, err := terms.finish()
	if err != nil {
		return nil, nil, nil, err
	}

	return g, tiles, terminals, nil
}

// CircleGrid builds a 2D rings/sectors space from a token grid: rows are
// concentric rings (inner to outer), columns are angular sectors. Angular
// adjacency wraps within a ring; radial adjacency connects a cell to the
// same sector one ring out. If withCore is true, an extra origin node is
// added, connected to every non-hole cell of the innermost ring.
// Complexity: O(W*H).
func CircleGrid(tokens [][]string, withCore bool) (*graph.Graph, *graph.TileSet, Terminals, error) {
	rings, width, err := validateTokenGrid(tokens)
	if err != nil {
		return nil, nil, nil, err
	}

	g := graph.NewGraph()
	tiles := graph.NewTileSet()
	terms := newTerminalCollector()
	present := make(map[[2]int]string, rings*width)

	baseR := math.Max(1.0, float64(width)/(2.0*math.Pi))
	const dr = 1.0

	for y := 0; y < rings; y++ {
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
			r := baseR + float64(y)*dr
			theta := 2.0 * math.Pi * float64(x) / float64(width)
			pos := [3]float64{r * math.Cos(theta), r * math.Sin(theta), 0.0}

			nodeKind, meta := "cell", map[string]interface{}{"tile": id, "token": tok}
			if kind == tokenTerminal {
				nodeKind, meta = "terminal", map[string]interface{}{"tile": id, "color": color}
			}
			if err := g.AddNodeValue(graph.Node{ID: id, Pos: pos, Kind: nodeKind, Metadata: meta}); err != nil {
				return nil, nil, nil, fmt.Errorf("space.CircleGrid: AddNode(%s): %w", id, err)
			}
			tiles.Put(id, id)
			present[[2]int{x, y}] = id
			if kind == tokenTerminal {
				terms.add(color, id)
			}
		}
	}

	for y := 0; y < rings; y++ {
		for x := 0; x < width; x++ {
			u, ok := present[[2]int{x, y}]
			if !ok {
				continue
			}
			if v, ok := present[[2]int{(x + 1) % width, y}]; ok && v != u {
				if err := g.AddEdge(u, v); err != nil {
					return nil, nil, nil, fmt.Errorf("space.CircleGrid: AddEdge(%s,%s): %w", u, v, err)
				}
			}
			if v, ok := present[[2]int{x, y + 1}]; ok {
				if err := g.AddEdge(u, v); err != nil {
					return nil, nil, nil, fmt.Errorf("space.CircleGrid: AddEdge(%s,%s): %w", u, v, err)
				}
			}
		}
	}

	if withCore {
		coreID := "core"
		if err := g.AddNodeValue(graph.Node{
			ID: coreID, Pos: [3]float64{0, 0, 0}, Kind: "core",
			Metadata: map[string]interface{}{"tile": coreID},
		}); err != nil {
			return nil, nil, nil, fmt.Errorf("space.CircleGrid: AddNode(%s): %w", coreID, err)
		}
		tiles.Put(coreID, coreID)
		for x := 0; x < width; x++ {
			if v, ok := present[[2]int{x, 0}]; ok {
				if err := g.AddEdge(coreID, v); err != nil {
					return nil, nil, nil, fmt.Errorf("space.CircleGrid: AddEdge(%s,%s): %w", coreID, v, err)
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
