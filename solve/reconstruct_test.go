package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brinepath/flowlattice/graph"
	"github.com/brinepath/flowlattice/puzzle"
	"github.com/brinepath/flowlattice/solve"
	"github.com/brinepath/flowlattice/space"
)

func TestReconstructPathsLine(t *testing.T) {
	r := require.New(t)

	g := graph.NewGraph()
	for _, id := range []string{"n1", "n2", "n3"} {
		r.NoError(g.AddNode(id))
	}
	r.NoError(g.AddEdge("n1", "n2"))
	r.NoError(g.AddEdge("n2", "n3"))
	tiles := graph.NewTileSet()
	for _, id := range []string{"n1", "n2", "n3"} {
		tiles.Put(id, id)
	}
	p, err := puzzle.New(g, tiles, space.Terminals{"A": [2]string{"n1", "n3"}})
	r.NoError(err)

	nodeColor := map[string]string{"n1": "A", "n2": "A", "n3": "A"}
	paths, err := solve.ReconstructPaths(g, p, nodeColor)
	r.NoError(err)
	r.Equal([]string{"n1", "n2", "n3"}, paths["A"])
}

func TestReconstructPathsRejectsBranching(t *testing.T) {
	r := require.New(t)

	// A 4-cycle fully colored A gives the walk two candidates at the start.
	g := graph.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		r.NoError(g.AddNode(id))
	}
	r.NoError(g.AddEdge("a", "b"))
	r.NoError(g.AddEdge("b", "c"))
	r.NoError(g.AddEdge("c", "d"))
	r.NoError(g.AddEdge("d", "a"))
	tiles := graph.NewTileSet()
	for _, id := range []string{"a", "b", "c", "d"} {
		tiles.Put(id, id)
	}
	p, err := puzzle.New(g, tiles, space.Terminals{"A": [2]string{"a", "c"}})
	r.NoError(err)

	nodeColor := map[string]string{"a": "A", "b": "A", "c": "A", "d": "A"}
	_, err = solve.ReconstructPaths(g, p, nodeColor)
	var se *solve.Error
	r.ErrorAs(err, &se)
	r.Equal(solve.KindInternal, se.Kind)
}

func TestReconstructPathsRejectsMiscoloredTerminal(t *testing.T) {
	r := require.New(t)

	g := graph.NewGraph()
	r.NoError(g.AddNode("n1"))
	r.NoError(g.AddNode("n2"))
	r.NoError(g.AddEdge("n1", "n2"))
	tiles := graph.NewTileSet()
	tiles.Put("n1", "n1")
	tiles.Put("n2", "n2")
	p, err := puzzle.New(g, tiles, space.Terminals{"A": [2]string{"n1", "n2"}})
	r.NoError(err)

	nodeColor := map[string]string{"n1": "A", "n2": solve.NoColor}
	_, err = solve.ReconstructPaths(g, p, nodeColor)
	var se *solve.Error
	r.ErrorAs(err, &se)
	r.Equal(solve.KindInternal, se.Kind)
}
