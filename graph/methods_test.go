package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brinepath/flowlattice/graph"
)

func TestGraph_AddNode(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph()

	r.ErrorIs(g.AddNode(""), graph.ErrEmptyNodeID)

	r.NoError(g.AddNode("a"))
	r.True(g.HasNode("a"))

	r.ErrorIs(g.AddNode("a"), graph.ErrNodeExists)
	r.Equal(1, g.Len())
}

func TestGraph_AddEdge(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph()
	r.NoError(g.AddNode("a"))
	r.NoError(g.AddNode("b"))

	r.ErrorIs(g.AddEdge("a", "a"), graph.ErrSelfLoop)
	r.ErrorIs(g.AddEdge("a", "missing"), graph.ErrNodeNotFound)

	r.NoError(g.AddEdge("a", "b"))
	r.Equal([]string{"b"}, g.Neighbors("a"))
	r.Equal([]string{"a"}, g.Neighbors("b"))
	r.Equal(1, g.Degree("a"))

	// idempotent re-add
	r.NoError(g.AddEdge("a", "b"))
	r.Equal(1, g.Degree("a"))
}

func TestGraph_NeighborsSorted(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph()
	for _, id := range []string{"c", "a", "b", "z"} {
		r.NoError(g.AddNode(id))
	}
	r.NoError(g.AddEdge("z", "c"))
	r.NoError(g.AddEdge("z", "a"))
	r.NoError(g.AddEdge("z", "b"))

	r.Equal([]string{"a", "b", "c"}, g.Neighbors("z"))
}

func TestGraph_NodesInsertionOrder(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph()
	ids := []string{"z", "a", "m"}
	for _, id := range ids {
		r.NoError(g.AddNode(id))
	}
	r.Equal(ids, g.Nodes())
}

func TestGraph_EdgesOnceLexicographic(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		r.NoError(g.AddNode(id))
	}
	r.NoError(g.AddEdge("b", "a"))
	r.NoError(g.AddEdge("c", "b"))

	r.Equal([][2]string{{"a", "b"}, {"b", "c"}}, g.Edges())
}

func TestGraph_RequireNode(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph()
	r.NoError(g.AddNode("a"))

	n, err := g.RequireNode("a")
	r.NoError(err)
	r.Equal("a", n.ID)

	_, err = g.RequireNode("missing")
	r.ErrorIs(err, graph.ErrNodeNotFound)
}

func TestTileSet_PartitionBookkeeping(t *testing.T) {
	r := require.New(t)
	ts := graph.NewTileSet()
	ts.Put("t1", "n1")
	ts.Put("t2", "n2", "n3")

	tileID, ok := ts.TileOf("n2")
	r.True(ok)
	r.Equal("t2", tileID)

	r.Equal([]string{"n2", "n3"}, ts.Tile("t2").Nodes)
	r.Equal(2, ts.Len())
	r.Equal([]string{"t1", "t2"}, ts.TileIDs())

	_, ok = ts.TileOf("unknown")
	r.False(ok)
}
