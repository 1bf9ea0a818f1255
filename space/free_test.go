package space_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brinepath/flowlattice/space"
)

func TestFreeBasic(t *testing.T) {
	r := require.New(t)

	desc := space.FreeFormDescription{
		Nodes: map[string]space.FreeFormNode{
			"n1": {Pos: []float64{0, 0}},
			"n2": {Pos: []float64{1, 0}},
			"n3": {Pos: []float64{2, 0}},
		},
		Edges: [][2]string{{"n1", "n2"}, {"n2", "n3"}},
		Terminals: space.Terminals{
			"A": [2]string{"n1", "n3"},
		},
	}

	g, tiles, terms, err := space.Free(desc)
	r.NoError(err)
	r.Equal(3, g.Len())
	r.Equal(3, tiles.Len())
	r.Equal(2, g.Degree("n2"))
	r.Equal(2, g.Degree("n1")+g.Degree("n3"))

	pair, ok := terms["A"]
	r.True(ok)
	r.Equal([2]string{"n1", "n3"}, pair)
}

func TestFreeExplicitTiles(t *testing.T) {
	r := require.New(t)

	desc := space.FreeFormDescription{
		Nodes: map[string]space.FreeFormNode{
			"a": {Pos: []float64{0, 0}},
			"b": {Pos: []float64{0, 0}},
		},
		Edges: [][2]string{{"a", "b"}},
		Tiles: map[string][]string{
			"t0": {"a", "b"},
		},
		Terminals: space.Terminals{
			"A": [2]string{"a", "b"},
		},
	}

	_, tiles, _, err := space.Free(desc)
	r.NoError(err)
	r.Equal(1, tiles.Len())

	tA, ok := tiles.TileOf("a")
	r.True(ok)
	tB, ok := tiles.TileOf("b")
	r.True(ok)
	r.Equal(tA, tB)
}

func TestFreeRejectsMalformedPos(t *testing.T) {
	r := require.New(t)

	desc := space.FreeFormDescription{
		Nodes: map[string]space.FreeFormNode{
			"a": {Pos: []float64{0, 0}},
			"b": {Pos: []float64{1}},
		},
		Edges: [][2]string{{"a", "b"}},
		Terminals: space.Terminals{
			"A": [2]string{"a", "b"},
		},
	}
	_, _, _, err := space.Free(desc)
	r.ErrorIs(err, space.ErrMalformedDescription)
}

func TestFreeRejectsNoTerminals(t *testing.T) {
	r := require.New(t)

	desc := space.FreeFormDescription{
		Nodes: map[string]space.FreeFormNode{
			"a": {Pos: []float64{0, 0}},
		},
	}
	_, _, _, err := space.Free(desc)
	r.ErrorIs(err, space.ErrNoTerminals)
}
