package space_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brinepath/flowlattice/space"
)

func TestSquareBasicGrid(t *testing.T) {
	r := require.New(t)

	tokens := [][]string{
		{"A", ".", "."},
		{".", "#", "."},
		{".", ".", "A"},
	}

	g, tiles, terms, err := space.Square(tokens)
	r.NoError(err)
	r.Equal(8, g.Len()) // 9 cells minus the hole
	r.Equal(8, tiles.Len())

	pair, ok := terms["A"]
	r.True(ok)
	r.Equal("0,0", pair[0])
	r.Equal("2,2", pair[1])

	// The hole at (1,1) has no node and so no edges into it.
	r.False(g.HasNode("1,1"))
	r.Equal(2, g.Degree("0,0")) // corner: E and S only
}

func TestSquareBridgeTile(t *testing.T) {
	r := require.New(t)

	tokens := [][]string{
		{"A", ".", "B"},
		{".", "+", "."},
		{"B", ".", "A"},
	}

	g, tiles, _, err := space.Square(tokens)
	r.NoError(err)

	// A bridge cell contributes two nodes under one tile.
	r.True(g.HasNode("1,1:h"))
	r.True(g.HasNode("1,1:v"))
	r.False(g.HasNode("1,1"))
	r.Equal(9, tiles.Len()) // 8 single-node cells plus 1 bridge tile

	tileID, ok := tiles.TileOf("1,1:h")
	r.True(ok)
	other, ok := tiles.TileOf("1,1:v")
	r.True(ok)
	r.Equal(tileID, other)

	// Horizontal channel connects east/west neighbors; vertical connects north/south.
	r.True(g.HasNode("0,1"))
	r.True(g.HasNode("2,1"))
	neighbors := g.Neighbors("1,1:h")
	r.Contains(neighbors, "0,1")
	r.Contains(neighbors, "2,1")

	vNeighbors := g.Neighbors("1,1:v")
	r.Contains(vNeighbors, "1,0")
	r.Contains(vNeighbors, "1,2")
}

func TestSquareRejectsNonRectangular(t *testing.T) {
	r := require.New(t)

	tokens := [][]string{
		{".", "."},
		{"."},
	}
	_, _, _, err := space.Square(tokens)
	r.ErrorIs(err, space.ErrNonRectangular)
}

func TestSquareRejectsBadTerminalCount(t *testing.T) {
	r := require.New(t)

	tokens := [][]string{
		{"A", ".", "A"},
		{".", ".", "A"},
	}
	_, _, _, err := space.Square(tokens)
	r.ErrorIs(err, space.ErrTerminalCount)
}

func TestSquareRejectsNoTerminals(t *testing.T) {
	r := require.New(t)

	tokens := [][]string{
		{".", "."},
		{".", "."},
	}
	_, _, _, err := space.Square(tokens)
	r.ErrorIs(err, space.ErrNoTerminals)
}

func TestSquareRejectsEmptyGrid(t *testing.T) {
	r := require.New(t)
	_, _, _, err := space.Square(nil)
	r.ErrorIs(err, space.ErrEmptyGrid)
}
