package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brinepath/flowlattice/puzzle"
)

func TestParseFlowSquareBasic(t *testing.T) {
	r := require.New(t)

	text := "# type: square\n# fill: true\nA..\n...\n..A\n"
	p, err := puzzle.ParseFlow(text)
	r.NoError(err)
	r.True(p.Fill)
	r.Equal([]string{"A"}, p.AllColors())
	r.Equal(9, p.Graph.Len())
}

func TestParseFlowHashHoleRow(t *testing.T) {
	r := require.New(t)

	// "#B#" is a grid row (hole, terminal B, hole), not a directive/comment,
	// because it has no ':' and is not followed by whitespace.
	text := "A.A\n#B#\nB..\n"
	p, err := puzzle.ParseFlow(text)
	r.NoError(err)
	r.False(p.Graph.HasNode("0,1"))
	r.Contains(p.AllColors(), "B")
}

func TestParseFlowCommentLineIgnored(t *testing.T) {
	r := require.New(t)

	text := "# just a comment\nA..\n...\n..A\n"
	p, err := puzzle.ParseFlow(text)
	r.NoError(err)
	r.Equal(9, p.Graph.Len())
}

func TestParseFlowDirectiveFillFalse(t *testing.T) {
	r := require.New(t)

	text := "# fill: false\nA..\n...\n..A\n"
	p, err := puzzle.ParseFlow(text)
	r.NoError(err)
	r.False(p.Fill)
}

func TestParseFlowWhitespaceTokenRow(t *testing.T) {
	r := require.New(t)

	text := "A . .\n. . .\n. . A\n"
	p, err := puzzle.ParseFlow(text)
	r.NoError(err)
	r.Equal(9, p.Graph.Len())
}

func TestParseFlowHexType(t *testing.T) {
	r := require.New(t)

	text := "# type: hex\nA..\n...\n..A\n"
	p, err := puzzle.ParseFlow(text)
	r.NoError(err)
	r.Equal(9, p.Graph.Len())
}

func TestParseFlowRejectsRaggedGrid(t *testing.T) {
	r := require.New(t)

	text := "A..\n.."
	_, err := puzzle.ParseFlow(text)
	r.ErrorIs(err, puzzle.ErrRaggedGrid)
}

func TestParseFlowRejectsUnknownBoardType(t *testing.T) {
	r := require.New(t)

	text := "# type: triangle\nA.A\n"
	_, err := puzzle.ParseFlow(text)
	r.ErrorIs(err, puzzle.ErrUnknownBoardType)
}

func TestParseFlowRejectsEmptyGrid(t *testing.T) {
	r := require.New(t)

	text := "# type: square\n# fill: true\n"
	_, err := puzzle.ParseFlow(text)
	r.ErrorIs(err, puzzle.ErrNoGridRows)
}

func TestParseFlowMetaCollected(t *testing.T) {
	r := require.New(t)

	text := "# author: ada\nA.A\n"
	p, err := puzzle.ParseFlow(text)
	r.NoError(err)
	r.Equal("ada", p.Meta["author"])
}
