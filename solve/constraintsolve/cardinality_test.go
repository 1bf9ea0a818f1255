package constraintsolve

import (
	"testing"

	"github.com/crillab/gophersat/bf"
	"github.com/stretchr/testify/require"
)

func TestCombinationsSizes(t *testing.T) {
	r := require.New(t)

	r.Len(combinations(4, 2), 6)
	r.Len(combinations(4, 0), 1)
	r.Nil(combinations(4, 5))
	r.Nil(combinations(4, -1))
}

func TestExactlyOneSatisfiableWithSingleTrue(t *testing.T) {
	r := require.New(t)

	vars := []bf.Formula{bf.Var("a"), bf.Var("b"), bf.Var("c")}
	f := bf.And(exactlyOne(vars), bf.Var("a"))

	model := bf.Solve(f)
	r.NotNil(model)
	r.True(model["a"])
	r.False(model["b"])
	r.False(model["c"])
}

func TestExactlyOneUnsatWithTwoForced(t *testing.T) {
	r := require.New(t)

	vars := []bf.Formula{bf.Var("a"), bf.Var("b"), bf.Var("c")}
	f := bf.And(exactlyOne(vars), bf.Var("a"), bf.Var("b"))

	model := bf.Solve(f)
	r.Nil(model)
}
