package space_test

import (
	"fmt"

	"github.com/brinepath/flowlattice/space"
)

func ExampleSquare() {
	tokens := [][]string{
		{"A", ".", "."},
		{".", ".", "."},
		{".", ".", "A"},
	}

	g, _, terms, err := space.Square(tokens)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pair := terms["A"]
	fmt.Println(g.Len(), "nodes")
	fmt.Println("A:", pair[0], pair[1])
	// Output:
	// 9 nodes
	// A: 0,0 2,2
}
