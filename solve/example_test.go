package solve_test

import (
	"fmt"
	"time"

	"github.com/brinepath/flowlattice/puzzle"
	"github.com/brinepath/flowlattice/solve"
)

func ExampleSolve() {
	text := "# type: square\nA..\n...\n..A\n"
	p, err := puzzle.ParseFlow(text)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	res, err := solve.Solve(p, solve.BackendDFS, 5*time.Second)
	if err != nil {
		fmt.Println("solve error:", err)
		return
	}

	path := res.Paths["A"]
	fmt.Println("path length:", len(path))
	fmt.Println("start:", path[0], "end:", path[len(path)-1])
	// Output:
	// path length: 9
	// start: 0,0 end: 2,2
}
