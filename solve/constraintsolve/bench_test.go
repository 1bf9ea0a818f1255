package constraintsolve_test

import (
	"testing"
	"time"

	"github.com/brinepath/flowlattice/puzzle"
	"github.com/brinepath/flowlattice/solve/constraintsolve"
	"github.com/brinepath/flowlattice/space"
)

func benchPuzzle(b *testing.B, tokens [][]string) *puzzle.Puzzle {
	b.Helper()

	g, tiles, terms, err := space.Square(tokens)
	if err != nil {
		b.Fatal(err)
	}
	p, err := puzzle.New(g, tiles, terms)
	if err != nil {
		b.Fatal(err)
	}

	return p
}

func BenchmarkSolveSerpentine3x3(b *testing.B) {
	p := benchPuzzle(b, [][]string{
		{"A", ".", "."},
		{".", ".", "."},
		{".", ".", "A"},
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := constraintsolve.Solve(p, time.Minute); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveBridge3x3(b *testing.B) {
	p := benchPuzzle(b, [][]string{
		{"A", ".", "B"},
		{".", "+", "."},
		{"B", ".", "A"},
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := constraintsolve.Solve(p, time.Minute); err != nil {
			b.Fatal(err)
		}
	}
}
