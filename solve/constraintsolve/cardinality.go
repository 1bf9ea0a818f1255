package constraintsolve

import "github.com/crillab/gophersat/bf"

// combinations returns the index sets of every size-k subset of [0,n),
// in lexicographic order.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}

	var out [][]int
	var rec func(start int, chosen []int)
	rec = func(start int, chosen []int) {
		if len(chosen) == k {
			out = append(out, append([]int(nil), chosen...))

			return
		}
		for i := start; i < n; i++ {
			rec(i+1, append(chosen, i))
		}
	}
	rec(0, nil)

	return out
}

// atLeastK builds the Boolean cardinality constraint "at least k of vars are
// true" as the disjunction of every k-subset's conjunction. The degree
// constraints pass a node's neighbors (at most 6 on hex, outside a circle
// core node); the one-hot constraints pass up to V+1 vars with k <= 2, so
// the subset count there grows quadratically with V.
func atLeastK(vars []bf.Formula, k int) bf.Formula {
	if k <= 0 {
		return bf.True
	}
	if k > len(vars) {
		return bf.False
	}

	combos := combinations(len(vars), k)
	terms := make([]bf.Formula, 0, len(combos))
	for _, combo := range combos {
		parts := make([]bf.Formula, len(combo))
		for i, idx := range combo {
			parts[i] = vars[idx]
		}
		terms = append(terms, bf.And(parts...))
	}

	return bf.Or(terms...)
}

// exactlyK builds "exactly k of vars are true" as atLeastK(k) AND NOT
// atLeastK(k+1). k=1 gives the one-hot domain constraint, k=2 gives the
// non-terminal same-color-degree constraint.
func exactlyK(vars []bf.Formula, k int) bf.Formula {
	return bf.And(atLeastK(vars, k), bf.Not(atLeastK(vars, k+1)))
}

// exactlyOne is exactlyK with k=1, used for every one-hot domain variable.
func exactlyOne(vars []bf.Formula) bf.Formula {
	return exactlyK(vars, 1)
}
