// Package constraintsolve implements the SAT-encoded solver: every node
// gets a one-hot color-or-unused variable, tile/terminal/degree constraints
// become Boolean cardinality clauses, and per-color reachability is
// witnessed by a one-hot BFS-distance variable per node, all handed to
// github.com/crillab/gophersat/bf for the actual decision.
package constraintsolve
