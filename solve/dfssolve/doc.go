// Package dfssolve implements the backtracking path-growth solver: each
// color grows two heads outward from its terminals, choosing at every step
// to extend a head onto a free tile or connect it to the other head, under
// minimum-remaining-values branching and continuous reachability pruning.
package dfssolve
