package dfssolve

import "errors"

// ErrUnsat indicates the search space was exhausted without finding a
// solution.
var ErrUnsat = errors.New("dfssolve: no solution found")

// ErrTimeout indicates the caller-supplied deadline elapsed before the
// search concluded.
var ErrTimeout = errors.New("dfssolve: timed out")

// ErrInternal indicates a solver invariant was violated (an assignment
// bookkeeping mismatch, or a path that can't be walked uniquely);
// unreachable on a puzzle.Puzzle that passed puzzle.New's validation.
var ErrInternal = errors.New("dfssolve: internal invariant violated")
