package constraintsolve

import "errors"

// ErrUnsat indicates bf.Solve proved the formula unsatisfiable.
var ErrUnsat = errors.New("constraintsolve: no solution found")

// ErrUnknown indicates the decision procedure failed without a clean
// sat/unsat answer; the underlying reason is wrapped into the message.
var ErrUnknown = errors.New("constraintsolve: solver returned unknown")

// ErrTimeout indicates the caller-supplied deadline elapsed before bf.Solve
// returned.
var ErrTimeout = errors.New("constraintsolve: timed out")

// ErrInternal indicates the returned model couldn't be decoded into a
// consistent node-color assignment; unreachable on a puzzle.Puzzle that
// passed puzzle.New's validation.
var ErrInternal = errors.New("constraintsolve: internal invariant violated")
