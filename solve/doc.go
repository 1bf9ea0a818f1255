// Package solve defines the contract external collaborators use to run
// either Flow/Numberlink backend against a puzzle.Puzzle: a per-node color
// assignment (SolveResult), a classified Error taxonomy, and
// ReconstructPaths, which runs the same solve/pathwalk walk both backends
// use over a flat node-color map.
//
// The two backends, solve/constraintsolve (SAT-encoded) and solve/dfssolve
// (backtracking path growth), are dispatched by Solve and never imported
// directly by callers outside this module.
package solve
