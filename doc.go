// Package flowlattice solves Flow/Numberlink-style puzzles over arbitrary
// undirected graphs.
//
// 🚀 What is flowlattice?
//
//	An engine that turns a textual board description into a graph puzzle and
//	routes every color's path between its two terminals:
//
//	  • Spaces: square grids (with two-channel bridge tiles), hex odd-r
//	    offset grids, circular rings & sectors, free-form JSON graphs
//	  • Solvers: a SAT-encoded constraint backend and a backtracking
//	    path-growth backend, both behind one Solve call
//	  • Formats: the line-oriented .flow text format and a JSON document
//	    format, round-trippable through ToJSON
//
// Everything is organized under five subpackages:
//
//	graph/      — deterministic undirected graph, tiles, node metadata
//	space/      — square/hex/circle/free-form board builders
//	puzzle/     — .flow + JSON parsing, assembly, invariant validation
//	solve/      — Solve entry point, result type, error taxonomy
//	internal/   — structured logging and correlation IDs
//
// Quick ASCII example:
//
//	    A . B        A flows around one bridge channel,
//	    . + .        B through the other; they never touch.
//	    B . A
//
// Start with puzzle.ParseFlow or puzzle.ParseJSON, then hand the result to
// solve.Solve with the backend and timeout of your choice.
package flowlattice
