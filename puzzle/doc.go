// Package puzzle assembles a graph.Graph, a graph.TileSet, and a
// space.Terminals mapping produced by the space package into a validated
// Puzzle value, and parses the two textual puzzle formats (.flow and JSON)
// that drive that assembly.
//
// A Puzzle is immutable once New returns: every invariant in its doc comment
// has already been checked, so solvers never re-validate their input.
package puzzle
