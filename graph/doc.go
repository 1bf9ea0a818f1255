// Package graph defines the unified graph model shared by every space
// builder and both solvers: Node, Graph, Tile, and TileSet.
//
// Graph is deliberately narrow compared to a general-purpose graph type:
// always undirected, no self-loops, no parallel edges. Flow/Numberlink
// puzzles never need more than that, and a narrower model means fewer
// invariants for builders and solvers to reason about.
//
// Determinism is the whole point of this package: node iteration follows
// insertion order, neighbor iteration is sorted by node ID, and edge
// enumeration yields each undirected pair exactly once in lexicographic
// order. Solvers rely on this for reproducible results: the DFS solver's
// move tie-breaking and the SAT encoder's variable order both follow it.
//
// A Graph is built once by a space builder and then treated as immutable
// for the rest of its life (wrapped into a puzzle.Puzzle, handed to a
// solver). Nothing in this package synchronizes concurrent writers, because
// nothing in this module produces any.
package graph
