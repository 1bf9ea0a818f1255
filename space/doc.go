// Package space implements the geometry adapters that turn a textual board
// description into a graph.Graph plus a graph.TileSet plus a Terminals
// mapping: Square (rectilinear grid with bridge tiles), Hex (odd-r offset),
// CircleRing/CircleGrid (1D ring / 2D ring-and-sector), and Free (JSON
// node/edge description).
//
// Every builder shares the same token semantics on its grid-shaped input:
//
//	'.'        empty traversable cell
//	'#'        hole (no node placed)
//	'+'        bridge (Square only; other spaces reject it with ErrBridgeToken)
//	'A'-'Z'    terminal of that color (must appear exactly twice per builder)
//	anything else is a traversable cell; the token value is kept in
//	           Node.Metadata["token"]
//
// Builders validate terminal counts themselves (ErrTerminalCount,
// ErrNoTerminals) rather than deferring to puzzle assembly, so a malformed
// board fails close to the parse that produced it.
//
// All builders are deterministic: row-major iteration, sorted ports, no
// randomness. Vertex IDs double as tile IDs for non-bridge cells ("x,y"),
// which is what lets puzzle.Puzzle report useful IDs in error messages.
package space
