package puzzle

import "errors"

// Sentinel errors. Callers branch with errors.Is; New, ParseFlow and
// ParseJSON return them wrapped with context, not as solve.Error values.
var (
	// ErrTerminalNodeMissing indicates a declared terminal id has no
	// matching node in the graph.
	ErrTerminalNodeMissing = errors.New("puzzle: terminal node id not found in graph")

	// ErrDuplicateEndpoint indicates a color's two declared terminal ids
	// are identical.
	ErrDuplicateEndpoint = errors.New("puzzle: terminal endpoints must be distinct")

	// ErrTerminalTileMismatch indicates a terminal node belongs to no tile
	// (a builder bug).
	ErrTerminalTileMismatch = errors.New("puzzle: terminal is not a member of its own tile")

	// ErrTileColorConflict indicates a single tile holds terminals of two
	// different colors.
	ErrTileColorConflict = errors.New("puzzle: tile contains terminals of two different colors")

	// ErrPartitionIncomplete indicates at least one graph node belongs to
	// zero or more than one tile.
	ErrPartitionIncomplete = errors.New("puzzle: tiles do not partition the graph's nodes exactly")

	// ErrDisconnectedColor indicates a color's two terminals lie in
	// different connected components, making the puzzle unsatisfiable
	// before any solver runs.
	ErrDisconnectedColor = errors.New("puzzle: terminal pair lies in different connected components")

	// ErrUnknownBoardType indicates a `.flow` `# type:` directive or JSON
	// `space.type` naming something other than square/hex/circle (text) or
	// graph/square (JSON).
	ErrUnknownBoardType = errors.New("puzzle: unsupported board type")

	// ErrNoGridRows indicates a `.flow` document had no grid row lines
	// after directive/comment lines were stripped.
	ErrNoGridRows = errors.New("puzzle: no grid rows found in .flow text")

	// ErrRaggedGrid indicates grid rows with differing token counts.
	ErrRaggedGrid = errors.New("puzzle: all grid rows must have the same token count")

	// ErrMalformedJSON indicates a syntactically valid JSON document
	// missing a field this format requires, or holding one of the wrong
	// shape (e.g. a terminal pair that isn't a 2-element array).
	ErrMalformedJSON = errors.New("puzzle: malformed JSON puzzle description")
)
