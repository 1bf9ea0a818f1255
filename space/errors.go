package space

import "errors"

// Sentinel errors for space builders. Callers should branch with errors.Is.
var (
	// ErrEmptyGrid indicates the input token grid has no rows or no columns.
	ErrEmptyGrid = errors.New("space: token grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing token counts.
	ErrNonRectangular = errors.New("space: all grid rows must have the same token count")

	// ErrBridgeToken indicates a '+' bridge token was used in a space that
	// does not support bridges (hex, circle).
	ErrBridgeToken = errors.New("space: bridge token '+' is only supported on square spaces")

	// ErrTerminalCount indicates a color letter appeared a number of times
	// other than exactly two.
	ErrTerminalCount = errors.New("space: terminal color must appear exactly twice")

	// ErrNoTerminals indicates a board with no A-Z terminal pair at all.
	ErrNoTerminals = errors.New("space: at least one terminal pair is required")

	// ErrMalformedDescription indicates a free-form description is missing
	// a required field or has the wrong shape for one, e.g. a node position
	// that is not [x,y] or [x,y,z].
	ErrMalformedDescription = errors.New("space: malformed space description")
)
