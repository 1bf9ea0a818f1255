package graph

import "errors"

// Sentinel errors for graph operations. Callers should branch with
// errors.Is, not string comparison.
var (
	// ErrEmptyNodeID indicates a node ID was the empty string.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrNodeExists indicates AddNode was called with an ID already present.
	ErrNodeExists = errors.New("graph: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")
)
