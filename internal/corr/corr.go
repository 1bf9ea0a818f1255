// Package corr stamps every solve call with a correlation ID, pure
// logging/tracing metadata that never participates in solver determinism,
// node ordering, or SAT variable naming.
package corr

import "github.com/google/uuid"

// New returns a fresh v4 UUID string.
func New() string {
	return uuid.New().String()
}
