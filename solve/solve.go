package solve

import (
	"errors"
	"fmt"
	"time"

	"github.com/brinepath/flowlattice/internal/corr"
	"github.com/brinepath/flowlattice/puzzle"
	"github.com/brinepath/flowlattice/solve/constraintsolve"
	"github.com/brinepath/flowlattice/solve/dfssolve"
)

// Solve is the single contract external collaborators use to run either
// backend against p. Each solve call is single-threaded and
// scoped: no state survives past the returned SolveResult or Error.
//
// Complexity: dominated by the chosen backend.
func Solve(p *puzzle.Puzzle, backend Backend, timeout time.Duration, opts ...Option) (*SolveResult, error) {
	cfg := newConfig(opts...)
	id := ""
	if cfg.corrID != nil {
		id = cfg.corrID()
	} else {
		id = corr.New()
	}

	start := time.Now()
	var nodeColor map[string]string
	var paths map[string][]string
	var err error

	switch backend {
	case BackendConstraint:
		nodeColor, paths, err = constraintsolve.Solve(p, timeout)
	case BackendDFS:
		nodeColor, paths, err = dfssolve.Solve(p, timeout)
	default:
		return nil, newError(KindInputParse, fmt.Sprintf("backend %d", int(backend)), ErrUnknownBackend)
	}

	elapsed := time.Since(start)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	cfg.logger("solve backend=%s nodes=%d colors=%d outcome=%s elapsed=%s corr_id=%s",
		backend, p.Graph.Len(), len(p.Terminals), outcome, elapsed, id)

	if err != nil {
		return nil, classifyBackendError(backend, err)
	}

	return &SolveResult{NodeColor: nodeColor, Paths: paths}, nil
}

// classifyBackendError maps a backend's plain sentinel-wrapped error into
// solve's Kind taxonomy.
func classifyBackendError(backend Backend, err error) error {
	switch {
	case errors.Is(err, constraintsolve.ErrUnsat), errors.Is(err, dfssolve.ErrUnsat):
		return newError(KindUnsat, fmt.Sprintf("%s backend", backend), err)
	case errors.Is(err, constraintsolve.ErrUnknown):
		return newError(KindUnknown, fmt.Sprintf("%s backend", backend), err)
	case errors.Is(err, constraintsolve.ErrTimeout), errors.Is(err, dfssolve.ErrTimeout):
		return newError(KindTimeout, fmt.Sprintf("%s backend", backend), err)
	case errors.Is(err, constraintsolve.ErrInternal), errors.Is(err, dfssolve.ErrInternal):
		return newError(KindInternal, fmt.Sprintf("%s backend", backend), err)
	default:
		// Both backends return only the sentinels matched above, so an
		// unclassified error is a backend bookkeeping bug.
		return newError(KindInternal, fmt.Sprintf("%s backend: unclassified error", backend), err)
	}
}
