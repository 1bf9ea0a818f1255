package solve

import (
	"log/slog"

	"github.com/brinepath/flowlattice/internal/logx"
)

// NoColor is the sentinel value SolveResult.NodeColor uses for a node that
// ended up unused.
const NoColor = "unused"

// SolveResult is a total per-node color assignment plus, for each color, the
// ordered node id sequence from its first terminal to its second.
type SolveResult struct {
	NodeColor map[string]string
	Paths     map[string][]string
}

// Backend selects which solving strategy Solve dispatches to.
type Backend int

const (
	// BackendConstraint encodes the puzzle as a Boolean satisfiability
	// problem (solve/constraintsolve).
	BackendConstraint Backend = iota
	// BackendDFS grows both-endpoint paths under backtracking with
	// reachability pruning (solve/dfssolve).
	BackendDFS
)

func (b Backend) String() string {
	switch b {
	case BackendConstraint:
		return "constraint"
	case BackendDFS:
		return "dfs"
	default:
		return "unknown"
	}
}

// config holds Solve's optional ambient-stack wiring: a logger and a
// correlation ID generator, both nil-safe by default.
type config struct {
	logger func(format string, args ...interface{})
	corrID func() string
}

// Option customizes a Solve call.
type Option func(*config)

// WithLogger installs a structured log sink (typically internal/logx's
// Printf-shaped adapter). A nil logger (the default) discards all output.
func WithLogger(logger func(format string, args ...interface{})) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSlog installs l as the log sink, adapted through internal/logx. Use
// logx.New to build an l that writes to the console, a rotating file, or
// both.
func WithSlog(l *slog.Logger) Option {
	return WithLogger(logx.Printf(l))
}

// WithCorrelationID overrides the default internal/corr.New ID generator,
// primarily for deterministic tests.
func WithCorrelationID(gen func() string) Option {
	return func(c *config) { c.corrID = gen }
}

func newConfig(opts ...Option) *config {
	c := &config{
		logger: func(string, ...interface{}) {},
		corrID: nil,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
