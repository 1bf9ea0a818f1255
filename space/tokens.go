package space

// Terminals maps a color label (a single uppercase letter) to its two
// terminal node IDs. Order within the pair is the order the two occurrences
// were encountered while scanning the board.
type Terminals map[string][2]string

// tokenKind classifies a single grid token per the shared semantics
// documented in doc.go.
type tokenKind int

const (
	tokenCell tokenKind = iota
	tokenHole
	tokenBridge
	tokenTerminal
)

// classifyToken inspects a single token string and reports its kind. For
// tokenTerminal, color is the uppercase letter.
func classifyToken(tok string) (kind tokenKind, color string) {
	switch {
	case tok == "#":
		return tokenHole, ""
	case tok == "+":
		return tokenBridge, ""
	case len(tok) == 1 && tok[0] >= 'A' && tok[0] <= 'Z':
		return tokenTerminal, tok
	default:
		return tokenCell, ""
	}
}

// terminalCollector accumulates terminal node IDs per color while a builder
// scans its board, and finalizes them into a validated Terminals map.
type terminalCollector struct {
	locs  map[string][]string
	order []string
}

func newTerminalCollector() *terminalCollector {
	return &terminalCollector{locs: make(map[string][]string)}
}

func (tc *terminalCollector) add(color, nodeID string) {
	if _, ok := tc.locs[color]; !ok {
		tc.order = append(tc.order, color)
	}
	tc.locs[color] = append(tc.locs[color], nodeID)
}

// finish validates that every color appeared exactly twice and that at
// least one color was seen at all.
func (tc *terminalCollector) finish() (Terminals, error) {
	if len(tc.order) == 0 {
		return nil, ErrNoTerminals
	}
	out := make(Terminals, len(tc.order))
	for _, color := range tc.order {
		locs := tc.locs[color]
		if len(locs) != 2 {
			return nil, ErrTerminalCount
		}
		out[color] = [2]string{locs[0], locs[1]}
	}

	return out, nil
}
