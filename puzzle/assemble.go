package puzzle

import (
	"fmt"

	"github.com/brinepath/flowlattice/graph"
	"github.com/brinepath/flowlattice/space"
)

// New assembles a Puzzle from a built graph, tile partition, and terminal
// mapping, validating every invariant a space builder is expected to have
// already upheld locally (terminal existence and distinctness) plus the
// cross-cutting ones only an assembler can check (tile partition
// completeness, tile color exclusivity, terminal-component reachability).
//
// Complexity: O(V + E + T) where T is the tile count.
func New(g *graph.Graph, tiles *graph.TileSet, terminals space.Terminals, opts ...Option) (*Puzzle, error) {
	p := &Puzzle{Graph: g, Tiles: tiles, Terminals: terminals, Fill: true}
	for _, opt := range opts {
		opt(p)
	}

	if err := validateTerminals(p); err != nil {
		return nil, err
	}
	if err := validatePartition(p); err != nil {
		return nil, err
	}
	if err := validateTileColors(p); err != nil {
		return nil, err
	}
	if err := validateReachable(p); err != nil {
		return nil, err
	}

	return p, nil
}

func validateTerminals(p *Puzzle) error {
	for color, pair := range p.Terminals {
		if pair[0] == pair[1] {
			return fmt.Errorf("puzzle.New: color %q: %w", color, ErrDuplicateEndpoint)
		}
		for _, id := range pair {
			if !p.Graph.HasNode(id) {
				return fmt.Errorf("puzzle.New: color %q node %q: %w", color, id, ErrTerminalNodeMissing)
			}
		}
	}

	return nil
}

// validatePartition checks that every graph node belongs to exactly one
// tile: no node is listed by two tiles (which TileSet.Put's last-write-wins
// TileOf bookkeeping would otherwise hide), and every graph node is listed
// by some tile.
func validatePartition(p *Puzzle) error {
	seen := make(map[string]bool, p.Graph.Len())
	for _, tileID := range p.Tiles.TileIDs() {
		tile := p.Tiles.Tile(tileID)
		for _, nodeID := range tile.Nodes {
			if seen[nodeID] {
				return fmt.Errorf("puzzle.New: node %q claimed by more than one tile: %w", nodeID, ErrPartitionIncomplete)
			}
			seen[nodeID] = true
		}
	}
	for _, id := range p.Graph.Nodes() {
		if !seen[id] {
			return fmt.Errorf("puzzle.New: node %q has no tile: %w", id, ErrPartitionIncomplete)
		}
	}

	return nil
}

// validateTileColors checks that a terminal sits in its own tile (always
// true by construction, but cheap to assert) and that no tile hosts
// terminals of two distinct colors.
func validateTileColors(p *Puzzle) error {
	tileColor := make(map[string]Color)
	for color, pair := range p.Terminals {
		for _, id := range pair {
			tileID, ok := p.Tiles.TileOf(id)
			if !ok {
				return fmt.Errorf("puzzle.New: terminal %q: %w", id, ErrTerminalTileMismatch)
			}
			if existing, ok := tileColor[tileID]; ok && existing != color {
				return fmt.Errorf("puzzle.New: tile %q: colors %q and %q: %w", tileID, existing, color, ErrTileColorConflict)
			}
			tileColor[tileID] = color
		}
	}

	return nil
}

// validateReachable rejects a puzzle up front when any color's two
// terminals lie in different connected components: an O(V+E) BFS per color
// that lets both solvers fail fast instead of exhausting their search
// budget discovering structural unsatisfiability.
func validateReachable(p *Puzzle) error {
	for _, color := range p.AllColors() {
		pair := p.Terminals[color]
		if !reachable(p.Graph, pair[0], pair[1]) {
			return fmt.Errorf("puzzle.New: color %q: %w", color, ErrDisconnectedColor)
		}
	}

	return nil
}
