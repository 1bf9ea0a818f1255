package dfssolve

import (
	"fmt"
	"sort"
	"time"

	"github.com/brinepath/flowlattice/puzzle"
)

// move is one candidate step for a color's head: "extend" onto a free tile,
// or "connect" to the color's other head.
type move struct {
	kind string
	node string
}

// searcher holds all mutable state for one backtracking search.
type searcher struct {
	neighbors  map[string][]string
	nodeDegree map[string]int
	nodeTile   map[string]string
	tileNodes  map[string][]string

	assigned       map[string]string          // node -> color, "" if unassigned
	tileColorUsage map[string]map[string]bool // tile -> set of colors present
	pathAdj        map[string]map[string]map[string]bool
	heads          map[string][2]string
	done           map[string]bool
	terminalNodes  map[string]bool
	colors         []string
	fill           bool

	steps    int
	timeout  time.Duration
	deadline time.Time
}

func newSearcher(p *puzzle.Puzzle, timeout time.Duration) (*searcher, error) {
	s := &searcher{
		neighbors:      make(map[string][]string),
		nodeDegree:     make(map[string]int),
		nodeTile:       make(map[string]string),
		tileNodes:      make(map[string][]string),
		assigned:       make(map[string]string),
		tileColorUsage: make(map[string]map[string]bool),
		pathAdj:        make(map[string]map[string]map[string]bool),
		heads:          make(map[string][2]string),
		done:           make(map[string]bool),
		terminalNodes:  make(map[string]bool),
		colors:         p.AllColors(),
		fill:           p.Fill,
		timeout:        timeout,
		deadline:       time.Now().Add(timeout),
	}

	for _, n := range p.Graph.Nodes() {
		s.neighbors[n] = p.Graph.Neighbors(n)
		s.nodeDegree[n] = len(s.neighbors[n])
		s.assigned[n] = ""
	}

	for _, tileID := range p.Tiles.TileIDs() {
		tile := p.Tiles.Tile(tileID)
		s.tileNodes[tileID] = append([]string(nil), tile.Nodes...)
		s.tileColorUsage[tileID] = make(map[string]bool)
		for _, n := range tile.Nodes {
			s.nodeTile[n] = tileID
		}
	}

	for color, pair := range p.Terminals {
		if pair[0] == pair[1] {
			return nil, fmt.Errorf("%w: color %q terminal endpoints must be distinct", ErrInternal, color)
		}
		s.pathAdj[color] = map[string]map[string]bool{
			pair[0]: {},
			pair[1]: {},
		}
		s.heads[color] = [2]string{pair[0], pair[1]}
		s.done[color] = false
		s.terminalNodes[pair[0]] = true
		s.terminalNodes[pair[1]] = true
		if err := s.assignNode(color, pair[0]); err != nil {
			return nil, err
		}
		if err := s.assignNode(color, pair[1]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *searcher) assignNode(color, node string) error {
	if current := s.assigned[node]; current != "" {
		if current != color {
			return fmt.Errorf("%w: node %q already assigned to %q", ErrInternal, node, current)
		}

		return nil
	}
	tile := s.nodeTile[node]
	if s.tileColorUsage[tile][color] {
		return fmt.Errorf("%w: tile %q already used by %q", ErrInternal, tile, color)
	}
	s.assigned[node] = color
	s.tileColorUsage[tile][color] = true
	if s.pathAdj[color][node] == nil {
		s.pathAdj[color][node] = map[string]bool{}
	}

	return nil
}

func (s *searcher) unassignNode(color, node string) {
	s.assigned[node] = ""
	tile := s.nodeTile[node]
	delete(s.tileColorUsage[tile], color)
	if adj, ok := s.pathAdj[color][node]; ok && len(adj) == 0 {
		delete(s.pathAdj[color], node)
	}
}

func (s *searcher) addEdge(color, a, b string) {
	if s.pathAdj[color][a] == nil {
		s.pathAdj[color][a] = map[string]bool{}
	}
	if s.pathAdj[color][b] == nil {
		s.pathAdj[color][b] = map[string]bool{}
	}
	s.pathAdj[color][a][b] = true
	s.pathAdj[color][b][a] = true
}

func (s *searcher) removeEdge(color, a, b string) {
	delete(s.pathAdj[color][a], b)
	delete(s.pathAdj[color][b], a)
	if len(s.pathAdj[color][a]) == 0 {
		delete(s.pathAdj[color], a)
	}
	if len(s.pathAdj[color][b]) == 0 {
		delete(s.pathAdj[color], b)
	}
}

// availableMoves enumerates the moves for one of color's two heads.
func (s *searcher) availableMoves(color string, headIdx int) []move {
	headPair := s.heads[color]
	head := headPair[headIdx]
	other := headPair[1-headIdx]

	var moves []move
	for _, nb := range s.neighbors[head] {
		nbColor := s.assigned[nb]
		switch {
		case nbColor == "":
			tile := s.nodeTile[nb]
			if s.tileColorUsage[tile][color] {
				continue
			}
			moves = append(moves, move{kind: "extend", node: nb})
		case nbColor == color && nb == other && !s.done[color]:
			if !s.pathAdj[color][head][other] {
				moves = append(moves, move{kind: "connect", node: nb})
			}
		}
	}

	return moves
}

// moveSortKey orders connect before extend, and extends by ascending
// neighbor degree: low-degree cells are the most constrained, so trying
// them first surfaces dead ends sooner.
func (s *searcher) moveSortKey(m move) (int, int) {
	if m.kind == "connect" {
		return 0, 0
	}

	return 1, s.nodeDegree[m.node]
}

func (s *searcher) canUseNodeForColor(color, node string) bool {
	if nodeColor := s.assigned[node]; nodeColor != "" {
		return nodeColor == color
	}
	tile := s.nodeTile[node]

	return !s.tileColorUsage[tile][color]
}

// headsReachable runs a residual-graph search from color's first head to its
// second: within color's own tree it may only move along pathAdj edges
// (can't shortcut off the growing path at an interior node), everywhere
// else it may move along any graph edge whose endpoint it could still use.
func (s *searcher) headsReachable(color string) bool {
	if s.done[color] {
		return true
	}
	pair := s.heads[color]
	start, target := pair[0], pair[1]
	if start == target {
		return true
	}

	headsSet := map[string]bool{start: true, target: true}
	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if cur == target {
			return true
		}

		var nbrs []string
		if s.assigned[cur] == color && !headsSet[cur] {
			for nb := range s.pathAdj[color][cur] {
				nbrs = append(nbrs, nb)
			}
		} else {
			nbrs = s.neighbors[cur]
		}

		for _, nb := range nbrs {
			if visited[nb] {
				continue
			}
			if !s.canUseNodeForColor(color, nb) {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}

	return false
}

func (s *searcher) allHeadsReachable() bool {
	for _, color := range s.colors {
		if !s.done[color] && !s.headsReachable(color) {
			return false
		}
	}

	return true
}

func (s *searcher) allTilesUsed() bool {
	for _, nodes := range s.tileNodes {
		used := false
		for _, n := range nodes {
			if s.assigned[n] != "" {
				used = true
				break
			}
		}
		if !used {
			return false
		}
	}

	return true
}

func (s *searcher) checkTimeout() error {
	if time.Now().After(s.deadline) {
		return fmt.Errorf("%w: after %s", ErrTimeout, s.timeout)
	}

	return nil
}

// search is the recursive backtracking step. It returns (true, nil) on a
// full solution, (false, nil) on an exhausted branch, and a non-nil error
// for a timeout or an assignment bookkeeping failure (propagated all the way
// up to unwind the recursion).
func (s *searcher) search() (bool, error) {
	s.steps++
	if s.steps%1000 == 0 {
		if err := s.checkTimeout(); err != nil {
			return false, err
		}
	}

	allDone := true
	for _, color := range s.colors {
		if !s.done[color] {
			allDone = false
			break
		}
	}
	if allDone {
		if s.fill && !s.allTilesUsed() {
			return false, nil
		}

		return true, nil
	}

	type candidate struct {
		count   int
		color   string
		headIdx int
		moves   []move
	}
	var candidates []candidate
	for _, color := range s.colors {
		if s.done[color] {
			continue
		}
		movesA := s.availableMoves(color, 0)
		movesB := s.availableMoves(color, 1)
		if len(movesA) == 0 && len(movesB) == 0 {
			return false, nil
		}
		if len(movesA) > 0 {
			candidates = append(candidates, candidate{len(movesA), color, 0, movesA})
		}
		if len(movesB) > 0 {
			candidates = append(candidates, candidate{len(movesB), color, 1, movesB})
		}
	}
	if len(candidates) == 0 {
		return false, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].count < candidates[j].count })
	chosen := candidates[0]

	moves := append([]move(nil), chosen.moves...)
	sort.SliceStable(moves, func(i, j int) bool {
		ki0, ki1 := s.moveSortKey(moves[i])
		kj0, kj1 := s.moveSortKey(moves[j])
		if ki0 != kj0 {
			return ki0 < kj0
		}

		return ki1 < kj1
	})

	color, headIdx := chosen.color, chosen.headIdx
	for _, m := range moves {
		if m.kind == "extend" {
			prevHead := s.heads[color][headIdx]
			if err := s.assignNode(color, m.node); err != nil {
				return false, err
			}
			s.addEdge(color, prevHead, m.node)
			head := s.heads[color]
			head[headIdx] = m.node
			s.heads[color] = head

			if s.allHeadsReachable() {
				ok, err := s.search()
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}

			head[headIdx] = prevHead
			s.heads[color] = head
			s.removeEdge(color, prevHead, m.node)
			s.unassignNode(color, m.node)
		} else {
			head := s.heads[color][headIdx]
			other := s.heads[color][1-headIdx]
			s.addEdge(color, head, other)
			s.done[color] = true

			ok, err := s.search()
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}

			s.done[color] = false
			s.removeEdge(color, head, other)
		}
	}

	return false, nil
}
