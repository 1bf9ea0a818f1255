package constraintsolve

import (
	"github.com/crillab/gophersat/bf"

	"github.com/brinepath/flowlattice/puzzle"
)

// encoding holds the Boolean variable tables built from a puzzle, and the
// methods that fold the constraint groups over them into one bf.Formula.
type encoding struct {
	p        *puzzle.Puzzle
	colors   []string
	colorIdx map[string]int
	nodes    []string

	colorVar  map[string][]bf.Formula // node -> colorIdx -> var
	unusedVar map[string]bf.Formula
}

func newEncoding(p *puzzle.Puzzle) *encoding {
	colors := p.AllColors()
	colorIdx := make(map[string]int, len(colors))
	for i, c := range colors {
		colorIdx[c] = i
	}
	nodes := p.Graph.Nodes()

	e := &encoding{
		p:         p,
		colors:    colors,
		colorIdx:  colorIdx,
		nodes:     nodes,
		colorVar:  make(map[string][]bf.Formula, len(nodes)),
		unusedVar: make(map[string]bf.Formula, len(nodes)),
	}
	for _, n := range nodes {
		vars := make([]bf.Formula, len(colors))
		for ci := range colors {
			vars[ci] = bf.Var(colorVarName(n, ci))
		}
		e.colorVar[n] = vars
		e.unusedVar[n] = bf.Var(unusedVarName(n))
	}

	return e
}

func (e *encoding) domainVars(node string) []bf.Formula {
	vars := make([]bf.Formula, 0, len(e.colors)+1)
	vars = append(vars, e.unusedVar[node])
	vars = append(vars, e.colorVar[node]...)

	return vars
}

// build returns the full conjunction of every constraint group, in a fixed
// order: domain, fill, tile-exclusion, terminals, degree, connectivity.
func (e *encoding) build() bf.Formula {
	var clauses []bf.Formula

	for _, n := range e.nodes {
		clauses = append(clauses, exactlyOne(e.domainVars(n)))
	}

	clauses = append(clauses, e.fillClauses()...)
	clauses = append(clauses, e.tileExclusionClauses()...)
	clauses = append(clauses, e.terminalClauses()...)
	clauses = append(clauses, e.degreeClauses()...)
	clauses = append(clauses, e.connectivityClauses()...)

	return bf.And(clauses...)
}

func (e *encoding) fillClauses() []bf.Formula {
	if !e.p.Fill {
		return nil
	}

	var clauses []bf.Formula
	for _, tileID := range e.p.Tiles.TileIDs() {
		tile := e.p.Tiles.Tile(tileID)
		used := make([]bf.Formula, len(tile.Nodes))
		for i, n := range tile.Nodes {
			used[i] = bf.Not(e.unusedVar[n])
		}
		clauses = append(clauses, bf.Or(used...))
	}

	return clauses
}

// tileExclusionClauses forbids two distinct nodes of one bridge tile from
// sharing a color: a color may occupy at most one channel of a tile, while
// different colors may occupy different channels.
func (e *encoding) tileExclusionClauses() []bf.Formula {
	var clauses []bf.Formula
	for _, tileID := range e.p.Tiles.TileIDs() {
		tile := e.p.Tiles.Tile(tileID)
		if len(tile.Nodes) <= 1 {
			continue
		}
		for i := 0; i < len(tile.Nodes); i++ {
			for j := i + 1; j < len(tile.Nodes); j++ {
				a, b := tile.Nodes[i], tile.Nodes[j]
				for ci := range e.colors {
					clauses = append(clauses, bf.Or(bf.Not(e.colorVar[a][ci]), bf.Not(e.colorVar[b][ci])))
				}
			}
		}
	}

	return clauses
}

func (e *encoding) terminalClauses() []bf.Formula {
	var clauses []bf.Formula
	for _, color := range e.colors {
		ci := e.colorIdx[color]
		pair := e.p.Terminals[color]
		for _, node := range pair {
			clauses = append(clauses, e.colorVar[node][ci])
			clauses = append(clauses, bf.Not(e.unusedVar[node]))
		}
	}

	return clauses
}

// degreeClauses requires a terminal to have exactly one same-color
// neighbor, and any other colored node exactly two: the discrete analogue
// of a simple path passing through (or ending at) a cell.
func (e *encoding) degreeClauses() []bf.Formula {
	var clauses []bf.Formula
	terminalColor := e.p.TerminalNodes()

	for _, n := range e.nodes {
		nbs := e.p.Graph.Neighbors(n)

		if color, isTerm := terminalColor[n]; isTerm {
			ci := e.colorIdx[color]
			sameColor := make([]bf.Formula, len(nbs))
			for i, nb := range nbs {
				sameColor[i] = e.colorVar[nb][ci]
			}
			clauses = append(clauses, exactlyK(sameColor, 1))

			continue
		}

		for ci := range e.colors {
			sameColor := make([]bf.Formula, len(nbs))
			for i, nb := range nbs {
				sameColor[i] = e.colorVar[nb][ci]
			}
			clauses = append(clauses, bf.Or(bf.Not(e.colorVar[n][ci]), exactlyK(sameColor, 2)))
		}
	}

	return clauses
}

// connectivityClauses builds, per color, a one-hot BFS-distance witness
// from the color's start terminal: index V (the node count) is the "not
// this color" sentinel, indices [0,V) are genuine distances, and every
// non-start node of the color must have a same-color neighbor one distance
// step closer to the start. This rules out colored cycles detached from the
// terminal pair, which the purely local degree constraints cannot see.
func (e *encoding) connectivityClauses() []bf.Formula {
	var clauses []bf.Formula
	v := len(e.nodes)

	for _, color := range e.colors {
		ci := e.colorIdx[color]
		pair := e.p.Terminals[color]
		start := pair[0]

		distVar := make(map[string][]bf.Formula, len(e.nodes))
		for _, n := range e.nodes {
			vars := make([]bf.Formula, v+1)
			for k := 0; k <= v; k++ {
				vars[k] = bf.Var(distVarName(color, n, k))
			}
			distVar[n] = vars
			clauses = append(clauses, exactlyOne(vars))

			sentinel := vars[v]
			clauses = append(clauses, bf.Or(bf.Not(e.colorVar[n][ci]), bf.Not(sentinel)))
			clauses = append(clauses, bf.Or(e.colorVar[n][ci], sentinel))
		}

		clauses = append(clauses, distVar[start][0])

		for _, n := range e.nodes {
			if n == start {
				continue
			}
			nbs := e.p.Graph.Neighbors(n)

			clauses = append(clauses, bf.Or(bf.Not(e.colorVar[n][ci]), bf.Not(distVar[n][0])))

			if len(nbs) == 0 {
				clauses = append(clauses, bf.Not(e.colorVar[n][ci]))

				continue
			}

			for k := 1; k < v; k++ {
				var preds []bf.Formula
				for _, nb := range nbs {
					preds = append(preds, bf.And(e.colorVar[nb][ci], distVar[nb][k-1]))
				}
				antecedent := bf.And(e.colorVar[n][ci], distVar[n][k])
				clauses = append(clauses, bf.Or(bf.Not(antecedent), bf.Or(preds...)))
			}
		}
	}

	return clauses
}
