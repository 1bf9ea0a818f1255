package puzzle

import (
	"sort"

	"github.com/brinepath/flowlattice/graph"
	"github.com/brinepath/flowlattice/space"
)

// Color is a single-uppercase-letter terminal label.
type Color = string

// Puzzle is a Flow/Numberlink puzzle defined over a graph: the graph gives
// connectivity, tiles group internal nodes into one physical space (a bridge
// tile has two), and terminals names each color's fixed endpoint pair.
//
// A Puzzle is immutable once returned by New, ParseFlow, or ParseJSON.
type Puzzle struct {
	Graph     *graph.Graph
	Tiles     *graph.TileSet
	Terminals space.Terminals
	Fill      bool
	Meta      map[string]string
}

// AllColors returns every color label in sorted order.
func (p *Puzzle) AllColors() []Color {
	colors := make([]Color, 0, len(p.Terminals))
	for c := range p.Terminals {
		colors = append(colors, c)
	}
	sort.Strings(colors)

	return colors
}

// TerminalNodes returns the inverse of Terminals: a mapping from every
// terminal node id to its color.
func (p *Puzzle) TerminalNodes() map[string]Color {
	out := make(map[string]Color, len(p.Terminals)*2)
	for color, pair := range p.Terminals {
		out[pair[0]] = color
		out[pair[1]] = color
	}

	return out
}

// Option customizes Puzzle assembly in New.
type Option func(*Puzzle)

// WithFill overrides the default fill=true requirement.
func WithFill(fill bool) Option {
	return func(p *Puzzle) { p.Fill = fill }
}

// WithMeta attaches an opaque metadata map, e.g. directive key/values from a
// .flow document or a JSON "meta" object. The map is copied.
func WithMeta(meta map[string]string) Option {
	return func(p *Puzzle) {
		m := make(map[string]string, len(meta))
		for k, v := range meta {
			m[k] = v
		}
		p.Meta = m
	}
}
