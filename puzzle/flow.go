package puzzle

import (
	"fmt"
	"strings"

	"github.com/brinepath/flowlattice/space"
)

// lineKind classifies one line of a .flow document.
type lineKind int

const (
	lineBlank lineKind = iota
	lineDirective
	lineComment
	lineGridRow
)

// classifyLine implements the .flow line categorization rule: a line
// starting with '#' is a directive only when its remainder (after the '#')
// contains a ':', a comment when it's followed by whitespace and no ':',
// and otherwise a grid row: "#B#" is a hole-terminal-hole row while
// "# B" is a comment and "# type: hex" is a directive.
func classifyLine(raw string) (kind lineKind, header string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return lineBlank, ""
	}
	if !strings.HasPrefix(trimmed, "#") {
		return lineGridRow, ""
	}

	hdr := strings.TrimSpace(trimmed[1:])
	if strings.Contains(hdr, ":") {
		return lineDirective, hdr
	}
	if len(trimmed) >= 2 && isSpace(trimmed[1]) {
		return lineComment, ""
	}

	return lineGridRow, ""
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// truthy reports whether a directive value string means true.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// tokenizeRow splits one grid-row line into its tokens: whitespace-separated
// if the trimmed row contains any internal whitespace, else one token per
// character.
func tokenizeRow(row string) []string {
	trimmed := strings.TrimSpace(row)
	if trimmed == "" {
		return nil
	}
	if strings.ContainsAny(trimmed, " \t") {
		return strings.Fields(trimmed)
	}

	toks := make([]string, 0, len(trimmed))
	for _, r := range trimmed {
		toks = append(toks, string(r))
	}

	return toks
}

// ParseFlow parses a .flow document into a Puzzle: directive lines set the
// board type (default square), the fill flag (default true), and arbitrary
// metadata; comment lines are discarded; grid-row lines are tokenized and
// handed to the matching space builder.
//
// Extra opts, if given, are applied after the directives parsed from text,
// e.g. to override Fill from a caller-side default rather than the document.
//
// Complexity: O(lines * width).
func ParseFlow(text string, opts ...Option) (*Puzzle, error) {
	boardType := "square"
	fill := true
	meta := map[string]string{}
	core := false

	var rows []string
	for _, raw := range strings.Split(text, "\n") {
		kind, header := classifyLine(raw)
		switch kind {
		case lineBlank, lineComment:
			continue
		case lineDirective:
			k, v, _ := strings.Cut(header, ":")
			k, v = strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v)
			switch k {
			case "type":
				boardType = strings.ToLower(v)
			case "fill":
				fill = truthy(v)
			case "core":
				core = truthy(v)
				meta[k] = v
			default:
				meta[k] = v
			}
		case lineGridRow:
			rows = append(rows, raw)
		}
	}

	var tokenRows [][]string
	width := -1
	for _, row := range rows {
		toks := tokenizeRow(row)
		if len(toks) == 0 {
			continue
		}
		if width == -1 {
			width = len(toks)
		} else if len(toks) != width {
			return nil, fmt.Errorf("puzzle.ParseFlow: %w", ErrRaggedGrid)
		}
		tokenRows = append(tokenRows, toks)
	}
	if len(tokenRows) == 0 {
		return nil, fmt.Errorf("puzzle.ParseFlow: %w", ErrNoGridRows)
	}

	var puzzleOut *Puzzle

	switch boardType {
	case "square":
		gr, tiles, terms, err := space.Square(tokenRows)
		if err != nil {
			return nil, fmt.Errorf("puzzle.ParseFlow: %w", err)
		}
		puzzleOut, err = New(gr, tiles, terms, append([]Option{WithFill(fill), WithMeta(meta)}, opts...)...)
		if err != nil {
			return nil, err
		}
	case "hex":
		gr, tiles, terms, err := space.Hex(tokenRows)
		if err != nil {
			return nil, fmt.Errorf("puzzle.ParseFlow: %w", err)
		}
		puzzleOut, err = New(gr, tiles, terms, append([]Option{WithFill(fill), WithMeta(meta)}, opts...)...)
		if err != nil {
			return nil, err
		}
	case "circle":
		gr, tiles, terms, err := space.CircleGrid(tokenRows, core)
		if err != nil {
			return nil, fmt.Errorf("puzzle.ParseFlow: %w", err)
		}
		puzzleOut, err = New(gr, tiles, terms, append([]Option{WithFill(fill), WithMeta(meta)}, opts...)...)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("puzzle.ParseFlow: %q: %w", boardType, ErrUnknownBoardType)
	}

	return puzzleOut, nil
}
