package space

// validateTokenGrid checks the shared rectangularity contract every
// 2D-token builder needs before it starts placing nodes.
// Complexity: O(rows).
func validateTokenGrid(tokens [][]string) (height, width int, err error) {
	height = len(tokens)
	if height == 0 || len(tokens[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	width = len(tokens[0])
	for _, row := range tokens {
		if len(row) != width {
			return 0, 0, ErrNonRectangular
		}
	}

	return height, width, nil
}
