package floodfill

// Fill recolors the region of target-colored cells 4-connected to start,
// painting it with replacement. It returns the number of cells recolored.
//
// The grid is modified in place. Neighbour coordinates are clamped to the
// board, so a step off an edge lands back on the edge cell; that cell has
// already been recolored and the visit ends there.
func Fill(g Grid, start Coordinate, target, replacement Color) int {
	if target == replacement || !g.InBounds(start) {
		return 0
	}

	last := g.Size - 1
	area := 0
	stack := []Coordinate{start}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := g.IndexOf(c)
		if g.Cells[idx] == replacement {
			continue // already painted
		}
		if g.Cells[idx] != target {
			continue // region boundary
		}

		g.Cells[idx] = replacement
		area++

		stack = append(stack,
			Coordinate{Row: c.Row, Column: max(c.Column-1, 0)},
			Coordinate{Row: c.Row, Column: min(c.Column+1, last)},
			Coordinate{Row: max(c.Row-1, 0), Column: c.Column},
			Coordinate{Row: min(c.Row+1, last), Column: c.Column},
		)
	}

	return area
}
