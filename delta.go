// delta.go — triangular-grid adjacency.
//
// Triangles alternate orientation by coordinate parity: cells with even
// x+y point upward and meet their vertical neighbor along the bottom edge,
// odd cells point downward and meet it along the top. Every cell also
// touches its two lateral neighbors. All three relationships run through
// the ordinary cardinal wall slots; only the neighbor set differs from the
// square grid.

package mazegen

type deltaAdj struct {
	bounds
}

// pointsUp reports whether the triangle at (x, y) has its apex upward.
func pointsUp(x, y int) bool {
	return (x+y)&1 == 0
}

func (a deltaAdj) neighbors(x, y int) []Coord {
	// A single-column grid has no lateral edges for the orientation
	// alternation to route through; cells there border both vertical
	// neighbors, or the column would fall apart into disconnected pairs.
	if a.width == 1 {
		out := make([]Coord, 0, 2)
		if a.inBounds(x, y-1) {
			out = append(out, Coord{X: x, Y: y - 1})
		}
		if a.inBounds(x, y+1) {
			out = append(out, Coord{X: x, Y: y + 1})
		}
		return out
	}

	out := make([]Coord, 0, 3)
	if a.inBounds(x-1, y) {
		out = append(out, Coord{X: x - 1, Y: y})
	}
	if a.inBounds(x+1, y) {
		out = append(out, Coord{X: x + 1, Y: y})
	}
	if pointsUp(x, y) {
		if a.inBounds(x, y+1) {
			out = append(out, Coord{X: x, Y: y + 1})
		}
	} else if a.inBounds(x, y-1) {
		out = append(out, Coord{X: x, Y: y - 1})
	}
	return out
}

func (a deltaAdj) wallOpen(c, n *Cell) bool {
	switch {
	case n.Y == c.Y-1:
		return !c.North
	case n.Y == c.Y+1:
		return !c.South
	case n.X == c.X+1:
		return !c.East
	case n.X == c.X-1:
		return !c.West
	}
	return false
}

func (a deltaAdj) link(c, n *Cell) {
	c.RemoveWallTo(n)
}

func (a deltaAdj) start() Coord {
	return Coord{X: 0, Y: 0}
}

func (a deltaAdj) end() Coord {
	return Coord{X: a.width - 1, Y: a.height - 1}
}
