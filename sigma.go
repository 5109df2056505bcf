// sigma.go — hexagonal-grid adjacency with odd-row offset addressing.
//
// Each hex touches up to six neighbors: east, west, and four diagonals.
// Offset addressing squeezes the hex lattice into a rectangular array by
// shifting alternate rows half a cell: on even rows the two northern (and
// southern) neighbors occupy columns x-1 and x, on odd rows the pair moves
// right to x and x+1. The diagonal wall flags carry these four
// relationships; east/west stay on the cardinal slots.

package mazegen

type sigmaAdj struct {
	bounds
}

// hexOffsets returns the six neighbor offsets for a cell on an even or odd
// row, in a fixed E, W, NE, NW, SE, SW order.
func hexOffsets(odd bool) [6]Coord {
	if odd {
		return [6]Coord{{1, 0}, {-1, 0}, {1, -1}, {0, -1}, {1, 1}, {0, 1}}
	}
	return [6]Coord{{1, 0}, {-1, 0}, {0, -1}, {-1, -1}, {0, 1}, {-1, 1}}
}

func (a sigmaAdj) neighbors(x, y int) []Coord {
	offsets := hexOffsets(y&1 == 1)
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d.X, y+d.Y
		if a.inBounds(nx, ny) {
			out = append(out, Coord{X: nx, Y: ny})
		}
	}
	return out
}

func (a sigmaAdj) wallOpen(c, n *Cell) bool {
	dx, dy := n.X-c.X, n.Y-c.Y
	odd := c.Y&1 == 1
	switch {
	case dy == 0 && dx == 1:
		return !c.East
	case dy == 0 && dx == -1:
		return !c.West
	case dy == -1 && ((odd && dx == 1) || (!odd && dx == 0)):
		return !c.NorthEast
	case dy == -1 && ((odd && dx == 0) || (!odd && dx == -1)):
		return !c.NorthWest
	case dy == 1 && ((odd && dx == 1) || (!odd && dx == 0)):
		return !c.SouthEast
	case dy == 1 && ((odd && dx == 0) || (!odd && dx == -1)):
		return !c.SouthWest
	}
	return false
}

func (a sigmaAdj) link(c, n *Cell) {
	c.RemoveHexWallTo(n, Sigma)
}

func (a sigmaAdj) start() Coord {
	return Coord{X: 0, Y: 0}
}

func (a sigmaAdj) end() Coord {
	return Coord{X: a.width - 1, Y: a.height - 1}
}
