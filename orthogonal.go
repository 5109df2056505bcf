// orthogonal.go — square-grid adjacency: four cardinal neighbors, corner
// start and end.

package mazegen

type orthogonalAdj struct {
	bounds
}

// orthogonalOffsets lists the cardinal neighbor offsets in N, E, S, W
// order. The order is arbitrary but fixed: carving shuffles it through the
// grid's RNG, so a stable base order is what makes seeds reproducible.
var orthogonalOffsets = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func (a orthogonalAdj) neighbors(x, y int) []Coord {
	out := make([]Coord, 0, len(orthogonalOffsets))
	for _, d := range orthogonalOffsets {
		nx, ny := x+d.X, y+d.Y
		if a.inBounds(nx, ny) {
			out = append(out, Coord{X: nx, Y: ny})
		}
	}
	return out
}

func (a orthogonalAdj) wallOpen(c, n *Cell) bool {
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

func (a orthogonalAdj) link(c, n *Cell) {
	c.RemoveWallTo(n)
}

func (a orthogonalAdj) start() Coord {
	return Coord{X: 0, Y: 0}
}

func (a orthogonalAdj) end() Coord {
	return Coord{X: a.width - 1, Y: a.height - 1}
}
