// theta.go — circular (polar) grid adjacency.
//
// X indexes the sector and wraps modulo the grid width; Y indexes the ring
// and does not wrap. Inward/outward neighbors ride the north/south wall
// slots, the two sector neighbors the east/west slots. The maze starts at
// the grid's center indices and exits on the outermost ring.

package mazegen

type thetaAdj struct {
	bounds
}

// cw and ccw return the clockwise / counter-clockwise sector neighbor of
// sector x, wrapping modulo width.
func (a thetaAdj) cw(x int) int  { return (x + 1) % a.width }
func (a thetaAdj) ccw(x int) int { return (x - 1 + a.width) % a.width }

func (a thetaAdj) neighbors(x, y int) []Coord {
	out := make([]Coord, 0, 4)
	if y > 0 {
		out = append(out, Coord{X: x, Y: y - 1})
	}
	if y < a.height-1 {
		out = append(out, Coord{X: x, Y: y + 1})
	}
	// Sector neighbors collapse on narrow grids: one sector has none, two
	// sectors share a single lateral neighbor.
	if cw := a.cw(x); cw != x {
		out = append(out, Coord{X: cw, Y: y})
		if ccw := a.ccw(x); ccw != cw {
			out = append(out, Coord{X: ccw, Y: y})
		}
	}
	return out
}

func (a thetaAdj) wallOpen(c, n *Cell) bool {
	switch {
	case n.Y == c.Y-1:
		return !c.North
	case n.Y == c.Y+1:
		return !c.South
	}
	open := false
	if n.X == a.cw(c.X) {
		open = !c.East
	}
	if !open && n.X == a.ccw(c.X) {
		open = !c.West
	}
	return open
}

func (a thetaAdj) link(c, n *Cell) {
	switch {
	case n.Y == c.Y-1:
		c.North, n.South = false, false
	case n.Y == c.Y+1:
		c.South, n.North = false, false
	case n.X == a.cw(c.X):
		c.East, n.West = false, false
	case n.X == a.ccw(c.X):
		c.West, n.East = false, false
	}
}

func (a thetaAdj) start() Coord {
	return Coord{X: a.width / 2, Y: a.height / 2}
}

func (a thetaAdj) end() Coord {
	return Coord{X: a.width - 1, Y: a.height - 1}
}
