// cell.go — per-cell wall state and solving metadata.
//
// Wall flags are true while the wall stands and flip to false when opened.
// Generation only ever opens walls; no code path re-closes one. Every
// opening is paired: the matching flag on the neighboring cell flips in the
// same call, so the two sides can never disagree.

package mazegen

// NoParent marks a cell whose traversal predecessor has not been set.
const NoParent = -1

// Cell is one grid position. X/Y semantics follow the grid's topology
// (ring/sector for Theta). The four diagonal flags exist on every cell but
// participate only under Sigma's hex addressing.
type Cell struct {
	X, Y int

	// Cardinal walls, present on all topologies.
	North, South, East, West bool

	// Diagonal walls, used by the Sigma (hexagonal) topology.
	NorthEast, NorthWest, SouthEast, SouthWest bool

	// Visited is transient carve-phase state.
	Visited bool

	// OnSolutionPath is true iff the cell lies on the computed shortest
	// route. Exactly one of OnSolutionPath / DeadEnd holds after Generate.
	OnSolutionPath bool

	// DeadEnd marks every off-path cell.
	DeadEnd bool

	// DeadEndDepth is 0 on the solution path; for dead-end cells it is the
	// open-wall hop count back to the nearest cell bordering the path.
	DeadEndDepth int

	// Parent is the flat row-major index of the traversal predecessor,
	// NoParent when unset. Purely a solve-phase artifact, not ownership.
	Parent int
}

// newCell returns a fully enclosed cell at (x, y): every wall up, no
// traversal state.
func newCell(x, y int) *Cell {
	return &Cell{
		X: x, Y: y,
		North: true, South: true, East: true, West: true,
		NorthEast: true, NorthWest: true, SouthEast: true, SouthWest: true,
		Parent: NoParent,
	}
}

// RemoveWallTo opens the cardinal wall between c and an orthogonally
// adjacent cell o, flipping both sides as a pair. Rows grow southward, so
// o one row above c is c's northern neighbor. Non-adjacent input leaves
// both cells untouched.
func (c *Cell) RemoveWallTo(o *Cell) {
	dx, dy := o.X-c.X, o.Y-c.Y
	switch {
	case dx == 0 && dy == -1:
		c.North, o.South = false, false
	case dx == 0 && dy == 1:
		c.South, o.North = false, false
	case dx == 1 && dy == 0:
		c.East, o.West = false, false
	case dx == -1 && dy == 0:
		c.West, o.East = false, false
	}
}

// RemoveHexWallTo opens the wall between c and o under odd-row offset hex
// addressing: on even rows the two northern (and southern) neighbors sit at
// columns x-1 and x; on odd rows the pair shifts right to x and x+1. Same-
// row neighbors are plain east/west. For every topology other than Sigma
// the call falls back to the cardinal RemoveWallTo.
func (c *Cell) RemoveHexWallTo(o *Cell, t Topology) {
	if t != Sigma {
		c.RemoveWallTo(o)
		return
	}

	dx, dy := o.X-c.X, o.Y-c.Y
	if dy == 0 {
		c.RemoveWallTo(o)
		return
	}

	odd := c.Y&1 == 1
	switch {
	case dy == -1 && ((odd && dx == 0) || (!odd && dx == -1)):
		c.NorthWest, o.SouthEast = false, false
	case dy == -1 && ((odd && dx == 1) || (!odd && dx == 0)):
		c.NorthEast, o.SouthWest = false, false
	case dy == 1 && ((odd && dx == 0) || (!odd && dx == -1)):
		c.SouthWest, o.NorthEast = false, false
	case dy == 1 && ((odd && dx == 1) || (!odd && dx == 0)):
		c.SouthEast, o.NorthWest = false, false
	}
}

// openWallCount reports how many of the cell's wall flags are open. Each
// opening is mirrored on the neighbor, so summing this over the grid counts
// every open wall exactly twice.
func (c *Cell) openWallCount() int {
	n := 0
	for _, up := range [...]bool{
		c.North, c.South, c.East, c.West,
		c.NorthEast, c.NorthWest, c.SouthEast, c.SouthWest,
	} {
		if !up {
			n++
		}
	}
	return n
}
