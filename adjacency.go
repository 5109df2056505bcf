// adjacency.go — the topology strategy table.
//
// The four topologies differ only in neighbor geometry and wall encoding;
// the carve/solve/classify pipeline is identical across them. Each
// topology therefore contributes one small strategy value, selected by the
// Topology tag at construction, and the Grid never branches on topology
// anywhere else.

package mazegen

// adjacency maps cells to their geometric neighbors and abstracts which
// wall flag pair encodes each relationship.
type adjacency interface {
	// neighbors returns the in-bounds neighbor coordinates of (x, y) in a
	// fixed, deterministic order.
	neighbors(x, y int) []Coord

	// wallOpen reports whether the wall between c and a geometric neighbor
	// n has been opened.
	wallOpen(c, n *Cell) bool

	// link opens the wall pair between c and a geometric neighbor n.
	link(c, n *Cell)

	// start and end fix the entry and exit cells for this topology.
	start() Coord
	end() Coord
}

// bounds carries grid dimensions and the shared in-bounds check.
type bounds struct {
	width, height int
}

// inBounds reports whether (x, y) lies within the grid.
func (b bounds) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// strategyFor selects the adjacency strategy for t, or ErrUnknownTopology
// for a tag outside the closed enum.
func strategyFor(t Topology, width, height int) (adjacency, error) {
	b := bounds{width: width, height: height}
	switch t {
	case Orthogonal:
		return orthogonalAdj{bounds: b}, nil
	case Delta:
		return deltaAdj{bounds: b}, nil
	case Sigma:
		return sigmaAdj{bounds: b}, nil
	case Theta:
		return thetaAdj{bounds: b}, nil
	default:
		return nil, ErrUnknownTopology
	}
}
