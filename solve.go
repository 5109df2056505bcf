// solve.go — phase 3 (shortest-path solve) and phase 4 (dead-end
// classification) of the generation pipeline.

package mazegen

// solve runs BFS over the open-wall graph from Start to End, recording
// predecessors as flat row-major indices on the cells, then reconstructs
// the path and marks every cell on it. Carving guarantees connectivity, so
// the path is never empty.
//
// Complexity: O(N) time and memory (N = Width×Height).
func (g *Grid) solve() {
	total := g.Width * g.Height
	startIdx := g.index(g.Start.X, g.Start.Y)
	endIdx := g.index(g.End.X, g.End.Y)

	seen := make([]bool, total)
	seen[startIdx] = true
	queue := make([]int, 0, total)
	queue = append(queue, startIdx)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == endIdx {
			break
		}
		pos := g.coordinate(cur)
		c := g.Cell(pos.X, pos.Y)
		for _, nc := range g.adj.neighbors(pos.X, pos.Y) {
			ni := g.index(nc.X, nc.Y)
			if seen[ni] {
				continue
			}
			n := g.Cell(nc.X, nc.Y)
			if !g.adj.wallOpen(c, n) {
				continue
			}
			seen[ni] = true
			n.Parent = cur
			queue = append(queue, ni)
		}
	}

	// Walk the parent chain end→start, then reverse into start→end order.
	path := make([]Coord, 0, total)
	for idx := endIdx; ; {
		pos := g.coordinate(idx)
		c := g.Cell(pos.X, pos.Y)
		c.OnSolutionPath = true
		c.DeadEnd = false
		c.DeadEndDepth = 0
		path = append(path, pos)
		if idx == startIdx {
			break
		}
		// A missing predecessor means the end was never reached; stop the
		// walk rather than index the grid with NoParent.
		if c.Parent == NoParent {
			break
		}
		idx = c.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	g.SolutionPath = path
}

// classifyDeadEnds assigns every off-path cell its dead-end depth: the
// open-wall hop count back to the nearest cell bordering the solution
// path. A single multi-source BFS seeded with the whole solution path at
// layer 0 gives each off-path cell its layer number (≥ 1) directly, which
// also yields the gradient invariant for free: any cell at depth d > 1 has
// an open-wall neighbor at depth d-1, namely its BFS predecessor.
//
// Complexity: O(N) time and memory.
func (g *Grid) classifyDeadEnds() {
	total := g.Width * g.Height
	seen := make([]bool, total)
	queue := make([]int, 0, total)

	for _, pos := range g.SolutionPath {
		idx := g.index(pos.X, pos.Y)
		seen[idx] = true
		queue = append(queue, idx)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		pos := g.coordinate(cur)
		c := g.Cell(pos.X, pos.Y)
		for _, nc := range g.adj.neighbors(pos.X, pos.Y) {
			ni := g.index(nc.X, nc.Y)
			if seen[ni] {
				continue
			}
			n := g.Cell(nc.X, nc.Y)
			if !g.adj.wallOpen(c, n) {
				continue
			}
			seen[ni] = true
			n.DeadEnd = true
			n.DeadEndDepth = c.DeadEndDepth + 1
			queue = append(queue, ni)
		}
	}
}
