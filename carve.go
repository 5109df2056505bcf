// carve.go — phase 1 (spanning-tree carving) and phase 2 (difficulty
// shortcuts) of the generation pipeline.

package mazegen

import "math/rand"

// carve builds a perfect maze with an iterative recursive backtracker:
// from the start cell, repeatedly shuffle the unvisited neighbors of the
// stack top, step into one (opening the shared wall), and pop on
// exhaustion. Every cell ends up reachable from the start via exactly one
// route, and the deep backtracking runs produce the long corridors that
// give dead-end depths their gradient.
//
// Complexity: O(N) time amortized, O(N) stack memory (N = Width×Height).
func (g *Grid) carve(rng *rand.Rand) {
	start := g.Cell(g.Start.X, g.Start.Y)
	start.Visited = true

	stack := make([]*Cell, 0, g.Width*g.Height)
	stack = append(stack, start)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		next := g.pickUnvisitedNeighbor(cur, rng)
		if next == nil {
			stack = stack[:len(stack)-1]
			continue
		}

		g.adj.link(cur, next)
		next.Visited = true
		stack = append(stack, next)
	}
}

// pickUnvisitedNeighbor shuffles cur's unvisited in-bounds neighbors with
// the grid RNG and returns one, or nil when cur is exhausted.
func (g *Grid) pickUnvisitedNeighbor(cur *Cell, rng *rand.Rand) *Cell {
	coords := g.adj.neighbors(cur.X, cur.Y)
	unvisited := coords[:0]
	for _, nc := range coords {
		if !g.Cell(nc.X, nc.Y).Visited {
			unvisited = append(unvisited, nc)
		}
	}
	if len(unvisited) == 0 {
		return nil
	}
	shuffleCoords(unvisited, rng)
	return g.Cell(unvisited[0].X, unvisited[0].Y)
}

// addShortcuts opens extra walls beyond the spanning tree, one coin flip
// per still-closed wall, with probability (MaxDifficulty - Difficulty) /
// shortcutCurveDivisor. Difficulty 5 keeps the maze perfect; difficulty 1
// flips a fair-ish coin (p = 1/2) on every remaining wall.
//
// Each unordered wall pair is visited exactly once (lower flat index
// first) and costs exactly one RNG draw, so for a fixed seed the walls
// opened at an easier difficulty are a superset of those opened at a
// harder one.
func (g *Grid) addShortcuts(rng *rand.Rand) {
	p := float64(MaxDifficulty-g.Difficulty) / shortcutCurveDivisor
	if p <= 0 {
		return
	}

	for idx := 0; idx < g.Width*g.Height; idx++ {
		pos := g.coordinate(idx)
		c := g.Cell(pos.X, pos.Y)
		for _, nc := range g.adj.neighbors(pos.X, pos.Y) {
			if g.index(nc.X, nc.Y) <= idx {
				continue
			}
			n := g.Cell(nc.X, nc.Y)
			if g.adj.wallOpen(c, n) {
				continue
			}
			if rng.Float64() < p {
				g.adj.link(c, n)
			}
		}
	}
}
