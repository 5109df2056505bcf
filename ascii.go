// ascii.go — debug rendering. This is a development aid, not the rendering
// contract: the real renderer consumes wall flags and the solution path
// directly and lays out topology-specific geometry itself.

package mazegen

import (
	"fmt"
	"strings"
)

// String renders an Orthogonal grid as ASCII art, marking the start "S",
// the end "E", and the solution path "*". Non-square topologies have no
// useful ASCII projection and render as a one-line summary instead.
func (g *Grid) String() string {
	if g.Type != Orthogonal {
		return fmt.Sprintf("mazegen.Grid{%s %dx%d difficulty=%d}",
			g.Type, g.Width, g.Height, g.Difficulty)
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteByte('+')
			if g.Cells[y][x].North {
				b.WriteString("---")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("+\n")

		for x := 0; x < g.Width; x++ {
			c := g.Cells[y][x]
			if c.West {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(g.cellMark(x, y))
		}
		if g.Cells[y][g.Width-1].East {
			b.WriteString("|\n")
		} else {
			b.WriteString(" \n")
		}
	}

	for x := 0; x < g.Width; x++ {
		b.WriteByte('+')
		if g.Cells[g.Height-1][x].South {
			b.WriteString("---")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("+\n")

	return b.String()
}

// cellMark picks the three-character body for cell (x, y).
func (g *Grid) cellMark(x, y int) string {
	switch {
	case x == g.Start.X && y == g.Start.Y:
		return " S "
	case x == g.End.X && y == g.End.Y:
		return " E "
	case g.Cells[y][x].OnSolutionPath:
		return " * "
	default:
		return "   "
	}
}
