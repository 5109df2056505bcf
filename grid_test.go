package mazegen_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen"
)

// mustGenerate builds and generates a grid, failing the test on any error.
func mustGenerate(t *testing.T, w, h int, topo mazegen.Topology, opts ...mazegen.Option) *mazegen.Grid {
	t.Helper()
	g, err := mazegen.New(w, h, topo, opts...)
	require.NoError(t, err)
	require.NoError(t, g.Generate())
	return g
}

// TestNew_Validation covers construction-time contract violations.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		topo mazegen.Topology
		want error
	}{
		{"zero width", 0, 5, mazegen.Orthogonal, mazegen.ErrBadDimensions},
		{"zero height", 5, 0, mazegen.Orthogonal, mazegen.ErrBadDimensions},
		{"negative width", -3, 5, mazegen.Orthogonal, mazegen.ErrBadDimensions},
		{"negative height", 5, -3, mazegen.Orthogonal, mazegen.ErrBadDimensions},
		{"unknown topology", 5, 5, mazegen.Topology(99), mazegen.ErrUnknownTopology},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := mazegen.New(tc.w, tc.h, tc.topo)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g, "no partial construction on error")
		})
	}
}

// TestNew_DifficultyClamp verifies the silent clamp to [1,5].
func TestNew_DifficultyClamp(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-10, mazegen.MinDifficulty},
		{0, mazegen.MinDifficulty},
		{1, 1},
		{3, 3},
		{5, 5},
		{6, mazegen.MaxDifficulty},
		{100, mazegen.MaxDifficulty},
	}
	for _, tc := range cases {
		g, err := mazegen.New(4, 4, mazegen.Orthogonal, mazegen.WithDifficulty(tc.in))
		require.NoError(t, err)
		require.Equal(t, tc.want, g.Difficulty, "difficulty %d must clamp to %d", tc.in, tc.want)
	}
}

// TestGenerate_Once verifies the single-shot lifecycle.
func TestGenerate_Once(t *testing.T) {
	g, err := mazegen.New(5, 5, mazegen.Orthogonal, mazegen.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, g.Generate())
	require.ErrorIs(t, g.Generate(), mazegen.ErrGenerated)
}

// TestScenario_Orthogonal10x10 is the reference scenario: 10×10, difficulty
// 3, seed 12345 — corner start/end, a real path, every cell classified.
func TestScenario_Orthogonal10x10(t *testing.T) {
	g := mustGenerate(t, 10, 10, mazegen.Orthogonal,
		mazegen.WithDifficulty(3), mazegen.WithSeed(12345))

	require.Equal(t, mazegen.Coord{X: 0, Y: 0}, g.Start)
	require.Equal(t, mazegen.Coord{X: 9, Y: 9}, g.End)
	require.GreaterOrEqual(t, len(g.SolutionPath), 2)

	classified := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Cell(x, y)
			if c.OnSolutionPath || c.DeadEnd {
				classified++
			}
		}
	}
	require.Equal(t, 100, classified, "every cell is exactly one of path/dead-end")
}

// TestDeterminism_SameSeed verifies bit-identical wall arrays for repeated
// generation with identical parameters, across all four topologies.
func TestDeterminism_SameSeed(t *testing.T) {
	for _, topo := range []mazegen.Topology{mazegen.Orthogonal, mazegen.Delta, mazegen.Sigma, mazegen.Theta} {
		t.Run(topo.String(), func(t *testing.T) {
			a := mustGenerate(t, 10, 10, topo, mazegen.WithDifficulty(3), mazegen.WithSeed(12345))
			b := mustGenerate(t, 10, 10, topo, mazegen.WithDifficulty(3), mazegen.WithSeed(12345))

			for y := 0; y < a.Height; y++ {
				for x := 0; x < a.Width; x++ {
					ca, cb := a.Cell(x, y), b.Cell(x, y)
					require.Equal(t,
						[8]bool{ca.North, ca.South, ca.East, ca.West, ca.NorthEast, ca.NorthWest, ca.SouthEast, ca.SouthWest},
						[8]bool{cb.North, cb.South, cb.East, cb.West, cb.NorthEast, cb.NorthWest, cb.SouthEast, cb.SouthWest},
						"cell (%d,%d) walls must match", x, y)
				}
			}
			require.Equal(t, a.SolutionPath, b.SolutionPath)
		})
	}
}

// TestNonDeterminism_NoSeed: without a seed two runs disagree with
// overwhelming probability on a 20×20 grid.
func TestNonDeterminism_NoSeed(t *testing.T) {
	a := mustGenerate(t, 20, 20, mazegen.Orthogonal)
	b := mustGenerate(t, 20, 20, mazegen.Orthogonal)

	same := true
	for y := 0; y < a.Height && same; y++ {
		for x := 0; x < a.Width; x++ {
			ca, cb := a.Cell(x, y), b.Cell(x, y)
			if ca.North != cb.North || ca.South != cb.South ||
				ca.East != cb.East || ca.West != cb.West {
				same = false
				break
			}
		}
	}
	require.False(t, same, "unseeded grids must diverge")
}

// TestDifficulty_Monotonic: for a fixed seed, difficulty 1 opens at least
// as many walls as difficulty 5, on every topology.
func TestDifficulty_Monotonic(t *testing.T) {
	for _, topo := range []mazegen.Topology{mazegen.Orthogonal, mazegen.Delta, mazegen.Sigma, mazegen.Theta} {
		t.Run(topo.String(), func(t *testing.T) {
			easy := mustGenerate(t, 10, 10, topo, mazegen.WithDifficulty(1), mazegen.WithSeed(12345))
			hard := mustGenerate(t, 10, 10, topo, mazegen.WithDifficulty(5), mazegen.WithSeed(12345))
			require.GreaterOrEqual(t, easy.OpenWallCount(), hard.OpenWallCount())
		})
	}
}

// TestScenario_ThetaCenterStart pins the polar start cell to the grid's
// center indices.
func TestScenario_ThetaCenterStart(t *testing.T) {
	g := mustGenerate(t, 8, 8, mazegen.Theta, mazegen.WithSeed(12345))
	require.Equal(t, mazegen.Coord{X: 4, Y: 4}, g.Start)
	require.Equal(t, g.Start, g.SolutionPath[0])
}

// TestScenario_MinimalGrid: a 2×2 grid generates without incident.
func TestScenario_MinimalGrid(t *testing.T) {
	g := mustGenerate(t, 2, 2, mazegen.Orthogonal, mazegen.WithSeed(12345))
	require.GreaterOrEqual(t, len(g.SolutionPath), 2)
}

// TestGenerate_DegenerateDimensions: single-row and single-column grids
// are valid input on every topology, so generation must complete with a
// path joining the topology's endpoints and every cell classified. A
// width-1 Delta column in particular must stay connected even though its
// cells have no lateral neighbors to alternate orientation through.
func TestGenerate_DegenerateDimensions(t *testing.T) {
	topologies := []mazegen.Topology{
		mazegen.Orthogonal, mazegen.Delta, mazegen.Sigma, mazegen.Theta,
	}
	sizes := []struct{ w, h int }{
		{1, 1}, {1, 4}, {4, 1}, {1, 7}, {7, 1},
	}
	for _, topo := range topologies {
		for _, sz := range sizes {
			t.Run(fmt.Sprintf("%s/%dx%d", topo, sz.w, sz.h), func(t *testing.T) {
				g := mustGenerate(t, sz.w, sz.h, topo, mazegen.WithSeed(1))

				require.NotEmpty(t, g.SolutionPath)
				require.Equal(t, g.Start, g.SolutionPath[0])
				require.Equal(t, g.End, g.SolutionPath[len(g.SolutionPath)-1])

				for y := 0; y < g.Height; y++ {
					for x := 0; x < g.Width; x++ {
						c := g.Cell(x, y)
						require.NotEqual(t, c.OnSolutionPath, c.DeadEnd,
							"(%d,%d) must be exactly one of path/dead-end", x, y)
						if c.DeadEnd {
							require.GreaterOrEqual(t, c.DeadEndDepth, 1, "(%d,%d)", x, y)
						}
					}
				}
			})
		}
	}
}

// TestScenario_SigmaUsesHexWalls: carving a hex maze must exercise the
// diagonal flag set somewhere, not silently degrade to cardinal-only
// adjacency.
func TestScenario_SigmaUsesHexWalls(t *testing.T) {
	g := mustGenerate(t, 8, 8, mazegen.Sigma, mazegen.WithSeed(12345))

	diagonalOpen := false
	for y := 0; y < g.Height && !diagonalOpen; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Cell(x, y)
			if !c.NorthEast || !c.NorthWest || !c.SouthEast || !c.SouthWest {
				diagonalOpen = true
				break
			}
		}
	}
	require.True(t, diagonalOpen, "hex carving must open diagonal walls")
}

// TestWithRand_TakesPrecedence: an explicit stream overrides the seed and
// reproduces when rebuilt from the same source seed.
func TestWithRand_TakesPrecedence(t *testing.T) {
	a := mustGenerate(t, 8, 8, mazegen.Orthogonal,
		mazegen.WithSeed(999), mazegen.WithRand(rand.New(rand.NewSource(7))))
	b := mustGenerate(t, 8, 8, mazegen.Orthogonal,
		mazegen.WithRand(rand.New(rand.NewSource(7))))
	require.Equal(t, a.SolutionPath, b.SolutionPath)
}

// TestTopology_String covers the closed enum plus the invalid tag.
func TestTopology_String(t *testing.T) {
	require.Equal(t, "ORTHOGONAL", mazegen.Orthogonal.String())
	require.Equal(t, "DELTA", mazegen.Delta.String())
	require.Equal(t, "SIGMA", mazegen.Sigma.String())
	require.Equal(t, "THETA", mazegen.Theta.String())
	require.Equal(t, "INVALID", mazegen.Topology(-1).String())
}
