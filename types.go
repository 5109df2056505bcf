// types.go — Topology tags, coordinates, options, and deterministic
// defaults for the mazegen package.

package mazegen

import "math/rand"

// Topology selects the geometric adjacency model of the grid.
type Topology int

const (
	// Orthogonal is the classic square grid: four cardinal neighbors.
	Orthogonal Topology = iota
	// Delta is a triangular grid: cells alternate orientation by (x+y)
	// parity, each connecting to two lateral neighbors and one vertical.
	Delta
	// Sigma is a hexagonal grid using odd-row offset addressing: east/west
	// plus four diagonal neighbors whose columns depend on row parity.
	Sigma
	// Theta is a circular grid: x indexes the sector (wrapping), y the ring.
	Theta
)

// topologyNames backs Topology.String; order must match the enum.
var topologyNames = [...]string{"ORTHOGONAL", "DELTA", "SIGMA", "THETA"}

// String returns the canonical upper-case tag for t, or "INVALID" for
// values outside the closed enum.
func (t Topology) String() string {
	if t < Orthogonal || t > Theta {
		return "INVALID"
	}
	return topologyNames[t]
}

// Coord is a cell position. Semantics depend on topology: for Theta, X is
// the sector index and Y the ring index rather than Cartesian position.
type Coord struct {
	X, Y int
}

// Difficulty bounds and the shortcut probability curve.
// The per-wall shortcut probability is (MaxDifficulty - difficulty) /
// shortcutCurveDivisor, so difficulty 5 opens no shortcuts (perfect maze)
// and difficulty 1 opens each remaining wall with probability 1/2.
const (
	// MinDifficulty is the easiest setting (most shortcuts, most loops).
	MinDifficulty = 1
	// MaxDifficulty is the hardest setting (perfect maze, no shortcuts).
	MaxDifficulty = 5
	// DefaultDifficulty is used when no WithDifficulty option is supplied.
	DefaultDifficulty = 3

	// shortcutCurveDivisor scales the difficulty→probability curve.
	shortcutCurveDivisor = 8.0
)

// Option configures Grid construction via functional arguments.
type Option func(*Options)

// Options holds the tunable construction parameters for a Grid.
type Options struct {
	// Difficulty in [MinDifficulty, MaxDifficulty]. Out-of-range values are
	// silently clamped at construction, not rejected.
	Difficulty int

	// Seed makes generation reproducible: identical parameters plus an
	// identical seed yield bit-identical wall arrays. Ignored unless
	// hasSeed is set via WithSeed.
	Seed int64

	// Rand, when non-nil, is used verbatim as the grid's random stream and
	// takes precedence over Seed. The caller must not share it with
	// another concurrently generating Grid.
	Rand *rand.Rand

	hasSeed bool
}

// DefaultOptions returns the deterministic defaults:
//   - Difficulty: DefaultDifficulty
//   - no seed (system entropy; generation is not reproducible)
//   - no caller-supplied RNG.
func DefaultOptions() Options {
	return Options{
		Difficulty: DefaultDifficulty,
		Seed:       0,
		Rand:       nil,
		hasSeed:    false,
	}
}

// WithDifficulty sets the difficulty. Values below MinDifficulty or above
// MaxDifficulty are clamped, never rejected.
func WithDifficulty(d int) Option {
	return func(o *Options) {
		o.Difficulty = d
	}
}

// WithSeed fixes the random stream so generation is reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.hasSeed = true
	}
}

// WithRand supplies an explicit random stream, taking precedence over
// WithSeed. A nil value is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// clampDifficulty maps any integer onto [MinDifficulty, MaxDifficulty].
func clampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
