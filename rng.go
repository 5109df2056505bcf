// rng.go — deterministic random generation for the carve and shortcut
// phases.
//
// Goals:
//   - Determinism: same seed ⇒ identical mazes across platforms.
//   - Encapsulation: one RNG per Grid; no time-based sources hidden in the
//     algorithms themselves.
//   - Concurrency: math/rand.Rand is not goroutine-safe; each Grid owns its
//     stream and never shares it.

package mazegen

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// seedSequence distinguishes systemRNG calls that land on the same wall
// clock reading.
var seedSequence atomic.Uint64

// systemRNG returns a non-reproducible *rand.Rand. The wall clock is xored
// with a golden-ratio-stepped per-call stream id before avalanche mixing,
// so grids constructed within one nanosecond tick still diverge.
//
// Complexity: O(1).
func systemRNG() *rand.Rand {
	stream := seedSequence.Add(1) * 0x9e3779b97f4a7c15
	return rand.New(rand.NewSource(mixSeed(time.Now().UnixNano() ^ int64(stream))))
}

// mixSeed applies a SplitMix64-style finalizer to s. The constants are the
// canonical SplitMix64 multipliers; they give strong bit diffusion, so
// nearby inputs produce well-separated streams.
//
// Complexity: O(1).
func mixSeed(s int64) int64 {
	x := uint64(s) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleCoords performs an in-place Fisher–Yates shuffle of coords using
// rng. Used to randomize neighbor visit order during carving.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleCoords(coords []Coord, rng *rand.Rand) {
	for i := len(coords) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		coords[i], coords[j] = coords[j], coords[i]
	}
}
