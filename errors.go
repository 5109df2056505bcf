// errors.go — sentinel errors for the mazegen package.
//
// Error policy (matching the rest of the API surface):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX), never on message text.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context with %w when needed.
//   - Generate never panics; the only construction-time failures are the
//     two validation sentinels below.

package mazegen

import "errors"

// ErrBadDimensions indicates that width or height is not a positive
// integer. A Grid is never partially constructed: New returns this before
// allocating any cells.
// Usage: if errors.Is(err, ErrBadDimensions) { /* reject size */ }.
var ErrBadDimensions = errors.New("mazegen: width and height must be positive")

// ErrUnknownTopology indicates a Topology tag outside the closed
// {Orthogonal, Delta, Sigma, Theta} set. This is a programming error at the
// call site, not a runtime condition.
// Usage: if errors.Is(err, ErrUnknownTopology) { /* fix the tag */ }.
var ErrUnknownTopology = errors.New("mazegen: unknown topology")

// ErrGenerated indicates that Generate was invoked on a Grid that has
// already been generated. The pipeline is single-shot: a Grid is built,
// generated exactly once, and read-only thereafter.
// Usage: if errors.Is(err, ErrGenerated) { /* construct a fresh Grid */ }.
var ErrGenerated = errors.New("mazegen: grid already generated")
