// Package mazegen is a procedural maze generation engine: it carves a
// perfect (or tunably near-perfect) maze over one of four cell topologies,
// computes the canonical shortest solution path, and classifies every
// off-path cell by its dead-end depth.
//
// What
//
//   - Four topologies: Orthogonal (square), Delta (triangular), Sigma
//     (hexagonal, odd-row offset addressing), Theta (circular ring/sector).
//   - One generation pipeline shared by all four:
//     carve → shortcut → solve → classify.
//   - Carving uses an iterative recursive backtracker, producing a spanning
//     tree over the cell graph (a perfect maze: exactly one route between
//     any two cells).
//   - Difficulty (1..5) tunes how many extra walls are opened after carving;
//     lower difficulty means more loops and more alternate routes.
//   - Solving is plain BFS over the open-wall graph; the path is
//     reconstructed through flat-index parent links.
//   - Classification runs a multi-source BFS from the solution path and
//     assigns every remaining cell its dead-end depth (BFS layer, ≥ 1).
//
// Why
//
//   - The output contract — wall booleans per cell, a start/end pair, and
//     the solution path — is everything a rendering layer needs to lay out
//     square walls, triangle edges, hex edges, or polar arcs. Rendering
//     itself is deliberately out of scope.
//   - Dead-end depth lets a renderer fade or shorten stub corridors in
//     proportion to how far they stray from the solved route.
//
// Determinism
//
//	A Grid built with WithSeed replays the exact same random stream, so two
//	grids with identical (width, height, topology, difficulty, seed) produce
//	bit-identical wall arrays. Without a seed the engine mixes system
//	entropy and no two runs are alike.
//
// Concurrency
//
//	A Grid is single-threaded: construct, call Generate once, then read.
//	Distinct Grids are fully independent; batch generation parallelizes by
//	giving each goroutine its own Grid, never by sharing one.
//
// Complexity (N = Width×Height)
//
//   - Generate: O(N) time over all four phases, O(N) memory.
//
// Errors
//
//   - ErrBadDimensions    if width or height is not positive.
//   - ErrUnknownTopology  if the topology tag is not one of the four.
//   - ErrGenerated        if Generate is called a second time.
//
// Out-of-range difficulty is not an error: values are clamped to [1,5].
package mazegen
